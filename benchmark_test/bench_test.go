package benchmark_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/colstore"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/testutil"
)

func setupTables(b *testing.B, cfg testutil.TableConfig, opts ...colstore.Option) (*colstore.Table, *colstore.Table) {
	b.Helper()

	shohin, kubun, err := testutil.Tables(context.Background(), 1, cfg, opts...)
	if err != nil {
		b.Fatal(err)
	}
	return shohin, kubun
}

func BenchmarkLessThan(b *testing.B) {
	shohin, _ := setupTables(b, testutil.DefaultTableConfig())
	rng := testutil.NewRNG(2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		view := shohin.LessThan("price", model.Int(int32(rng.Intn(10000))))
		_ = view.NumRows()
	}
}

func BenchmarkEqualTo(b *testing.B) {
	shohin, _ := setupTables(b, testutil.DefaultTableConfig())
	rng := testutil.NewRNG(2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		view := shohin.EqualTo("kubun_id", model.Int(int32(rng.Intn(10000)+1)))
		_ = view.NumRows()
	}
}

func BenchmarkGroupBy(b *testing.B) {
	shohin, _ := setupTables(b, testutil.DefaultTableConfig())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		grouped := shohin.GroupBy([]string{"kubun_id"}, colstore.Count("shohin_name"), colstore.Average("price"))
		_ = grouped.NumRows()
	}
}

// BenchmarkGroupBy_Skewed groups a column whose values follow a Zipf
// distribution, so a few groups receive most rows.
func BenchmarkGroupBy_Skewed(b *testing.B) {
	rng := testutil.NewRNG(3)
	buckets := rng.ZipfBuckets(100000, 100, 1.5)

	t := colstore.NewTable("skewed", testutil.ShohinAttributes())
	for i, bucket := range buckets {
		if err := t.InsertValues(i+1, "x", bucket, rng.Intn(990)*10); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		grouped := t.GroupBy([]string{"kubun_id"}, colstore.Sum("price"), colstore.Max("price"))
		_ = grouped.NumRows()
	}
}

func BenchmarkFetch_BatchSize(b *testing.B) {
	for _, batch := range []int{16, 64, 256, 1024} {
		b.Run(fmt.Sprintf("batch=%d", batch), func(b *testing.B) {
			shohin, _ := setupTables(b, testutil.DefaultTableConfig(), colstore.WithBatchSize(batch))
			view := shohin.LessThan("price", model.Int(5000)).Select("shohin_name", "price")

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				rows := colstore.FetchAll(view)
				if len(rows) == 0 {
					b.Fatal("empty result")
				}
			}
		})
	}
}

func BenchmarkInsert(b *testing.B) {
	t := colstore.NewTable("shohin", testutil.ShohinAttributes())
	rng := testutil.NewRNG(4)
	names := make([]string, 1024)
	for i := range names {
		names[i] = rng.Name('a', 26, 3, 7)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := t.Insert(
			model.Int(int32(i)),
			model.Text(names[i%len(names)]),
			model.Int(int32(i%10000)),
			model.Int(int32(i%990*10)),
		)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTables(b *testing.B) {
	cfg := testutil.TableConfig{Products: 10000, Categories: 1000, PriceSteps: 990}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		setupTables(b, cfg)
	}
}
