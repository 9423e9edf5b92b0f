package colstore

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/schema"
)

type group struct {
	slots []column.Slot
	accs  []accumulator
}

// appendGroupKey encodes a slot so that equal slots produce equal bytes:
// 0 for null, id+1 otherwise.
func appendGroupKey(buf []byte, s column.Slot) []byte {
	if s.IsNull() {
		return binary.AppendUvarint(buf, 0)
	}
	return binary.AppendUvarint(buf, uint64(s.ID)+1)
}

// GroupBy groups the rows of r by the named columns and computes aggs per
// group. The result is a new table whose columns are the group columns
// followed by one Integer column per aggregate, named after its kind.
//
// Rows are grouped by dictionary id, not by decoded value, and null forms
// a group of its own. Unknown column names are dropped. Groups are emitted in
// the order they were first seen; callers needing value order should sort
// the fetched rows.
func GroupBy(r Relation, groupCols []string, aggs ...Agg) *Table {
	opts := optionsOf(r)
	began := time.Now()
	def := r.Definition()

	var (
		groupIDs []model.ColumnID
		groupBy  []column.TableColumn
	)
	for _, name := range groupCols {
		col, ok := def.NameToID(name)
		if !ok {
			opts.logger.LogUnknownColumn("group_by", name)
			continue
		}
		groupIDs = append(groupIDs, col)
		groupBy = append(groupBy, r.ColumnAt(col))
	}

	var (
		kinds   []AggKind
		aggCols []column.TableColumn
	)
	for _, agg := range aggs {
		if agg.Kind.newAccumulator() == nil {
			opts.logger.LogUnknownAgg("group_by", agg)
			continue
		}
		col, ok := def.NameToID(agg.Column)
		if !ok {
			opts.logger.LogUnknownColumn("group_by", agg.Column)
			continue
		}
		kinds = append(kinds, agg.Kind)
		aggCols = append(aggCols, r.ColumnAt(col))
	}

	numRows := r.NumRows()
	index := make(map[string]int)
	var (
		groups []*group
		key    []byte
	)
	forEachRow(r, model.Span{End: numRows}, opts.batchSize, func(row model.RowID) {
		key = key[:0]
		for _, c := range groupBy {
			key = appendGroupKey(key, c.IDAt(row))
		}

		i, ok := index[string(key)]
		if !ok {
			g := &group{
				slots: make([]column.Slot, len(groupBy)),
				accs:  make([]accumulator, len(kinds)),
			}
			for j, c := range groupBy {
				g.slots[j] = c.IDAt(row)
			}
			for j, k := range kinds {
				g.accs[j] = k.newAccumulator()
			}
			i = len(groups)
			index[string(key)] = i
			groups = append(groups, g)
		}

		g := groups[i]
		for j, c := range aggCols {
			g.accs[j].add(c.KeyAt(row))
		}
	})

	attrs := make([]schema.Attribute, 0, len(groupIDs)+len(kinds))
	for _, col := range groupIDs {
		attrs = append(attrs, def.At(col))
	}
	for _, k := range kinds {
		attrs = append(attrs, schema.Integer(k.String()))
	}

	result := newTable(schema.NewDefinition(def.Name(), attrs...), *opts)
	values := make([]model.Value, len(attrs))
	for _, g := range groups {
		for j, s := range g.slots {
			if s.IsNull() {
				values[j] = model.Null()
			} else {
				values[j] = groupBy[j].KeyOf(s.ID)
			}
		}
		for j, acc := range g.accs {
			values[len(g.slots)+j] = acc.result()
		}
		if err := result.insert(values); err != nil {
			panic(fmt.Sprintf("colstore: group by produced a row its own schema rejects: %v", err))
		}
	}

	opts.metricsCollector.RecordGroupBy(numRows, len(groups), time.Since(began))
	opts.logger.LogGroupBy(numRows, len(groups))
	return result
}
