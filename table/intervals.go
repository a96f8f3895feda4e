package table

import (
	"github.com/pkg/errors"

	"github.com/xoolive/traffic-rs/interval"
)

// ToCollection builds a canonical interval collection from the start
// and stop time columns of a table.
func ToCollection(t Table) (interval.Collection, error) {
	cols := t.Cols()
	startIdx := ColIdx(startColLabel, cols)
	if startIdx < 0 {
		return interval.Collection{}, errors.Errorf("table has no %q column", startColLabel)
	}
	stopIdx := ColIdx(stopColLabel, cols)
	if stopIdx < 0 {
		return interval.Collection{}, errors.Errorf("table has no %q column", stopColLabel)
	}
	if cols[startIdx].Type != TTime || cols[stopIdx].Type != TTime {
		return interval.Collection{}, errors.New("start and stop columns must hold times")
	}
	n := t.NRows()
	starts := make([]interval.Time, n)
	stops := make([]interval.Time, n)
	for i := 0; i < n; i++ {
		starts[i] = t.AtTime(i, startIdx)
		stops[i] = t.AtTime(i, stopIdx)
	}
	c, err := interval.CollectionFromSlices(starts, stops)
	if err != nil {
		return interval.Collection{}, errors.Wrap(err, "invalid table data")
	}
	return c, nil
}

// FromCollection exports a collection as a table with start and stop
// time columns, one row per canonical entry.
func FromCollection(c interval.Collection) *ColListTable {
	builder := NewColListTableBuilder()
	startIdx := builder.AddCol(StartCol)
	stopIdx := builder.AddCol(StopCol)
	c.Do(func(i interval.Interval) {
		builder.AppendTime(startIdx, i.Start)
		builder.AppendTime(stopIdx, i.Stop)
	})
	return builder.Table()
}
