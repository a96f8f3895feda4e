package table

import (
	"sort"

	"github.com/xoolive/traffic-rs/interval"
)

// ColListTable implements Table using a list of columns held in RAM.
type ColListTable struct {
	colMeta []ColMeta
	cols    []column
	nrows   int
}

func (t *ColListTable) Cols() []ColMeta {
	return t.colMeta
}

func (t *ColListTable) NRows() int {
	return t.nrows
}

func (t *ColListTable) AtTime(i, j int) interval.Time {
	checkColType(t.colMeta[j], TTime)
	return t.cols[j].(*timeColumn).data[i]
}

func (t *ColListTable) AtFloat(i, j int) float64 {
	checkColType(t.colMeta[j], TFloat)
	return t.cols[j].(*floatColumn).data[i]
}

func (t *ColListTable) AtInt(i, j int) int64 {
	checkColType(t.colMeta[j], TInt)
	return t.cols[j].(*intColumn).data[i]
}

func (t *ColListTable) AtString(i, j int) string {
	checkColType(t.colMeta[j], TString)
	return t.cols[j].(*stringColumn).data[i]
}

// Times returns a copy of the values of a TTime column.
func (t *ColListTable) Times(j int) []interval.Time {
	checkColType(t.colMeta[j], TTime)
	data := t.cols[j].(*timeColumn).data
	out := make([]interval.Time, len(data))
	copy(out, data)
	return out
}

type column interface {
	Meta() ColMeta
	Copy() column
	Swap(i, j int)
}

type timeColumn struct {
	ColMeta
	data []interval.Time
}

func (c *timeColumn) Meta() ColMeta { return c.ColMeta }
func (c *timeColumn) Copy() column {
	cpy := &timeColumn{ColMeta: c.ColMeta, data: make([]interval.Time, len(c.data))}
	copy(cpy.data, c.data)
	return cpy
}
func (c *timeColumn) Swap(i, j int) { c.data[i], c.data[j] = c.data[j], c.data[i] }

type floatColumn struct {
	ColMeta
	data []float64
}

func (c *floatColumn) Meta() ColMeta { return c.ColMeta }
func (c *floatColumn) Copy() column {
	cpy := &floatColumn{ColMeta: c.ColMeta, data: make([]float64, len(c.data))}
	copy(cpy.data, c.data)
	return cpy
}
func (c *floatColumn) Swap(i, j int) { c.data[i], c.data[j] = c.data[j], c.data[i] }

type intColumn struct {
	ColMeta
	data []int64
}

func (c *intColumn) Meta() ColMeta { return c.ColMeta }
func (c *intColumn) Copy() column {
	cpy := &intColumn{ColMeta: c.ColMeta, data: make([]int64, len(c.data))}
	copy(cpy.data, c.data)
	return cpy
}
func (c *intColumn) Swap(i, j int) { c.data[i], c.data[j] = c.data[j], c.data[i] }

type stringColumn struct {
	ColMeta
	data []string
}

func (c *stringColumn) Meta() ColMeta { return c.ColMeta }
func (c *stringColumn) Copy() column {
	cpy := &stringColumn{ColMeta: c.ColMeta, data: make([]string, len(c.data))}
	copy(cpy.data, c.data)
	return cpy
}
func (c *stringColumn) Swap(i, j int) { c.data[i], c.data[j] = c.data[j], c.data[i] }

// ColListTableBuilder builds a ColListTable one column or row at a time.
type ColListTableBuilder struct {
	tbl *ColListTable
}

func NewColListTableBuilder() *ColListTableBuilder {
	return &ColListTableBuilder{
		tbl: new(ColListTable),
	}
}

func (b ColListTableBuilder) NRows() int {
	return b.tbl.nrows
}

func (b ColListTableBuilder) Cols() []ColMeta {
	return b.tbl.colMeta
}

func (b ColListTableBuilder) AddCol(c ColMeta) int {
	var col column
	switch c.Type {
	case TTime:
		col = &timeColumn{ColMeta: c}
	case TFloat:
		col = &floatColumn{ColMeta: c}
	case TInt:
		col = &intColumn{ColMeta: c}
	case TString:
		col = &stringColumn{ColMeta: c}
	default:
		PanicUnknownType(c.Type)
	}
	b.tbl.colMeta = append(b.tbl.colMeta, c)
	b.tbl.cols = append(b.tbl.cols, col)
	return len(b.tbl.cols) - 1
}

func (b ColListTableBuilder) AppendTime(j int, value interval.Time) {
	checkColType(b.tbl.colMeta[j], TTime)
	col := b.tbl.cols[j].(*timeColumn)
	col.data = append(col.data, value)
	b.tbl.nrows = len(col.data)
}

func (b ColListTableBuilder) AppendTimes(j int, values []interval.Time) {
	checkColType(b.tbl.colMeta[j], TTime)
	col := b.tbl.cols[j].(*timeColumn)
	col.data = append(col.data, values...)
	b.tbl.nrows = len(col.data)
}

func (b ColListTableBuilder) AppendFloat(j int, value float64) {
	checkColType(b.tbl.colMeta[j], TFloat)
	col := b.tbl.cols[j].(*floatColumn)
	col.data = append(col.data, value)
	b.tbl.nrows = len(col.data)
}

func (b ColListTableBuilder) AppendInt(j int, value int64) {
	checkColType(b.tbl.colMeta[j], TInt)
	col := b.tbl.cols[j].(*intColumn)
	col.data = append(col.data, value)
	b.tbl.nrows = len(col.data)
}

func (b ColListTableBuilder) AppendString(j int, value string) {
	checkColType(b.tbl.colMeta[j], TString)
	col := b.tbl.cols[j].(*stringColumn)
	col.data = append(col.data, value)
	b.tbl.nrows = len(col.data)
}

// Sort orders the rows by the given columns.
func (b ColListTableBuilder) Sort(cols []string, desc bool) {
	colIdxs := make([]int, 0, len(cols))
	for _, label := range cols {
		if j := ColIdx(label, b.tbl.colMeta); j >= 0 {
			colIdxs = append(colIdxs, j)
		}
	}
	s := colListTableSorter{cols: colIdxs, desc: desc, t: b.tbl}
	sort.Sort(s)
}

// Table returns the table that has been built. Further modifications
// of the builder will not affect the returned table.
func (b ColListTableBuilder) Table() *ColListTable {
	cpy := &ColListTable{
		colMeta: make([]ColMeta, len(b.tbl.colMeta)),
		cols:    make([]column, len(b.tbl.cols)),
		nrows:   b.tbl.nrows,
	}
	copy(cpy.colMeta, b.tbl.colMeta)
	for i, c := range b.tbl.cols {
		cpy.cols[i] = c.Copy()
	}
	return cpy
}

type colListTableSorter struct {
	cols []int
	desc bool
	t    *ColListTable
}

func (s colListTableSorter) Len() int {
	return s.t.nrows
}

func (s colListTableSorter) Less(x, y int) bool {
	for _, j := range s.cols {
		var less, more bool
		switch col := s.t.cols[j].(type) {
		case *timeColumn:
			less, more = col.data[x] < col.data[y], col.data[x] > col.data[y]
		case *floatColumn:
			less, more = col.data[x] < col.data[y], col.data[x] > col.data[y]
		case *intColumn:
			less, more = col.data[x] < col.data[y], col.data[x] > col.data[y]
		case *stringColumn:
			less, more = col.data[x] < col.data[y], col.data[x] > col.data[y]
		}
		if less {
			return !s.desc
		}
		if more {
			return s.desc
		}
	}
	return false
}

func (s colListTableSorter) Swap(x, y int) {
	for _, col := range s.t.cols {
		col.Swap(x, y)
	}
}
