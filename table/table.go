// Package table implements a small columnar dataset used to feed
// interval collections from tabular sources and to export them back.
// Tables only appear at construction and export time, never inside the
// algebra itself.
package table

import (
	"fmt"

	"github.com/xoolive/traffic-rs/interval"
)

type DataType int

const (
	TInvalid DataType = iota
	TTime
	TString
	TFloat
	TInt
)

func (t DataType) String() string {
	switch t {
	case TInvalid:
		return "invalid"
	case TTime:
		return "time"
	case TString:
		return "string"
	case TFloat:
		return "float"
	case TInt:
		return "int"
	default:
		return "unknown"
	}
}

type ColMeta struct {
	Label string
	Type  DataType
}

const (
	startColLabel = "start"
	stopColLabel  = "stop"
)

var (
	StartCol = ColMeta{
		Label: startColLabel,
		Type:  TTime,
	}
	StopCol = ColMeta{
		Label: stopColLabel,
		Type:  TTime,
	}
)

// Table is a bounded set of rows over typed columns.
type Table interface {
	Cols() []ColMeta
	NRows() int

	// At* methods return the value in column j at row i.
	AtTime(i, j int) interval.Time
	AtFloat(i, j int) float64
	AtInt(i, j int) int64
	AtString(i, j int) string
}

// ColIdx returns the index of the column with the given label, or -1.
func ColIdx(label string, cols []ColMeta) int {
	for j, c := range cols {
		if c.Label == label {
			return j
		}
	}
	return -1
}

func checkColType(col ColMeta, typ DataType) {
	if col.Type != typ {
		panic(fmt.Errorf("column %s is not of type %v", col.Label, typ))
	}
}

func PanicUnknownType(typ DataType) {
	panic(fmt.Errorf("unknown type %v", typ))
}
