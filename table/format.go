package table

import (
	"fmt"
	"strconv"
)

type FormatOption func(*formatter)

// Formatted wraps a table for pretty printing with fmt.
func Formatted(t Table, opts ...FormatOption) fmt.Formatter {
	f := formatter{
		t: t,
	}
	for _, o := range opts {
		o(&f)
	}
	return f
}

// Head limits the printed output to the first m rows.
func Head(m int) FormatOption {
	return func(f *formatter) { f.head = m }
}

type formatter struct {
	t    Table
	head int
}

func (f formatter) Format(fs fmt.State, c rune) {
	if c == 'v' && fs.Flag('#') {
		fmt.Fprintf(fs, "%#v", f.t)
		return
	}
	f.format(fs, c)
}

func (f formatter) format(fs fmt.State, c rune) {
	cols := f.t.Cols()
	nrows := f.t.NRows()
	if f.head > 0 && f.head < nrows {
		nrows = f.head
	}

	prec, pOk := fs.Precision()
	if !pOk {
		prec = -1
	}
	fmtC := byte(c)
	if fmtC == 'v' {
		fmtC = 'g'
	}

	widths := make([]int, len(cols))
	for j, col := range cols {
		widths[j] = len(col.Label)
		for i := 0; i < nrows; i++ {
			if w := len(f.cell(i, j, fmtC, prec)); w > widths[j] {
				widths[j] = w
			}
		}
	}

	pad := func(n int) {
		for k := 0; k < n; k++ {
			fs.Write([]byte{' '})
		}
	}

	for j, col := range cols {
		pad(widths[j] - len(col.Label))
		fs.Write([]byte(col.Label))
		pad(2)
	}
	fs.Write([]byte{'\n'})
	for j := range cols {
		for k := 0; k < widths[j]; k++ {
			fs.Write([]byte{'-'})
		}
		pad(2)
	}
	fs.Write([]byte{'\n'})

	for i := 0; i < nrows; i++ {
		for j := range cols {
			buf := f.cell(i, j, fmtC, prec)
			pad(widths[j] - len(buf))
			fs.Write([]byte(buf))
			pad(2)
		}
		fs.Write([]byte{'\n'})
	}
}

func (f formatter) cell(i, j int, fmtC byte, prec int) string {
	switch f.t.Cols()[j].Type {
	case TTime:
		return f.t.AtTime(i, j).String()
	case TFloat:
		return strconv.FormatFloat(f.t.AtFloat(i, j), fmtC, prec, 64)
	case TInt:
		return strconv.FormatInt(f.t.AtInt(i, j), 10)
	case TString:
		return f.t.AtString(i, j)
	default:
		return ""
	}
}
