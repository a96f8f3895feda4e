package table_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/xoolive/traffic-rs/interval"
	"github.com/xoolive/traffic-rs/interval/intervaltest"
	"github.com/xoolive/traffic-rs/table"
)

func buildTable(t *testing.T, pairs ...[2]int64) *table.ColListTable {
	t.Helper()
	builder := table.NewColListTableBuilder()
	startIdx := builder.AddCol(table.StartCol)
	stopIdx := builder.AddCol(table.StopCol)
	for _, p := range pairs {
		builder.AppendTime(startIdx, interval.Unix(p[0]))
		builder.AppendTime(stopIdx, interval.Unix(p[1]))
	}
	return builder.Table()
}

func TestToCollection(t *testing.T) {
	tbl := buildTable(t,
		[2]int64{1647861060, 1647861180},
		[2]int64{1647861000, 1647861120},
		[2]int64{1647861240, 1647861300},
	)
	got, err := table.ToCollection(tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := intervaltest.Collection(t,
		[2]int64{1647861000, 1647861180},
		[2]int64{1647861240, 1647861300},
	)
	intervaltest.Equal(t, want, got)
}

func TestToCollection_MissingColumn(t *testing.T) {
	builder := table.NewColListTableBuilder()
	builder.AddCol(table.ColMeta{Label: "altitude", Type: table.TFloat})
	if _, err := table.ToCollection(builder.Table()); err == nil {
		t.Error("expected an error for a table without start/stop columns")
	}
}

func TestToCollection_EmptyTable(t *testing.T) {
	if _, err := table.ToCollection(buildTable(t)); err == nil {
		t.Error("expected an error for an empty table")
	}
}

func TestFromCollection_RoundTrip(t *testing.T) {
	c := intervaltest.Collection(t,
		[2]int64{1647861000, 1647861120},
		[2]int64{1647861240, 1647861300},
	)
	tbl := table.FromCollection(c)
	if got, want := tbl.NRows(), 2; got != want {
		t.Fatalf("unexpected row count: got %d want %d", got, want)
	}
	back, err := table.ToCollection(tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	intervaltest.Equal(t, c, back)
}

func TestBuilder_Sort(t *testing.T) {
	builder := table.NewColListTableBuilder()
	startIdx := builder.AddCol(table.StartCol)
	stopIdx := builder.AddCol(table.StopCol)
	builder.AppendTimes(startIdx, []interval.Time{interval.Unix(300), interval.Unix(0)})
	builder.AppendTimes(stopIdx, []interval.Time{interval.Unix(400), interval.Unix(100)})
	builder.Sort([]string{"start"}, false)
	tbl := builder.Table()
	if tbl.AtTime(0, 0) != interval.Unix(0) || tbl.AtTime(1, 0) != interval.Unix(300) {
		t.Errorf("unexpected order: %v", tbl.Times(0))
	}
	if tbl.AtTime(0, 1) != interval.Unix(100) {
		t.Error("stop column should follow its row on sort")
	}
}

func TestFormatted(t *testing.T) {
	tbl := buildTable(t, [2]int64{1647861000, 1647861120})
	out := fmt.Sprintf("%v", table.Formatted(tbl))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(lines[0], "start") || !strings.Contains(lines[0], "stop") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[2], "2022-03-21T11:10:00Z") {
		t.Errorf("unexpected row: %q", lines[2])
	}
}
