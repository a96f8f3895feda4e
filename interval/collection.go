package interval

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Collection is an immutable set of Intervals representing their union.
// It is always held in canonical form: entries sorted by Start, with no
// two entries overlapping or touching. The canonical form is unique for
// a given union of time, so two collections built from the same time
// set compare equal whatever the construction order.
//
// The zero Collection contains no time. Operations whose result
// contains no time at all report it through their boolean return
// instead of handing back a zero Collection.
type Collection struct {
	elts []Interval
}

// NewCollection builds a canonical collection from one or more
// intervals. It fails when no interval is given.
func NewCollection(intervals ...Interval) (Collection, error) {
	if len(intervals) == 0 {
		return Collection{}, errors.New("provide at least one interval")
	}
	elts := make([]Interval, len(intervals))
	copy(elts, intervals)
	sortIntervals(elts)
	return Collection{elts: sweep(elts)}, nil
}

// CollectionFromSlices builds a canonical collection from parallel
// slices of start and stop values. It fails when either slice is empty,
// when their lengths differ, or when any pair violates start <= stop.
func CollectionFromSlices(starts, stops []Time) (Collection, error) {
	if len(starts) == 0 || len(stops) == 0 {
		return Collection{}, errors.New("provide both start and stop values")
	}
	if len(starts) != len(stops) {
		return Collection{}, errors.Errorf("got %d start values but %d stop values", len(starts), len(stops))
	}
	elts := make([]Interval, len(starts))
	for k := range starts {
		iv, err := New(starts[k], stops[k])
		if err != nil {
			return Collection{}, errors.Wrapf(err, "pair %d", k)
		}
		elts[k] = iv
	}
	sortIntervals(elts)
	return Collection{elts: sweep(elts)}, nil
}

// CollectionFromUnix builds a canonical collection from parallel slices
// of Unix times in whole seconds.
func CollectionFromUnix(starts, stops []int64) (Collection, error) {
	ts := make([]Time, len(starts))
	for k, sec := range starts {
		ts[k] = Unix(sec)
	}
	us := make([]Time, len(stops))
	for k, sec := range stops {
		us[k] = Unix(sec)
	}
	return CollectionFromSlices(ts, us)
}

// Len returns the number of canonical entries.
func (c Collection) Len() int {
	return len(c.elts)
}

// At returns the i'th canonical entry.
func (c Collection) At(i int) Interval {
	return c.elts[i]
}

// Intervals returns a copy of the canonical entries in sorted order.
func (c Collection) Intervals() []Interval {
	elts := make([]Interval, len(c.elts))
	copy(elts, c.elts)
	return elts
}

// Do calls f for each canonical entry in sorted order.
func (c Collection) Do(f func(Interval)) {
	for _, e := range c.elts {
		f(e)
	}
}

func (c Collection) Equal(o Collection) bool {
	if len(c.elts) != len(o.elts) {
		return false
	}
	for i, e := range c.elts {
		if e != o.elts[i] {
			return false
		}
	}
	return true
}

func (c Collection) String() string {
	var buf strings.Builder
	buf.WriteString("[")
	for i, e := range c.elts {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(e.String())
	}
	buf.WriteString("]")
	return buf.String()
}

// TotalDuration returns the sum of entry durations. Entries never
// overlap, so no instant is counted twice.
func (c Collection) TotalDuration() Duration {
	var total Duration
	for _, e := range c.elts {
		total += e.Duration()
	}
	return total
}

func sortIntervals(elts []Interval) {
	sort.Slice(elts, func(i, j int) bool {
		if elts[i].Start != elts[j].Start {
			return elts[i].Start < elts[j].Start
		}
		return elts[i].Stop < elts[j].Stop
	})
}

// sweep merges a start-sorted slice into canonical form: each entry
// whose start does not exceed the running stop extends it, anything
// else closes the running entry. Touching entries merge.
func sweep(elts []Interval) []Interval {
	if len(elts) == 0 {
		return nil
	}
	out := make([]Interval, 0, len(elts))
	cur := elts[0]
	for _, e := range elts[1:] {
		if e.Start <= cur.Stop {
			if e.Stop > cur.Stop {
				cur.Stop = e.Stop
			}
			continue
		}
		out = append(out, cur)
		cur = e
	}
	return append(out, cur)
}
