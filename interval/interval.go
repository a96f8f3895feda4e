// Package interval implements exact set algebra over closed time ranges.
//
// An Interval is a closed range [Start, Stop] on an absolute time axis.
// A Collection is an immutable, canonical (sorted, merged) set of
// Intervals representing their union. All operations are pure: they
// return new values and never mutate their receivers, so values may be
// shared freely between goroutines.
package interval

import (
	"fmt"

	"github.com/pkg/errors"
)

// Interval is a closed time range [Start, Stop] with Start <= Stop.
type Interval struct {
	Start Time
	Stop  Time
}

// New builds an Interval, validating the ordering invariant.
func New(start, stop Time) (Interval, error) {
	if start > stop {
		return Interval{}, errors.New("start value should be anterior to stop value")
	}
	return Interval{Start: start, Stop: stop}, nil
}

// NewUnix builds an Interval from Unix times in whole seconds.
func NewUnix(start, stop int64) (Interval, error) {
	return New(Unix(start), Unix(stop))
}

func (i Interval) String() string {
	return fmt.Sprintf("[%v, %v]", i.Start, i.Stop)
}

func (i Interval) Equal(o Interval) bool {
	return i == o
}

// Overlaps reports whether the two intervals share any instant.
// Touching endpoints count as an overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start <= o.Stop && i.Stop >= o.Start
}

// Duration returns the span covered by the interval.
func (i Interval) Duration() Duration {
	return Duration(i.Stop - i.Start)
}

// Shift translates the interval by d.
func (i Interval) Shift(d Duration) Interval {
	return Interval{
		Start: i.Start + Time(d),
		Stop:  i.Stop + Time(d),
	}
}

// Collection wraps the interval into a one-entry collection.
func (i Interval) Collection() Collection {
	return Collection{elts: []Interval{i}}
}

// Intersect returns the overlapping portion of the two intervals.
// The boolean is false when they do not overlap at all.
func (i Interval) Intersect(o Interval) (Interval, bool) {
	if !i.Overlaps(o) {
		return Interval{}, false
	}
	r := i
	if o.Start > r.Start {
		r.Start = o.Start
	}
	if o.Stop < r.Stop {
		r.Stop = o.Stop
	}
	return r, true
}

// Union returns the union of the two intervals as a collection:
// a single merged entry when they overlap or touch, otherwise both
// entries sorted by start.
func (i Interval) Union(o Interval) Collection {
	elts := []Interval{i, o}
	sortIntervals(elts)
	return Collection{elts: sweep(elts)}
}

// Sub removes from i any portion covered by o. The boolean is false
// when o fully covers i and no time remains.
func (i Interval) Sub(o Interval) (Collection, bool) {
	var elts []Interval
	if i.Overlaps(o) {
		if o.Start > i.Start {
			elts = append(elts, Interval{Start: i.Start, Stop: o.Start})
		}
		if o.Stop < i.Stop {
			elts = append(elts, Interval{Start: o.Stop, Stop: i.Stop})
		}
	} else {
		elts = append(elts, i)
	}
	if len(elts) == 0 {
		return Collection{}, false
	}
	// A zero-length o strictly inside i leaves two touching remainders.
	return Collection{elts: sweep(elts)}, true
}
