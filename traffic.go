/*
Package traffic exposes the interval algebra engine to its outer
surfaces: a named-operation dispatcher and a wire form for interval
sets, shared by the command line tool and the HTTP daemon.
*/
package traffic

import (
	"github.com/pkg/errors"

	"github.com/xoolive/traffic-rs/interval"
)

// Op names a set operation over interval collections.
type Op string

const (
	OpUnion        Op = "union"
	OpIntersection Op = "intersection"
	OpDifference   Op = "difference"
)

// Apply runs the named set operation over two collections. The boolean
// is false when the result contains no time at all; this only happens
// for intersection and difference.
func Apply(op Op, left, right interval.Collection) (interval.Collection, bool, error) {
	switch op {
	case OpUnion:
		return left.Union(right), true, nil
	case OpIntersection:
		res, ok := left.Intersect(right)
		return res, ok, nil
	case OpDifference:
		res, ok := left.Sub(right)
		return res, ok, nil
	default:
		return interval.Collection{}, false, errors.Errorf("unknown operation %q", op)
	}
}

// Set is the wire form of an interval collection: parallel arrays of
// start and stop values in Unix seconds.
type Set struct {
	Start []int64 `json:"start"`
	Stop  []int64 `json:"stop"`
}

// Collection converts the wire form to a canonical collection.
func (s Set) Collection() (interval.Collection, error) {
	return interval.CollectionFromUnix(s.Start, s.Stop)
}

// SetOf converts a canonical collection to its wire form.
func SetOf(c interval.Collection) Set {
	s := Set{
		Start: make([]int64, 0, c.Len()),
		Stop:  make([]int64, 0, c.Len()),
	}
	c.Do(func(i interval.Interval) {
		s.Start = append(s.Start, i.Start.Unix())
		s.Stop = append(s.Stop, i.Stop.Unix())
	})
	return s
}
