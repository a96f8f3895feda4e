// Package intervaltest provides helpers for tests exercising the
// interval algebra.
package intervaltest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xoolive/traffic-rs/interval"
)

// Unix builds an interval from Unix times in whole seconds, failing
// the test on an ordering violation.
func Unix(t *testing.T, start, stop int64) interval.Interval {
	t.Helper()
	iv, err := interval.NewUnix(start, stop)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return iv
}

// Collection builds a canonical collection from (start, stop) pairs of
// Unix times in whole seconds, failing the test on any invalid pair.
func Collection(t *testing.T, pairs ...[2]int64) interval.Collection {
	t.Helper()
	starts := make([]int64, len(pairs))
	stops := make([]int64, len(pairs))
	for i, p := range pairs {
		starts[i] = p[0]
		stops[i] = p[1]
	}
	c, err := interval.CollectionFromUnix(starts, stops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

// Equal asserts that two values compare equal under go-cmp.
func Equal(t *testing.T, exp, got interface{}) {
	t.Helper()
	if !cmp.Equal(exp, got) {
		t.Errorf("unexpected value -want/+got\n%s", cmp.Diff(exp, got))
	}
}
