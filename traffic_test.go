package traffic_test

import (
	"testing"

	traffic "github.com/xoolive/traffic-rs"
	"github.com/xoolive/traffic-rs/interval/intervaltest"
)

func TestApply(t *testing.T) {
	left := intervaltest.Collection(t, [2]int64{1647861000, 1647861120})
	right := intervaltest.Collection(t, [2]int64{1647861060, 1647861180})

	got, ok, err := traffic.Apply(traffic.OpUnion, left, right)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	intervaltest.Equal(t, intervaltest.Collection(t, [2]int64{1647861000, 1647861180}), got)

	got, ok, err = traffic.Apply(traffic.OpIntersection, left, right)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	intervaltest.Equal(t, intervaltest.Collection(t, [2]int64{1647861060, 1647861120}), got)

	got, ok, err = traffic.Apply(traffic.OpDifference, left, right)
	if err != nil || !ok {
		t.Fatalf("unexpected result: ok=%v err=%v", ok, err)
	}
	intervaltest.Equal(t, intervaltest.Collection(t, [2]int64{1647861000, 1647861060}), got)

	if _, ok, err := traffic.Apply(traffic.OpDifference, left, left); err != nil || ok {
		t.Errorf("expected an empty difference: ok=%v err=%v", ok, err)
	}

	if _, _, err := traffic.Apply("frobnicate", left, right); err == nil {
		t.Error("expected an error for an unknown operation")
	}
}

func TestSet_RoundTrip(t *testing.T) {
	c := intervaltest.Collection(t,
		[2]int64{1647861000, 1647861120},
		[2]int64{1647861240, 1647861300},
	)
	s := traffic.SetOf(c)
	intervaltest.Equal(t, []int64{1647861000, 1647861240}, s.Start)
	intervaltest.Equal(t, []int64{1647861120, 1647861300}, s.Stop)

	back, err := s.Collection()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	intervaltest.Equal(t, c, back)
}

func TestSet_Invalid(t *testing.T) {
	if _, err := (traffic.Set{}).Collection(); err == nil {
		t.Error("expected an error for an empty set")
	}
}
