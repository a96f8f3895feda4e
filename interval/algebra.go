package interval

// Union returns the union of the two collections. Both inputs are
// already sorted, so the entries are interleave-merged and swept once,
// without re-sorting.
func (c Collection) Union(o Collection) Collection {
	elts := make([]Interval, 0, len(c.elts)+len(o.elts))
	i, j := 0, 0
	for i < len(c.elts) && j < len(o.elts) {
		a, b := c.elts[i], o.elts[j]
		if a.Start < b.Start || (a.Start == b.Start && a.Stop <= b.Stop) {
			elts = append(elts, a)
			i++
		} else {
			elts = append(elts, b)
			j++
		}
	}
	elts = append(elts, c.elts[i:]...)
	elts = append(elts, o.elts[j:]...)
	return Collection{elts: sweep(elts)}
}

// Intersect returns the portion of time covered by both collections.
// The boolean is false when they share no time at all.
//
// Both entry lists are walked with two cursors; at each step the
// pairwise intersection of the pointed entries is emitted when
// non-empty, then the cursor with the smaller stop advances.
func (c Collection) Intersect(o Collection) (Collection, bool) {
	var elts []Interval
	i, j := 0, 0
	for i < len(c.elts) && j < len(o.elts) {
		a, b := c.elts[i], o.elts[j]
		if r, ok := a.Intersect(b); ok {
			elts = append(elts, r)
		}
		if a.Stop < b.Stop {
			i++
		} else {
			j++
		}
	}
	elts = sweep(elts)
	if len(elts) == 0 {
		return Collection{}, false
	}
	return Collection{elts: elts}, true
}

// Sub removes from c any time covered by o. The boolean is false when
// o covers c entirely and no time remains.
//
// Each entry of c is chipped away by the run of o entries overlapping
// it, found by the same forward scan; an entry with no overlapping o
// entry passes through unchanged.
func (c Collection) Sub(o Collection) (Collection, bool) {
	var elts []Interval
	j := 0
	for _, a := range c.elts {
		for j < len(o.elts) && o.elts[j].Stop < a.Start {
			j++
		}
		cur := a
		covered := false
		for k := j; k < len(o.elts) && o.elts[k].Start <= cur.Stop; k++ {
			b := o.elts[k]
			if !b.Overlaps(cur) {
				continue
			}
			if b.Start > cur.Start {
				elts = append(elts, Interval{Start: cur.Start, Stop: b.Start})
			}
			if b.Stop >= cur.Stop {
				covered = true
				break
			}
			cur = Interval{Start: b.Stop, Stop: cur.Stop}
		}
		if !covered {
			elts = append(elts, cur)
		}
	}
	elts = sweep(elts)
	if len(elts) == 0 {
		return Collection{}, false
	}
	return Collection{elts: elts}, true
}

// UnionInterval is a convenience wrapper treating i as a one-entry
// collection.
func (c Collection) UnionInterval(i Interval) Collection {
	return c.Union(i.Collection())
}

// IntersectInterval is a convenience wrapper treating i as a one-entry
// collection.
func (c Collection) IntersectInterval(i Interval) (Collection, bool) {
	return c.Intersect(i.Collection())
}

// SubInterval is a convenience wrapper treating i as a one-entry
// collection.
func (c Collection) SubInterval(i Interval) (Collection, bool) {
	return c.Sub(i.Collection())
}
