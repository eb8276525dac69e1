package interval

// Intersect returns the intersection of r and o. The intersection of two
// intervals is always a single interval, possibly empty. At a coincident
// boundary an open side wins: if either operand excludes the shared point,
// so does the result.
func (r Interval) Intersect(o Interval) Interval {
	if r.IsEmpty() || o.IsEmpty() {
		return Empty()
	}

	start, openStart := r.start, r.openStart
	switch {
	case o.start > start:
		start, openStart = o.start, o.openStart
	case o.start == start:
		openStart = openStart || o.openStart
	}

	end, openEnd := r.end, r.openEnd
	switch {
	case o.end < end:
		end, openEnd = o.end, o.openEnd
	case o.end == end:
		openEnd = openEnd || o.openEnd
	}

	return Make(start, end, openStart, openEnd)
}

// Union returns the union of r and o as a normalized slice: a single merged
// interval when the operands overlap or are adjacent, otherwise the two
// operands in sort order. At a coincident extreme a closed side wins. Empty
// operands are dropped.
func (r Interval) Union(o Interval) []Interval {
	if r.IsEmpty() {
		if o.IsEmpty() {
			return nil
		}
		return []Interval{o}
	}
	if o.IsEmpty() {
		return []Interval{r}
	}

	if r.Overlaps(o) || r.IsAdjacent(o) {
		return []Interval{r.merge(o)}
	}
	if r.Less(o) {
		return []Interval{r, o}
	}
	return []Interval{o, r}
}

// merge spans two overlapping or adjacent intervals. Callers must have
// established mergeability.
func (r Interval) merge(o Interval) Interval {
	start, openStart := r.start, r.openStart
	switch {
	case o.start < start:
		start, openStart = o.start, o.openStart
	case o.start == start:
		openStart = openStart && o.openStart
	}

	end, openEnd := r.end, r.openEnd
	switch {
	case o.end > end:
		end, openEnd = o.end, o.openEnd
	case o.end == end:
		openEnd = openEnd && o.openEnd
	}

	return Make(start, end, openStart, openEnd)
}

// Difference returns r minus o as zero, one or two disjoint fragments in
// ascending order. Boundaries flip at each cut point: where o is closed the
// adjoining fragment is open and vice versa, so the fragments and o are
// disjoint and together with the removed part reassemble r exactly.
func (r Interval) Difference(o Interval) []Interval {
	if r.IsEmpty() {
		return nil
	}
	inter := r.Intersect(o)
	if inter.IsEmpty() {
		return []Interval{r}
	}

	var out []Interval
	if left := Make(r.start, inter.start, r.openStart, !inter.openStart); !left.IsEmpty() {
		out = append(out, left)
	}
	if right := Make(inter.end, r.end, !inter.openEnd, r.openEnd); !right.IsEmpty() {
		out = append(out, right)
	}
	return out
}
