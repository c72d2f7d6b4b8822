package fusion

// BasisIndex is the bijection between computational basis elements and
// dense matrix indices 0..dim-1, in basis enumeration order.
type BasisIndex struct {
	elems []Labels
	byKey map[string]int
}

// NewBasisIndex builds the index over the given enumeration.
func NewBasisIndex(elems []Labels) *BasisIndex {
	idx := &BasisIndex{
		elems: elems,
		byKey: make(map[string]int, len(elems)),
	}
	for i, e := range elems {
		idx.byKey[e.Key()] = i
	}
	return idx
}

// Dim returns the number of basis elements.
func (b *BasisIndex) Dim() int { return len(b.elems) }

// Lookup returns the dense index of l, if l is a basis element.
func (b *BasisIndex) Lookup(l Labels) (int, bool) {
	i, ok := b.byKey[l.Key()]
	return i, ok
}

// At returns the basis element at dense index i.
func (b *BasisIndex) At(i int) Labels { return b.elems[i] }

// EnumerateBasis lists the computational basis for nStrands leaves labelled
// a with total charge b: every admissible assignment of internal edge labels
// of the left-to-right fusion tree. Rings may delegate their
// ComputationalBasis method to this helper.
//
// The order is deterministic: the top-row labels run through the Cartesian
// product of admissible a#a outcomes (last position fastest), and the level
// labels follow basis order, so the same arguments always enumerate
// identically.
func EnumerateBasis(r Ring, a, b Object, nStrands int) []Labels {
	if nStrands < 3 {
		return nil
	}
	half := nStrands / 2
	var tops []Object
	for _, c := range r.Basis() {
		if r.Multiplicity(a, a, c) > 0 {
			tops = append(tops, c)
		}
	}
	if len(tops) == 0 {
		return nil
	}

	var out []Labels
	odo := make([]int, half)
	for {
		topRow := make([]Object, 0, half+nStrands%2)
		for _, j := range odo {
			topRow = append(topRow, tops[j])
		}
		if nStrands%2 == 1 {
			// Odd strand count: the top row is extended by one bare leaf.
			topRow = append(topRow, a)
		}
		for _, levels := range fusionTrees(r, topRow, b) {
			elt := make(Labels, 0, half+len(levels))
			elt = append(elt, topRow[:half]...)
			elt = append(elt, levels...)
			out = append(out, elt)
		}
		i := half - 1
		for ; i >= 0; i-- {
			odo[i]++
			if odo[i] < len(tops) {
				break
			}
			odo[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return out
}

// fusionTrees enumerates the admissible level labels fusing topRow down to
// root, left to right.
func fusionTrees(r Ring, topRow []Object, root Object) [][]Object {
	if len(topRow) == 2 {
		if r.Multiplicity(topRow[0], topRow[1], root) > 0 {
			return [][]Object{{}}
		}
		return nil
	}
	var out [][]Object
	for _, l := range r.Basis() {
		if r.Multiplicity(topRow[0], topRow[1], l) == 0 {
			continue
		}
		rest := make([]Object, 0, len(topRow)-1)
		rest = append(rest, l)
		rest = append(rest, topRow[2:]...)
		for _, tail := range fusionTrees(r, rest, root) {
			branch := make([]Object, 0, 1+len(tail))
			branch = append(branch, l)
			branch = append(branch, tail...)
			out = append(out, branch)
		}
	}
	return out
}
