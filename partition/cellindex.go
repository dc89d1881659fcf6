package partition

// CellKey identifies one candidate cell by its two-level Mapper coordinates:
// the pullback (cover) cell the filter interval produced, and the partial
// cluster found inside that pullback. Two keys are the same cell iff both
// coordinates are equal.
type CellKey struct {
	// Pullback is the cover-cell index from the filter preimage.
	Pullback int

	// Cluster is the partial-cluster index within the pullback cell.
	Cluster int
}

// CellIndex interns CellKeys into dense, contiguous integer identifiers
// (0, 1, 2, …) in first-use order. It replaces the tuple-keyed dictionaries
// a Mapper pipeline typically accumulates, so that the resolver and scorer
// can work with plain ints.
//
// CellIndex is not safe for concurrent use; build it single-threaded per
// configuration, then treat it as read-only.
type CellIndex struct {
	ids  map[CellKey]int
	keys []CellKey
}

// NewCellIndex returns an empty index.
func NewCellIndex() *CellIndex {
	return &CellIndex{ids: make(map[CellKey]int)}
}

// ID returns the dense identifier for k, assigning the next free one on
// first use. Assigned identifiers are stable for the life of the index.
//
// Complexity: O(1) amortized.
func (ix *CellIndex) ID(k CellKey) int {
	if id, ok := ix.ids[k]; ok {
		return id
	}
	id := len(ix.keys)
	ix.ids[k] = id
	ix.keys = append(ix.keys, k)

	return id
}

// Lookup returns the identifier for k without assigning one.
func (ix *CellIndex) Lookup(k CellKey) (int, bool) {
	id, ok := ix.ids[k]

	return id, ok
}

// Key returns the CellKey registered under id, inverting ID.
func (ix *CellIndex) Key(id int) (CellKey, bool) {
	if id < 0 || id >= len(ix.keys) {
		return CellKey{}, false
	}

	return ix.keys[id], true
}

// Len returns the number of interned cells.
func (ix *CellIndex) Len() int { return len(ix.keys) }
