// Package segtree implements a segment tree over a fixed closed integer
// range, supporting additive point/range updates and range-sum queries in
// O(log n) time via lazy propagation.
//
// The tree is a complete binary tree stored in two flat slices (node sums
// and pending lazy tags); there are no node objects. A node's sub-range is
// never stored, it is recomputed during descent from the tree bounds.
package segtree

import "fmt"

// SegmentTree holds integer values over a fixed range [leftBound,
// rightBound] and answers sum queries over any sub-range.
//
// It is not safe for concurrent use. Sum performs internal normalization
// writes (flushing lazy tags), so even read-only workloads must serialize
// access externally.
type SegmentTree struct {
	leftBound  int
	rightBound int
	nodes      *nodes
}

// New creates a tree over the closed range [leftBound, rightBound] with
// every point set to zero.
func New(leftBound, rightBound int, options ...Option) (*SegmentTree, error) {
	if leftBound > rightBound {
		return nil, fmt.Errorf("Invalid bounds: left=%d is greater than right=%d", leftBound, rightBound)
	}

	cfg := defaultConfig()
	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	size := rightBound - leftBound + 1
	return &SegmentTree{
		leftBound:  leftBound,
		rightBound: rightBound,
		nodes:      newNodes(cfg.capacityFor(size)),
	}, nil
}

// NewFromSlice creates a tree over [0, len(values)-1] seeded with the given
// values, so that Sum(i, i) == values[i].
func NewFromSlice(values []int64, options ...Option) (*SegmentTree, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("Can't build a tree from an empty slice")
	}

	t, err := New(0, len(values)-1, options...)
	if err != nil {
		return nil, err
	}

	t.build(1, 0, len(values)-1, values)
	return t, nil
}

func (t *SegmentTree) build(idx, start, end int, values []int64) {
	if start == end {
		t.nodes.setLeaf(idx, values[start])
		return
	}

	mid := start + (end-start)/2
	t.build(2*idx, start, mid, values)
	t.build(2*idx+1, mid+1, end, values)
	t.nodes.pull(idx)
}

// Add adds value to every point in the closed range [left, right]. The
// range must lie fully inside the tree bounds.
func (t *SegmentTree) Add(value int64, left, right int) error {
	if err := t.checkRange(left, right); err != nil {
		return err
	}

	t.add(value, 1, left, right, t.leftBound, t.rightBound)
	return nil
}

func (t *SegmentTree) add(value int64, idx, left, right, start, end int) {
	// The node's range is fully covered: absorb the increment here and
	// leave the children deliberately stale.
	if left <= start && end <= right {
		t.nodes.applyRange(idx, value, end-start+1)
		return
	}

	mid := start + (end-start)/2
	t.nodes.push(idx, mid-start+1, end-mid)

	if left <= mid {
		t.add(value, 2*idx, left, right, start, mid)
	}
	if right >= mid+1 {
		t.add(value, 2*idx+1, left, right, mid+1, end)
	}

	t.nodes.pull(idx)
}

// Sum returns the sum of every point in the closed range [left, right].
// The range must lie fully inside the tree bounds.
func (t *SegmentTree) Sum(left, right int) (int64, error) {
	if err := t.checkRange(left, right); err != nil {
		return 0, err
	}

	return t.sum(1, left, right, t.leftBound, t.rightBound), nil
}

func (t *SegmentTree) sum(idx, left, right, start, end int) int64 {
	if left <= start && end <= right {
		return t.nodes.sum(idx)
	}

	// An unpushed tag means the children's stored sums are stale; flush
	// it before trusting either of them.
	mid := start + (end-start)/2
	t.nodes.push(idx, mid-start+1, end-mid)

	var total int64
	if left <= mid {
		total += t.sum(2*idx, left, right, start, mid)
	}
	if right >= mid+1 {
		total += t.sum(2*idx+1, left, right, mid+1, end)
	}
	return total
}

// At returns the value at a single point, i.e. Sum(index, index).
func (t *SegmentTree) At(index int) (int64, error) {
	return t.Sum(index, index)
}

// Bounds returns the range the tree was constructed over.
func (t SegmentTree) Bounds() (left, right int) {
	return t.leftBound, t.rightBound
}

// Len returns the number of points in the tree's range.
func (t SegmentTree) Len() int {
	return t.rightBound - t.leftBound + 1
}

// Clone returns a deep copy sharing no state with the original.
func (t SegmentTree) Clone() *SegmentTree {
	return &SegmentTree{
		leftBound:  t.leftBound,
		rightBound: t.rightBound,
		nodes:      t.nodes.clone(),
	}
}

// Reset sets every point back to zero without reallocating.
func (t *SegmentTree) Reset() {
	t.nodes.reset()
}

func (t SegmentTree) String() string {
	return fmt.Sprintf("ST<bounds=[%d,%d], nodes=%d>", t.leftBound, t.rightBound, t.nodes.Len())
}

func (t SegmentTree) checkRange(left, right int) error {
	if left > right {
		return fmt.Errorf("Invalid range: left=%d is greater than right=%d", left, right)
	}
	if left < t.leftBound || right > t.rightBound {
		return fmt.Errorf("Range [%d,%d] outside of tree bounds [%d,%d]", left, right, t.leftBound, t.rightBound)
	}
	return nil
}
