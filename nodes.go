package segtree

// nodes is the flat backing store for the implicit tree. sums[i] holds the
// accumulated sum over node i's sub-range; tags[i] holds a pending additive
// increment that every point under i still owes to i's children.
//
// Node i's children live at 2i and 2i+1; index 0 is unused so that the
// root sits at 1.
type nodes struct {
	sums []int64
	tags []int64
}

func newNodes(capacity int) *nodes {
	return &nodes{
		sums: make([]int64, capacity),
		tags: make([]int64, capacity),
	}
}

func (n nodes) Len() int {
	return len(n.sums)
}

func (n nodes) sum(idx int) int64 {
	return n.sums[idx]
}

func (n *nodes) setLeaf(idx int, value int64) {
	n.sums[idx] = value
}

// applyRange records an add of delta over a node owning span points: the
// stored sum absorbs the full increment, the tag remembers what the
// children have not seen yet.
func (n *nodes) applyRange(idx int, delta int64, span int) {
	n.sums[idx] += delta * int64(span)
	n.tags[idx] += delta
}

// push flushes idx's pending tag into both children. Callers must never
// push a leaf; the descent guarantees this because a leaf overlapping the
// requested range is always fully contained and handled before any push.
func (n *nodes) push(idx, leftSpan, rightSpan int) {
	tag := n.tags[idx]
	if tag == 0 {
		return
	}

	n.tags[2*idx] += tag
	n.tags[2*idx+1] += tag

	n.sums[2*idx] += tag * int64(leftSpan)
	n.sums[2*idx+1] += tag * int64(rightSpan)

	n.tags[idx] = 0
}

// pull recomputes idx's sum from its children after they changed.
func (n *nodes) pull(idx int) {
	n.sums[idx] = n.sums[2*idx] + n.sums[2*idx+1]
}

func (n *nodes) reset() {
	for i := range n.sums {
		n.sums[i] = 0
		n.tags[i] = 0
	}
}

func (n nodes) clone() *nodes {
	return &nodes{
		sums: append([]int64{}, n.sums...),
		tags: append([]int64{}, n.tags...),
	}
}
