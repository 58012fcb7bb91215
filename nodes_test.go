package segtree

import "testing"

func TestApplyRange(t *testing.T) {
	n := newNodes(8)

	n.applyRange(1, 5, 4)

	if n.sum(1) != 20 {
		t.Errorf("applyRange should bump the sum by delta*span. Got %d", n.sum(1))
	}
	if n.tags[1] != 5 {
		t.Errorf("applyRange should accumulate the tag. Got %d", n.tags[1])
	}

	n.applyRange(1, -2, 4)

	if n.sum(1) != 12 || n.tags[1] != 3 {
		t.Errorf("applyRange should stack on previous state. Got sum=%d tag=%d", n.sum(1), n.tags[1])
	}
}

func TestPush(t *testing.T) {
	n := newNodes(8)

	// Node 1 owns 5 points split 3/2, children already hold partial state.
	n.setLeaf(2, 10)
	n.setLeaf(3, 20)
	n.applyRange(1, 4, 5)

	n.push(1, 3, 2)

	if n.tags[1] != 0 {
		t.Errorf("push should clear the parent tag. Got %d", n.tags[1])
	}
	if n.sum(2) != 10+4*3 || n.sum(3) != 20+4*2 {
		t.Errorf("push should bump child sums by tag*span. Got %d and %d", n.sum(2), n.sum(3))
	}
	if n.tags[2] != 4 || n.tags[3] != 4 {
		t.Errorf("push should hand the tag down to both children. Got %d and %d", n.tags[2], n.tags[3])
	}

	// No tag left, pushing again must be a no-op.
	n.push(1, 3, 2)

	if n.sum(2) != 22 || n.sum(3) != 28 || n.tags[2] != 4 || n.tags[3] != 4 {
		t.Errorf("push with a zero tag should change nothing")
	}
}

func TestPull(t *testing.T) {
	n := newNodes(8)

	n.setLeaf(2, 7)
	n.setLeaf(3, -3)
	n.pull(1)

	if n.sum(1) != 4 {
		t.Errorf("pull should recompute the parent from its children. Got %d", n.sum(1))
	}
}

func TestNodesResetAndClone(t *testing.T) {
	n := newNodes(4)
	n.applyRange(1, 9, 2)

	c := n.clone()
	n.reset()

	if n.sum(1) != 0 || n.tags[1] != 0 {
		t.Errorf("reset should zero sums and tags. Got sum=%d tag=%d", n.sum(1), n.tags[1])
	}
	if c.sum(1) != 18 || c.tags[1] != 9 {
		t.Errorf("clone should be unaffected by reset. Got sum=%d tag=%d", c.sum(1), c.tags[1])
	}

	c.applyRange(1, 1, 2)
	if n.sum(1) != 0 {
		t.Errorf("mutating a clone should not touch the original")
	}
}
