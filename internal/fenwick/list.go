// Package fenwick provides a list data structure supporting range updates
// and range sums.
//
// A Fenwick tree, or binary indexed tree, represents a list of numbers as
// an implicit tree where the value of each node is the sum of the numbers
// in that subtree. A single tree supports point updates and prefix sums in
// O(log n) time; this package keeps a pair of trees so that adding a delta
// to every element of a range is O(log n) as well.
//
package fenwick

// List represents a fixed-length list of int64 numbers with support for
// efficient range increments and range sum computation.
type List struct {
	// The pair implements the standard range-update/range-query
	// construction: for a range add of d over 1-based positions [l, r],
	// linear records +d at l and -d at r+1, scaled records the
	// correction terms d*(l-1) and -d*r. The prefix sum of the first x
	// elements is then x*sum(linear, x) - sum(scaled, x).
	//
	// Both slices are 1-based; index 0 is unused.
	linear []int64
	scaled []int64
	n      int
}

// New creates a list of n zero elements.
func New(n int) *List {
	return &List{
		linear: make([]int64, n+1),
		scaled: make([]int64, n+1),
		n:      n,
	}
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return l.n
}

func (l *List) bump(tree []int64, i int, n int64) {
	for ; i <= l.n; i += i & -i {
		tree[i] += n
	}
}

func (l *List) prefix(tree []int64, i int) int64 {
	var sum int64
	for ; i > 0; i -= i & -i {
		sum += tree[i]
	}
	return sum
}

// AddRange adds n to the elements from index i to index j-1.
func (l *List) AddRange(i, j int, n int64) {
	// 1-based positions i+1 through j.
	l.bump(l.linear, i+1, n)
	l.bump(l.linear, j+1, -n)
	l.bump(l.scaled, i+1, n*int64(i))
	l.bump(l.scaled, j+1, -n*int64(j))
}

// Add adds n to the element at index i.
func (l *List) Add(i int, n int64) {
	l.AddRange(i, i+1, n)
}

// Get returns the element at index i.
func (l *List) Get(i int) int64 {
	return l.SumRange(i, i+1)
}

// Sum returns the sum of the elements from index 0 to index i-1.
func (l *List) Sum(i int) int64 {
	return int64(i)*l.prefix(l.linear, i) - l.prefix(l.scaled, i)
}

// SumRange returns the sum of the elements from index i to index j-1.
func (l *List) SumRange(i, j int) int64 {
	return l.Sum(j) - l.Sum(i)
}
