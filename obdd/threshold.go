package obdd

// CompileThreshold builds the OBDD for sum(weights[i]*x[i+1]) >= threshold
// over n = len(weights) boolean variables, via the weighted-sum level
// construction:
//
//  1. matrix[1] holds the single reachable partial sum {0}.
//  2. For each level i and each reachable sum p, the pending successors are
//     (hi = p+weights[i-1], lo = p); both are inserted into level i+1.
//  3. At level n+1, every reachable total p resolves to the One terminal if
//     p >= threshold, else Zero.
//  4. Levels are then swept bottom-up (n down to 1), allocating one
//     manager-unique decision node per reachable sum at that level.
//
// The returned root is matrix[1][0], i.e. the node for the empty partial
// sum at level 1. No reduction is applied; call Reduce on the result if a
// reduced OBDD is wanted.
func CompileThreshold(weights []int, threshold int) (*Manager, *Node, error) {
	n := len(weights)
	mgr := NewManager(n)

	// Forward pass: track reachable partial sums and the (hi,lo) successor
	// sums pending at each level.
	reachable := make([]map[int]bool, n+2)
	reachable[1] = map[int]bool{0: true}
	links := make([]map[int][2]int, n+2)

	for i := 1; i <= n; i++ {
		links[i] = make(map[int][2]int, len(reachable[i]))
		if reachable[i+1] == nil {
			reachable[i+1] = make(map[int]bool)
		}
		w := weights[i-1]
		for p := range reachable[i] {
			hi, lo := p+w, p
			links[i][p] = [2]int{hi, lo}
			reachable[i+1][hi] = true
			reachable[i+1][lo] = true
		}
	}

	// Level n+1: resolve every reachable total sum to a terminal.
	resolved := make(map[int]*Node, len(reachable[n+1]))
	for p := range reachable[n+1] {
		if p >= threshold {
			resolved[p] = mgr.one
		} else {
			resolved[p] = mgr.zero
		}
	}

	// Backward sweep: allocate a hash-consed decision per reachable sum.
	for i := n; i >= 1; i-- {
		next := resolved
		resolved = make(map[int]*Node, len(links[i]))
		for p, hl := range links[i] {
			hi, lo := next[hl[0]], next[hl[1]]
			resolved[p] = mgr.NewNode(i, hi, lo)
		}
	}

	root, ok := resolved[0]
	if !ok {
		return nil, nil, ErrInvariantViolation
	}
	return mgr, root, nil
}
