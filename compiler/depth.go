package compiler

import "github.com/nnfcompile/circuits/nnf"

// labelDepth assigns each node its maximum directed distance from root
// (root is depth 0). Whenever a node is reached again along a longer path,
// its depth is raised and its children are re-labeled with the new depth+1,
// so every node ends up strictly shallower than each of its children.
func labelDepth(root *nnf.Gate) map[int]int {
	depth := make(map[int]int)
	var visit func(g *nnf.Gate, d int)
	visit = func(g *nnf.Gate, d int) {
		if existing, ok := depth[g.ID]; ok && d <= existing {
			return
		}
		depth[g.ID] = d
		for _, c := range g.Children {
			visit(c, d+1)
		}
	}
	visit(root, 0)
	return depth
}

// bucketByDepth groups every node reachable from root by its labelDepth
// value.
func bucketByDepth(root *nnf.Gate, depth map[int]int) map[int][]*nnf.Gate {
	buckets := make(map[int][]*nnf.Gate)
	for _, g := range nnf.Walk(root) {
		d := depth[g.ID]
		buckets[d] = append(buckets[d], g)
	}
	return buckets
}
