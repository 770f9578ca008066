package obdd

import "math/big"

// ModelCount returns the number of satisfying total assignments over
// varCount variables, computed bottom-up: terminals start at 0 or
// 2^varCount and every decision's count is (hi+lo)/2, a division that is
// always exact because hi and lo were themselves built the same way.
func (n *Node) ModelCount(varCount int) *big.Int {
	order := Walk(n)
	full := new(big.Int).Lsh(big.NewInt(1), uint(varCount))

	counts := make(map[int]*big.Int, len(order))
	var last *big.Int
	for _, node := range order {
		var c *big.Int
		if node.terminal {
			if node.sign == One {
				c = new(big.Int).Set(full)
			} else {
				c = big.NewInt(0)
			}
		} else {
			sum := new(big.Int).Add(counts[node.Hi.NID], counts[node.Lo.NID])
			c = sum.Rsh(sum, 1)
		}
		counts[node.NID] = c
		last = c
	}
	return last
}
