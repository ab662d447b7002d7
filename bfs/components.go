// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/airroute/core"

// Components partitions g into connected components.
//
// Components are ordered by their earliest-inserted node and each lists its
// nodes in BFS order from that node. A nil graph has no components.
// Complexity: O(V + E).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	seen := make(map[string]bool, g.NodeCount())
	var out [][]string
	for _, id := range g.NodeIDs() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			// id came from g itself; BFS can only fail if g changed meanwhile.
			continue
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out
}
