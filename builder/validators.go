// SPDX-License-Identifier: MIT

// Package builder provides validation helpers enforcing the Build contract.
package builder

import (
	"fmt"

	"github.com/katalvlaran/airroute/core"
)

// validateNodes rejects empty input, empty or duplicate IDs and invalid
// coordinates. The first violation wins, scanning in input order.
// Complexity: O(V) time and space.
func validateNodes(nodes []core.Node) error {
	if len(nodes) == 0 {
		return ErrNoNodes
	}
	seen := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if n.ID == "" {
			return fmt.Errorf("node #%d: %w", i, core.ErrEmptyNodeID)
		}
		if j, dup := seen[n.ID]; dup {
			return fmt.Errorf("nodes #%d and #%d: %w: %q", j, i, core.ErrDuplicateNode, n.ID)
		}
		seen[n.ID] = i
		if !core.ValidCoordinates(n.Latitude, n.Longitude) {
			return fmt.Errorf("node %q (%v,%v): %w", n.ID, n.Latitude, n.Longitude, ErrBadCoordinates)
		}
	}

	return nil
}
