// Package generation holds the procedural battle-map engine: the obstruction
// grid that tracks cell occupancy, the randomized line-network generator used
// for roads and interior walls, and the composer that assembles a full map
// layout from them.
package generation

import "errors"

var (
	// ErrInfeasible reports a configuration whose margins or sizes cannot be
	// satisfied by the given rectangle or grid dimensions. It is detected
	// before any randomized work starts.
	ErrInfeasible = errors.New("configuration infeasible")

	// ErrPlacementFailed reports that a randomized placement search ran out
	// of attempts. Callers can treat it as "skip this feature" rather than a
	// hard failure.
	ErrPlacementFailed = errors.New("placement failed")
)

// Retry budgets for randomized searches. The searches have no natural
// termination when the grid is crowded or no line can host a new branch, so
// every loop is capped and reports ErrPlacementFailed on exhaustion.
const (
	deriveAttempts    = 100
	placementAttempts = 1000
)
