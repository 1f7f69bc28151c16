package parameter

// Navigation - bounded BFS
const (
	// NavSpaceDepth is the BFS depth cap for reachable space scoring
	NavSpaceDepth = 8

	// NavPathMaxExpansions caps node expansions of the forced-acquisition path search
	NavPathMaxExpansions = 100
)
