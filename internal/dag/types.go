package dag

// Graph is a collection of nodes and their dependencies. Nodes remember the
// order in which they were added so that traversals are reproducible.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order lists node IDs in insertion order.
	order []string
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	// id is the unique identifier for the node.
	id string
	// deps lists the IDs this node depends on, in the order edges were added.
	deps []string
	// dependents holds the set of nodes that depend on this node (successors).
	dependents map[string]*node
}
