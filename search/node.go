package search

// node is a DFS/BFS frontier entry. The chain of parent pointers is both the
// action path from the start state and, for DFS, the path-local visited set.
// Siblings share their common prefix, so pushing a node costs O(1) memory.
type node[S comparable, A any] struct {
	state  S
	action A // action that reached state; zero for the root
	parent *node[S, A]
	depth  int
}

// root returns the entry for the start state: empty path, depth 0.
func root[S comparable, A any](start S) *node[S, A] {
	return &node[S, A]{state: start}
}

// child extends n by one successor.
func (n *node[S, A]) child(sc Successor[S, A]) *node[S, A] {
	return &node[S, A]{state: sc.State, action: sc.Action, parent: n, depth: n.depth + 1}
}

// onPath reports whether s appears on the path from the start state to n.
// Time O(depth).
func (n *node[S, A]) onPath(s S) bool {
	for c := n; c != nil; c = c.parent {
		if c.state == s {
			return true
		}
	}

	return false
}

// actions materialises the action path ending at n, in execution order.
func (n *node[S, A]) actions() []A {
	out := make([]A, n.depth)
	for c := n; c.parent != nil; c = c.parent {
		out[c.depth-1] = c.action
	}

	return out
}
