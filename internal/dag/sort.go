package dag

// Sort returns a deterministic dependency-respecting order of all
// components, or a CycleError when none exists.
func (g *Graph) Sort() (Order, error) {
	remaining := make(map[string]int, len(g.names))
	queue := make([]*node, 0, len(g.names))

	for _, id := range g.names {
		n := g.nodes[id]
		remaining[id] = len(n.deps)
		if remaining[id] == 0 {
			queue = append(queue, n)
		}
	}

	order := make(Order, 0, len(g.names))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n.id)

		for _, dependent := range n.dependents {
			remaining[dependent.id]--
			if remaining[dependent.id] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(order) < len(g.names) {
		return nil, g.cycleError(remaining)
	}
	return order, nil
}

// cycleError collects unresolved nodes and extracts one concrete cycle. Every
// unresolved node has at least one unresolved dependency, so following those
// edges from any of them must revisit a node.
func (g *Graph) cycleError(remaining map[string]int) *CycleError {
	var unresolved []string
	for _, id := range g.names {
		if remaining[id] > 0 {
			unresolved = append(unresolved, id)
		}
	}

	var path []string
	seen := make(map[string]int)
	current := g.nodes[unresolved[0]]
	for {
		if at, ok := seen[current.id]; ok {
			path = append(path[at:], current.id)
			break
		}
		seen[current.id] = len(path)
		path = append(path, current.id)

		var next *node
		for _, dep := range current.deps {
			if remaining[dep.id] > 0 {
				next = dep
				break
			}
		}
		if next == nil {
			path = nil
			break
		}
		current = next
	}

	return &CycleError{Components: unresolved, Path: path}
}
