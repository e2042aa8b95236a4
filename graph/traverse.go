package graph

import "github.com/syssam/reach"

// Reachable reports whether start was built — directly or through any chain
// of composition and substitution edges — from an id in targets.
//
// The walk is backward: it starts from the predecessors of start and tests
// target membership as ids are popped, so start itself is never tested. An
// empty target set is always false, as is a start with no predecessors.
//
// Every id looked up must be a node of g, start included; a miss returns a
// reach.NodeNotFoundError instead of false (see the package comment).
func Reachable(g *Graph, start reach.ID, targets reach.IDSet) (bool, error) {
	if len(targets) == 0 {
		return false, nil
	}
	seeds, err := g.Predecessors(start)
	if err != nil {
		return false, err
	}
	visited := make(reach.IDSet, len(seeds))
	work := make([]reach.ID, 0, len(seeds))
	for _, id := range seeds {
		if !visited.Contains(id) {
			visited[id] = struct{}{}
			work = append(work, id)
		}
	}
	for len(work) > 0 {
		id := work[len(work)-1]
		work = work[:len(work)-1]
		if targets.Contains(id) {
			return true, nil
		}
		preds, err := g.Predecessors(id)
		if err != nil {
			return false, err
		}
		for _, p := range preds {
			if !visited.Contains(p) {
				visited[p] = struct{}{}
				work = append(work, p)
			}
		}
	}
	return false, nil
}
