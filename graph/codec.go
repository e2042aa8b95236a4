package graph

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/reach"
)

// snapshot is the wire form of a graph. Nodes are sorted so that encoding
// the same graph twice yields comparable payloads.
type snapshot struct {
	Nodes []reach.ID              `msgpack:"nodes"`
	Preds map[reach.ID][]reach.ID `msgpack:"preds"`
}

// MarshalBinary encodes the graph as a msgpack snapshot.
func (g *Graph) MarshalBinary() ([]byte, error) {
	s := snapshot{
		Nodes: g.Nodes(),
		Preds: make(map[reach.ID][]reach.ID, len(g.preds)),
	}
	for id, preds := range g.preds {
		if len(preds) > 0 {
			s.Preds[id] = preds
		}
	}
	return msgpack.Marshal(s)
}

// UnmarshalBinary decodes a msgpack snapshot, replacing the receiver's
// contents.
func (g *Graph) UnmarshalBinary(data []byte) error {
	var s snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("graph: decoding snapshot: %w", err)
	}
	g.nodes = make(map[reach.ID]struct{}, len(s.Nodes))
	g.preds = make(map[reach.ID][]reach.ID, len(s.Preds))
	for _, id := range s.Nodes {
		g.nodes[id] = struct{}{}
	}
	for id, preds := range s.Preds {
		for _, p := range preds {
			g.AddEdge(p, id)
		}
	}
	return nil
}
