// Package dispatch maps a compact numeric algorithm identifier to a
// concrete graph-algorithm implementation through a small, immutable
// registry, and exposes the uniform entry point Run(g, id) that both the
// single-shot front-ends and ad-hoc callers use. The pipeline engine does
// not go through this package (§4.4: it calls the algorithm library
// directly, because its semantic is "run every algorithm on every job"),
// so it uses neither the Strategy records nor the id scheme.
//
// The lookup is deliberately two-step, the way
// mundrapranay/silhouette-db's algorithms.GetAlgorithm resolves a
// (type, name) pair through per-type sub-registries: an id first resolves
// to a Tag, and a Tag then resolves to a Strategy. This keeps "is this id
// known" and "what does this tag do" as separately testable questions.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/fadinuj/graphpipe/algorithms"
	"github.com/fadinuj/graphpipe/graph"
	"github.com/fadinuj/graphpipe/metrics"
)

// Tag identifies an algorithm's type, independent of its numeric id.
type Tag int

// The five algorithm types (§4.3), in ascending numeric-id order.
const (
	TagInvalid Tag = iota
	TagEuler
	TagMaxFlow
	TagMST
	TagMaxClique
	TagCliqueCount
)

// Strategy is one registry entry: a record of (execute, name, description, id).
type Strategy struct {
	ID          int
	Name        string
	Description string
	Execute     func(g *graph.Graph) string
}

// ErrUnknownID is returned by Run (in addition to the in-band
// "Factory Error:" string) when id does not name a registered algorithm.
var ErrUnknownID = errors.New("dispatch: unknown algorithm id")

// registry holds exactly five strategy records, indexed by Tag. It is
// built once below and never mutated afterward (§5: "effectively
// immutable after initialization; readable without synchronization").
var registry = map[Tag]Strategy{
	TagEuler: {
		ID:          1,
		Name:        "euler",
		Description: "Eulerian circuit via Hierholzer's algorithm",
		Execute: func(g *graph.Graph) string {
			return algorithms.FindEulerCircuit(g).String()
		},
	},
	TagMaxFlow: {
		ID:          2,
		Name:        "max_flow",
		Description: "Maximum flow via Edmonds-Karp (default source=0, sink=n-1)",
		Execute: func(g *graph.Graph) string {
			out, err := algorithms.MaxFlowDefault(g)
			if err != nil {
				return fmt.Sprintf("MaxFlow error: %v", err)
			}
			return out.String()
		},
	},
	TagMST: {
		ID:          3,
		Name:        "mst",
		Description: "Minimum spanning tree via Prim's algorithm",
		Execute: func(g *graph.Graph) string {
			out, _ := algorithms.FindMST(g)
			return out.String()
		},
	},
	TagMaxClique: {
		ID:          4,
		Name:        "max_clique",
		Description: "Maximum clique via backtracking search",
		Execute: func(g *graph.Graph) string {
			return algorithms.MaxClique(g).String()
		},
	},
	TagCliqueCount: {
		ID:          5,
		Name:        "clique_count",
		Description: "Total clique count by size via enumerative search",
		Execute: func(g *graph.Graph) string {
			return algorithms.CountCliques(g).String()
		},
	},
}

// idToTag is the identifier table of §4.3, built from registry so the
// two are never allowed to drift out of sync.
var idToTag = func() map[int]Tag {
	m := make(map[int]Tag, len(registry))
	for tag, s := range registry {
		m[s.ID] = tag
	}
	return m
}()

// TypeOf maps a numeric algorithm id to its Tag. ok is false for any id
// not in {1..5}.
func TypeOf(id int) (tag Tag, ok bool) {
	tag, ok = idToTag[id]
	return tag, ok
}

// StrategyFor returns the registered Strategy for tag, or (zero, false)
// if tag is TagInvalid or otherwise unregistered.
func StrategyFor(tag Tag) (Strategy, bool) {
	s, ok := registry[tag]
	return s, ok
}

// factoryErrorPrefix begins every in-band error string Run returns. Run
// itself caps no output; only the MST summary is length-capped (see
// MSTOutcome.String).
const factoryErrorPrefix = "Factory Error: "

// Run looks up the strategy for id, executes it, and returns its
// formatted one-line (for MST, possibly very long) summary. Unknown
// ids produce a string beginning with "Factory Error: " together with
// ErrUnknownID, so callers can distinguish a real result from an error
// either by inspecting the leading token or by checking the error
// (§4.3's "at the caller's discretion").
func Run(g *graph.Graph, id int) (string, error) {
	tag, ok := TypeOf(id)
	if !ok {
		return fmt.Sprintf("%sunknown algorithm id %d", factoryErrorPrefix, id), ErrUnknownID
	}
	strategy, ok := StrategyFor(tag)
	if !ok {
		return fmt.Sprintf("%sno strategy registered for id %d", factoryErrorPrefix, id), ErrUnknownID
	}
	metrics.AlgorithmInvocations.WithLabelValues(strategy.Name).Inc()
	return strategy.Execute(g), nil
}
