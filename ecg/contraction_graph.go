package ecg

import "github.com/katviz/seggraph/unionfind"

// ContractionGraph is the mutable live view over a Graph: a union-find of
// node representatives, an alive/dead flag per base edge id, and a
// per-representative adjacency map from neighbor representative to the
// (unique, alive) edge id connecting them.
//
// Grounded on core/adjacency_list.go's adjacencyList[from][to] shape,
// narrowed from a general mutable multigraph (string ids, arbitrary
// add/remove) to the append-never, contract-only state machine ECG needs:
// adjacency here is keyed by dense int representative ids and every entry
// is guaranteed unique per neighbor by construction.
type ContractionGraph struct {
	g      *Graph
	uf     *unionfind.UnionFind
	policy Policy

	edgeAlive []bool
	adj       []map[int]int // adj[rep][neighborRep] = edgeID, nil once rep is absorbed

	numAliveNodes int
	numAliveEdges int
}

// NewContractionGraph builds the initial live view of g: every node is its
// own representative, every base edge is alive, and adjacency mirrors g's
// edge list one-to-one (g itself is assumed simple: NewGraph rejects
// self-loops, but does not check for parallel edges).
func NewContractionGraph(g *Graph, p Policy) *ContractionGraph {
	c := &ContractionGraph{
		g:             g,
		uf:            unionfind.New(g.NumberOfNodes()),
		policy:        p,
		edgeAlive:     make([]bool, g.NumberOfEdges()),
		adj:           make([]map[int]int, g.NumberOfNodes()),
		numAliveNodes: g.NumberOfNodes(),
		numAliveEdges: g.NumberOfEdges(),
	}
	for n := range c.adj {
		c.adj[n] = make(map[int]int)
	}
	for e := 0; e < g.NumberOfEdges(); e++ {
		c.edgeAlive[e] = true
		u, v := g.UV(e)
		c.adj[u][v] = e
		c.adj[v][u] = e
	}

	return c
}

// NumberOfNodes returns the current count of live representatives.
func (c *ContractionGraph) NumberOfNodes() int { return c.numAliveNodes }

// NumberOfBaseNodes returns the base graph's original node count,
// regardless of how many contractions have since run.
func (c *ContractionGraph) NumberOfBaseNodes() int { return c.g.NumberOfNodes() }

// NumberOfEdges returns the current count of alive edges.
func (c *ContractionGraph) NumberOfEdges() int { return c.numAliveEdges }

// Find returns the current representative of node.
func (c *ContractionGraph) Find(node int) int { return c.uf.Find(node) }

// UV returns the current representatives of edge's endpoints. Only
// meaningful while edge is alive.
func (c *ContractionGraph) UV(edge int) (u, v int) {
	bu, bv := c.g.UV(edge)

	return c.uf.Find(bu), c.uf.Find(bv)
}

// Alive reports whether edge is still alive (neither contracted directly
// nor retired as the loser of a parallel-edge collapse).
func (c *ContractionGraph) Alive(edge int) bool { return c.edgeAlive[edge] }

// ContractEdge runs the seven-step contraction sequence: resolve and
// validate endpoints, notify the policy, union the representatives, walk
// the absorbed node's adjacency relinking or collapsing parallel edges,
// retire the contracted edge, and notify the policy the step is complete.
// All four policy callbacks for this call complete, in order, before
// ContractEdge returns; none interleave with a later ContractEdge call.
func (c *ContractionGraph) ContractEdge(edge int) error {
	bu, bv := c.g.UV(edge)
	ru, rv := c.uf.Find(bu), c.uf.Find(bv)
	if ru == rv {
		return ErrSelfLoopContraction
	}

	c.policy.ContractEdge(edge)

	alive := c.uf.Link(ru, rv)
	dead := ru
	if alive == ru {
		dead = rv
	}

	c.policy.MergeNodes(alive, dead)

	for n, e2 := range c.adj[dead] {
		if n == alive || n == dead {
			continue
		}

		final := e2
		if existing, ok := c.adj[alive][n]; ok {
			aliveEdge, deadEdge := existing, e2
			if e2 < existing {
				aliveEdge, deadEdge = e2, existing
			}
			c.policy.MergeEdges(aliveEdge, deadEdge)
			c.edgeAlive[deadEdge] = false
			c.numAliveEdges--
			final = aliveEdge
		}

		c.adj[alive][n] = final
		delete(c.adj[n], alive)
		delete(c.adj[n], dead)
		c.adj[n][alive] = final
	}

	delete(c.adj[alive], alive)
	delete(c.adj[alive], dead)
	c.adj[dead] = nil

	c.numAliveNodes--
	c.edgeAlive[edge] = false
	c.numAliveEdges--

	c.policy.ContractEdgeDone(edge)

	return nil
}
