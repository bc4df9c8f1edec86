package ecg

// Graph is the immutable base graph ContractionGraph is built from: dense
// node ids [0, numNodes) and dense edge ids [0, len(edges)), each edge
// storing its endpoints with u < v.
type Graph struct {
	numNodes int
	u, v     []int
}

// NewGraph validates edges and builds a Graph over numNodes nodes.
// Endpoints are normalized so u < v; an edge with equal endpoints is
// rejected, as is any endpoint outside [0, numNodes).
func NewGraph(numNodes int, edges [][2]int) (*Graph, error) {
	g := &Graph{
		numNodes: numNodes,
		u:        make([]int, len(edges)),
		v:        make([]int, len(edges)),
	}

	for i, e := range edges {
		a, b := e[0], e[1]
		if a < 0 || a >= numNodes || b < 0 || b >= numNodes {
			return nil, ErrBadEndpoint
		}
		if a == b {
			return nil, ErrDegenerateEdge
		}
		if a > b {
			a, b = b, a
		}
		g.u[i], g.v[i] = a, b
	}

	return g, nil
}

// NumberOfNodes returns the base node count.
func (g *Graph) NumberOfNodes() int { return g.numNodes }

// NumberOfEdges returns the base edge count.
func (g *Graph) NumberOfEdges() int { return len(g.u) }

// UV returns the base (unnormalized-by-contraction) endpoints of edge.
func (g *Graph) UV(edge int) (u, v int) { return g.u[edge], g.v[edge] }
