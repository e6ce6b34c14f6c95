package core

// Strand identifies the orientation a Path traverses a Node on.
type Strand byte

const (
	// Forward is the reference orientation.
	Forward Strand = '+'
	// Reverse is the Watson-Crick complement orientation, read backwards.
	Reverse Strand = '-'
)

// NothingName is the reserved name of the NOTHING sentinel node: it
// represents an unknown or untracked continuation (chromosome ends,
// or the far side of a node pruned by the simplifier).
const NothingName = "-1"

// Node is the fundamental content carrier for sequence. It belongs to
// exactly one GraphGenome and is addressed within it by Name.
//
// Specimens, Upstream, and Downstream are the working tables populated and
// mutated during graph construction (graphbuild) and summarization
// (simplify); they are meaningful only "at the active zoom level" a caller
// is currently operating on — this package does not itself multiplex them
// per zoom level, callers build one Graph's worth of live tables per zoom
// step (see the zoom package).
type Node struct {
	// Name uniquely identifies this Node within its Graph.
	Name string

	// Seq is the node's sequence, or "" for a filler node.
	Seq string

	// SummarizedBy optionally points at the node that represents this one
	// at the next zoom level up. Nil if not yet summarized.
	SummarizedBy *Node

	// Specimens is the set of individual indices currently passing
	// through this node.
	Specimens SpecimenSet

	// Upstream maps a predecessor node to the number of specimens that
	// enter this node from it. The NOTHING sentinel is a valid key.
	Upstream map[*Node]int

	// Downstream is the symmetric map of successors.
	Downstream map[*Node]int

	graph *GraphGenome
}

// IsNothing reports whether n is the NOTHING sentinel.
func (n *Node) IsNothing() bool {
	return n != nil && n.Name == NothingName
}

// Equal reports whether two nodes are the same node: by spec, node identity
// is defined by Name equality, not struct equality.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Name == other.Name
}

// Graph returns the GraphGenome this node belongs to.
func (n *Node) Graph() *GraphGenome { return n.graph }

// NodeTraversal is an ordered link from a Path to a Node it visits, with a
// strand. Order is assigned monotonically by AppendTraversal and is dense
// within one path, starting at 0.
type NodeTraversal struct {
	Node   *Node
	Strand Strand
	Order  int

	path *Path
}

// Equal reports whether two traversals visit the same node on the same
// strand (order is not part of traversal equality, per spec).
func (t *NodeTraversal) Equal(other *NodeTraversal) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Node.Equal(other.Node) && t.Strand == other.Strand
}

// Render returns the spelled-out sequence for this traversal: the node's
// sequence as-is on Forward strand, or its reverse complement on Reverse.
func (t *NodeTraversal) Render() string {
	if t.Strand == Forward {
		return t.Node.Seq
	}
	return reverseComplement(t.Node.Seq)
}

// Path is one individual's ordered, strand-aware traversal of nodes.
// Paths are grouped per zoom level (see ZoomLevel) and may be shared,
// unchanged, across zoom levels.
type Path struct {
	// Accession uniquely identifies this Path within a (Graph, zoom).
	Accession string

	// SummarizedBy optionally points at the parent path this one
	// summarizes, set when a zoom step produces a modified path.
	SummarizedBy *Path

	Traversals []*NodeTraversal

	graph *GraphGenome
	zoom  int
}

// Equal reports whether two paths are the same path, by accession.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Accession == other.Accession
}

// Zoom returns the zoom level this path belongs to.
func (p *Path) Zoom() int { return p.zoom }

// Graph returns the GraphGenome this path belongs to.
func (p *Path) Graph() *GraphGenome { return p.graph }

// ZoomLevel holds one set of paths, one per accession, for a (graph, zoom)
// pair. Nodes may be shared freely across zoom levels.
type ZoomLevel struct {
	Zoom  int
	Paths map[string]*Path

	graph *GraphGenome
}

// GraphGenome is a named container that owns nodes and zoom levels.
type GraphGenome struct {
	Name string

	// Nothing is the per-graph NOTHING sentinel. It is never present in
	// the node table and must never be mutated: no specimens, no
	// upstream/downstream entries.
	Nothing *Node

	nodes      map[string]*Node
	zoomLevels map[int]*ZoomLevel
}
