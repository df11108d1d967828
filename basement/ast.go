package basement

// NodeType identifies the type of a node in the AST
type NodeType int

const (
	NodeRoot NodeType = iota
	NodeText
	NodeStyle
	NodeHole      // Represents a %v placeholder
	NodeBlock     // Generic block element (paragraph)
	NodeHeader    // Header element (#)
	NodeList      // List container
	NodeListItem  // List item
	NodeCodeBlock // Code block (```)
	NodeHR        // Horizontal Rule (---)
	NodeQuote     // Blockquote (>)
)

// Node represents a node in the AST
type Node struct {
	Type     NodeType
	Content  string      // For text nodes or code blocks
	Lang     string      // For code blocks (language identifier)
	Style    Style       // For styled nodes
	Children []*Node     // For nested nodes
	HoleID   int         // Index of the argument for this hole (0-based)
}

// NewNode creates a new node
func NewNode(typ NodeType) *Node {
	return &Node{
		Type:     typ,
		Children: make([]*Node, 0),
	}
}

// AddChild adds a child node
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// AssignHoleIDs walks the tree in document order, numbering each NodeHole
// sequentially starting at 0 so a renderer can match it against a
// positional argument list. ParseAST itself always leaves HoleID at -1,
// since a bare %v token carries no positional information on its own;
// a caller that wants to fill holes calls AssignHoleIDs once per parse.
func (n *Node) AssignHoleIDs() {
	next := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Type == NodeHole {
			n.HoleID = next
			next++
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
}
