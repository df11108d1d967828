package basement

import "testing"

func TestParseASTHeaderLevelOneIsReversed(t *testing.T) {
	root := ParseAST("# Hello **World**")
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 block, got %d", len(root.Children))
	}

	block := root.Children[0]
	if block.Type != NodeHeader || !block.Style.Reverse {
		t.Fatalf("expected a reversed header node, got %+v", block)
	}

	if len(block.Children) != 2 {
		t.Fatalf("expected text + bold-style children, got %d", len(block.Children))
	}
	if block.Children[0].Type != NodeText || block.Children[0].Content != "Hello " {
		t.Errorf("node 1 mismatch: %+v", block.Children[0])
	}
	if block.Children[1].Type != NodeStyle || !block.Children[1].Style.Bold {
		t.Errorf("node 2 mismatch: %+v", block.Children[1])
	}
}

func TestParseASTHoleStartsUnassigned(t *testing.T) {
	root := ParseAST("count: %v")
	block := root.Children[0]
	hole := block.Children[len(block.Children)-1]
	if hole.Type != NodeHole || hole.HoleID != -1 {
		t.Fatalf("expected an unassigned hole, got %+v", hole)
	}
}

func TestAssignHoleIDsNumbersInDocumentOrder(t *testing.T) {
	root := ParseAST("%v and %v\n\n%v")
	root.AssignHoleIDs()

	var ids []int
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Type == NodeHole {
			ids = append(ids, n.HoleID)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	if len(ids) != 3 {
		t.Fatalf("expected 3 holes, got %d", len(ids))
	}
	for i, id := range ids {
		if id != i {
			t.Errorf("hole %d got id %d, want %d", i, id, i)
		}
	}
}

func TestStyleMergeOverridesColorAndOrsBooleans(t *testing.T) {
	base := Style{Italic: true, Color: GetColorCode("red")}
	over := Style{Bold: true, Color: GetColorCode("blue")}

	merged := base.Merge(over)
	if !merged.Italic || !merged.Bold {
		t.Errorf("expected both Italic and Bold set, got %+v", merged)
	}
	if merged.Color != GetColorCode("blue") {
		t.Errorf("expected the nested Color to win, got %q", merged.Color)
	}
}

func TestStyleCellResolvesColorAndReverse(t *testing.T) {
	st := Style{Color: GetColorCode("green"), Reverse: true}
	cell := st.Cell('x')
	if cell.Content != "x" {
		t.Fatalf("expected content 'x', got %q", cell.Content)
	}
	// Reverse swaps fg/bg, so the resolved green lands on Bg, not Fg.
	if cell.Fg == cell.Bg {
		t.Fatalf("expected Reverse to swap fg/bg, got equal colors %+v", cell)
	}
}
