package widget

// SizeKind selects how a Flex child's main-axis extent is computed.
type SizeKind int

const (
	// SizeAuto sizes the child by its own content, bounded by available
	// space.
	SizeAuto SizeKind = iota
	// SizeFixed gives the child exactly Value cells on the main axis.
	SizeFixed
	// SizeFlex distributes remaining space proportionally to Value among
	// every flex sibling (§4.5: two-pass fixed/auto/flex sizing).
	SizeFlex
)

// Size is a main-axis sizing constraint for a Flex child.
type Size struct {
	Kind  SizeKind
	Value int // cells for Fixed, weight for Flex
}

func FixedSize(n int) Size { return Size{Kind: SizeFixed, Value: n} }
func FlexSize(weight int) Size {
	if weight < 1 {
		weight = 1
	}
	return Size{Kind: SizeFlex, Value: weight}
}
func AutoSize() Size { return Size{Kind: SizeAuto} }
