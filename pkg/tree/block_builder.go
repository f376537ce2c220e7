package tree

import "slices"

// BlockBuilder collects the children of a block.
type BlockBuilder struct {
	Type      BlockType
	Generator Generator

	children []Node
}

// NewBlockBuilder creates an empty builder for typ.
func NewBlockBuilder(typ BlockType) *BlockBuilder {
	return &BlockBuilder{Type: typ, Generator: NoGenerator{}}
}

// NewBlockBuilderFrom creates a builder holding block's type, generator and
// children.
func NewBlockBuilderFrom(block *Block) *BlockBuilder {
	return &BlockBuilder{
		Type:      block.typ,
		Generator: block.generator,
		children:  slices.Clone(block.children),
	}
}

// Add appends a child.
func (b *BlockBuilder) Add(child Node) {
	b.children = append(b.children, child)
}

// Children returns the collected children.
func (b *BlockBuilder) Children() []Node {
	return slices.Clone(b.children)
}

// SetChildren replaces the collected children.
func (b *BlockBuilder) SetChildren(children []Node) {
	b.children = slices.Clone(children)
}

// Build creates a block that owns the collected children and becomes
// their parent.
func (b *BlockBuilder) Build() *Block {
	block := &Block{
		typ:       b.Type,
		children:  slices.Clone(b.children),
		generator: generatorOrDefault(b.Generator),
	}
	for _, child := range block.children {
		child.setParent(block)
	}
	return block
}

// Reset clears the children and generator.
func (b *BlockBuilder) Reset() {
	b.children = nil
	b.Generator = NoGenerator{}
}
