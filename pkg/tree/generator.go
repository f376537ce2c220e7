package tree

// Generator names the code generation strategy attached to a span or block.
// The tree only compares and prints generators.
type Generator interface {
	Equal(other Generator) bool
	String() string
}

// NoGenerator is the default generator. All NoGenerator values are equal.
type NoGenerator struct{}

// Equal implements Generator.
func (NoGenerator) Equal(other Generator) bool {
	_, ok := other.(NoGenerator)
	return ok
}

func (NoGenerator) String() string {
	return "None"
}

// Named returns a generator identified only by name.
func Named(name string) Generator {
	return namedGenerator(name)
}

type namedGenerator string

func (g namedGenerator) Equal(other Generator) bool {
	o, ok := other.(namedGenerator)
	return ok && o == g
}

func (g namedGenerator) String() string {
	return string(g)
}

func generatorOrDefault(g Generator) Generator {
	if g == nil {
		return NoGenerator{}
	}
	return g
}
