package succinct

// TreeSink is a simple in-memory StructureSink used by tests and the
// bench CLI to record each serialized member's name, type, and byte
// size, the same diagnostic role sdsl's structure_tree plays (spec §6).
type TreeSink struct {
	Name     string
	Kind     string
	Bytes    int
	Children []*TreeSink
}

func NewTreeSink(name, kind string) *TreeSink {
	return &TreeSink{Name: name, Kind: kind}
}

func (t *TreeSink) Child(name, kind string) StructureSink {
	c := NewTreeSink(name, kind)
	t.Children = append(t.Children, c)
	return c
}

func (t *TreeSink) AddSize(n int) { t.Bytes += n }
