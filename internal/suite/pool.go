package suite

// nameIdx identifies an interned name component. Index 0 is reserved for
// the empty name so the zero value means "no name".
type nameIdx int32

// namePool interns name components. Test suites like dEQP-VK repeat the
// same few thousand components across millions of tests, so storing each
// component once keeps the suite small and makes name comparison an
// integer compare.
type namePool struct {
	strings []string
	index   map[string]nameIdx
}

func newNamePool() *namePool {
	return &namePool{
		strings: []string{""},
		index:   make(map[string]nameIdx),
	}
}

// put interns a name component and returns its index. The empty string
// always maps to index 0.
func (p *namePool) put(s string) nameIdx {
	if s == "" {
		return 0
	}
	if idx, ok := p.index[s]; ok {
		return idx
	}
	idx := nameIdx(len(p.strings))
	p.strings = append(p.strings, s)
	p.index[s] = idx
	return idx
}

// get returns the name component for an index produced by put.
func (p *namePool) get(idx nameIdx) string {
	return p.strings[idx]
}

// count returns the number of distinct non-empty components interned.
func (p *namePool) count() int {
	return len(p.strings) - 1
}
