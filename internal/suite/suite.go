// Package suite stores a hierarchical test suite in a compact form. Test
// names like "dEQP-VK.api.smoke.triangle" are split on a separator into
// group components; each component is interned once and tests reference
// their group chain by index. The package also provides weighted random
// sampling over a suite.
package suite

import (
	"strings"

	"github.com/deqp-tools/dsim/internal/errors"
)

// TestRef identifies a test within its Suite.
type TestRef struct {
	id int32
}

type test struct {
	parent int32 // group index
	name   nameIdx
}

type group struct {
	children []nodeRef
	parent   int32 // group index, -1 for the root
	name     nameIdx
}

type nodeKind int8

const (
	nodeTest nodeKind = iota
	nodeGroup
)

type nodeRef struct {
	id   int32
	kind nodeKind
}

// Suite is a set of hierarchically named tests. The zero value is not
// usable, construct with New.
type Suite struct {
	sep    string
	tests  []test
	groups []group
	names  *namePool
}

// New creates an empty suite. sep is the path separator nesting tests
// within groups, usually ".".
func New(sep string) *Suite {
	return &Suite{
		sep:    sep,
		groups: []group{{parent: -1}},
		names:  newNamePool(),
	}
}

// Len returns the number of tests in the suite.
func (s *Suite) Len() int {
	return len(s.tests)
}

// Tests returns a reference to every test in insertion order.
func (s *Suite) Tests() []TestRef {
	refs := make([]TestRef, len(s.tests))
	for i := range refs {
		refs[i] = TestRef{id: int32(i)}
	}
	return refs
}

// Put inserts a fully qualified test name and returns its reference.
// Inserting the same name twice returns the same reference. A name that
// collides with an existing group (or turns an existing test into a group)
// fails with errors.ErrSuiteConflict.
func (s *Suite) Put(name string) (TestRef, error) {
	groupIdx := int32(0)
	rest := name
	for {
		component, remainder, found := strings.Cut(rest, s.sep)
		if !found {
			break
		}
		if component == "" {
			return TestRef{}, errors.Wrapf(errors.ErrSuiteConflict,
				"%q: empty group name", name)
		}
		idx := s.names.put(component)

		childIdx, isTest := s.findChild(groupIdx, idx)
		if isTest {
			return TestRef{}, errors.Wrapf(errors.ErrSuiteConflict,
				"%q: conflict with an existing test", name)
		}
		if childIdx < 0 {
			childIdx = int32(len(s.groups))
			s.groups[groupIdx].children = append(s.groups[groupIdx].children,
				nodeRef{id: childIdx, kind: nodeGroup})
			s.groups = append(s.groups, group{parent: groupIdx, name: idx})
		}
		groupIdx = childIdx
		rest = remainder
	}

	idx := s.names.put(rest)
	for _, child := range s.groups[groupIdx].children {
		switch child.kind {
		case nodeTest:
			if s.tests[child.id].name == idx {
				return TestRef{id: child.id}, nil
			}
		case nodeGroup:
			if s.groups[child.id].name == idx {
				return TestRef{}, errors.Wrapf(errors.ErrSuiteConflict,
					"%q: conflict with an existing group", name)
			}
		}
	}

	testIdx := int32(len(s.tests))
	s.groups[groupIdx].children = append(s.groups[groupIdx].children,
		nodeRef{id: testIdx, kind: nodeTest})
	s.tests = append(s.tests, test{parent: groupIdx, name: idx})
	return TestRef{id: testIdx}, nil
}

// findChild looks up a direct child group by name. It returns (-1, false)
// when no group of that name exists, and (_, true) when the name belongs
// to a test instead.
func (s *Suite) findChild(groupIdx int32, name nameIdx) (int32, bool) {
	for _, child := range s.groups[groupIdx].children {
		switch child.kind {
		case nodeTest:
			if s.tests[child.id].name == name {
				return -1, true
			}
		case nodeGroup:
			if s.groups[child.id].name == name {
				return child.id, false
			}
		}
	}
	return -1, false
}

// Name returns the fully qualified name of a test.
func (s *Suite) Name(ref TestRef) string {
	components := s.nameIndices(ref)
	parts := make([]string, len(components))
	for i, idx := range components {
		// nameIndices yields leaf first, assemble outside-in.
		parts[len(parts)-1-i] = s.names.get(idx)
	}
	return strings.Join(parts, s.sep)
}

// nameIndices returns the interned name components of a test, leaf first,
// root group last. The root group's empty name is excluded.
func (s *Suite) nameIndices(ref TestRef) []nameIdx {
	t := s.tests[ref.id]
	indices := []nameIdx{t.name}
	for g := t.parent; g > 0; g = s.groups[g].parent {
		indices = append(indices, s.groups[g].name)
	}
	return indices
}
