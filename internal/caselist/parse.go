package caselist

import (
	"github.com/deqp-tools/dsim/internal/errors"
	"github.com/deqp-tools/dsim/internal/protocol"
	"github.com/deqp-tools/dsim/internal/suite"
)

// LoadSuite reads a caselist export at path into a Suite. Only lines
// carrying the caselist label prefix contribute test cases; everything
// else (comments, blank lines, tool chatter) is skipped, matching how
// deqp-vk caselist exports are consumed.
func LoadSuite(path string) (*suite.Suite, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := f.ReadLines()
	if err != nil {
		return nil, err
	}

	s := suite.New(protocol.NameSeparator)
	for _, l := range lines {
		name, ok := parseLabel(l)
		if !ok {
			continue
		}
		if _, err := s.Put(name); err != nil {
			return nil, errors.Wrapf(err, "caselist %s", f.Path())
		}
	}
	return s, nil
}

func parseLabel(line string) (string, bool) {
	name, ok := protocol.ParseCaseHeader(line)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
