package caselist

import (
	"testing"

	"github.com/deqp-tools/dsim/internal/errors"
	"github.com/deqp-tools/dsim/internal/testutil"
)

func TestLoadSuite(t *testing.T) {
	path := testutil.TempFile(t,
		"Writing test cases to stdout\n"+
			"TEST: dEQP-VK.api.smoke.triangle\n"+
			"TEST: dEQP-VK.api.smoke.asm-triangle\n"+
			"\n"+
			"TEST: dEQP-VK.glsl.linkage.varying.struct.float\n"+
			"not a test line\n")

	s, err := LoadSuite(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, 3, s.Len())

	names := make([]string, 0, s.Len())
	for _, ref := range s.Tests() {
		names = append(names, s.Name(ref))
	}
	testutil.AssertEqual(t, []string{
		"dEQP-VK.api.smoke.triangle",
		"dEQP-VK.api.smoke.asm-triangle",
		"dEQP-VK.glsl.linkage.varying.struct.float",
	}, names)
}

func TestLoadSuiteDuplicatesCollapse(t *testing.T) {
	path := testutil.TempFile(t,
		"TEST: a.b\n"+
			"TEST: a.b\n"+
			"TEST: a.c\n")

	s, err := LoadSuite(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, 2, s.Len())
}

func TestLoadSuiteConflict(t *testing.T) {
	path := testutil.TempFile(t,
		"TEST: a.b\n"+
			"TEST: a.b.c\n")

	_, err := LoadSuite(path)
	if !errors.Is(err, errors.ErrSuiteConflict) {
		t.Errorf("expected ErrSuiteConflict, got %v", err)
	}
	testutil.AssertError(t, err, path)
}

func TestLoadSuiteMissingFile(t *testing.T) {
	_, err := LoadSuite("/nonexistent/caselist.txt")
	if !errors.Is(err, errors.ErrFileAccess) {
		t.Errorf("expected ErrFileAccess, got %v", err)
	}
}
