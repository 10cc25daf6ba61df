package caselist

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/DataDog/zstd"

	"github.com/deqp-tools/dsim/internal/errors"
	"github.com/deqp-tools/dsim/internal/omode"
	"github.com/deqp-tools/dsim/internal/testutil"
)

func TestSimulateCheckMode(t *testing.T) {
	path := testutil.TempFile(t, "3\n1\n2\n")

	var out bytes.Buffer
	testutil.AssertNoError(t, Simulate(path, omode.CheckMode, &out))

	want := "Test case '1'..\n" +
		"  Pass (Result image matches reference)\n" +
		"Test case '2'..\n" +
		"  Pass (Result image matches reference)\n" +
		"Test case '3'..\n" +
		"  Pass (Result image matches reference)\n" +
		"DONE!\n"
	testutil.AssertEqual(t, want, out.String())
}

func TestSimulateLabelMode(t *testing.T) {
	path := testutil.TempFile(t, "3\n1\n2\n")

	var out bytes.Buffer
	testutil.AssertNoError(t, Simulate(path, omode.LabelMode, &out))

	testutil.AssertEqual(t, "TEST: 1\nTEST: 2\nTEST: 3\n", out.String())
}

func TestSimulateEmptyInput(t *testing.T) {
	path := testutil.TempFile(t, "")

	t.Run("check mode emits only the done marker", func(t *testing.T) {
		var out bytes.Buffer
		testutil.AssertNoError(t, Simulate(path, omode.CheckMode, &out))
		testutil.AssertEqual(t, "DONE!\n", out.String())
	})

	t.Run("label mode emits nothing", func(t *testing.T) {
		var out bytes.Buffer
		testutil.AssertNoError(t, Simulate(path, omode.LabelMode, &out))
		testutil.AssertEqual(t, "", out.String())
	})
}

func TestSimulateMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := Simulate("/nonexistent/caselist.txt", omode.CheckMode, &out)
	if !errors.Is(err, errors.ErrFileAccess) {
		t.Errorf("expected ErrFileAccess, got %v", err)
	}
	testutil.AssertEqual(t, "", out.String())
}

func TestSimulateDirectory(t *testing.T) {
	var out bytes.Buffer
	err := Simulate(t.TempDir(), omode.CheckMode, &out)
	if !errors.Is(err, errors.ErrFileAccess) {
		t.Errorf("expected ErrFileAccess, got %v", err)
	}
	testutil.AssertEqual(t, "", out.String())
}

func TestSimulateIdempotent(t *testing.T) {
	path := testutil.TempFile(t, "2 second\n10 tenth\nno-number\n2 again\n")

	var first, second bytes.Buffer
	testutil.AssertNoError(t, Simulate(path, omode.CheckMode, &first))
	testutil.AssertNoError(t, Simulate(path, omode.CheckMode, &second))
	testutil.AssertEqual(t, first.String(), second.String())
}

func TestSimulateCompressedCaselist(t *testing.T) {
	compressed, err := zstd.Compress(nil, []byte("2\n1\n"))
	testutil.AssertNoError(t, err)

	path := filepath.Join(t.TempDir(), "cases.txt.zst")
	testutil.AssertNoError(t, os.WriteFile(path, compressed, 0644))

	var out bytes.Buffer
	testutil.AssertNoError(t, Simulate(path, omode.LabelMode, &out))
	testutil.AssertEqual(t, "TEST: 1\nTEST: 2\n", out.String())
}

func TestSimulateCRLFInput(t *testing.T) {
	path := testutil.TempFile(t, "2\r\n1\r\n")

	var out bytes.Buffer
	testutil.AssertNoError(t, Simulate(path, omode.LabelMode, &out))
	testutil.AssertEqual(t, "TEST: 1\nTEST: 2\n", out.String())
}

func TestNewProcessorUnknownMode(t *testing.T) {
	_, err := NewProcessor(omode.Unknown, &bytes.Buffer{})
	testutil.AssertError(t, err, "no processor for mode")
}
