// Package protocol defines the line grammar of dEQP-compatible test output.
// It is shared by the simulator (which writes it) and the runner (which
// parses it), so the exact templates live in one place.
//
// The grammar, as produced by deqp-vk and by DSim in check mode:
//
//	Test case 'dEQP-VK.api.smoke.triangle'..
//	  Pass (Result image matches reference)
//	  ...
//	DONE!
//
// Caselist exports use one label line per test:
//
//	TEST: dEQP-VK.api.smoke.triangle
package protocol

import (
	"strings"
)

const (
	// LabelPrefix starts every line of a caselist export.
	LabelPrefix = "TEST: "

	// CaseHeaderPrefix and CaseHeaderSuffix delimit the test name in a
	// test case header line.
	CaseHeaderPrefix = "Test case '"
	CaseHeaderSuffix = "'.."

	// ResultIndent starts every test result line.
	ResultIndent = "  "

	// DoneMarker is printed once after the last test of a complete run.
	DoneMarker = "DONE!"

	// PassDetail is the detail text the simulator reports for each case.
	PassDetail = "Result image matches reference"

	// FatalErrorPrefix on stderr marks an unrecoverable failure of the
	// test binary.
	FatalErrorPrefix = "FATAL ERROR: "

	// NameSeparator nests test case names within groups.
	NameSeparator = "."
)

// ResultVariant classifies a single test outcome.
type ResultVariant int

const (
	ResultUnknown ResultVariant = iota
	ResultPass
	ResultCompatibilityWarning
	ResultQualityWarning
	ResultNotSupported
	ResultFail
	ResultResourceError
	ResultInternalError
	ResultCrash
	ResultTimeout
	ResultWaiver
)

var resultNames = map[ResultVariant]string{
	ResultPass:                 "Pass",
	ResultCompatibilityWarning: "CompatibilityWarning",
	ResultQualityWarning:       "QualityWarning",
	ResultNotSupported:         "NotSupported",
	ResultFail:                 "Fail",
	ResultResourceError:        "ResourceError",
	ResultInternalError:        "InternalError",
	ResultCrash:                "Crash",
	ResultTimeout:              "Timeout",
	ResultWaiver:               "Waiver",
}

var resultVariants = func() map[string]ResultVariant {
	m := make(map[string]ResultVariant, len(resultNames))
	for v, name := range resultNames {
		m[name] = v
	}
	return m
}()

func (v ResultVariant) String() string {
	if name, ok := resultNames[v]; ok {
		return name
	}
	return "Unknown"
}

// Failed reports whether the variant counts as a test failure.
func (v ResultVariant) Failed() bool {
	switch v {
	case ResultPass, ResultCompatibilityWarning, ResultQualityWarning,
		ResultNotSupported, ResultWaiver:
		return false
	}
	return true
}

// FormatLabel renders a caselist label line, without trailing newline.
func FormatLabel(name string) string {
	return LabelPrefix + name
}

// FormatCaseHeader renders a test case header line, without trailing newline.
func FormatCaseHeader(name string) string {
	return CaseHeaderPrefix + name + CaseHeaderSuffix
}

// FormatResult renders a test result line, without trailing newline. The
// detail is omitted when empty.
func FormatResult(variant ResultVariant, detail string) string {
	if detail == "" {
		return ResultIndent + variant.String()
	}
	return ResultIndent + variant.String() + " (" + detail + ")"
}

// ParseCaseHeader extracts the test name from a line that starts a test
// case. Both header forms are recognized: the caselist label form
// ("TEST: name") and the run form ("Test case 'name'..").
func ParseCaseHeader(line string) (name string, ok bool) {
	if name, ok = strings.CutPrefix(line, LabelPrefix); ok {
		return name, true
	}
	if rest, found := strings.CutPrefix(line, CaseHeaderPrefix); found {
		if name, ok = strings.CutSuffix(rest, CaseHeaderSuffix); ok {
			return name, true
		}
	}
	return "", false
}

// ParseResult extracts the outcome from a test result line. The line must
// start with ResultIndent followed by a known variant name; any remaining
// text is the detail, with one level of enclosing parentheses removed.
func ParseResult(line string) (variant ResultVariant, detail string, ok bool) {
	report, ok := strings.CutPrefix(line, ResultIndent)
	if !ok {
		return ResultUnknown, "", false
	}
	for name, v := range resultVariants {
		rest, found := strings.CutPrefix(report, name)
		if !found || (rest != "" && rest[0] != ' ') {
			continue
		}
		rest = strings.TrimSpace(rest)
		if strings.HasPrefix(rest, "(") && strings.HasSuffix(rest, ")") {
			rest = rest[1 : len(rest)-1]
		}
		return v, rest, true
	}
	return ResultUnknown, "", false
}
