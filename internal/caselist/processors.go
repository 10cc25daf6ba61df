package caselist

import (
	"bufio"
	"io"

	"github.com/deqp-tools/dsim/internal/protocol"
)

// LabelProcessor handles label-mode output: one caselist label line per
// test case, no trailer.
type LabelProcessor struct {
	writer *bufio.Writer
}

// NewLabelProcessor creates a new label processor writing to w.
func NewLabelProcessor(w io.Writer) *LabelProcessor {
	return &LabelProcessor{writer: bufio.NewWriter(w)}
}

// ProcessLine emits one label line for the test case.
func (p *LabelProcessor) ProcessLine(line []byte, lineNum uint64) error {
	if _, err := p.writer.WriteString(protocol.FormatLabel(string(line))); err != nil {
		return err
	}
	return p.writer.WriteByte('\n')
}

// Flush writes out buffered output. Label mode has no trailer.
func (p *LabelProcessor) Flush() error {
	return p.writer.Flush()
}

// Close flushes remaining output.
func (p *LabelProcessor) Close() error {
	return p.writer.Flush()
}

// CheckProcessor handles check-mode output: a case header plus a pass
// report per test case, and the completion marker after the last one. The
// marker is emitted even when no line was processed, matching what a dEQP
// run over an empty caselist prints.
type CheckProcessor struct {
	writer *bufio.Writer
}

// NewCheckProcessor creates a new check processor writing to w.
func NewCheckProcessor(w io.Writer) *CheckProcessor {
	return &CheckProcessor{writer: bufio.NewWriter(w)}
}

// ProcessLine emits the case header and pass report for the test case.
func (p *CheckProcessor) ProcessLine(line []byte, lineNum uint64) error {
	if _, err := p.writer.WriteString(protocol.FormatCaseHeader(string(line))); err != nil {
		return err
	}
	if err := p.writer.WriteByte('\n'); err != nil {
		return err
	}
	if _, err := p.writer.WriteString(
		protocol.FormatResult(protocol.ResultPass, protocol.PassDetail)); err != nil {
		return err
	}
	return p.writer.WriteByte('\n')
}

// Flush emits the completion marker and writes out buffered output.
func (p *CheckProcessor) Flush() error {
	if _, err := p.writer.WriteString(protocol.DoneMarker); err != nil {
		return err
	}
	if err := p.writer.WriteByte('\n'); err != nil {
		return err
	}
	return p.writer.Flush()
}

// Close flushes remaining output without emitting another marker.
func (p *CheckProcessor) Close() error {
	return p.writer.Flush()
}
