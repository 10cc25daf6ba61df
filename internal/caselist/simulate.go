package caselist

import (
	"io"

	"github.com/deqp-tools/dsim/internal/errors"
	"github.com/deqp-tools/dsim/internal/io/line"
	"github.com/deqp-tools/dsim/internal/omode"
)

// NewProcessor returns the line processor for the given mode.
func NewProcessor(mode omode.Mode, w io.Writer) (line.Processor, error) {
	switch mode {
	case omode.LabelMode:
		return NewLabelProcessor(w), nil
	case omode.CheckMode:
		return NewCheckProcessor(w), nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "no processor for mode %s", mode)
	}
}

// Simulate runs the full simulator pipeline: read all lines of the
// caselist at path, sort them numerically, and emit them through the
// processor for the given mode. Nothing is written before the file has
// been read completely, so a read failure produces no output at all.
func Simulate(path string, mode omode.Mode, w io.Writer) error {
	f, err := Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	lines, err := f.ReadLines()
	if err != nil {
		return err
	}
	SortNumeric(lines)

	proc, err := NewProcessor(mode, w)
	if err != nil {
		return err
	}
	defer proc.Close()

	for i, l := range lines {
		if err := proc.ProcessLine([]byte(l), uint64(i)+1); err != nil {
			return err
		}
	}
	return proc.Flush()
}
