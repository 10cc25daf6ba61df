package line

// Processor defines an interface for processing lines read from caselist
// files. Implementations format and emit one output record per input line.
type Processor interface {
	// ProcessLine handles a single line. The slice is only valid for the
	// duration of the call.
	ProcessLine(line []byte, lineNum uint64) error

	// Flush is called once after the last line, including when no line
	// was processed at all. Trailer records belong here.
	Flush() error

	// Close cleans up any resources used by the processor.
	Close() error
}
