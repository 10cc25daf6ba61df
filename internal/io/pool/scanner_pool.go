package pool

import (
	"sync"

	"github.com/deqp-tools/dsim/internal/constants"
)

// ScannerBufferPool provides a pool of scanner buffers so that repeated
// caselist reads do not reallocate the scanner backing array.
var ScannerBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, constants.ReadBufferSize)
		return &buf
	},
}

// GetScannerBuffer gets a buffer from the pool
func GetScannerBuffer() *[]byte {
	return ScannerBufferPool.Get().(*[]byte)
}

// PutScannerBuffer returns a scanner buffer to the pool
func PutScannerBuffer(buf *[]byte) {
	if buf == nil {
		return
	}
	*buf = (*buf)[:cap(*buf)]
	ScannerBufferPool.Put(buf)
}
