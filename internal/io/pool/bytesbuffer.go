package pool

import (
	"bytes"
	"sync"

	"github.com/deqp-tools/dsim/internal/constants"
)

// BytesBuffer is there to optimize memory allocations. Parsing long test
// runs otherwise allocates one output buffer per test.
var BytesBuffer = sync.Pool{
	New: func() interface{} {
		b := bytes.Buffer{}
		b.Grow(constants.LineBufferInitialCapacity)
		return &b
	},
}

// RecycleBytesBuffer recycles the buffer again.
func RecycleBytesBuffer(b *bytes.Buffer) {
	b.Reset()
	BytesBuffer.Put(b)
}
