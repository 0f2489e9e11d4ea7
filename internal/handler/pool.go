package handler

import (
	"bytes"
	"sync"
)

const (
	bufferInitialSize = 512
	bufferMaxPooled   = 64 << 10 // long arena logs can grow a buffer well past this
)

// bufferPool recycles JSON encoding buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, bufferInitialSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it has grown too large to keep around
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > bufferMaxPooled {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
