package xjournal

import "sync"

// Buffer is a growing byte buffer layouts render into. It implements
// io.Writer so fmt can print through it.
type Buffer struct{ b []byte }

func (buf *Buffer) Write(p []byte) (int, error) {
	buf.b = append(buf.b, p...)
	return len(p), nil
}

func (buf *Buffer) WriteString(s string) (int, error) {
	buf.b = append(buf.b, s...)
	return len(s), nil
}

func (buf *Buffer) WriteByte(c byte) error {
	buf.b = append(buf.b, c)
	return nil
}

func (buf *Buffer) Bytes() []byte { return buf.b }
func (buf *Buffer) Len() int      { return len(buf.b) }
func (buf *Buffer) Reset()        { buf.b = buf.b[:0] }

// Pooled scratch buffers for the append path. A re-entrant append (message
// construction that itself logs) gets a different pooled buffer, never the
// one already checked out, so nesting cannot corrupt an in-flight render.
var bufPool = sync.Pool{New: func() any { return &Buffer{b: make([]byte, 0, 2048)} }}

func getBuf() *Buffer {
	buf := bufPool.Get().(*Buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *Buffer) {
	// allow GC of oversized backing arrays
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}

func appendUint(buf *Buffer, v uint64) {
	if v == 0 {
		buf.b = append(buf.b, '0')
		return
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	buf.b = append(buf.b, tmp[i:]...)
}
