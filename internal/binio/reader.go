// Package binio provides the byte-cursor and append-only buffer the
// construct engine builds parsing and building on top of.
package binio

import (
	"errors"
	"fmt"
)

// ErrShortRead is returned when a read would consume more bytes than remain.
var ErrShortRead = errors.New("binio: short read")

// Reader is a forward-only cursor over an immutable byte slice. It borrows
// the slice; the caller must keep it alive for the cursor's lifetime.
type Reader struct {
	data []byte
	pos  int
	end  int
}

// NewReader wraps data in a read cursor starting at offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, pos: 0, end: len(data)}
}

// Position returns the current read offset.
func (r *Reader) Position() int { return r.pos }

// SetPosition moves the cursor, clamped to the end of the buffer.
func (r *Reader) SetPosition(pos int) {
	if pos > r.end {
		pos = r.end
	}
	if pos < 0 {
		pos = 0
	}
	r.pos = pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return r.end - r.pos }

// ReadExact reads exactly n bytes and advances the cursor. It fails if
// fewer than n bytes remain.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("binio: negative read length %d", n)
	}
	if r.pos+n > r.end {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrShortRead, n, r.Remaining())
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}
