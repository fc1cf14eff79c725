/*

Reader definition and implementation.

*/

package bitpacker

import (
	"github.com/pkg/errors"
)

// Reader unpacks bit fields from a byte slice.
//
// The slice is not copied and never modified by the Reader. It must not be
// modified while the Reader is used.
type Reader struct {
	buf     []byte
	byteOff int  // index of the byte being read
	bitOff  byte // number of already read bits in buf[byteOff]

	// TryError holds the first error occurred in TryUnpack().
	TryError error
}

// NewReader returns a new Reader using the specified slice as the input (source).
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Unpack reads n bits and returns them as the lowest n bits of u.
//
// ErrInvalidWidth is returned if n is 0 or greater than MaxBits, and
// ErrBufferExhausted if less than n bits remain. In both cases u is 0
// and the position is left unchanged, so a smaller read may be retried.
func (r *Reader) Unpack(n byte) (u uint64, err error) {
	if err = checkWidth(n); err != nil {
		return 0, err
	}
	if remaining := r.RemainingBits(); uint64(n) > remaining {
		return 0, errors.Wrapf(ErrBufferExhausted, "%d bits requested, %d remaining", n, remaining)
	}

	var factor byte // number of bits already assembled in u
	for n > 0 {
		avail := 8 - r.bitOff
		take := avail
		if n < take {
			take = n
		}

		// Highest take unread bits of the current byte go above the bits read so far
		chunk := uint64(r.buf[r.byteOff]>>(avail-take)) & (1<<take - 1)
		u |= chunk << factor
		factor += take
		n -= take

		if r.bitOff += take; r.bitOff == 8 {
			r.byteOff++
			r.bitOff = 0
		}
	}

	return u, nil
}

// TryUnpack tries to unpack n bits.
//
// If there was a previous TryError, it does nothing. Else it calls Unpack(),
// returns the data it provides and stores the error in the TryError field.
func (r *Reader) TryUnpack(n byte) (u uint64) {
	if r.TryError == nil {
		u, r.TryError = r.Unpack(n)
	}
	return
}

// TotalBits returns the size of the input in bits.
func (r *Reader) TotalBits() uint64 {
	return uint64(len(r.buf)) * 8
}

// RemainingBits returns the number of bits not yet read.
func (r *Reader) RemainingBits() uint64 {
	return r.TotalBits() - (uint64(r.byteOff)*8 + uint64(r.bitOff))
}

// ByteOffset returns the index of the byte the next bit will be read from.
func (r *Reader) ByteOffset() int {
	return r.byteOff
}

// BitOffset returns the number of bits already read from the byte at ByteOffset().
func (r *Reader) BitOffset() byte {
	return r.bitOff
}
