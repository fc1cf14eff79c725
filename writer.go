/*

Writer definition and implementation.

*/

package bitpacker

// Writer packs bit fields into a byte slice it owns.
// The zero value is ready to use.
type Writer struct {
	buf     []byte
	byteOff int  // index of the byte being filled
	bitOff  byte // number of filled bits in buf[byteOff], 0 if it is not allocated yet

	// TryError holds the first error occurred in TryPack().
	TryError error
}

// NewWriter returns a new, empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Pack writes out the n lowest bits of r, continuing where the previous call left off.
// Bits of r at positions higher than n-1 (zero indexed) are ignored.
//
// ErrInvalidWidth is returned if n is 0 or greater than MaxBits,
// in which case nothing is written.
func (w *Writer) Pack(r uint64, n byte) (err error) {
	if err = checkWidth(n); err != nil {
		return err
	}

	for n > 0 {
		if w.bitOff == 0 {
			// New byte, allocated only when there is something to put into it
			w.buf = append(w.buf, 0)
		}

		free := 8 - w.bitOff
		take := free
		if n < take {
			take = n
		}

		// Lowest take bits of r go to the highest free bits of the current byte
		w.buf[w.byteOff] |= byte(r&(1<<take-1)) << (free - take)
		r >>= take
		n -= take

		if w.bitOff += take; w.bitOff == 8 {
			w.byteOff++
			w.bitOff = 0
		}
	}

	return nil
}

// TryPack tries to pack n bits of r.
//
// If there was a previous TryError, it does nothing. Else it calls Pack(),
// and stores the returned error in the TryError field.
func (w *Writer) TryPack(r uint64, n byte) {
	if w.TryError == nil {
		w.TryError = w.Pack(r, n)
	}
}

// Bytes returns the bytes packed so far, including a partially filled last byte
// whose unused low bits are zero.
//
// The returned slice is not a copy: it is only valid until the next Pack call,
// and it must not be modified while the Writer is used. If the Writer is no longer
// needed, ownership of the slice may be taken over by the caller.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// TotalBits returns the number of bits packed so far.
func (w *Writer) TotalBits() uint64 {
	return uint64(w.byteOff)*8 + uint64(w.bitOff)
}

// ByteOffset returns the index of the byte the next bit will be written to.
func (w *Writer) ByteOffset() int {
	return w.byteOff
}

// BitOffset returns the number of bits already filled in the byte at ByteOffset().
func (w *Writer) BitOffset() byte {
	return w.bitOff
}
