package bitpacker

import (
	"github.com/pkg/errors"
)

// MaxBits is the largest width Pack and Unpack accept.
const MaxBits = 64

var (
	// ErrInvalidWidth is returned when a width outside [1, MaxBits] is requested.
	ErrInvalidWidth = errors.New("bitpacker: invalid bit width")

	// ErrBufferExhausted is returned by Unpack when fewer bits remain than requested.
	ErrBufferExhausted = errors.New("bitpacker: buffer exhausted")
)

// checkWidth validates n before any shifting is done with it.
func checkWidth(n byte) error {
	if n == 0 || n > MaxBits {
		return errors.Wrapf(ErrInvalidWidth, "%d bits", n)
	}
	return nil
}
