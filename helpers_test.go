package bitpacker_test

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// formatBits renders the first totalBits bits of buf in binary, bytes
// separated by a space, e.g. "00110101 01".
func formatBits(buf []byte, totalBits uint64) string {
	var sb strings.Builder
	for i := uint64(0); i < totalBits; i++ {
		if i > 0 && i%8 == 0 {
			sb.WriteByte(' ')
		}
		if buf[i/8]&(0x80>>(i%8)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// dumpBuffer is used in failure messages.
func dumpBuffer(buf []byte, totalBits uint64) string {
	return formatBits(buf, totalBits) + "\n" + spew.Sdump(buf)
}
