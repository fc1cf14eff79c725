/*

Package bitpacker packs unsigned integers of arbitrary bit width into a byte slice,
and unpacks them again.

Use Writer.Pack() to append the lowest n bits (1 <= n <= 64) of an uint64 value to an
in-memory buffer owned by the Writer, and Reader.Unpack() to read n bits back from a
byte slice and return them as an uint64. Fields are packed contiguously at arbitrary bit
alignment, there is no padding between them. The last byte is zero-filled in its unused
low bits.

Both Writer and Reader also provide TryPack() and TryUnpack() variants which do not
return an error but record the first one in the TryError field, after which subsequent
Try calls are no-ops. This allows a sequence of calls to be checked once at the end.

Bit order

Within a byte the highest bits are filled first. A value however is consumed in chunks
starting from its lowest bits: each chunk is as large as the free room in the current
byte, and is placed into the highest free bits of that byte. Unpack mirrors this, the
first chunk read becomes the lowest bits of the result.

For values that fit into the current byte this is the usual highest-bits-first order:

    w := NewWriter()
    w.Pack(3, 4) // 0011
    w.Pack(5, 4) //     0101
    // w.Bytes() is []byte{0x35}

A value crossing a byte boundary is split with its low chunk first. Packing 0xabc in
12 bits after a 4-bit field:

    HEXA    f    c     a    b
    BINARY  1111 1100  1010 1011
            aaaa cccc  bbbb bbbb
                 ^^^^  ^^^^ ^^^^
                 low   high 8 bits of 0xabc
                 4 bits

    w := NewWriter()
    w.Pack(0xf, 4)    // a
    w.Pack(0xabc, 12) // c = 0xc (low 4 bits), b = 0xab (high 8 bits)
    // w.Bytes() is []byte{0xfc, 0xab}

    r := NewReader(w.Bytes())
    a, err := r.Unpack(4)  // 0xf
    v, err := r.Unpack(12) // 0xabc

Values with bits set above the declared width are truncated silently, callers that
care must check value < 1<<n themselves.

Neither Writer nor Reader is safe for concurrent use. Multiple Readers may read the
same slice concurrently, as long as nothing writes to it.

*/
package bitpacker
