package bitpacker_test

import (
	"fmt"

	"github.com/jstasiak/bitpacker"
)

func Example() {
	w := bitpacker.NewWriter()
	w.TryPack(0xf, 4)
	w.TryPack(0xabc, 12)
	w.TryPack(1, 1)
	if w.TryError != nil {
		panic(w.TryError)
	}
	fmt.Printf("%d bits: %x\n", w.TotalBits(), w.Bytes())

	r := bitpacker.NewReader(w.Bytes())
	a := r.TryUnpack(4)
	b := r.TryUnpack(12)
	c := r.TryUnpack(1)
	if r.TryError != nil {
		panic(r.TryError)
	}
	fmt.Printf("%#x %#x %d, %d bits left\n", a, b, c, r.RemainingBits())

	// Output:
	// 17 bits: fcab80
	// 0xf 0xabc 1, 7 bits left
}

func ExampleReader_Unpack() {
	r := bitpacker.NewReader([]byte{0x35})

	v, err := r.Unpack(4)
	fmt.Println(v, err)

	_, err = r.Unpack(5)
	fmt.Println(err)

	v, err = r.Unpack(4)
	fmt.Println(v, err)

	// Output:
	// 3 <nil>
	// 5 bits requested, 4 remaining: bitpacker: buffer exhausted
	// 5 <nil>
}
