package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// field is a value and the number of bits it is packed in.
type field struct {
	value uint64
	bits  byte
}

func (f field) String() string {
	return fmt.Sprintf("%d:%d", f.value, f.bits)
}

// fieldList is a repeatable kingpin.Value parsing VALUE:BITS arguments.
// VALUE may be decimal, or hexadecimal with a 0x prefix.
type fieldList []field

func (l *fieldList) Set(s string) error {
	v, b, ok := strings.Cut(s, ":")
	if !ok {
		return errors.Errorf("invalid field %q, expected VALUE:BITS", s)
	}

	value, err := strconv.ParseUint(v, 0, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid value in field %q", s)
	}
	bits, err := strconv.ParseUint(b, 10, 8)
	if err != nil {
		return errors.Wrapf(err, "invalid bit width in field %q", s)
	}

	*l = append(*l, field{value: value, bits: byte(bits)})
	return nil
}

func (l *fieldList) String() string {
	parts := make([]string, len(*l))
	for i, f := range *l {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}

func (l *fieldList) IsCumulative() bool {
	return true
}
