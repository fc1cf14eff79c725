package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// layout lists the widths of the fields in a buffer, in order.
//
//	widths: [1, 1, 2, 12]
type layout struct {
	Widths []uint8 `yaml:"widths"`
}

func loadLayout(path string) (layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return layout{}, errors.Wrap(err, "failed to open layout file")
	}
	defer func() { _ = f.Close() }()

	return parseLayout(f)
}

func parseLayout(r io.Reader) (layout, error) {
	var l layout

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return l, errors.New("empty layout")
		}
		return l, errors.Wrap(err, "failed to parse layout")
	}
	if len(l.Widths) == 0 {
		return l, errors.New("layout has no widths")
	}
	return l, nil
}
