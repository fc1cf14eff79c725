package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/jstasiak/bitpacker"
)

// packCommand packs fields in order and prints the resulting buffer.
type packCommand struct {
	cfg    *globalConfig
	out    io.Writer
	fields fieldList
	format string
	stats  bool
}

func (cmd *packCommand) run(_ *kingpin.ParseContext) error {
	logger := cmd.cfg.logger()

	w := bitpacker.NewWriter()
	for i, f := range cmd.fields {
		if f.bits >= 1 && f.bits < 64 && f.value>>f.bits != 0 {
			level.Warn(logger).Log("msg", "value does not fit, high bits are dropped", "index", i, "value", f.value, "bits", f.bits)
		}
		if err := w.Pack(f.value, f.bits); err != nil {
			return errors.Wrapf(err, "failed to pack field %d (%s)", i, f)
		}
		level.Debug(logger).Log("msg", "packed field", "index", i, "value", f.value, "bits", f.bits, "total_bits", w.TotalBits())
	}

	if cmd.stats {
		bold := color.New(color.Bold)
		bold.Fprintln(cmd.out, "Buffer:")
		fmt.Fprintf(cmd.out, "\tfields: %d, bits: %d, size: %v\n",
			len(cmd.fields),
			w.TotalBits(),
			humanize.Bytes(uint64(len(w.Bytes()))),
		)
	}

	switch cmd.format {
	case "bin":
		fmt.Fprintln(cmd.out, formatBits(w.Bytes(), w.TotalBits()))
	default:
		fmt.Fprintf(cmd.out, "%x\n", w.Bytes())
	}
	return nil
}

// formatBits renders the first totalBits bits of buf, bytes separated by a space.
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

func addPackCommand(app *kingpin.Application, cfg *globalConfig, out io.Writer) {
	cmd := &packCommand{cfg: cfg, out: out}
	pack := app.Command("pack", "Pack fields and print the buffer.").Action(cmd.run)
	pack.Flag("format", "Output format of the buffer.").Default("hex").EnumVar(&cmd.format, "hex", "bin")
	pack.Flag("stats", "Print buffer stats before the buffer.").BoolVar(&cmd.stats)
	pack.Arg("field", "Fields to pack as VALUE:BITS, in order.").Required().SetValue(&cmd.fields)
}
