package main

import (
	"encoding/hex"
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

// unpackCommand unpacks a hex encoded buffer field by field.
type unpackCommand struct {
	cfg        *globalConfig
	out        io.Writer
	buffer     string
	widths     *[]uint8
	layoutFile string
	format     string
	stats      bool
}

func (cmd *unpackCommand) run(_ *kingpin.ParseContext) error {
	logger := cmd.cfg.logger()

	buf, err := hex.DecodeString(strings.TrimPrefix(cmd.buffer, "0x"))
	if err != nil {
		return errors.Wrap(err, "failed to decode buffer")
	}

	widths := *cmd.widths
	if cmd.layoutFile != "" {
		if len(widths) > 0 {
			return errors.New("widths and --layout.file are mutually exclusive")
		}
		l, err := loadLayout(cmd.layoutFile)
		if err != nil {
			return err
		}
		widths = l.Widths
	}
	if len(widths) == 0 {
		return errors.New("no widths given")
	}

	r := bitpacker.NewReader(buf)
	for i, n := range widths {
		v, err := r.Unpack(n)
		if err != nil {
			return errors.Wrapf(err, "failed to unpack field %d", i)
		}
		level.Debug(logger).Log("msg", "unpacked field", "index", i, "value", v, "bits", n, "remaining_bits", r.RemainingBits())

		switch cmd.format {
		case "hex":
			fmt.Fprintf(cmd.out, "%#x\n", v)
		default:
			fmt.Fprintln(cmd.out, v)
		}
	}

	if rem := r.RemainingBits(); rem >= 8 {
		level.Warn(logger).Log("msg", "buffer has unread bytes", "remaining_bits", rem)
	}

	if cmd.stats {
		bold := color.New(color.Bold)
		bold.Fprintln(cmd.out, "Buffer:")
		fmt.Fprintf(cmd.out, "\tfields: %d, size: %v, remaining bits: %d\n",
			len(widths),
			humanize.Bytes(uint64(len(buf))),
			r.RemainingBits(),
		)
	}
	return nil
}

func addUnpackCommand(app *kingpin.Application, cfg *globalConfig, out io.Writer) {
	cmd := &unpackCommand{cfg: cfg, out: out}
	unpack := app.Command("unpack", "Unpack a hex encoded buffer and print the values.").Action(cmd.run)
	unpack.Flag("layout.file", "YAML file listing the widths to unpack.").ExistingFileVar(&cmd.layoutFile)
	unpack.Flag("format", "Output format of the values.").Default("dec").EnumVar(&cmd.format, "dec", "hex")
	unpack.Flag("stats", "Print buffer stats after the values.").BoolVar(&cmd.stats)
	unpack.Arg("buffer", "Hex encoded buffer.").Required().StringVar(&cmd.buffer)
	cmd.widths = unpack.Arg("bits", "Widths of the fields, in order.").Uint8List()
}
