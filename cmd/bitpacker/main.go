// Command bitpacker packs VALUE:BITS fields into a buffer and unpacks
// buffers again, printing the result. It is meant for inspecting the
// bitpacker wire layout.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
)

// globalConfig holds the flags shared by all commands.
type globalConfig struct {
	logLevel string
	logOut   io.Writer
}

func (cfg *globalConfig) logger() log.Logger {
	return newLogger(cfg.logOut, cfg.logLevel)
}

func newApp(out, logOut io.Writer) *kingpin.Application {
	app := kingpin.New("bitpacker", "Pack and unpack fields of arbitrary bit width.")
	app.HelpFlag.Short('h')

	cfg := &globalConfig{logOut: logOut}
	app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").
		EnumVar(&cfg.logLevel, "debug", "info", "warn", "error")

	addPackCommand(app, cfg, out)
	addUnpackCommand(app, cfg, out)
	return app
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	kingpin.MustParse(app.Parse(os.Args[1:]))
}
