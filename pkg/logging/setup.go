// Package logging configures the process-wide zap logger for CLI runs.
package logging

import (
	"fmt"
	"os"

	prettyconsole "github.com/thessem/zap-prettyconsole"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

type LogOpts struct {
	Verbose  bool
	Color    string
	Encoding string
}

func (opts LogOpts) Encoder() zapcore.Encoder {
	switch opts.Encoding {
	case "json":
		if opts.Verbose {
			return zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig())
		}
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console", "":
		useColor := term.IsTerminal(int(os.Stderr.Fd()))
		switch opts.Color {
		case "always", "on":
			useColor = true
		case "never", "off":
			useColor = false
		}
		if useColor {
			return prettyconsole.NewEncoder(prettyconsole.NewEncoderConfig())
		}
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		panic(fmt.Errorf("unknown encoding %q", opts.Encoding))
	}
}

func (opts LogOpts) NewCore(w zapcore.WriteSyncer) zapcore.Core {
	leveller := zap.NewAtomicLevel()
	if opts.Verbose {
		leveller.SetLevel(zap.DebugLevel)
	} else {
		leveller.SetLevel(zap.InfoLevel)
	}
	return zapcore.NewCore(opts.Encoder(), w, leveller)
}

func (opts LogOpts) NewLogger() *zap.Logger {
	return zap.New(opts.NewCore(os.Stderr))
}
