package main

import (
	"io"
	"os"

	"github.com/sexp-format/go-sexp/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ReplaceConfig struct {
	*MainConfig

	D bool `cli:"name=d desc='print a diff instead of the result'"`

	Replace *cli.Command
}
