// Package cli wires the converter into a command line: a one-shot convert
// subcommand and an interactive picker.
package cli

import (
	"fmt"
	"os"
	"strings"

	"imgconv/config"
	"imgconv/formats"
	"imgconv/ui"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

// Exit codes mirror the classic converter driver.
const (
	ExitOK = iota
	ExitUsage
	ExitUnknownInputFormat
	ExitUnknownOutputFormat
	ExitLoadFailed
	ExitSaveFailed
)

type (
	Args struct {
		Convert     *ConvertCmd     `arg:"subcommand:convert"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Config      string          `help:"path to the settings file" placeholder:"imgconv.yaml"`
	}
	InteractiveCmd struct{}
	ConvertCmd     struct {
		From  string `arg:"required" help:"path to source image" placeholder:"in.bmp"`
		To    string `arg:"required" help:"path to destination image" placeholder:"out.ppm"`
		Force bool   `help:"overwrite the destination file"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Convert raster images between BMP, PPM, and JPEG containers",
			"by their file extensions.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// StartConverting performs one conversion and returns the process exit code.
func StartConverting(from string, to string, force bool, cfg config.Config) int {
	inFormat := formats.ByExtension(from)
	if inFormat == nil {
		fmt.Fprintln(os.Stderr, "Unknown format of the input file")
		return ExitUnknownInputFormat
	}
	outFormat := formats.ByExtension(to)
	if outFormat == nil {
		fmt.Fprintln(os.Stderr, "Unknown format of the output file")
		return ExitUnknownOutputFormat
	}
	if jpegFormat, ok := outFormat.(formats.JPEG); ok {
		jpegFormat.Quality = cfg.JPEGQuality
		outFormat = jpegFormat
	}

	if CheckExistence(to) && !force && !cfg.ForceOverwrite {
		fmt.Fprintln(os.Stderr, "Destination file exists. Pass --force to allow overwriting.")
		return ExitUsage
	}

	image, err := inFormat.Load(from)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Loading failed")
		return ExitLoadFailed
	}
	if err := outFormat.Save(to, image); err != nil {
		fmt.Fprintln(os.Stderr, "Saving failed")
		return ExitSaveFailed
	}

	fmt.Println("Successfully converted")
	return ExitOK
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	configPath := args.Config
	if configPath == "" {
		configPath = config.DefaultFileName
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	switch {
	case args.Convert != nil:
		os.Exit(StartConverting(
			args.Convert.From,
			args.Convert.To,
			args.Convert.Force,
			cfg,
		))
	case args.Interactive != nil:
		ui.Start(cfg)
	default:
		parser.WriteHelp(os.Stderr)
		os.Exit(ExitUsage)
	}
}
