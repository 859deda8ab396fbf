package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"impractical.co/styleguide"
)

var CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Samples struct {
		File string `arg:"" type:"existingfile" help:"YAML file listing label: code samples"`
	} `cmd:"" help:"Render a set of code samples to HTML"`

	Page struct {
		Config     string `short:"c" help:"Configuration file path" default:"styleguide.yaml"`
		Identifier string `arg:"" help:"Identifier of the item to render, e.g. /articles/naming/"`
	} `cmd:"" help:"Render a single item of the site through its layout"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("styleguide"),
		kong.Description("Render style guide pages and code samples."),
	)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx := styleguide.LoggingContext(context.Background(), logger)

	var err error
	switch kctx.Command() {
	case "samples <file>":
		err = runSamples(os.Stdout, CLI.Samples.File)
	case "page <identifier>":
		err = runPage(ctx, os.Stdout, CLI.Page.Config, CLI.Page.Identifier)
	default:
		err = fmt.Errorf("unknown command %q", kctx.Command())
	}
	if err != nil {
		logger.Error("Command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}

func runSamples(out io.Writer, path string) error {
	file, err := os.Open(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("error opening %q: %w", path, err)
	}
	defer file.Close() //nolint:errcheck

	samples, err := styleguide.LoadCodeSamples(file)
	if err != nil {
		return fmt.Errorf("error loading %q: %w", path, err)
	}
	rendered, err := styleguide.RenderCodeSamples(samples)
	if err != nil {
		return fmt.Errorf("error rendering %q: %w", path, err)
	}
	_, err = fmt.Fprintln(out, rendered)
	return err
}

func runPage(ctx context.Context, out io.Writer, configPath, identifier string) error {
	cfg, err := styleguide.LoadConfig(configPath)
	if err != nil {
		return err
	}
	guide, err := styleguide.NewStyleGuide(cfg, os.DirFS(cfg.ContentDir), os.DirFS(cfg.LayoutDir))
	if err != nil {
		return err
	}
	page, err := guide.Page(ctx, identifier)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := styleguide.RenderPage(ctx, &buf, guide, page); err != nil {
		return fmt.Errorf("error rendering %q: %w", identifier, err)
	}
	_, err = buf.WriteTo(out)
	return err
}
