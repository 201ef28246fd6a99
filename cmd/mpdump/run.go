package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/http/multipart"
	"github.com/indigo-web/multipart/internal/transfer"
	json "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

type options struct {
	configPath  string
	contentType string
	boundary    string
	chunked     bool
	chunkSize   int
	digest      bool
	verbose     bool
	demo        bool
	input       string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("mpdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	fs.StringVar(&opts.contentType, "content-type", "", "Content-Type of the body, used to extract the boundary")
	fs.StringVar(&opts.boundary, "boundary", "", "boundary of the body (overrides -content-type)")
	fs.BoolVar(&opts.chunked, "chunked", false, "the body is in chunked transfer encoding")
	fs.IntVar(&opts.chunkSize, "chunk", 0, "feed the parser by pieces of this size (defaults to read.buffer_size)")
	fs.BoolVar(&opts.digest, "digest", false, "print BLAKE2b-256 digests of part bodies instead of the bodies")
	fs.BoolVar(&opts.verbose, "v", false, "log every part event")
	fs.BoolVar(&opts.demo, "demo", false, "write a sample multipart body instead of parsing")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.input = fs.Arg(0)
	default:
		return opts, errors.New("at most one input file is allowed")
	}

	return opts, nil
}

func newLogger(out io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).With().Timestamp().Str("app", "mpdump").Logger()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if len(opts.configPath) > 0 {
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}

	logger := newLogger(stderr)

	if opts.demo {
		return writeDemo(stdout, opts.boundary, &logger)
	}

	boundary := opts.boundary
	switch {
	case len(boundary) > 0:
	case len(opts.contentType) > 0:
		if boundary, err = multipart.BoundaryOf(opts.contentType); err != nil {
			return fmt.Errorf("no boundary: %w", err)
		}
	default:
		return errors.New("no boundary: pass either -boundary or a multipart -content-type")
	}

	var input io.Reader = stdin
	if len(opts.input) > 0 {
		file, err := os.Open(opts.input)
		if err != nil {
			return err
		}

		defer file.Close()
		input = file
	}

	if opts.chunked {
		input = transfer.NewChunkedReader(input, cfg)
	}

	d, err := newDumper(opts.digest)
	if err != nil {
		return err
	}

	var listener multipart.Listener = d
	if opts.verbose {
		listener = multipart.LogListener(d, &logger)
	}

	parser, err := multipart.NewParser(cfg, boundary, listener)
	if err != nil {
		return err
	}

	chunkSize := opts.chunkSize
	if chunkSize <= 0 {
		chunkSize = cfg.Read.BufferSize
	}

	extra, err := transfer.Feed(input, parser, make([]byte, chunkSize))
	if err != nil {
		return fmt.Errorf("parse body: %w", err)
	}

	if len(extra) > 0 {
		logger.Debug().Int("bytes", len(extra)).Msg("ignoring data after the closing boundary")
	}

	output, err := json.MarshalIndent(d.Entries(), "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "%s\n", output)
	return err
}

func writeDemo(out io.Writer, boundary string, logger *zerolog.Logger) error {
	w := multipart.NewWriter(out)
	if len(boundary) > 0 {
		if err := w.SetBoundary(boundary); err != nil {
			return err
		}
	}

	logger.Info().Str("content_type", w.FormDataContentType()).Msg("writing a demo body")

	field, err := w.CreateFormField("greeting")
	if err != nil {
		return err
	}

	if _, err = io.WriteString(field, "Hello,\r\nworld!"); err != nil {
		return err
	}

	file, err := w.CreateFormFile("notes", "notes.txt", "")
	if err != nil {
		return err
	}

	if _, err = io.WriteString(file, "\r\n--not a boundary\r\n"); err != nil {
		return err
	}

	return w.Close()
}
