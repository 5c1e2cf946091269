// qrgames - pack HTML games into data URLs and QR codes
//
// Usage:
//
//	qrgames encode [-root dir] <in.html> <out.txt>      Write an HTML file as a data URL
//	qrgames decode [-root dir] <in.txt> <out.html>      Restore the HTML file from a data URL
//	qrgames compile [-root dir] <in.html> <out.txt>     Write a self-decompressing loader page as a data URL
//	qrgames qr [-root dir] [-level L|M|Q|H] <project>... Render <project>/url/url.txt to img/qr_code.png
//	qrgames qr-pair [-root dir] <project>...            Render <project>/url/url_github.txt at levels L and H
//	qrgames compress [-uri] [file]                      LZ-compress text to Base64
//	qrgames decompress [-uri] [file]                    Restore text compressed by compress
//	qrgames version                                     Print version info
//
// compress and decompress read stdin when no file is given. Settings come from
// the environment (QRGAMES_ROOT, QR_LEVEL, QR_PIXELS_PER_MODULE, QR_CONCURRENCY,
// LOADER_TITLE, LOG_LEVEL, LOG_FORMAT, APP_ENV) or a .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrymomot/qrgames/core/config"
	"github.com/dmitrymomot/qrgames/core/logger"
	"github.com/dmitrymomot/qrgames/core/project"
	"github.com/dmitrymomot/qrgames/pkg/lzstring"
	"github.com/dmitrymomot/qrgames/pkg/qrcode"
)

const version = "0.1.0"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("invalid arguments")

type appConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Env       string `env:"APP_ENV" envDefault:"development"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "version", "-v", "--version":
		fmt.Fprintf(stdout, "qrgames %s\n", version)
		return exitOK
	case "help", "-h", "--help":
		printUsage(stdout)
		return exitOK
	}

	var app appConfig
	if err := config.Load(&app); err != nil {
		fmt.Fprintf(stderr, "qrgames: %v\n", err)
		return exitFailure
	}
	log, err := newLogger(app, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "qrgames: %v\n", err)
		return exitFailure
	}

	var cfg project.Config
	if err := config.Load(&cfg); err != nil {
		log.Error("failed to load config", logger.Error(err))
		return exitFailure
	}

	c := &cli{cfg: cfg, log: log, stdin: stdin, stdout: stdout, stderr: stderr}
	switch cmd {
	case "encode":
		err = c.encode(ctx, args)
	case "decode":
		err = c.decode(ctx, args)
	case "compile":
		err = c.compile(ctx, args)
	case "qr":
		err = c.qr(ctx, args)
	case "qr-pair":
		err = c.qrPair(ctx, args)
	case "compress":
		err = c.compress(args)
	case "decompress":
		err = c.decompress(args)
	default:
		fmt.Fprintf(stderr, "qrgames: unknown command: %s\n", cmd)
		printUsage(stderr)
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "qrgames %s: %v\n", cmd, err)
		return exitUsage
	default:
		log.ErrorContext(ctx, "command failed", logger.Action(cmd), logger.Error(err))
		return exitFailure
	}
}

func newLogger(app appConfig, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(app.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithAttr(slog.String("env", app.Env)),
	}
	switch strings.ToLower(app.LogFormat) {
	case "json":
		opts = append(opts, logger.WithJSONFormatter())
	case "text", "":
		opts = append(opts, logger.WithTextFormatter())
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", app.LogFormat)
	}
	return logger.New(opts...), nil
}

type cli struct {
	cfg    project.Config
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// flags returns a flag set with the -root flag shared by the file commands.
func (c *cli) flags(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	root := fs.String("root", c.cfg.Root, "directory that paths are relative to")
	return fs, root
}

func (c *cli) parse(fs *flag.FlagSet, args []string, want int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	rest := fs.Args()
	switch {
	case want > 0 && len(rest) != want:
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", errUsage, want, len(rest))
	case want < 0 && len(rest) == 0:
		return nil, fmt.Errorf("%w: at least one project is required", errUsage)
	}
	return rest, nil
}

func (c *cli) service(root string, opts ...project.Option) *project.Service {
	cfg := c.cfg
	cfg.Root = root
	return project.NewFromConfig(cfg, append([]project.Option{project.WithLogger(c.log)}, opts...)...)
}

func (c *cli) encode(ctx context.Context, args []string) error {
	fs, root := c.flags("encode")
	paths, err := c.parse(fs, args, 2)
	if err != nil {
		return err
	}
	_, err = c.service(*root).Encode(ctx, paths[0], paths[1])
	return err
}

func (c *cli) decode(ctx context.Context, args []string) error {
	fs, root := c.flags("decode")
	paths, err := c.parse(fs, args, 2)
	if err != nil {
		return err
	}
	_, err = c.service(*root).Decode(ctx, paths[0], paths[1])
	return err
}

func (c *cli) compile(ctx context.Context, args []string) error {
	fs, root := c.flags("compile")
	paths, err := c.parse(fs, args, 2)
	if err != nil {
		return err
	}

	report, err := c.service(*root).Compile(ctx, paths[0], paths[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "data url:    %d chars\n", report.OriginalLength)
	fmt.Fprintf(c.stdout, "loader page: %d chars\n", report.LoaderLength)
	fmt.Fprintf(c.stdout, "reduction:   %d chars (%.1f%%)\n", report.Reduction(), report.Percent())
	if !report.Smaller() {
		fmt.Fprintln(c.stdout, "the loader page is larger than the plain data url")
	}
	return nil
}

func (c *cli) qr(ctx context.Context, args []string) error {
	fs, root := c.flags("qr")
	levelArg := fs.String("level", c.cfg.Level.String(), "error correction level: L, M, Q or H")
	names, err := c.parse(fs, args, -1)
	if err != nil {
		return err
	}

	level, err := qrcode.ParseLevel(*levelArg)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return c.service(*root, project.WithLevel(level)).GenerateAll(ctx, names...)
}

func (c *cli) qrPair(ctx context.Context, args []string) error {
	fs, root := c.flags("qr-pair")
	names, err := c.parse(fs, args, -1)
	if err != nil {
		return err
	}
	return c.service(*root).GenerateAllPairs(ctx, names...)
}

func (c *cli) compress(args []string) error {
	enc, input, err := c.codecInput("compress", args)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, enc.Compress(input))
	return nil
}

func (c *cli) decompress(args []string) error {
	enc, input, err := c.codecInput("decompress", args)
	if err != nil {
		return err
	}
	text, err := enc.Decompress(strings.TrimSpace(input))
	if err != nil {
		return err
	}
	fmt.Fprint(c.stdout, text)
	return nil
}

// codecInput parses the codec flags and reads the file argument, or stdin when
// there is none or it is "-".
func (c *cli) codecInput(name string, args []string) (*lzstring.Encoding, string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	uri := fs.Bool("uri", false, "use the URI-component alphabet instead of Base64")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 1 {
		return nil, "", fmt.Errorf("%w: expected at most one file", errUsage)
	}

	input := c.stdin
	if file := fs.Arg(0); file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, "", fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		input = f
	}

	data, err := io.ReadAll(input)
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}

	enc := lzstring.Base64
	if *uri {
		enc = lzstring.URIComponent
	}
	return enc, string(data), nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `qrgames - pack HTML games into data URLs and QR codes

Usage:
  qrgames encode [-root dir] <in.html> <out.txt>
  qrgames decode [-root dir] <in.txt> <out.html>
  qrgames compile [-root dir] <in.html> <out.txt>
  qrgames qr [-root dir] [-level L|M|Q|H] <project>...
  qrgames qr-pair [-root dir] <project>...
  qrgames compress [-uri] [file]
  qrgames decompress [-uri] [file]
  qrgames version
`)
}
