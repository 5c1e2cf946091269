package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/qrgames/core/loader"
	"github.com/dmitrymomot/qrgames/core/logger"
	"github.com/dmitrymomot/qrgames/core/storage"
	"github.com/dmitrymomot/qrgames/pkg/async"
	"github.com/dmitrymomot/qrgames/pkg/dataurl"
	"github.com/dmitrymomot/qrgames/pkg/qrcode"
)

// Service converts game pages to data URLs and renders QR codes, reading and
// writing files through a Storage.
type Service struct {
	store       storage.Storage
	logger      *slog.Logger
	level       qrcode.Level
	ppm         int
	concurrency int
	title       string
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLevel sets the error correction level of GenerateQR (default Low).
func WithLevel(level qrcode.Level) Option {
	return func(s *Service) {
		s.level = level
	}
}

func WithPixelsPerModule(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.ppm = n
		}
	}
}

// WithConcurrency bounds how many projects GenerateAll works on at once.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithLoaderTitle sets the title of pages built by Compile.
func WithLoaderTitle(title string) Option {
	return func(s *Service) {
		s.title = title
	}
}

// New creates a Service on top of store.
func New(store storage.Storage, opts ...Option) *Service {
	cfg := DefaultConfig()
	s := &Service{
		store:       store,
		logger:      slog.New(slog.DiscardHandler),
		level:       cfg.Level,
		ppm:         cfg.PixelsPerModule,
		concurrency: cfg.Concurrency,
		title:       cfg.LoaderTitle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig creates a Service on local storage rooted at cfg.Root.
// Options are applied after the config values.
func NewFromConfig(cfg Config, opts ...Option) *Service {
	base := []Option{
		WithLevel(cfg.Level),
		WithPixelsPerModule(cfg.PixelsPerModule),
		WithConcurrency(cfg.Concurrency),
	}
	if cfg.LoaderTitle != "" {
		base = append(base, WithLoaderTitle(cfg.LoaderTitle))
	}
	root := cfg.Root
	if root == "" {
		root = "."
	}
	return New(storage.NewLocalStorage(root), append(base, opts...)...)
}

// Encode reads an HTML file and writes it as a data URL to out.
func (s *Service) Encode(ctx context.Context, in, out string) (string, error) {
	html, err := storage.ReadText(ctx, s.store, in)
	if err != nil {
		return "", err
	}

	url := dataurl.EncodeHTML(html)
	if err := storage.WriteText(ctx, s.store, out, url); err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "encoded html to data url",
		logger.Action("encode"),
		logger.Path(in),
		logger.Key("output", out),
		logger.Size("url_length", len(url)),
	)
	return url, nil
}

// Decode reads a text/html data URL from in and writes the HTML document to out.
func (s *Service) Decode(ctx context.Context, in, out string) (string, error) {
	url, err := storage.ReadText(ctx, s.store, in)
	if err != nil {
		return "", err
	}

	html, err := dataurl.DecodeHTML(url)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidDataURL, in, err)
	}
	if err := storage.WriteText(ctx, s.store, out, html); err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "decoded data url to html",
		logger.Action("decode"),
		logger.Path(in),
		logger.Key("output", out),
		logger.Size("html_length", len(html)),
	)
	return html, nil
}

// Compile reads an HTML file, wraps it in a self-decompressing loader page and
// writes the page's data URL to out. The report compares it with Encode's output.
func (s *Service) Compile(ctx context.Context, in, out string) (loader.Report, error) {
	start := time.Now()

	html, err := storage.ReadText(ctx, s.store, in)
	if err != nil {
		return loader.Report{}, err
	}

	page, err := loader.Build(html, loader.WithTitle(s.title))
	if err != nil {
		return loader.Report{}, fmt.Errorf("%s: %w", in, err)
	}
	if err := storage.WriteText(ctx, s.store, out, page.DataURL); err != nil {
		return loader.Report{}, err
	}

	report := loader.Compare(html, page)
	s.logger.InfoContext(ctx, "compiled loader page",
		logger.Action("compile"),
		logger.Path(in),
		logger.Key("output", out),
		logger.Size("original_length", report.OriginalLength),
		logger.Size("loader_length", report.LoaderLength),
		logger.Ratio("reduction_pct", report.Percent()),
		logger.Elapsed(start),
	)
	return report, nil
}

// GenerateQR renders <name>/url/url.txt, which must hold a text/html data URL,
// into <name>/img/qr_code.png.
func (s *Service) GenerateQR(ctx context.Context, name string) (*qrcode.Code, error) {
	layout, err := NewLayout(name)
	if err != nil {
		return nil, err
	}

	url, err := s.readURL(ctx, layout.URL())
	if err != nil {
		return nil, err
	}
	if !dataurl.IsHTML(url) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDataURL, layout.URL())
	}

	code, err := qrcode.Generate(url, qrcode.WithLevel(s.level), qrcode.WithPixelsPerModule(s.ppm))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", layout.URL(), err)
	}
	if err := storage.WriteBytes(ctx, s.store, layout.QRCode(), code.PNG); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "saved qr code",
		logger.Project(layout.Name),
		logger.Path(layout.QRCode()),
		logger.Key("level", code.Level.String()),
		logger.Count("version", code.Version),
	)
	return code, nil
}

// QRPair holds the two renderings of a hosted URL.
type QRPair struct {
	Smallest *qrcode.Code
	Reliable *qrcode.Code
}

// GenerateQRPair renders <name>/url/url_github.txt twice, concurrently: at
// level L for the smallest symbol and at level H for the most reliable one.
func (s *Service) GenerateQRPair(ctx context.Context, name string) (QRPair, error) {
	layout, err := NewLayout(name)
	if err != nil {
		return QRPair{}, err
	}

	url, err := s.readURL(ctx, layout.GitHubURL())
	if err != nil {
		return QRPair{}, err
	}

	render := func(_ context.Context, level qrcode.Level) (*qrcode.Code, error) {
		return qrcode.Generate(url, qrcode.WithLevel(level), qrcode.WithPixelsPerModule(s.ppm))
	}
	codes, err := async.WaitAll(
		async.Async(ctx, qrcode.Low, render),
		async.Async(ctx, qrcode.Highest, render),
	)
	if err != nil {
		return QRPair{}, fmt.Errorf("%s: %w", layout.GitHubURL(), err)
	}

	pair := QRPair{Smallest: codes[0], Reliable: codes[1]}
	// smallest first, then reliable
	outputs := []struct {
		path string
		code *qrcode.Code
	}{
		{layout.QRSmallest(), pair.Smallest},
		{layout.QRReliable(), pair.Reliable},
	}
	for _, out := range outputs {
		if err := storage.WriteBytes(ctx, s.store, out.path, out.code.PNG); err != nil {
			return QRPair{}, err
		}
		s.logger.InfoContext(ctx, "saved qr code",
			logger.Project(layout.Name),
			logger.Path(out.path),
			logger.Key("level", out.code.Level.String()),
			logger.Count("version", out.code.Version),
		)
	}
	return pair, nil
}

// GenerateAll runs GenerateQR for every project, a bounded number at a time.
// The first failure cancels the remaining work.
func (s *Service) GenerateAll(ctx context.Context, names ...string) error {
	return s.forEach(ctx, names, func(ctx context.Context, name string) error {
		_, err := s.GenerateQR(ctx, name)
		return err
	})
}

// GenerateAllPairs runs GenerateQRPair for every project.
func (s *Service) GenerateAllPairs(ctx context.Context, names ...string) error {
	return s.forEach(ctx, names, func(ctx context.Context, name string) error {
		_, err := s.GenerateQRPair(ctx, name)
		return err
	})
}

func (s *Service) forEach(ctx context.Context, names []string, fn func(context.Context, string) error) error {
	if len(names) == 0 {
		return ErrNoProjects
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, name := range names {
		g.Go(func() error {
			if err := fn(ctx, name); err != nil {
				s.logger.ErrorContext(ctx, "project failed", logger.Project(name), logger.Error(err))
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// readURL reads a URL file and trims surrounding whitespace.
func (s *Service) readURL(ctx context.Context, path string) (string, error) {
	text, err := storage.ReadText(ctx, s.store, path)
	if err != nil {
		return "", err
	}
	url := strings.TrimSpace(text)
	if url == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyURL, path)
	}
	return url, nil
}
