package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/artdoc"
	"github.com/fwojciec/artdoc/fs"
	"github.com/fwojciec/artdoc/gemini"
	"github.com/fwojciec/artdoc/goldmark"
	"github.com/fwojciec/artdoc/goquery"
	"github.com/fwojciec/artdoc/htmltomarkdown"
	arthttp "github.com/fwojciec/artdoc/http"
	"github.com/fwojciec/artdoc/illustrate"
	"github.com/fwojciec/artdoc/imaging"
	artopenai "github.com/fwojciec/artdoc/openai"
	artslog "github.com/fwojciec/artdoc/slog"
	"github.com/fwojciec/artdoc/trafilatura"
	"github.com/google/uuid"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Environ replaces the process environment when non-nil.
	Environ map[string]string

	// DotEnv is loaded into the process environment before it is read.
	// A missing file is not an error.
	DotEnv string

	// Collaborators for end-to-end testing. When set they replace the
	// configured providers.
	HTMLGenerator  artdoc.HTMLGenerator
	ImageGenerator artdoc.ImageGenerator
	Fetcher        artdoc.Fetcher
	Downloader     artdoc.Downloader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DotEnv: ".env",
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("artdoc"),
		kong.Description("Turn articles into illustrated HTML pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'artdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(m.Environ, m.DotEnv)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", artdoc.ErrorMessage(err))
		return err
	}
	applyFlags(cfg, cli)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", artdoc.ErrorMessage(err))
		return err
	}

	var logger *slog.Logger
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil)).With("run", uuid.NewString())
	}

	il := &illustrate.Illustrator{
		Files:        fs.NewFileService(),
		Placeholders: goquery.NewPlaceholderService(),
		Limiter:      illustrate.NewRateLimiter(cfg.RequestsPerMinute),
	}
	deps.Illustrator = il

	// Wire command-specific dependencies based on command
	switch kongCtx.Command() {
	case "generate-html":
		html, err := m.htmlGenerator(ctx, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", artdoc.ErrorMessage(err))
			return err
		}
		fetcher := m.fetcher(cfg)
		if logger != nil {
			html = artslog.NewLoggingHTMLGenerator(html, logger)
			fetcher = artslog.NewLoggingFetcher(fetcher, logger)
		}
		il.HTML = html
		il.Fetcher = fetcher
		il.Extractor = trafilatura.NewExtractor()
		il.Converter = htmltomarkdown.NewConverter()

	case "generate-images":
		if cli.GenerateImages.MaxWidth < 0 {
			err := artdoc.Errorf(artdoc.EINVALID, "--max-width must not be negative")
			fmt.Fprintf(stderr, "error: %s\n", artdoc.ErrorMessage(err))
			return err
		}
		images, err := m.imageGenerator(ctx, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", artdoc.ErrorMessage(err))
			return err
		}
		downloader := m.downloader(cfg)
		if logger != nil {
			images = artslog.NewLoggingImageGenerator(images, logger)
			downloader = artslog.NewLoggingDownloader(downloader, logger)
		}

		var opts []fs.ImageStoreOption
		if cli.GenerateImages.MaxWidth > 0 {
			opts = append(opts, fs.WithResizer(imaging.NewResizer(), cli.GenerateImages.MaxWidth))
		}
		var store artdoc.ImageStore = fs.NewImageStore(filepath.Dir(cli.GenerateImages.HTML), downloader, opts...)
		if logger != nil {
			store = artslog.NewLoggingImageStore(store, logger)
		}

		il.Images = images
		il.Store = store

	case "create-preview":
		il.Splicer = goquery.NewSplicer()

	case "export-markdown":
		il.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

// applyFlags copies command-line overrides onto cfg.
func applyFlags(cfg *Config, cli *CLI) {
	if cli.Debug {
		cfg.Debug = true
	}
	if cli.GenerateHTML.Provider != "" {
		cfg.Provider = cli.GenerateHTML.Provider
	}
	if cli.GenerateImages.ImageProvider != "" {
		cfg.ImageProvider = cli.GenerateImages.ImageProvider
	}
	if cli.GenerateImages.Size != "" {
		cfg.ImageSize = cli.GenerateImages.Size
	}
}

func (m *Main) htmlGenerator(ctx context.Context, cfg *Config) (artdoc.HTMLGenerator, error) {
	if m.HTMLGenerator != nil {
		return m.HTMLGenerator, nil
	}

	switch cfg.Provider {
	case ProviderMarkdown:
		return goldmark.NewHTMLGenerator(), nil
	case ProviderGemini:
		client, err := newGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return gemini.NewHTMLGenerator(client, cfg.TextModel), nil
	default:
		client, err := newOpenAIClient(cfg)
		if err != nil {
			return nil, err
		}
		return artopenai.NewHTMLGenerator(client, cfg.TextModel), nil
	}
}

func (m *Main) imageGenerator(ctx context.Context, cfg *Config) (artdoc.ImageGenerator, error) {
	if m.ImageGenerator != nil {
		return m.ImageGenerator, nil
	}

	switch cfg.ImageProvider {
	case ProviderGemini:
		client, err := newGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return gemini.NewImageGenerator(client, cfg.ImageModel, cfg.ImageSize), nil
	default:
		client, err := newOpenAIClient(cfg)
		if err != nil {
			return nil, err
		}
		return artopenai.NewImageGenerator(client, cfg.ImageModel, cfg.ImageSize), nil
	}
}

func (m *Main) fetcher(cfg *Config) artdoc.Fetcher {
	if m.Fetcher != nil {
		return m.Fetcher
	}
	return arthttp.NewFetcher(arthttp.WithTimeout(cfg.Timeout))
}

func (m *Main) downloader(cfg *Config) artdoc.Downloader {
	if m.Downloader != nil {
		return m.Downloader
	}
	return arthttp.NewFetcher(arthttp.WithTimeout(cfg.Timeout))
}

func newOpenAIClient(cfg *Config) (openai.Client, error) {
	key, err := cfg.APIKey(ProviderOpenAI)
	if err != nil {
		return openai.Client{}, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(key),
		option.WithRequestTimeout(cfg.Timeout),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	return openai.NewClient(opts...), nil
}

func newGeminiClient(ctx context.Context, cfg *Config) (*genai.Client, error) {
	key, err := cfg.APIKey(ProviderGemini)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})
	if err != nil {
		return nil, artdoc.Errorf(artdoc.EINTERNAL, "failed to connect to Gemini API: %v", err)
	}
	return client, nil
}
