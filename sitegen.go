package sitegen

import (
	"strings"

	"github.com/goliatone/go-sitegen/internal/contentful"
	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/logging/gologger"
	"github.com/goliatone/go-sitegen/internal/preview"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// GeneratorService exports the static build contract.
type GeneratorService = generator.Service

// BuildOptions exports the generator build options.
type BuildOptions = generator.BuildOptions

// BuildResult exports the generator build result.
type BuildResult = generator.BuildResult

// PostView exports the resolved blog-post render model.
type PostView = generator.PostView

// StudyView exports the resolved case-study render model.
type StudyView = generator.StudyView

// PreviewServer exports the draft preview HTTP service.
type PreviewServer = preview.Server

// ContentSource exports the content query contract so callers can supply
// their own source (tests, fixtures, alternate backends).
type ContentSource = contentful.Source

// Logger exports the runtime logging contract.
type Logger = interfaces.Logger

// LoggerProvider exports the named-logger factory contract.
type LoggerProvider = interfaces.LoggerProvider

// Option overrides a module collaborator during construction.
type Option func(*overrides)

type overrides struct {
	provider LoggerProvider
	delivery ContentSource
	drafts   ContentSource
}

// WithLoggerProvider substitutes the logger provider built from the logging
// configuration.
func WithLoggerProvider(provider LoggerProvider) Option {
	return func(o *overrides) {
		o.provider = provider
	}
}

// WithDeliverySource substitutes the published-content source.
func WithDeliverySource(source ContentSource) Option {
	return func(o *overrides) {
		o.delivery = source
	}
}

// WithDraftSource substitutes the draft-content source used by the preview
// service.
func WithDraftSource(source ContentSource) Option {
	return func(o *overrides) {
		o.drafts = source
	}
}

// Module is the top-level pipeline runtime: one configured generator plus
// one preview server sharing the same resolve-and-render internals.
type Module struct {
	cfg       Config
	provider  LoggerProvider
	generator GeneratorService
	preview   *PreviewServer
	delivery  ContentSource
}

// New constructs the module from a validated configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o overrides
	for _, opt := range opts {
		opt(&o)
	}

	provider := o.provider
	if provider == nil {
		built, err := buildProvider(cfg)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	delivery := o.delivery
	if delivery == nil && cfg.Contentful.Configured() {
		delivery = contentful.NewClient(cfg.Contentful,
			contentful.WithLogger(logging.ContentfulLogger(provider)))
	}

	drafts := o.drafts
	if drafts == nil && cfg.Contentful.PreviewConfigured() {
		drafts = contentful.NewClient(cfg.Contentful,
			contentful.WithPreview(true),
			contentful.WithLogger(logging.ContentfulLogger(provider)))
	}

	return &Module{
		cfg:      cfg,
		provider: provider,
		delivery: delivery,
		generator: generator.NewService(cfg, generator.Dependencies{
			Source: delivery,
			Logger: logging.GeneratorLogger(provider),
		}),
		preview: preview.NewServer(cfg, preview.Dependencies{
			Source: drafts,
			Logger: logging.PreviewLogger(provider),
		}),
	}, nil
}

// Generator returns the static build service.
func (m *Module) Generator() GeneratorService {
	return m.generator
}

// Preview returns the draft preview server.
func (m *Module) Preview() *PreviewServer {
	return m.preview
}

// Client returns the published-content source, nil when credentials are
// absent and no override was supplied.
func (m *Module) Client() ContentSource {
	return m.delivery
}

// Logger returns a named logger from the module's provider.
func (m *Module) Logger(name string) Logger {
	return logging.ModuleLogger(m.provider, name)
}

func buildProvider(cfg Config) (LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "noop":
		return noopProvider{}, nil
	default:
		return gologger.NewProvider(gologger.Config{
			Level:     loggingLevel(cfg),
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	}
}

// loggingLevel folds the debug toggle into the configured level.
func loggingLevel(cfg Config) string {
	if cfg.Debug {
		return "debug"
	}
	return cfg.Logging.Level
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
