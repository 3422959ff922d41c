package runtimeconfig

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrOutputDirRequired indicates the generator has no destination directory.
var ErrOutputDirRequired = errors.New("sitegen config: generator output directory is required")

// ErrBaseURLRequired indicates canonical URLs cannot be built without a site base URL.
var ErrBaseURLRequired = errors.New("sitegen config: site base URL is required")

// ErrLoggingProviderUnknown indicates the logging provider name is not recognised.
var ErrLoggingProviderUnknown = errors.New("sitegen config: logging provider is invalid")

// ErrLoggingLevelInvalid indicates the configured log level is not recognised.
var ErrLoggingLevelInvalid = errors.New("sitegen config: logging level is invalid")

// ErrLoggingFormatInvalid indicates the configured log format is not recognised.
var ErrLoggingFormatInvalid = errors.New("sitegen config: logging format is invalid")

// Config aggregates the pipeline settings. The record is built once at
// process start and passed by parameter into the resolver/renderer chain;
// no component reads ambient environment state.
type Config struct {
	Contentful ContentfulConfig
	Types      TypeConfig
	Fields     FieldConfig
	Site       SiteConfig
	Generator  GeneratorConfig
	Preview    PreviewConfig
	Logging    LoggingConfig
	Debug      bool
}

// ContentfulConfig captures access to the headless content API.
type ContentfulConfig struct {
	SpaceID      string
	Environment  string
	AccessToken  string
	PreviewToken string
	Host         string
	PreviewHost  string
	Locale       string
	IncludeDepth int
}

// Configured reports whether the delivery credentials required for a
// generation run are present. Absence is not an error: callers skip the run.
func (c ContentfulConfig) Configured() bool {
	return strings.TrimSpace(c.SpaceID) != "" && strings.TrimSpace(c.AccessToken) != ""
}

// PreviewConfigured reports whether draft content can be fetched.
func (c ContentfulConfig) PreviewConfigured() bool {
	return strings.TrimSpace(c.SpaceID) != "" && strings.TrimSpace(c.PreviewToken) != ""
}

// TypeConfig lists the content-type identifiers the pipeline recognises.
// All four are independently overridable.
type TypeConfig struct {
	BlogPost     string
	CaseStudy    string
	ContentBlock string
	CTABlock     string
}

// FieldConfig overrides the field-name alias lists used when reading
// weakly-typed entry payloads. Empty lists fall back to built-in aliases.
type FieldConfig struct {
	BodyAliases []string
	FAQAliases  []string
}

// SiteConfig captures the public site identity used for canonical URLs and
// structured data.
type SiteConfig struct {
	BaseURL           string
	Name              string
	BlogBasePath      string
	CaseStudyBasePath string
}

// GeneratorConfig captures output behaviour for the static build.
type GeneratorConfig struct {
	OutputDir string
}

// PreviewConfig captures the preview HTTP service settings.
type PreviewConfig struct {
	Addr           string
	AllowedOrigins []string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the documented defaults. Credentials are left empty
// so a bare run skips cleanly instead of failing.
func DefaultConfig() Config {
	return Config{
		Contentful: ContentfulConfig{
			Environment:  "master",
			Host:         "cdn.contentful.com",
			PreviewHost:  "preview.contentful.com",
			Locale:       "*",
			IncludeDepth: 3,
		},
		Types: TypeConfig{
			BlogPost:     "blogPost",
			CaseStudy:    "caseStudy",
			ContentBlock: "contentBlock",
			CTABlock:     "ctaBlock",
		},
		Site: SiteConfig{
			BlogBasePath:      "/resources/blog",
			CaseStudyBasePath: "/resources/case-studies",
		},
		Generator: GeneratorConfig{
			OutputDir: "public",
		},
		Preview: PreviewConfig{
			Addr: ":8787",
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
	}
}

// Validate checks cross-field consistency. Credential absence is not
// validated here; it is a documented soft-skip at the CLI boundary.
func (c Config) Validate() error {
	errs := validation.Errors{}

	if strings.TrimSpace(c.Generator.OutputDir) == "" {
		errs["generator.output_dir"] = ErrOutputDirRequired
	}
	if strings.TrimSpace(c.Site.BaseURL) == "" {
		errs["site.base_url"] = ErrBaseURLRequired
	}
	if c.Contentful.IncludeDepth < 0 || c.Contentful.IncludeDepth > 10 {
		errs["contentful.include_depth"] = validation.NewError(
			"sitegen.config.include_depth_invalid",
			"include depth must be between 0 and 10")
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Provider)) {
	case "", "gologger", "noop":
	default:
		errs["logging.provider"] = ErrLoggingProviderUnknown
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		errs["logging.level"] = ErrLoggingLevelInvalid
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		errs["logging.format"] = ErrLoggingFormatInvalid
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
