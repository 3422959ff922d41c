package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	sitegen "github.com/goliatone/go-sitegen"
	staticcmd "github.com/goliatone/go-sitegen/internal/commands/static"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML config file")
	outDir := flag.String("out", "", "output directory (overrides config)")
	dryRun := flag.Bool("dry-run", false, "render pages without writing artifacts")
	archetypes := flag.String("archetypes", "", "comma-separated archetypes to build (blog, case-studies)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg := sitegen.DefaultConfig()
	if *configPath != "" {
		if err := applyFile(&cfg, *configPath); err != nil {
			log.Fatalf("sitegen: load config %s: %v", *configPath, err)
		}
	}
	applyEnv(&cfg)
	if *outDir != "" {
		cfg.Generator.OutputDir = *outDir
	}
	cfg.Debug = *debug

	// Credential absence is a documented soft skip, not a failure.
	if !cfg.Contentful.Configured() {
		log.Println("sitegen: content credentials absent, skipping generation")
		return
	}

	module, err := sitegen.New(cfg)
	if err != nil {
		log.Fatalf("sitegen: %v", err)
	}

	var result *sitegen.BuildResult
	handler := staticcmd.NewBuildSiteHandler(module.Generator(), module.Logger("sitegen.commands"))
	cmd := staticcmd.BuildSiteCommand{
		DryRun:     *dryRun,
		Archetypes: splitList(*archetypes),
		ResultCallback: func(env staticcmd.ResultEnvelope) {
			result = env.Result
		},
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		log.Fatalf("sitegen: build failed: %v", err)
	}
	if result != nil {
		log.Printf("sitegen: built %d pages (%d skipped, %d errors) in %s",
			result.PagesBuilt, result.PagesSkipped, len(result.Errors), result.Duration)
	}
}

// fileConfig mirrors the YAML layout accepted by -config. Every field is
// optional and overlays the defaults.
type fileConfig struct {
	Contentful struct {
		SpaceID      string `yaml:"space_id"`
		Environment  string `yaml:"environment"`
		AccessToken  string `yaml:"access_token"`
		PreviewToken string `yaml:"preview_token"`
		Locale       string `yaml:"locale"`
		IncludeDepth *int   `yaml:"include_depth"`
	} `yaml:"contentful"`
	Types struct {
		BlogPost     string `yaml:"blog_post"`
		CaseStudy    string `yaml:"case_study"`
		ContentBlock string `yaml:"content_block"`
		CTABlock     string `yaml:"cta_block"`
	} `yaml:"types"`
	Fields struct {
		BodyAliases []string `yaml:"body_aliases"`
		FAQAliases  []string `yaml:"faq_aliases"`
	} `yaml:"fields"`
	Site struct {
		BaseURL           string `yaml:"base_url"`
		Name              string `yaml:"name"`
		BlogBasePath      string `yaml:"blog_base_path"`
		CaseStudyBasePath string `yaml:"case_study_base_path"`
	} `yaml:"site"`
	Generator struct {
		OutputDir string `yaml:"output_dir"`
	} `yaml:"generator"`
	Logging struct {
		Provider string `yaml:"provider"`
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
	} `yaml:"logging"`
}

func applyFile(cfg *sitegen.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	overlay(&cfg.Contentful.SpaceID, file.Contentful.SpaceID)
	overlay(&cfg.Contentful.Environment, file.Contentful.Environment)
	overlay(&cfg.Contentful.AccessToken, file.Contentful.AccessToken)
	overlay(&cfg.Contentful.PreviewToken, file.Contentful.PreviewToken)
	overlay(&cfg.Contentful.Locale, file.Contentful.Locale)
	if file.Contentful.IncludeDepth != nil {
		cfg.Contentful.IncludeDepth = *file.Contentful.IncludeDepth
	}

	overlay(&cfg.Types.BlogPost, file.Types.BlogPost)
	overlay(&cfg.Types.CaseStudy, file.Types.CaseStudy)
	overlay(&cfg.Types.ContentBlock, file.Types.ContentBlock)
	overlay(&cfg.Types.CTABlock, file.Types.CTABlock)

	if len(file.Fields.BodyAliases) > 0 {
		cfg.Fields.BodyAliases = file.Fields.BodyAliases
	}
	if len(file.Fields.FAQAliases) > 0 {
		cfg.Fields.FAQAliases = file.Fields.FAQAliases
	}

	overlay(&cfg.Site.BaseURL, file.Site.BaseURL)
	overlay(&cfg.Site.Name, file.Site.Name)
	overlay(&cfg.Site.BlogBasePath, file.Site.BlogBasePath)
	overlay(&cfg.Site.CaseStudyBasePath, file.Site.CaseStudyBasePath)

	overlay(&cfg.Generator.OutputDir, file.Generator.OutputDir)

	overlay(&cfg.Logging.Provider, file.Logging.Provider)
	overlay(&cfg.Logging.Level, file.Logging.Level)
	overlay(&cfg.Logging.Format, file.Logging.Format)
	return nil
}

func applyEnv(cfg *sitegen.Config) {
	overlay(&cfg.Contentful.SpaceID, os.Getenv("CONTENTFUL_SPACE_ID"))
	overlay(&cfg.Contentful.AccessToken, os.Getenv("CONTENTFUL_ACCESS_TOKEN"))
	overlay(&cfg.Contentful.PreviewToken, os.Getenv("CONTENTFUL_PREVIEW_TOKEN"))
	overlay(&cfg.Contentful.Environment, os.Getenv("CONTENTFUL_ENVIRONMENT"))
	overlay(&cfg.Site.BaseURL, os.Getenv("SITE_BASE_URL"))
}

func overlay(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = value
	}
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
