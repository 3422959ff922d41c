package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	sitegen "github.com/goliatone/go-sitegen"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	configPath := flag.String("config", "", "path to an optional YAML config file")
	flag.Parse()

	cfg := sitegen.DefaultConfig()
	if *configPath != "" {
		if err := applyFile(&cfg, *configPath); err != nil {
			log.Fatalf("preview: load config %s: %v", *configPath, err)
		}
	}
	applyEnv(&cfg)
	if *addr != "" {
		cfg.Preview.Addr = *addr
	}
	if cfg.Site.BaseURL == "" {
		// The preview service only needs a base URL for canonical fields.
		cfg.Site.BaseURL = "http://localhost"
	}

	module, err := sitegen.New(cfg)
	if err != nil {
		log.Fatalf("preview: %v", err)
	}
	if !cfg.Contentful.PreviewConfigured() {
		log.Println("preview: draft credentials absent, /api/preview will report not_configured")
	}

	server := &http.Server{
		Addr:              cfg.Preview.Addr,
		Handler:           module.Preview().Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("preview: listening on %s", cfg.Preview.Addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("preview: %v", err)
		}
	case sig := <-stop:
		log.Printf("preview: received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("preview: shutdown: %v", err)
		}
	}
}

// fileConfig mirrors the subset of the YAML layout the preview service reads.
type fileConfig struct {
	Contentful struct {
		SpaceID      string `yaml:"space_id"`
		Environment  string `yaml:"environment"`
		PreviewToken string `yaml:"preview_token"`
		Locale       string `yaml:"locale"`
	} `yaml:"contentful"`
	Site struct {
		BaseURL string `yaml:"base_url"`
		Name    string `yaml:"name"`
	} `yaml:"site"`
	Preview struct {
		Addr           string   `yaml:"addr"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"preview"`
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
	overlay(&cfg.Contentful.PreviewToken, file.Contentful.PreviewToken)
	overlay(&cfg.Contentful.Locale, file.Contentful.Locale)
	overlay(&cfg.Site.BaseURL, file.Site.BaseURL)
	overlay(&cfg.Site.Name, file.Site.Name)
	overlay(&cfg.Preview.Addr, file.Preview.Addr)
	if len(file.Preview.AllowedOrigins) > 0 {
		cfg.Preview.AllowedOrigins = file.Preview.AllowedOrigins
	}
	overlay(&cfg.Logging.Provider, file.Logging.Provider)
	overlay(&cfg.Logging.Level, file.Logging.Level)
	overlay(&cfg.Logging.Format, file.Logging.Format)
	return nil
}

func applyEnv(cfg *sitegen.Config) {
	overlay(&cfg.Contentful.SpaceID, os.Getenv("CONTENTFUL_SPACE_ID"))
	overlay(&cfg.Contentful.PreviewToken, os.Getenv("CONTENTFUL_PREVIEW_TOKEN"))
	overlay(&cfg.Contentful.Environment, os.Getenv("CONTENTFUL_ENVIRONMENT"))
	overlay(&cfg.Site.BaseURL, os.Getenv("SITE_BASE_URL"))
}

func overlay(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = value
	}
}
