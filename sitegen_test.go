package sitegen_test

import (
	"context"
	"testing"

	sitegen "github.com/goliatone/go-sitegen"
	"github.com/goliatone/go-sitegen/internal/contentful"
)

type emptySource struct {
	calls int
}

func (s *emptySource) GetEntries(_ context.Context, _ contentful.Query) (*contentful.Collection, error) {
	s.calls++
	return &contentful.Collection{}, nil
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := sitegen.DefaultConfig()
	// No site base URL configured.
	if _, err := sitegen.New(cfg); err == nil {
		t.Fatal("expected validation error for missing base URL")
	}
}

func TestModuleWiresGeneratorAndPreview(t *testing.T) {
	cfg := sitegen.DefaultConfig()
	cfg.Site.BaseURL = "https://example.com"
	cfg.Generator.OutputDir = t.TempDir()
	cfg.Logging.Provider = "noop"

	source := &emptySource{}
	module, err := sitegen.New(cfg, sitegen.WithDeliverySource(source))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	if module.Client() == nil {
		t.Fatal("delivery override must be exposed")
	}
	if module.Preview() == nil {
		t.Fatal("preview server must always be constructed")
	}

	result, err := module.Generator().Build(context.Background(), sitegen.BuildOptions{DryRun: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// Empty collections still produce the two index pages.
	if result.PagesBuilt != 2 {
		t.Fatalf("pages built = %d, want 2", result.PagesBuilt)
	}
	if source.calls != 2 {
		t.Fatalf("expected 2 fetches (blog + case studies), got %d", source.calls)
	}
}

func TestModuleWithoutCredentialsHasNoClient(t *testing.T) {
	cfg := sitegen.DefaultConfig()
	cfg.Site.BaseURL = "https://example.com"
	cfg.Logging.Provider = "noop"

	module, err := sitegen.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	if module.Client() != nil {
		t.Fatal("client must be nil when credentials are absent")
	}
}
