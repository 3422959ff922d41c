package staticcmd_test

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	staticcmd "github.com/goliatone/go-sitegen/internal/commands/static"
	"github.com/goliatone/go-sitegen/internal/generator"
)

type fakeService struct {
	opts   generator.BuildOptions
	result *generator.BuildResult
	err    error
	calls  int
}

func (f *fakeService) Build(_ context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
	f.calls++
	f.opts = opts
	return f.result, f.err
}

func TestBuildSiteCommandValidation(t *testing.T) {
	valid := staticcmd.BuildSiteCommand{Archetypes: []string{"blog", "case-studies"}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid command rejected: %v", err)
	}

	invalid := staticcmd.BuildSiteCommand{Archetypes: []string{"newsletter"}}
	if err := invalid.Validate(); err == nil {
		t.Fatal("unknown archetype must fail validation")
	}
}

func TestBuildSiteHandlerRejectsInvalidMessage(t *testing.T) {
	svc := &fakeService{}
	handler := staticcmd.NewBuildSiteHandler(svc, nil)

	err := handler.Execute(context.Background(), staticcmd.BuildSiteCommand{
		Archetypes: []string{"newsletter"},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if svc.calls != 0 {
		t.Fatal("invalid message must not reach the service")
	}
}

func TestBuildSiteHandlerExecutesBuild(t *testing.T) {
	svc := &fakeService{result: &generator.BuildResult{BuildID: uuid.New(), PagesBuilt: 3}}
	handler := staticcmd.NewBuildSiteHandler(svc, nil)

	var captured *generator.BuildResult
	err := handler.Execute(context.Background(), staticcmd.BuildSiteCommand{
		Archetypes: []string{"blog"},
		DryRun:     true,
		ResultCallback: func(env staticcmd.ResultEnvelope) {
			captured = env.Result
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if svc.calls != 1 || !svc.opts.DryRun {
		t.Fatalf("build options not forwarded: %+v", svc.opts)
	}
	if len(svc.opts.Archetypes) != 1 || svc.opts.Archetypes[0] != "blog" {
		t.Fatalf("archetype filter not forwarded: %+v", svc.opts.Archetypes)
	}
	if captured == nil || captured.PagesBuilt != 3 {
		t.Fatalf("result callback not invoked: %+v", captured)
	}
}

func TestBuildSiteHandlerWrapsExecuteError(t *testing.T) {
	svc := &fakeService{err: errors.New("upstream down")}
	handler := staticcmd.NewBuildSiteHandler(svc, nil)

	err := handler.Execute(context.Background(), staticcmd.BuildSiteCommand{})
	if err == nil {
		t.Fatal("expected execute error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}
