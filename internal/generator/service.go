package generator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitegen/internal/contentful"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// ErrSourceRequired indicates the generator was wired without a content source.
var ErrSourceRequired = errors.New("sitegen generator: content source is required")

// Archetype identifiers accepted in BuildOptions.Archetypes.
const (
	ArchetypeBlog      = "blog"
	ArchetypeCaseStudy = "case-studies"
)

// Service describes the static build contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
}

// BuildOptions narrows the scope of one generation run.
type BuildOptions struct {
	DryRun     bool
	Archetypes []string
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	BuildID      uuid.UUID
	PagesBuilt   int
	PagesSkipped int
	Duration     time.Duration
	Errors       []error
	Diagnostics  []RenderDiagnostic
	DryRun       bool
}

// RenderDiagnostic records per-page timing, skips, and errors.
type RenderDiagnostic struct {
	Archetype string
	Slug      string
	Path      string
	Duration  time.Duration
	Skipped   bool
	Err       error
}

// Dependencies lists the collaborators required by the generator.
type Dependencies struct {
	Source contentful.Source
	Logger interfaces.Logger
}

// NewService wires a generator with the provided configuration and
// dependencies.
func NewService(cfg runtimeconfig.Config, deps Dependencies) Service {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	templates, err := newPageTemplates()
	return &service{
		cfg:       cfg,
		source:    deps.Source,
		logger:    logger,
		assembler: NewAssembler(cfg, logger),
		templates: templates,
		tmplErr:   err,
		now:       time.Now,
	}
}

type service struct {
	cfg       runtimeconfig.Config
	source    contentful.Source
	logger    interfaces.Logger
	assembler *Assembler
	templates *pageTemplates
	tmplErr   error
	now       func() time.Time
}

// Build runs one full fetch-resolve-render-write pass. The blog query is
// required; a case-study query failure degrades to an empty set.
func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.source == nil {
		return nil, ErrSourceRequired
	}
	if s.tmplErr != nil {
		return nil, s.tmplErr
	}

	start := s.now()
	result := &BuildResult{BuildID: uuid.New(), DryRun: opts.DryRun}

	buildBlog := wantsArchetype(opts.Archetypes, ArchetypeBlog)
	buildStudies := wantsArchetype(opts.Archetypes, ArchetypeCaseStudy)

	var wg sync.WaitGroup
	var blogCol, studyCol *contentful.Collection
	var blogErr, studyErr error
	if buildBlog {
		wg.Add(1)
		go func() {
			defer wg.Done()
			blogCol, blogErr = s.source.GetEntries(ctx, contentful.Query{
				ContentType: s.cfg.Types.BlogPost,
				Order:       "-fields.publishedDate",
				Locale:      s.cfg.Contentful.Locale,
				Include:     s.cfg.Contentful.IncludeDepth,
			})
		}()
	}
	if buildStudies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			studyCol, studyErr = s.source.GetEntries(ctx, contentful.Query{
				ContentType: s.cfg.Types.CaseStudy,
				Order:       "-sys.createdAt",
				Locale:      s.cfg.Contentful.Locale,
				Include:     s.cfg.Contentful.IncludeDepth,
			})
		}()
	}
	wg.Wait()

	if blogErr != nil {
		return nil, goerrors.Wrap(blogErr, goerrors.CategoryCommand,
			"sitegen generator: blog query failed").WithTextCode("BLOG_FETCH_FAILED")
	}
	if studyErr != nil {
		s.logger.Warn("generator.fetch.case_studies_failed", "error", studyErr)
		result.Errors = append(result.Errors, studyErr)
		studyCol = &contentful.Collection{}
	}

	writer := newArtifactWriter(opts.DryRun)
	if err := writer.EnsureDir(ctx, s.cfg.Generator.OutputDir); err != nil {
		return nil, err
	}

	if buildBlog {
		s.buildBlog(ctx, writer, blogCol, result)
	}
	if buildStudies {
		s.buildStudies(ctx, writer, studyCol, result)
	}

	result.Duration = s.now().Sub(start)
	s.logger.Info("generator.build.done",
		"build_id", result.BuildID.String(),
		"pages_built", result.PagesBuilt,
		"pages_skipped", result.PagesSkipped,
		"errors", len(result.Errors),
		"dry_run", result.DryRun,
		"duration", result.Duration.String(),
	)
	return result, nil
}

func (s *service) buildBlog(ctx context.Context, writer artifactWriter, col *contentful.Collection, result *BuildResult) {
	var items []indexItem
	for i := range col.Items {
		entry := &col.Items[i]
		pageStart := s.now()
		view := s.assembler.BlogPost(entry, col.Includes, col.Items)
		if view == nil || view.Slug == "" {
			result.PagesSkipped++
			result.Diagnostics = append(result.Diagnostics, RenderDiagnostic{
				Archetype: ArchetypeBlog,
				Skipped:   true,
				Duration:  s.now().Sub(pageStart),
			})
			s.logger.Warn("generator.blog.skipped_no_slug", "entry_id", entry.Sys.ID)
			continue
		}

		path := pageOutputPath(s.cfg.Generator.OutputDir, blogOutputDir, view.Slug)
		s.emitPage(ctx, writer, result, RenderDiagnostic{
			Archetype: ArchetypeBlog,
			Slug:      view.Slug,
			Path:      path,
		}, pageStart, func() ([]byte, error) { return s.renderPostPage(view) })

		items = append(items, indexItem{
			Title:   view.Title,
			URL:     view.CanonicalURL,
			Excerpt: view.Excerpt,
			Date:    view.PublishedDate,
		})
	}

	s.emitIndex(ctx, writer, result, ArchetypeBlog,
		pageOutputPath(s.cfg.Generator.OutputDir, blogOutputDir, ""),
		"Blog", s.assembler.URLs().BlogIndexURL(), items)
}

func (s *service) buildStudies(ctx context.Context, writer artifactWriter, col *contentful.Collection, result *BuildResult) {
	var items []indexItem
	for i := range col.Items {
		entry := &col.Items[i]
		pageStart := s.now()
		view := s.assembler.CaseStudy(entry, col.Includes, col.Items)
		if view == nil || view.Slug == "" {
			result.PagesSkipped++
			result.Diagnostics = append(result.Diagnostics, RenderDiagnostic{
				Archetype: ArchetypeCaseStudy,
				Skipped:   true,
				Duration:  s.now().Sub(pageStart),
			})
			s.logger.Warn("generator.case_studies.skipped_no_slug", "entry_id", entry.Sys.ID)
			continue
		}

		path := pageOutputPath(s.cfg.Generator.OutputDir, studyOutputDir, view.Slug)
		s.emitPage(ctx, writer, result, RenderDiagnostic{
			Archetype: ArchetypeCaseStudy,
			Slug:      view.Slug,
			Path:      path,
		}, pageStart, func() ([]byte, error) { return s.renderStudyPage(view) })

		items = append(items, indexItem{
			Title:   view.Title,
			URL:     view.CanonicalURL,
			Excerpt: view.Excerpt,
			Date:    view.PublishedDate,
		})
	}

	s.emitIndex(ctx, writer, result, ArchetypeCaseStudy,
		pageOutputPath(s.cfg.Generator.OutputDir, studyOutputDir, ""),
		"Case Studies", s.assembler.URLs().CaseStudyIndexURL(), items)
}

func (s *service) emitPage(ctx context.Context, writer artifactWriter, result *BuildResult, diag RenderDiagnostic, start time.Time, render func() ([]byte, error)) {
	data, err := render()
	if err == nil {
		err = writer.WriteFile(ctx, diag.Path, data)
	}
	diag.Duration = s.now().Sub(start)
	diag.Err = err
	result.Diagnostics = append(result.Diagnostics, diag)
	if err != nil {
		result.Errors = append(result.Errors, err)
		s.logger.Error("generator.page.failed", "archetype", diag.Archetype, "slug", diag.Slug, "error", err)
		return
	}
	result.PagesBuilt++
	s.logger.Debug("generator.page.written", "archetype", diag.Archetype, "path", diag.Path)
}

func (s *service) emitIndex(ctx context.Context, writer artifactWriter, result *BuildResult, archetype, path, heading, canonical string, items []indexItem) {
	start := s.now()
	s.emitPage(ctx, writer, result, RenderDiagnostic{
		Archetype: archetype,
		Path:      path,
	}, start, func() ([]byte, error) { return s.renderIndexPage(heading, canonical, items) })
}

// wantsArchetype treats an empty filter as "build everything".
func wantsArchetype(filter []string, archetype string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, name := range filter {
		if strings.EqualFold(strings.TrimSpace(name), archetype) {
			return true
		}
	}
	return false
}
