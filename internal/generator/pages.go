package generator

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/goliatone/go-sitegen/internal/blocks"
	"github.com/goliatone/go-sitegen/internal/contentful"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/richtext"
	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
	"github.com/goliatone/go-sitegen/internal/seo"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// Field alias tables for the page-level archetypes. Block-level aliases
// live in the blocks package.
var (
	slugAliases       = []string{"slug", "urlSlug", "url_slug"}
	titleAliases      = []string{"title", "name"}
	excerptAliases    = []string{"excerpt", "summary", "description"}
	publishedAliases  = []string{"publishedDate", "published_date", "publishDate", "date"}
	blockListAliases  = []string{"contentBlocks", "content_blocks", "blocks", "sections"}
	seoRefAliases     = []string{"seo", "seoMetadata", "seo_metadata"}
	authorRefAliases  = []string{"author", "writer"}
	clientAliases     = []string{"clientName", "client", "company"}
	industryAliases   = []string{"industry", "sector"}
	resultListAliases = []string{"results", "metrics", "stats"}
	resultValueAlias  = []string{"value", "metric", "stat", "number"}
	resultLabelAlias  = []string{"label", "description", "caption", "title"}
	defaultFAQAliases = []string{"faq", "faqs", "faqContent", "faq_content"}
)

// PostView is the fully-resolved render model for one blog post.
type PostView struct {
	ID            string
	Slug          string
	Title         string
	Excerpt       string
	BodyHTML      string
	PublishedISO  string
	PublishedDate string
	UpdatedISO    string
	Author        *seo.Author
	AuthorBioHTML string
	Meta          seo.Metadata
	CanonicalURL  string
	FeaturedImage string
	FAQPairs      []richtext.FAQPair
}

// Result is one metric entry on a case study (e.g. "+40%" / "conversion
// uplift").
type Result struct {
	Value string
	Label string
}

// StudyView is the render model for one case study.
type StudyView struct {
	PostView
	ClientName string
	Industry   string
	Results    []Result
}

// Assembler runs the resolve-and-render pipeline for one entry at a time.
// It carries no per-run state: every call is a pure function of the entry
// and the snapshot pools.
type Assembler struct {
	cfg      runtimeconfig.Config
	blocks   *blocks.Renderer
	urls     *seo.URLBuilder
	markdown goldmark.Markdown
	logger   interfaces.Logger
}

// NewAssembler wires the block renderer and URL builder for the configured
// site.
func NewAssembler(cfg runtimeconfig.Config, logger interfaces.Logger) *Assembler {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Assembler{
		cfg: cfg,
		blocks: blocks.NewRenderer(blocks.Config{
			ContentBlockType: cfg.Types.ContentBlock,
			CTABlockType:     cfg.Types.CTABlock,
			BodyAliases:      cfg.Fields.BodyAliases,
		}, logger),
		urls: seo.NewURLBuilder(cfg.Site),
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		logger: logger,
	}
}

// URLs exposes the assembler's canonical URL builder.
func (a *Assembler) URLs() *seo.URLBuilder {
	return a.urls
}

// BlogPost resolves and renders one blog entry into a PostView.
func (a *Assembler) BlogPost(entry *contentful.Entry, includes contentful.Includes, items []contentful.Entry) *PostView {
	if entry == nil {
		return nil
	}
	view := a.basePage(entry, includes, items)
	if view.Meta.CanonicalURL != "" {
		view.CanonicalURL = view.Meta.CanonicalURL
	} else {
		view.CanonicalURL = a.urls.BlogPostURL(view.Slug)
	}
	return view
}

// CaseStudy resolves and renders one case-study entry into a StudyView.
func (a *Assembler) CaseStudy(entry *contentful.Entry, includes contentful.Includes, items []contentful.Entry) *StudyView {
	if entry == nil {
		return nil
	}
	view := &StudyView{
		PostView:   *a.basePage(entry, includes, items),
		ClientName: entry.FieldAliasString(clientAliases...),
		Industry:   entry.FieldAliasString(industryAliases...),
		Results:    a.extractResults(entry, includes, items),
	}
	if view.Meta.CanonicalURL != "" {
		view.CanonicalURL = view.Meta.CanonicalURL
	} else {
		view.CanonicalURL = a.urls.CaseStudyURL(view.Slug)
	}
	return view
}

func (a *Assembler) basePage(entry *contentful.Entry, includes contentful.Includes, items []contentful.Entry) *PostView {
	publishedISO := entry.FieldAliasString(publishedAliases...)
	if publishedISO == "" {
		publishedISO = entry.Sys.CreatedAt
	}

	view := &PostView{
		ID:            entry.Sys.ID,
		Slug:          entry.FieldAliasString(slugAliases...),
		Title:         entry.FieldAliasString(titleAliases...),
		Excerpt:       entry.FieldAliasString(excerptAliases...),
		BodyHTML:      a.renderBody(entry, includes, items),
		PublishedISO:  publishedISO,
		PublishedDate: seo.FormatPublishedDate(publishedISO),
		UpdatedISO:    entry.Sys.UpdatedAt,
		FeaturedImage: seo.FeaturedImageURL(entry, includes),
		FAQPairs:      a.extractFAQ(entry),
	}

	seoEntry := contentful.ResolveEntryValue(entry.FieldAlias(seoRefAliases...), includes, items)
	view.Meta = seo.FromEntry(seoEntry, includes)
	if view.Meta.Title == "" {
		view.Meta.Title = view.Title
	}
	if view.Meta.Description == "" {
		view.Meta.Description = view.Excerpt
	}

	authorEntry := contentful.ResolveEntryValue(entry.FieldAlias(authorRefAliases...), includes, items)
	view.Author = seo.AuthorFromEntry(authorEntry, includes)
	if view.Author != nil && view.Author.Bio != "" {
		view.AuthorBioHTML = a.renderMarkdown(view.Author.Bio)
	}

	return view
}

// renderBody prefers an explicit content-block list; a direct rich-text
// body field is the fallback shape some entries use.
func (a *Assembler) renderBody(entry *contentful.Entry, includes contentful.Includes, items []contentful.Entry) string {
	var buf bytes.Buffer
	for _, ref := range contentful.UnwrapSlice(entry.FieldAlias(blockListAliases...)) {
		block := contentful.ResolveEntryValue(ref, includes, items)
		if block == nil {
			continue
		}
		buf.WriteString(a.blocks.Render(block, includes, items))
	}
	if buf.Len() > 0 {
		return buf.String()
	}

	doc := richtext.FromValue(entry.FieldAlias(a.bodyAliases()...))
	return a.blocks.RenderDocument(doc, includes, items)
}

func (a *Assembler) extractFAQ(entry *contentful.Entry) []richtext.FAQPair {
	doc := richtext.FromValue(entry.FieldAlias(a.faqAliases()...))
	return richtext.ExtractFAQPairs(doc)
}

func (a *Assembler) extractResults(entry *contentful.Entry, includes contentful.Includes, items []contentful.Entry) []Result {
	var results []Result
	for _, ref := range contentful.UnwrapSlice(entry.FieldAlias(resultListAliases...)) {
		res := contentful.ResolveEntryValue(ref, includes, items)
		if res == nil {
			continue
		}
		value := res.FieldAliasString(resultValueAlias...)
		label := res.FieldAliasString(resultLabelAlias...)
		if value == "" && label == "" {
			continue
		}
		results = append(results, Result{Value: value, Label: label})
	}
	return results
}

func (a *Assembler) renderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := a.markdown.Convert([]byte(src), &buf); err != nil {
		a.logger.Warn("generator.markdown.convert_failed", "error", err)
		return ""
	}
	return buf.String()
}

func (a *Assembler) bodyAliases() []string {
	if len(a.cfg.Fields.BodyAliases) > 0 {
		return a.cfg.Fields.BodyAliases
	}
	return []string{"content", "body", "richText", "rich_text"}
}

func (a *Assembler) faqAliases() []string {
	if len(a.cfg.Fields.FAQAliases) > 0 {
		return a.cfg.Fields.FAQAliases
	}
	return defaultFAQAliases
}
