package preview

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitegen/internal/contentful"
	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/internal/richtext"
	"github.com/goliatone/go-sitegen/internal/runtimeconfig"
	"github.com/goliatone/go-sitegen/internal/seo"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// ErrMissingParam indicates the preview request carried neither a slug nor an id.
var ErrMissingParam = errors.New("sitegen preview: slug or id parameter required")

// ErrEntryNotFound indicates no draft entry matched the requested selector.
var ErrEntryNotFound = errors.New("sitegen preview: no matching entry")

// Dependencies lists the collaborators for the preview server.
type Dependencies struct {
	Source contentful.Source
	Logger interfaces.Logger
}

// Server renders unpublished drafts through the same resolve-and-render
// pipeline as the static build and serves the result as JSON. Requests are
// independent: each performs one upstream fetch and shares no mutable state.
type Server struct {
	cfg       runtimeconfig.Config
	source    contentful.Source
	assembler *generator.Assembler
	logger    interfaces.Logger
}

// NewServer wires a preview server against the provided draft source.
func NewServer(cfg runtimeconfig.Config, deps Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Server{
		cfg:       cfg,
		source:    deps.Source,
		assembler: generator.NewAssembler(cfg, logger),
		logger:    logger,
	}
}

// Handler returns the routed HTTP handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/preview", s.handlePreview)
	mux.HandleFunc("GET /health", s.handleHealth)
	return corsMiddleware(mux, s.cfg.Preview.AllowedOrigins)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	slug := r.URL.Query().Get("slug")
	id := r.URL.Query().Get("id")

	log := logging.WithFields(s.logger, map[string]any{
		"request_id": requestID,
		"slug":       slug,
		"entry_id":   id,
	})

	if slug == "" && id == "" {
		log.Debug("preview.request.missing_param")
		writeError(w, ErrMissingParam)
		return
	}
	if s.source == nil {
		writeError(w, contentful.ErrNotConfigured)
		return
	}

	col, err := s.source.GetEntries(r.Context(), contentful.Query{
		ContentType: s.cfg.Types.BlogPost,
		Locale:      s.cfg.Contentful.Locale,
		Include:     s.cfg.Contentful.IncludeDepth,
		Slug:        slug,
		ID:          id,
		Limit:       1,
	})
	if err != nil {
		log.Error("preview.fetch.failed", "error", err)
		writeError(w, err)
		return
	}
	if len(col.Items) == 0 {
		log.Debug("preview.request.not_found")
		writeError(w, ErrEntryNotFound)
		return
	}

	view := s.assembler.BlogPost(&col.Items[0], col.Includes, col.Items)
	log.Info("preview.request.served", "title", view.Title)
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"post": postPayload(view),
	})
}

type authorPayload struct {
	Name        string `json:"name"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	BioHTML     string `json:"bioHtml,omitempty"`
	RoleCompany string `json:"roleCompany,omitempty"`
}

type seoPayload struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Canonical   string   `json:"canonicalUrl,omitempty"`
	Noindex     bool     `json:"noindex,omitempty"`
	Nofollow    bool     `json:"nofollow,omitempty"`
	ShareImages []string `json:"shareImages,omitempty"`
}

type faqPayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type postResponse struct {
	ID            string         `json:"id"`
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Excerpt       string         `json:"excerpt,omitempty"`
	BodyHTML      string         `json:"bodyHtml"`
	PublishedDate string         `json:"publishedDate,omitempty"`
	PublishedISO  string         `json:"publishedDateIso,omitempty"`
	UpdatedISO    string         `json:"updatedAtIso,omitempty"`
	CanonicalURL  string         `json:"canonicalUrl"`
	FeaturedImage string         `json:"featuredImage,omitempty"`
	Author        *authorPayload `json:"author,omitempty"`
	SEO           seoPayload     `json:"seo"`
	FAQ           []faqPayload   `json:"faq,omitempty"`
}

func postPayload(view *generator.PostView) postResponse {
	resp := postResponse{
		ID:            view.ID,
		Slug:          view.Slug,
		Title:         view.Title,
		Excerpt:       view.Excerpt,
		BodyHTML:      view.BodyHTML,
		PublishedDate: view.PublishedDate,
		PublishedISO:  view.PublishedISO,
		UpdatedISO:    view.UpdatedISO,
		CanonicalURL:  view.CanonicalURL,
		FeaturedImage: view.FeaturedImage,
		SEO:           seoFields(view.Meta),
		FAQ:           faqFields(view.FAQPairs),
	}
	if view.Author != nil {
		resp.Author = &authorPayload{
			Name:        view.Author.Name,
			AvatarURL:   view.Author.AvatarURL,
			BioHTML:     view.AuthorBioHTML,
			RoleCompany: view.Author.RoleCompany,
		}
	}
	return resp
}

func seoFields(meta seo.Metadata) seoPayload {
	return seoPayload{
		Title:       meta.Title,
		Description: meta.Description,
		Canonical:   meta.CanonicalURL,
		Noindex:     meta.Noindex,
		Nofollow:    meta.Nofollow,
		ShareImages: meta.ShareImages,
	}
}

func faqFields(pairs []richtext.FAQPair) []faqPayload {
	if len(pairs) == 0 {
		return nil
	}
	out := make([]faqPayload, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, faqPayload{Question: pair.Question, Answer: pair.Answer})
	}
	return out
}
