package staticcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-sitegen/internal/generator"
)

const buildSiteMessageType = "sitegen.static.build"

// ResultCallback receives the build result produced by a generator run. The
// callback is optional and invoked synchronously from the handler.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a build command execution.
type ResultEnvelope struct {
	Result   *generator.BuildResult
	Metadata map[string]any
}

// BuildSiteCommand executes a generator build scoped by archetype filters.
type BuildSiteCommand struct {
	Archetypes     []string       `json:"archetypes,omitempty"`
	DryRun         bool           `json:"dry_run,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate ensures archetype filters only name known page archetypes.
func (m BuildSiteCommand) Validate() error {
	errs := validation.Errors{}
	for _, archetype := range m.Archetypes {
		switch strings.ToLower(strings.TrimSpace(archetype)) {
		case generator.ArchetypeBlog, generator.ArchetypeCaseStudy:
		default:
			errs["archetypes"] = validation.NewError(
				"sitegen.static.build.archetype_invalid",
				"archetypes must name blog or case-studies")
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
