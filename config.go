package sitegen

import "github.com/goliatone/go-sitegen/internal/runtimeconfig"

var (
	ErrOutputDirRequired      = runtimeconfig.ErrOutputDirRequired
	ErrBaseURLRequired        = runtimeconfig.ErrBaseURLRequired
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config           = runtimeconfig.Config
	ContentfulConfig = runtimeconfig.ContentfulConfig
	TypeConfig       = runtimeconfig.TypeConfig
	FieldConfig      = runtimeconfig.FieldConfig
	SiteConfig       = runtimeconfig.SiteConfig
	GeneratorConfig  = runtimeconfig.GeneratorConfig
	PreviewConfig    = runtimeconfig.PreviewConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
