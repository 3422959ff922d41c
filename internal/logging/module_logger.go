package logging

import (
	"context"

	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

const (
	rootModule       = "sitegen"
	contentfulModule = "sitegen.contentful"
	generatorModule  = "sitegen.generator"
	previewModule    = "sitegen.preview"
	commandsModule   = "sitegen.commands"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ContentfulLogger returns the logger namespace reserved for the content API client.
func ContentfulLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentfulModule)
}

// GeneratorLogger returns the logger namespace reserved for the static generator.
func GeneratorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, generatorModule)
}

// PreviewLogger returns the logger namespace reserved for the preview service.
func PreviewLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, previewModule)
}

// CommandLogger returns the logger namespace for command handlers, optionally
// scoped by a command group name.
func CommandLogger(provider interfaces.LoggerProvider, group string) interfaces.Logger {
	module := commandsModule
	if group != "" {
		module = commandsModule + "." + group
	}
	return ModuleLogger(provider, module)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
