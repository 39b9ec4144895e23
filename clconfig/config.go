// Package clconfig provides re-usable configuration utilities
package clconfig

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
	"go.uber.org/fx"
)

// Prefix returns the environment prefix for a module name, e.g. "clec2" becomes "CLEC2_".
func Prefix(moduleName string) string {
	return strings.ToUpper(moduleName) + "_"
}

// Parse environment variables into a configuration struct T. Defaults declared with the
// 'envDefault' tag are applied for every variable that is not set.
func Parse[T any](envo env.Options, prefix string) (cfg T, err error) {
	if prefix != "" {
		envo.Prefix = prefix
	}

	if err := env.ParseWithOptions(&cfg, envo); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// EnvConfigurer returns a function that parses environment variables into a configuration struct T. If the
// prefix is provided it will set a prefix for the underlying environment parser.
func EnvConfigurer[T any](prefix ...string) func(o env.Options) (T, error) {
	return func(envo env.Options) (T, error) {
		var pfx string
		if len(prefix) > 0 {
			pfx = prefix[0]
		}

		return Parse[T](envo, pfx)
	}
}

// Provide configuration T as an fx dependency that parses the environment with an optional prefix. Tests
// can supply env.Options to parse from a map instead of the process environment.
func Provide[T any](prefix ...string) fx.Option {
	return fx.Provide(fx.Annotate(
		EnvConfigurer[T](prefix...),
		fx.ParamTags(`optional:"true"`)))
}
