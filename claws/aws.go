// Package claws provides the AWS SDK (v2) configuration shared by all service clients.
package claws

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/smithy-go/logging"
	"github.com/crewlinker/clinfra/clconfig"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures this package.
type Config struct {
	// Region the resources are created in.
	Region string `env:"REGION" envDefault:"us-east-1"`
	// LoadConfigTimeout bounds the time given to config loading.
	LoadConfigTimeout time.Duration `env:"LOAD_CONFIG_TIMEOUT" envDefault:"1s"`
	// BaseEndpoint allows pointing every client at a local AWS simulator.
	BaseEndpoint *url.URL `env:"BASE_ENDPOINT"`
	// OverwriteAccessKeyID together with the other overwrites configures static credentials.
	OverwriteAccessKeyID string `env:"OVERWRITE_ACCESS_KEY_ID"`
	// OverwriteSecretAccessKey is the secret for the static credentials.
	OverwriteSecretAccessKey string `env:"OVERWRITE_SECRET_ACCESS_KEY"`
	// OverwriteSessionToken is the optional session token for the static credentials.
	OverwriteSessionToken string `env:"OVERWRITE_SESSION_TOKEN"`
	// ClientLogMode enables SDK request logging, e.g. "request,retries".
	ClientLogMode []string `env:"CLIENT_LOG_MODE"`
}

// Logger adapts the smithy logging interface to zap.
type Logger struct{ logs *zap.Logger }

// NewLogger inits the adapter.
func NewLogger(logs *zap.Logger) *Logger {
	return &Logger{logs: logs.WithOptions(zap.AddCallerSkip(1))}
}

// Logf implements logging.Logger.
func (l *Logger) Logf(classification logging.Classification, format string, v ...any) {
	switch classification {
	case logging.Warn:
		l.logs.Sugar().Warnf(format, v...)
	default:
		l.logs.Sugar().Debugf(format, v...)
	}
}

// parseLogMode turns the configured names into the sdk bit flags.
func parseLogMode(names []string) (mode aws.ClientLogMode) {
	for _, name := range names {
		switch name {
		case "signing":
			mode |= aws.LogSigning
		case "retries":
			mode |= aws.LogRetries
		case "request":
			mode |= aws.LogRequest
		case "response":
			mode |= aws.LogResponse
		case "deprecated":
			mode |= aws.LogDeprecatedUsage
		}
	}

	return mode
}

// New initialize an AWS config to be used to create clients for individual aws services. Credentials
// come from the default chain unless static overwrites are configured.
func New(
	cfg Config,
	logs *zap.Logger,
	trp trace.TracerProvider,
	txtp propagation.TextMapPropagator,
) (acfg aws.Config, err error) {
	logs.Info("loading config", zap.Duration("timeout", cfg.LoadConfigTimeout), zap.String("region", cfg.Region))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.LoadConfigTimeout)
	defer cancel()

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
		config.WithLogger(NewLogger(logs)),
		config.WithClientLogMode(parseLogMode(cfg.ClientLogMode)),
	}

	if cfg.OverwriteAccessKeyID != "" {
		logs.Info("using static credentials", zap.String("access_key_id", cfg.OverwriteAccessKeyID))
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.OverwriteAccessKeyID, cfg.OverwriteSecretAccessKey, cfg.OverwriteSessionToken)))
	}

	if acfg, err = config.LoadDefaultConfig(ctx, opts...); err != nil {
		return acfg, fmt.Errorf("failed to load default config: %w", err)
	}

	if cfg.BaseEndpoint != nil {
		logs.Info("overwriting base endpoint", zap.Stringer("endpoint", cfg.BaseEndpoint))
		acfg.BaseEndpoint = aws.String(cfg.BaseEndpoint.String())
	}

	// if we have a tracing available, we instrument the aws client
	if trp != nil {
		logs.Info("tracing provided, instrumenting aws client")

		topts := []otelaws.Option{otelaws.WithTracerProvider(trp)}
		if txtp != nil {
			topts = append(topts, otelaws.WithTextMapPropagator(txtp))
		}

		otelaws.AppendMiddlewares(&acfg.APIOptions, topts...)
	}

	return acfg, nil
}

// moduleName for naming conventions.
const moduleName = "claws"

// Prod configures the DI for providing the AWS configuration.
func Prod() fx.Option {
	return fx.Module(moduleName,
		// the incoming logger will be named after the module
		fx.Decorate(func(l *zap.Logger) *zap.Logger { return l.Named(moduleName) }),
		// provide the environment configuration
		clconfig.Provide[Config](clconfig.Prefix(moduleName)),
		// provide the actual aws config
		fx.Provide(fx.Annotate(New, fx.ParamTags(``, ``, `optional:"true"`, `optional:"true"`))),
	)
}
