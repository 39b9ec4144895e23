// Package clec2 creates the EC2 networking and compute resources of a provisioning run. Every
// operation is a single blocking request against the EC2 API followed by tagging, no operation
// is retried beyond what the SDK does and nothing is ever updated or deleted.
package clec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/crewlinker/clinfra/clconfig"
	"github.com/crewlinker/clinfra/clzap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the package.
type Config struct {
	// ProjectTag is the value of the "project" tag put on every created resource.
	ProjectTag string `env:"PROJECT_TAG" envDefault:"wecloud"`
}

// Kind names a type of resource, it is used for logging and as a metric attribute.
type Kind string

// The kinds of resources that are created.
const (
	KindVpc             Kind = "vpc"
	KindInternetGateway Kind = "internet-gateway"
	KindSubnet          Kind = "subnet"
	KindRouteTable      Kind = "route-table"
	KindSecurityGroup   Kind = "security-group"
	KindInstance        Kind = "instance"
)

// Default names, used when the caller supplies none.
const (
	DefaultVpcName        = "wecloud-proj-1-vpc"
	DefaultGatewayName    = "wecloud-proj-1-igw"
	DefaultSubnetName     = "wecloud-proj-1-subnet"
	DefaultRouteTableName = "wecloud-proj-1-rt"
	DefaultSecurityGroup  = "wecloud-sg-1"
	DefaultInstanceName   = "wecloud-proj-1-ec2"
)

// Tag keys written on every resource.
const (
	ProjectTagKey = "project"
	NameTagKey    = "Name"
)

// Provisioner creates resources through the EC2 API.
type Provisioner struct {
	cfg     Config
	api     API
	logs    *zap.Logger
	created metric.Int64Counter
}

// New inits the provisioner. The meter provider is optional.
func New(cfg Config, logs *zap.Logger, api API, mtp metric.MeterProvider) (*Provisioner, error) {
	if mtp == nil {
		mtp = noop.NewMeterProvider()
	}

	created, err := mtp.Meter("github.com/crewlinker/clinfra/clec2").Int64Counter("clinfra.resources.created",
		metric.WithDescription("number of cloud resources created"),
		metric.WithUnit("{resource}"))
	if err != nil {
		return nil, fmt.Errorf("failed to init counter: %w", err)
	}

	return &Provisioner{cfg: cfg, api: api, logs: logs, created: created}, nil
}

// NewClient inits the EC2 client from the shared AWS configuration.
func NewClient(acfg aws.Config) *ec2.Client {
	return ec2.NewFromConfig(acfg)
}

// tag writes the project marker and the name on a freshly created resource and records it.
func (p *Provisioner) tag(ctx context.Context, kind Kind, name string, ids ...string) error {
	if _, err := p.api.CreateTags(ctx, &ec2.CreateTagsInput{
		Resources: ids,
		Tags: []types.Tag{
			{Key: aws.String(ProjectTagKey), Value: aws.String(p.cfg.ProjectTag)},
			{Key: aws.String(NameTagKey), Value: aws.String(name)},
		},
	}); err != nil {
		return fmt.Errorf("failed to tag %s: %w", kind, err)
	}

	p.created.Add(ctx, int64(len(ids)), metric.WithAttributes(attribute.String("kind", string(kind))))

	return nil
}

// log returns the contextual logger, falling back to the provisioner's.
func (p *Provisioner) log(ctx context.Context) *zap.Logger {
	return clzap.Log(ctx, p.logs)
}

// orDefault picks the default name when none is given.
func orDefault(name, def string) string {
	if name == "" {
		return def
	}

	return name
}

// moduleName for naming conventions.
const moduleName = "clec2"

// Base provides the provisioner without an EC2 client, tests supply their own API.
func Base() fx.Option {
	return fx.Module(moduleName,
		// provide the environment configuration
		clconfig.Provide[Config](clconfig.Prefix(moduleName)),
		// the incoming logger will be named after the module
		fx.Decorate(func(l *zap.Logger) *zap.Logger { return l.Named(moduleName) }),
		// provide the provisioner, metrics are optional
		fx.Provide(fx.Annotate(New, fx.ParamTags(``, ``, ``, `optional:"true"`))),
	)
}

// Prod provides the provisioner backed by the real EC2 client.
func Prod() fx.Option {
	return fx.Options(Base(),
		fx.Provide(fx.Annotate(NewClient, fx.As(new(API)))),
	)
}
