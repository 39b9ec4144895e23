package clprovision

import (
	"context"
	"fmt"

	"github.com/crewlinker/clinfra/clec2"
	"github.com/mitchellh/copystructure"
)

// Provisioner creates the resources of a run, it is implemented by *clec2.Provisioner.
type Provisioner interface {
	CreateNetwork(ctx context.Context, cidr, name string) (string, error)
	CreateGateway(ctx context.Context, vpcID, name string) (string, error)
	CreateSubnet(ctx context.Context, vpcID, cidr, zone, name string) (string, error)
	ResolveDefaultRoute(ctx context.Context, vpcID, igwID string) (string, error)
	CreateSecurityGroup(ctx context.Context, vpcID, groupName, description, name string) (string, error)
	CreateInstance(ctx context.Context, ic clec2.InstanceConfig, name string) (string, error)
}

var _ Provisioner = (*clec2.Provisioner)(nil)

// Step is one stage of a provisioning run.
type Step interface {
	// Name identifies the step in logs, spans and errors.
	Name() string
	// Consumes lists the state keys that must be set before the step runs.
	Consumes() []string
	// Produces lists the state keys the step sets.
	Produces() []string
	// Run performs the step and records what it created in the state.
	Run(ctx context.Context, st *State) error
}

// step implements Step with a function.
type step struct {
	name     string
	consumes []string
	produces []string
	run      func(ctx context.Context, st *State) error
}

func (s step) Name() string { return s.name }
func (s step) Consumes() []string { return s.consumes }
func (s step) Produces() []string { return s.produces }
func (s step) Run(ctx context.Context, st *State) error { return s.run(ctx, st) }

// NewStep creates a step from a function.
func NewStep(name string, consumes, produces []string, run func(ctx context.Context, st *State) error) Step {
	return step{name: name, consumes: consumes, produces: produces, run: run}
}

// Steps returns the fixed order of a run: network, gateway, subnet, default route, security group and
// then the master and worker instances.
func Steps(cfg Config, p Provisioner) []Step {
	steps := []Step{
		NewStep("network", nil, []string{KeyNetworkID}, func(ctx context.Context, st *State) (err error) {
			st.NetworkID, err = p.CreateNetwork(ctx, cfg.NetworkCIDR, "")

			return err
		}),
		NewStep("gateway", []string{KeyNetworkID}, []string{KeyGatewayID}, func(ctx context.Context, st *State) (err error) {
			st.GatewayID, err = p.CreateGateway(ctx, st.NetworkID, "")

			return err
		}),
		NewStep("subnet", []string{KeyNetworkID}, []string{KeySubnetID}, func(ctx context.Context, st *State) (err error) {
			st.SubnetID, err = p.CreateSubnet(ctx, st.NetworkID, cfg.SubnetCIDR, cfg.AvailabilityZone, "")

			return err
		}),
		NewStep("route", []string{KeyNetworkID, KeyGatewayID}, []string{KeyRouteTableID},
			func(ctx context.Context, st *State) (err error) {
				st.RouteTableID, err = p.ResolveDefaultRoute(ctx, st.NetworkID, st.GatewayID)

				return err
			}),
		NewStep("security-group", []string{KeyNetworkID}, []string{KeySecurityGroupID},
			func(ctx context.Context, st *State) (err error) {
				st.SecurityGroupID, err = p.CreateSecurityGroup(ctx, st.NetworkID,
					cfg.SecurityGroupName, cfg.SecurityGroupDescription, "")

				return err
			}),
	}

	for _, name := range cfg.MasterNames {
		steps = append(steps, instanceStep(cfg, p, name, cfg.MasterInstanceType))
	}

	for _, name := range cfg.WorkerNames {
		steps = append(steps, instanceStep(cfg, p, name, cfg.WorkerInstanceType))
	}

	return steps
}

// instanceStep launches one named instance of the given type.
func instanceStep(cfg Config, p Provisioner, name, instanceType string) Step {
	return NewStep("instance "+name,
		[]string{KeySubnetID, KeySecurityGroupID},
		[]string{InstanceKey(name)},
		func(ctx context.Context, st *State) error {
			ic, err := launchConfig(cfg, st)
			if err != nil {
				return err
			}

			ic.InstanceType = instanceType

			id, err := p.CreateInstance(ctx, ic, name)
			if err != nil {
				return err
			}

			st.addInstance(name, id)

			return nil
		})
}

// launchConfig returns a private copy of the configuration shared by all launches, which is built
// on first use.
func launchConfig(cfg Config, st *State) (clec2.InstanceConfig, error) {
	if st.launch == nil {
		st.launch = &clec2.InstanceConfig{
			ImageID:          cfg.ImageID,
			KeyName:          cfg.KeyName,
			SubnetID:         st.SubnetID,
			SecurityGroupIDs: []string{st.SecurityGroupID},
			UserData:         cfg.UserData,
			MinCount:         1,
			MaxCount:         1,
		}
	}

	cp, err := copystructure.Copy(*st.launch)
	if err != nil {
		return clec2.InstanceConfig{}, fmt.Errorf("failed to copy launch configuration: %w", err)
	}

	ic, ok := cp.(clec2.InstanceConfig)
	if !ok {
		return clec2.InstanceConfig{}, fmt.Errorf("unexpected launch configuration copy: %T", cp)
	}

	return ic, nil
}
