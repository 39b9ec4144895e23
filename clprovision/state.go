package clprovision

import (
	"strings"

	"github.com/crewlinker/clinfra/clec2"
	"github.com/samber/lo"
	"go.uber.org/zap/zapcore"
)

// Keys of the identifiers that steps consume and produce.
const (
	KeyNetworkID       = "network_id"
	KeyGatewayID       = "gateway_id"
	KeySubnetID        = "subnet_id"
	KeyRouteTableID    = "route_table_id"
	KeySecurityGroupID = "security_group_id"
)

// instanceKeyPrefix prefixes the key of a named instance.
const instanceKeyPrefix = "instance/"

// InstanceKey returns the key under which the id of the named instance is produced.
func InstanceKey(name string) string {
	return instanceKeyPrefix + name
}

// State holds the identifiers created so far. It is only ever appended to.
type State struct {
	NetworkID       string
	GatewayID       string
	SubnetID        string
	RouteTableID    string
	SecurityGroupID string

	// InstanceIDs in launch order.
	InstanceIDs []string
	// Instances maps the instance name to its id.
	Instances map[string]string

	// launch is the instance configuration shared by all launches.
	launch *clec2.InstanceConfig
}

// NewState inits an empty state.
func NewState() *State {
	return &State{Instances: map[string]string{}}
}

// Lookup returns the identifier stored under the key, or an empty string.
func (s *State) Lookup(key string) string {
	switch key {
	case KeyNetworkID:
		return s.NetworkID
	case KeyGatewayID:
		return s.GatewayID
	case KeySubnetID:
		return s.SubnetID
	case KeyRouteTableID:
		return s.RouteTableID
	case KeySecurityGroupID:
		return s.SecurityGroupID
	}

	if name, ok := strings.CutPrefix(key, instanceKeyPrefix); ok {
		return s.Instances[name]
	}

	return ""
}

// addInstance records a launched instance.
func (s *State) addInstance(name, id string) {
	s.InstanceIDs = append(s.InstanceIDs, id)
	s.Instances[name] = id
}

// MarshalLogObject allows the state to be logged as a structured object. Instances are encoded in
// launch order.
func (s *State) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString(KeyNetworkID, s.NetworkID)
	enc.AddString(KeyGatewayID, s.GatewayID)
	enc.AddString(KeySubnetID, s.SubnetID)
	enc.AddString(KeyRouteTableID, s.RouteTableID)
	enc.AddString(KeySecurityGroupID, s.SecurityGroupID)

	names := lo.Invert(s.Instances)

	return enc.AddObject("instances", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		for _, id := range s.InstanceIDs {
			enc.AddString(names[id], id)
		}

		return nil
	}))
}
