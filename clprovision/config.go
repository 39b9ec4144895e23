package clprovision

import (
	_ "embed"
	"fmt"
	"os"
)

// Bootstrap is the script every instance runs on first boot, unless another one is configured.
//
//go:embed bootstrap.sh
var Bootstrap string

// Config configures the package. The defaults describe the complete environment so a run needs no
// configuration besides AWS credentials.
type Config struct {
	// NetworkCIDR is the address block of the VPC.
	NetworkCIDR string `env:"NETWORK_CIDR" envDefault:"10.0.0.0/16"`
	// SubnetCIDR is the address block of the single subnet.
	SubnetCIDR string `env:"SUBNET_CIDR" envDefault:"10.0.0.0/24"`
	// AvailabilityZone the subnet is placed in.
	AvailabilityZone string `env:"AVAILABILITY_ZONE" envDefault:"us-east-1a"`
	// ImageID of the machine image, Ubuntu 20.04 by default.
	ImageID string `env:"IMAGE_ID" envDefault:"ami-0261755bbcb8c4a84"`
	// KeyName of the key pair that is installed for ssh access.
	KeyName string `env:"KEY_NAME" envDefault:"aws_devops"`
	// MasterInstanceType is the instance type of master nodes.
	MasterInstanceType string `env:"MASTER_INSTANCE_TYPE" envDefault:"t2.small"`
	// WorkerInstanceType is the instance type of worker nodes.
	WorkerInstanceType string `env:"WORKER_INSTANCE_TYPE" envDefault:"t2.micro"`
	// MasterNames lists the master nodes to launch, in order.
	MasterNames []string `env:"MASTER_NAMES" envDefault:"master-node-01"`
	// WorkerNames lists the worker nodes to launch, in order.
	WorkerNames []string `env:"WORKER_NAMES" envDefault:"worker-node-01,worker-node-02"`
	// SecurityGroupName is the group name of the security group.
	SecurityGroupName string `env:"SECURITY_GROUP_NAME" envDefault:"wecloud-sg-1"`
	// SecurityGroupDescription is the description of the security group.
	SecurityGroupDescription string `env:"SECURITY_GROUP_DESCRIPTION" envDefault:"Proj 1 sg"`
	// UserDataFile optionally replaces the embedded bootstrap script.
	UserDataFile string `env:"USER_DATA_FILE"`

	// UserData holds the bootstrap script, it is read from UserDataFile or set directly.
	UserData string
}

// WithUserData resolves the bootstrap script of the configuration.
func WithUserData(cfg Config) (Config, error) {
	switch {
	case cfg.UserData != "":
		return cfg, nil
	case cfg.UserDataFile == "":
		cfg.UserData = Bootstrap

		return cfg, nil
	}

	data, err := os.ReadFile(cfg.UserDataFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read user data file: %w", err)
	}

	cfg.UserData = string(data)

	return cfg, nil
}
