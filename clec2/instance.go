package clec2

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// InstanceConfig holds the launch parameters shared between instances.
type InstanceConfig struct {
	ImageID          string
	InstanceType     string
	KeyName          string
	SubnetID         string
	SecurityGroupIDs []string
	// UserData is the plain-text bootstrap script, it is encoded before it is sent.
	UserData string
	// MinCount and MaxCount default to one.
	MinCount int32
	MaxCount int32
}

// RunInstancesInput builds the request for the launch.
func (ic InstanceConfig) RunInstancesInput() *ec2.RunInstancesInput {
	inp := &ec2.RunInstancesInput{
		ImageId:          aws.String(ic.ImageID),
		InstanceType:     types.InstanceType(ic.InstanceType),
		KeyName:          aws.String(ic.KeyName),
		SubnetId:         aws.String(ic.SubnetID),
		SecurityGroupIds: ic.SecurityGroupIDs,
		MinCount:         aws.Int32(max(ic.MinCount, 1)),
		MaxCount:         aws.Int32(max(ic.MaxCount, ic.MinCount, 1)),
	}

	if ic.UserData != "" {
		inp.UserData = aws.String(base64.StdEncoding.EncodeToString([]byte(ic.UserData)))
	}

	return inp
}

// CreateInstance launches instances with the given configuration and tags them all with the name. It
// returns the id of the first instance in the reservation.
func (p *Provisioner) CreateInstance(ctx context.Context, ic InstanceConfig, name string) (string, error) {
	name = orDefault(name, DefaultInstanceName)

	out, err := p.api.RunInstances(ctx, ic.RunInstancesInput())
	if err != nil {
		return "", fmt.Errorf("failed to run instances: %w", err)
	}

	ids := lo.FilterMap(out.Instances, func(inst types.Instance, _ int) (string, bool) {
		return lo.FromPtr(inst.InstanceId), lo.FromPtr(inst.InstanceId) != ""
	})
	if len(ids) == 0 {
		return "", fmt.Errorf("run instances: %w", ErrNoID)
	}

	if err := p.tag(ctx, KindInstance, name, ids...); err != nil {
		return "", err
	}

	p.log(ctx).Info("instance created",
		zap.String("instance_id", ids[0]),
		zap.Strings("instance_ids", ids),
		zap.String("instance_type", ic.InstanceType),
		zap.String("name", name))

	return ids[0], nil
}
