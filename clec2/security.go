package clec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// SSHPort is the only port opened to the world.
const SSHPort = 22

// SSHIngress is the single inbound rule of the security group: tcp/22 from anywhere.
func SSHIngress() types.IpPermission {
	return types.IpPermission{
		IpProtocol: aws.String("tcp"),
		FromPort:   aws.Int32(SSHPort),
		ToPort:     aws.Int32(SSHPort),
		IpRanges:   []types.IpRange{{CidrIp: aws.String(DefaultRouteDestination)}},
	}
}

// CreateSecurityGroup creates a security group in the VPC and opens ssh access from anywhere.
func (p *Provisioner) CreateSecurityGroup(ctx context.Context, vpcID, groupName, description, name string) (string, error) {
	groupName = orDefault(groupName, DefaultSecurityGroup)
	name = orDefault(name, groupName)

	out, err := p.api.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
		GroupName:   aws.String(groupName),
		Description: aws.String(description),
		VpcId:       aws.String(vpcID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create security group: %w", err)
	}

	if lo.FromPtr(out.GroupId) == "" {
		return "", fmt.Errorf("create security group: %w", ErrNoID)
	}

	sgID := *out.GroupId
	if err := p.tag(ctx, KindSecurityGroup, name, sgID); err != nil {
		return "", err
	}

	if _, err := p.api.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId:       aws.String(sgID),
		IpPermissions: []types.IpPermission{SSHIngress()},
	}); err != nil {
		return "", fmt.Errorf("failed to authorize ingress for '%s': %w", sgID, err)
	}

	p.log(ctx).Info("security group created",
		zap.String("security_group_id", sgID), zap.String("vpc_id", vpcID), zap.String("group_name", groupName))

	return sgID, nil
}
