package clec2

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrNoID is returned when the EC2 API responds without the identifier of the created resource.
var ErrNoID = errors.New("no identifier in response")

// CreateNetwork creates a VPC with the given address block.
func (p *Provisioner) CreateNetwork(ctx context.Context, cidr, name string) (string, error) {
	name = orDefault(name, DefaultVpcName)

	out, err := p.api.CreateVpc(ctx, &ec2.CreateVpcInput{CidrBlock: aws.String(cidr)})
	if err != nil {
		return "", fmt.Errorf("failed to create vpc: %w", err)
	}

	if out.Vpc == nil || lo.FromPtr(out.Vpc.VpcId) == "" {
		return "", fmt.Errorf("create vpc: %w", ErrNoID)
	}

	vpcID := *out.Vpc.VpcId
	if err := p.tag(ctx, KindVpc, name, vpcID); err != nil {
		return "", err
	}

	p.log(ctx).Debug("vpc response", zap.Any("vpc", out.Vpc))
	p.log(ctx).Info("vpc created", zap.String("vpc_id", vpcID), zap.String("cidr", cidr), zap.String("name", name))

	return vpcID, nil
}

// CreateGateway creates an internet gateway and attaches it to the VPC.
func (p *Provisioner) CreateGateway(ctx context.Context, vpcID, name string) (string, error) {
	name = orDefault(name, DefaultGatewayName)

	out, err := p.api.CreateInternetGateway(ctx, &ec2.CreateInternetGatewayInput{})
	if err != nil {
		return "", fmt.Errorf("failed to create internet gateway: %w", err)
	}

	if out.InternetGateway == nil || lo.FromPtr(out.InternetGateway.InternetGatewayId) == "" {
		return "", fmt.Errorf("create internet gateway: %w", ErrNoID)
	}

	igwID := *out.InternetGateway.InternetGatewayId
	if _, err := p.api.AttachInternetGateway(ctx, &ec2.AttachInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
		VpcId:             aws.String(vpcID),
	}); err != nil {
		return "", fmt.Errorf("failed to attach internet gateway '%s' to '%s': %w", igwID, vpcID, err)
	}

	if err := p.tag(ctx, KindInternetGateway, name, igwID); err != nil {
		return "", err
	}

	p.log(ctx).Debug("internet gateway response", zap.Any("internet_gateway", out.InternetGateway))
	p.log(ctx).Info("internet gateway created",
		zap.String("igw_id", igwID), zap.String("vpc_id", vpcID), zap.String("name", name))

	return igwID, nil
}

// CreateSubnet creates a subnet in the VPC that assigns public ips to instances launched into it.
func (p *Provisioner) CreateSubnet(ctx context.Context, vpcID, cidr, zone, name string) (string, error) {
	name = orDefault(name, DefaultSubnetName)

	out, err := p.api.CreateSubnet(ctx, &ec2.CreateSubnetInput{
		VpcId:            aws.String(vpcID),
		CidrBlock:        aws.String(cidr),
		AvailabilityZone: aws.String(zone),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create subnet: %w", err)
	}

	if out.Subnet == nil || lo.FromPtr(out.Subnet.SubnetId) == "" {
		return "", fmt.Errorf("create subnet: %w", ErrNoID)
	}

	subnetID := *out.Subnet.SubnetId
	if err := p.tag(ctx, KindSubnet, name, subnetID); err != nil {
		return "", err
	}

	if _, err := p.api.ModifySubnetAttribute(ctx, &ec2.ModifySubnetAttributeInput{
		SubnetId:            aws.String(subnetID),
		MapPublicIpOnLaunch: &types.AttributeBooleanValue{Value: aws.Bool(true)},
	}); err != nil {
		return "", fmt.Errorf("failed to enable public ip on launch for '%s': %w", subnetID, err)
	}

	p.log(ctx).Debug("subnet response", zap.Any("subnet", out.Subnet))
	p.log(ctx).Info("subnet created",
		zap.String("subnet_id", subnetID), zap.String("cidr", cidr), zap.String("zone", zone), zap.String("name", name))

	return subnetID, nil
}
