package clec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// API is the part of the EC2 client the provisioner uses. It is kept narrow so tests can substitute
// a mock or an in-memory fake.
type API interface {
	CreateVpc(
		ctx context.Context, params *ec2.CreateVpcInput, optFns ...func(*ec2.Options),
	) (*ec2.CreateVpcOutput, error)
	CreateInternetGateway(
		ctx context.Context, params *ec2.CreateInternetGatewayInput, optFns ...func(*ec2.Options),
	) (*ec2.CreateInternetGatewayOutput, error)
	AttachInternetGateway(
		ctx context.Context, params *ec2.AttachInternetGatewayInput, optFns ...func(*ec2.Options),
	) (*ec2.AttachInternetGatewayOutput, error)
	CreateSubnet(
		ctx context.Context, params *ec2.CreateSubnetInput, optFns ...func(*ec2.Options),
	) (*ec2.CreateSubnetOutput, error)
	ModifySubnetAttribute(
		ctx context.Context, params *ec2.ModifySubnetAttributeInput, optFns ...func(*ec2.Options),
	) (*ec2.ModifySubnetAttributeOutput, error)
	DescribeRouteTables(
		ctx context.Context, params *ec2.DescribeRouteTablesInput, optFns ...func(*ec2.Options),
	) (*ec2.DescribeRouteTablesOutput, error)
	CreateRouteTable(
		ctx context.Context, params *ec2.CreateRouteTableInput, optFns ...func(*ec2.Options),
	) (*ec2.CreateRouteTableOutput, error)
	CreateRoute(
		ctx context.Context, params *ec2.CreateRouteInput, optFns ...func(*ec2.Options),
	) (*ec2.CreateRouteOutput, error)
	CreateSecurityGroup(
		ctx context.Context, params *ec2.CreateSecurityGroupInput, optFns ...func(*ec2.Options),
	) (*ec2.CreateSecurityGroupOutput, error)
	AuthorizeSecurityGroupIngress(
		ctx context.Context, params *ec2.AuthorizeSecurityGroupIngressInput, optFns ...func(*ec2.Options),
	) (*ec2.AuthorizeSecurityGroupIngressOutput, error)
	RunInstances(
		ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options),
	) (*ec2.RunInstancesOutput, error)
	CreateTags(
		ctx context.Context, params *ec2.CreateTagsInput, optFns ...func(*ec2.Options),
	) (*ec2.CreateTagsOutput, error)
}

var _ API = (*ec2.Client)(nil)
