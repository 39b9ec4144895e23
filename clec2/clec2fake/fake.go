// Package clec2fake provides an in-memory implementation of the EC2 API subset used by the provisioner.
// It keeps just enough state to assert what a provisioning run created.
package clec2fake

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/crewlinker/clinfra/clec2"
	"github.com/samber/lo"
)

// Option configures the fake.
type Option func(*EC2)

// WithoutMainRouteTable disables the creation of a main route table with every VPC, like an account
// where the default table was removed.
func WithoutMainRouteTable() Option { return func(f *EC2) { f.noMainTable = true } }

// WithPageSize limits the number of route tables returned per DescribeRouteTables page.
func WithPageSize(n int) Option { return func(f *EC2) { f.pageSize = n } }

// WithFailure makes the named operation fail with an API error.
func WithFailure(operation, code string) Option {
	return func(f *EC2) {
		f.failures[operation] = &smithy.GenericAPIError{Code: code, Message: "injected failure for " + operation}
	}
}

// Instance as launched by RunInstances.
type Instance struct {
	ID    string
	Input ec2.RunInstancesInput
}

// EC2 is the in-memory fake. It is safe for concurrent use.
type EC2 struct {
	mu sync.Mutex

	noMainTable bool
	pageSize    int
	failures    map[string]error
	seq         int

	Calls          []string
	Vpcs           map[string]types.Vpc
	Gateways       map[string]types.InternetGateway
	Subnets        map[string]types.Subnet
	RouteTables    []types.RouteTable
	SecurityGroups map[string]types.SecurityGroup
	Instances      []Instance
	Tags           map[string]map[string]string
}

// New inits the fake.
func New(opts ...Option) *EC2 {
	f := &EC2{
		failures:       map[string]error{},
		Vpcs:           map[string]types.Vpc{},
		Gateways:       map[string]types.InternetGateway{},
		Subnets:        map[string]types.Subnet{},
		SecurityGroups: map[string]types.SecurityGroup{},
		Tags:           map[string]map[string]string{},
	}

	for _, o := range opts {
		o(f)
	}

	return f
}

var _ clec2.API = (*EC2)(nil)

// call records the operation and returns an injected failure, if any. Must hold the lock.
func (f *EC2) call(op string) error {
	f.Calls = append(f.Calls, op)

	return f.failures[op]
}

// id generates an identifier in the EC2 style. Must hold the lock.
func (f *EC2) id(prefix string) string {
	f.seq++

	return fmt.Sprintf("%s-%017x", prefix, f.seq)
}

// AddRouteTable seeds a route table, for example one that existed before the run.
func (f *EC2) AddRouteTable(tbl types.RouteTable) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.RouteTables = append(f.RouteTables, tbl)
}

// RouteTable returns the route table with the id.
func (f *EC2) RouteTable(id string) (types.RouteTable, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return lo.Find(f.RouteTables, func(t types.RouteTable) bool { return lo.FromPtr(t.RouteTableId) == id })
}

// CreateVpc implements clec2.API.
func (f *EC2) CreateVpc(
	_ context.Context, params *ec2.CreateVpcInput, _ ...func(*ec2.Options),
) (*ec2.CreateVpcOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.call("CreateVpc"); err != nil {
		return nil, err
	}

	vpc := types.Vpc{VpcId: aws.String(f.id("vpc")), CidrBlock: params.CidrBlock, State: types.VpcStateAvailable}
	f.Vpcs[*vpc.VpcId] = vpc

	if !f.noMainTable {
		rtbID := f.id("rtb")
		f.RouteTables = append(f.RouteTables, types.RouteTable{
			RouteTableId: aws.String(rtbID),
			VpcId:        vpc.VpcId,
			Routes: []types.Route{{
				DestinationCidrBlock: params.CidrBlock,
				GatewayId:            aws.String("local"),
				Origin:               types.RouteOriginCreateRouteTable,
			}},
			Associations: []types.RouteTableAssociation{{
				RouteTableAssociationId: aws.String(f.id("rtbassoc")),
				RouteTableId:            aws.String(rtbID),
				Main:                    aws.Bool(true),
			}},
		})
	}

	return &ec2.CreateVpcOutput{Vpc: &vpc}, nil
}

// CreateInternetGateway implements clec2.API.
func (f *EC2) CreateInternetGateway(
	_ context.Context, _ *ec2.CreateInternetGatewayInput, _ ...func(*ec2.Options),
) (*ec2.CreateInternetGatewayOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.call("CreateInternetGateway"); err != nil {
		return nil, err
	}

	igw := types.InternetGateway{InternetGatewayId: aws.String(f.id("igw"))}
	f.Gateways[*igw.InternetGatewayId] = igw

	return &ec2.CreateInternetGatewayOutput{InternetGateway: &igw}, nil
}

// AttachInternetGateway implements clec2.API.
func (f *EC2) AttachInternetGateway(
	_ context.Context, params *ec2.AttachInternetGatewayInput, _ ...func(*ec2.Options),
) (*ec2.AttachInternetGatewayOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.call("AttachInternetGateway"); err != nil {
		return nil, err
	}

	igw, ok := f.Gateways[aws.ToString(params.InternetGatewayId)]
	if !ok {
		return nil, notFound("InvalidInternetGatewayID.NotFound", params.InternetGatewayId)
	}

	if _, ok := f.Vpcs[aws.ToString(params.VpcId)]; !ok {
		return nil, notFound("InvalidVpcID.NotFound", params.VpcId)
	}

	igw.Attachments = append(igw.Attachments, types.InternetGatewayAttachment{
		VpcId: params.VpcId,
		State: types.AttachmentStatusAttached,
	})
	f.Gateways[*igw.InternetGatewayId] = igw

	return &ec2.AttachInternetGatewayOutput{}, nil
}

// CreateSubnet implements clec2.API.
func (f *EC2) CreateSubnet(
	_ context.Context, params *ec2.CreateSubnetInput, _ ...func(*ec2.Options),
) (*ec2.CreateSubnetOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.call("CreateSubnet"); err != nil {
		return nil, err
	}

	if _, ok := f.Vpcs[aws.ToString(params.VpcId)]; !ok {
		return nil, notFound("InvalidVpcID.NotFound", params.VpcId)
	}

	subnet := types.Subnet{
		SubnetId:            aws.String(f.id("subnet")),
		VpcId:               params.VpcId,
		CidrBlock:           params.CidrBlock,
		AvailabilityZone:    params.AvailabilityZone,
		MapPublicIpOnLaunch: aws.Bool(false),
	}
	f.Subnets[*subnet.SubnetId] = subnet

	return &ec2.CreateSubnetOutput{Subnet: &subnet}, nil
}

// ModifySubnetAttribute implements clec2.API.
func (f *EC2) ModifySubnetAttribute(
	_ context.Context, params *ec2.ModifySubnetAttributeInput, _ ...func(*ec2.Options),
) (*ec2.ModifySubnetAttributeOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.call("ModifySubnetAttribute"); err != nil {
		return nil, err
	}

	subnet, ok := f.Subnets[aws.ToString(params.SubnetId)]
	if !ok {
		return nil, notFound("InvalidSubnetID.NotFound", params.SubnetId)
	}

	if params.MapPublicIpOnLaunch != nil {
		subnet.MapPublicIpOnLaunch = params.MapPublicIpOnLaunch.Value
	}

	f.Subnets[*subnet.SubnetId] = subnet

	return &ec2.ModifySubnetAttributeOutput{}, nil
}

// DescribeRouteTables implements clec2.API. Only the "vpc-id" filter is supported.
func (f *EC2) DescribeRouteTables(
	_ context.Context, params *ec2.DescribeRouteTablesInput, _ ...func(*ec2.Options),
) (*ec2.DescribeRouteTablesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.call("DescribeRouteTables"); err != nil {
		return nil, err
	}

	tables := slices.Clone(f.RouteTables)
	for _, flt := range params.Filters {
		if aws.ToString(flt.Name) != "vpc-id" {
			continue
		}

		tables = lo.Filter(tables, func(t types.RouteTable, _ int) bool {
			return slices.Contains(flt.Values, aws.ToString(t.VpcId))
		})
	}

	if f.pageSize <= 0 {
		return &ec2.DescribeRouteTablesOutput{RouteTables: tables}, nil
	}

	start := 0
	if params.NextToken != nil {
		start, _ = strconv.Atoi(*params.NextToken)
	}

	end := min(start+f.pageSize, len(tables))
	out := &ec2.DescribeRouteTablesOutput{RouteTables: tables[start:end]}

	if end < len(tables) {
		out.NextToken = aws.String(strconv.Itoa(end))
	}

	return out, nil
}

// CreateRouteTable implements clec2.API.
func (f *EC2) CreateRouteTable(
	_ context.Context, params *ec2.CreateRouteTableInput, _ ...func(*ec2.Options),
) (*ec2.CreateRouteTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.call("CreateRouteTable"); err != nil {
		return nil, err
	}

	vpc, ok := f.Vpcs[aws.ToString(params.VpcId)]
	if !ok {
		return nil, notFound("InvalidVpcID.NotFound", params.VpcId)
	}

	tbl := types.RouteTable{
		RouteTableId: aws.String(f.id("rtb")),
		VpcId:        params.VpcId,
		Routes: []types.Route{{
			DestinationCidrBlock: vpc.CidrBlock,
			GatewayId:            aws.String("local"),
			Origin:               types.RouteOriginCreateRouteTable,
		}},
	}
	f.RouteTables = append(f.RouteTables, tbl)

	return &ec2.CreateRouteTableOutput{RouteTable: &tbl}, nil
}

// CreateRoute implements clec2.API.
func (f *EC2) CreateRoute(
	_ context.Context, params *ec2.CreateRouteInput, _ ...func(*ec2.Options),
) (*ec2.CreateRouteOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.call("CreateRoute"); err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(f.RouteTables, func(t types.RouteTable) bool {
		return aws.ToString(t.RouteTableId) == aws.ToString(params.RouteTableId)
	})
	if idx < 0 {
		return nil, notFound("InvalidRouteTableID.NotFound", params.RouteTableId)
	}

	if _, ok := f.Gateways[aws.ToString(params.GatewayId)]; !ok {
		return nil, notFound("InvalidGatewayID.NotFound", params.GatewayId)
	}

	f.RouteTables[idx].Routes = append(f.RouteTables[idx].Routes, types.Route{
		DestinationCidrBlock: params.DestinationCidrBlock,
		GatewayId:            params.GatewayId,
		Origin:               types.RouteOriginCreateRoute,
		State:                types.RouteStateActive,
	})

	return &ec2.CreateRouteOutput{Return: aws.Bool(true)}, nil
}

// CreateSecurityGroup implements clec2.API.
func (f *EC2) CreateSecurityGroup(
	_ context.Context, params *ec2.CreateSecurityGroupInput, _ ...func(*ec2.Options),
) (*ec2.CreateSecurityGroupOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.call("CreateSecurityGroup"); err != nil {
		return nil, err
	}

	if lo.ContainsBy(lo.Values(f.SecurityGroups), func(sg types.SecurityGroup) bool {
		return aws.ToString(sg.GroupName) == aws.ToString(params.GroupName) &&
			aws.ToString(sg.VpcId) == aws.ToString(params.VpcId)
	}) {
		return nil, &smithy.GenericAPIError{
			Code:    "InvalidGroup.Duplicate",
			Message: fmt.Sprintf("The security group '%s' already exists", aws.ToString(params.GroupName)),
		}
	}

	sg := types.SecurityGroup{
		GroupId:     aws.String(f.id("sg")),
		GroupName:   params.GroupName,
		Description: params.Description,
		VpcId:       params.VpcId,
	}
	f.SecurityGroups[*sg.GroupId] = sg

	return &ec2.CreateSecurityGroupOutput{GroupId: sg.GroupId}, nil
}

// AuthorizeSecurityGroupIngress implements clec2.API.
func (f *EC2) AuthorizeSecurityGroupIngress(
	_ context.Context, params *ec2.AuthorizeSecurityGroupIngressInput, _ ...func(*ec2.Options),
) (*ec2.AuthorizeSecurityGroupIngressOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.call("AuthorizeSecurityGroupIngress"); err != nil {
		return nil, err
	}

	sg, ok := f.SecurityGroups[aws.ToString(params.GroupId)]
	if !ok {
		return nil, notFound("InvalidGroup.NotFound", params.GroupId)
	}

	sg.IpPermissions = append(sg.IpPermissions, params.IpPermissions...)
	f.SecurityGroups[*sg.GroupId] = sg

	return &ec2.AuthorizeSecurityGroupIngressOutput{Return: aws.Bool(true)}, nil
}

// RunInstances implements clec2.API.
func (f *EC2) RunInstances(
	_ context.Context, params *ec2.RunInstancesInput, _ ...func(*ec2.Options),
) (*ec2.RunInstancesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.call("RunInstances"); err != nil {
		return nil, err
	}

	if _, ok := f.Subnets[aws.ToString(params.SubnetId)]; !ok {
		return nil, notFound("InvalidSubnetID.NotFound", params.SubnetId)
	}

	out := &ec2.RunInstancesOutput{ReservationId: aws.String(f.id("r"))}
	for range aws.ToInt32(params.MaxCount) {
		inst := Instance{ID: f.id("i"), Input: *params}
		f.Instances = append(f.Instances, inst)
		out.Instances = append(out.Instances, types.Instance{
			InstanceId:   aws.String(inst.ID),
			ImageId:      params.ImageId,
			InstanceType: params.InstanceType,
			SubnetId:     params.SubnetId,
		})
	}

	return out, nil
}

// CreateTags implements clec2.API.
func (f *EC2) CreateTags(
	_ context.Context, params *ec2.CreateTagsInput, _ ...func(*ec2.Options),
) (*ec2.CreateTagsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.call("CreateTags"); err != nil {
		return nil, err
	}

	for _, id := range params.Resources {
		if f.Tags[id] == nil {
			f.Tags[id] = map[string]string{}
		}

		for _, tag := range params.Tags {
			f.Tags[id][aws.ToString(tag.Key)] = aws.ToString(tag.Value)
		}
	}

	return &ec2.CreateTagsOutput{}, nil
}

func notFound(code string, id *string) error {
	return &smithy.GenericAPIError{Code: code, Message: fmt.Sprintf("The ID '%s' does not exist", aws.ToString(id))}
}
