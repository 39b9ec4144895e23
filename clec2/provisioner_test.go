package clec2_test

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/crewlinker/clinfra/clec2"
	"github.com/crewlinker/clinfra/clec2/clec2fake"
	"github.com/crewlinker/clinfra/clec2/clec2mock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap/zaptest/observer"
)

// tagsOf builds the expected tag map.
func tagsOf(name string) map[string]string {
	return map[string]string{"project": "wecloud", "Name": name}
}

var _ = Describe("provisioning steps", func() {
	var fake *clec2fake.EC2
	var prov *clec2.Provisioner
	var obs *observer.ObservedLogs
	var mrd *sdkmetric.ManualReader

	BeforeEach(func(ctx context.Context) {
		fake = clec2fake.New()
		prov, obs, mrd = setup(ctx, fake)
	})

	It("should create and tag a network", func(ctx context.Context) {
		vpcID, err := prov.CreateNetwork(ctx, "10.0.0.0/16", "")
		Expect(err).ToNot(HaveOccurred())
		Expect(fake.Vpcs[vpcID].CidrBlock).To(HaveValue(Equal("10.0.0.0/16")))
		Expect(fake.Tags[vpcID]).To(Equal(tagsOf("wecloud-proj-1-vpc")))
		Expect(obs.FilterMessage("vpc created").All()[0].ContextMap()).To(HaveKeyWithValue("vpc_id", vpcID))
	})

	It("should create, attach and tag a gateway", func(ctx context.Context) {
		vpcID, err := prov.CreateNetwork(ctx, "10.0.0.0/16", "")
		Expect(err).ToNot(HaveOccurred())

		igwID, err := prov.CreateGateway(ctx, vpcID, "my-igw")
		Expect(err).ToNot(HaveOccurred())
		Expect(fake.Gateways[igwID].Attachments).To(HaveExactElements(
			HaveField("VpcId", HaveValue(Equal(vpcID)))))
		Expect(fake.Tags[igwID]).To(Equal(tagsOf("my-igw")))
	})

	It("should create a public subnet", func(ctx context.Context) {
		vpcID, err := prov.CreateNetwork(ctx, "10.0.0.0/16", "")
		Expect(err).ToNot(HaveOccurred())

		subnetID, err := prov.CreateSubnet(ctx, vpcID, "10.0.0.0/24", "us-east-1a", "")
		Expect(err).ToNot(HaveOccurred())

		subnet := fake.Subnets[subnetID]
		Expect(subnet.VpcId).To(HaveValue(Equal(vpcID)))
		Expect(subnet.AvailabilityZone).To(HaveValue(Equal("us-east-1a")))
		Expect(subnet.MapPublicIpOnLaunch).To(HaveValue(BeTrue()))
		Expect(fake.Tags[subnetID]).To(Equal(tagsOf("wecloud-proj-1-subnet")))
	})

	It("should create a security group with only ssh open", func(ctx context.Context) {
		vpcID, err := prov.CreateNetwork(ctx, "10.0.0.0/16", "")
		Expect(err).ToNot(HaveOccurred())

		sgID, err := prov.CreateSecurityGroup(ctx, vpcID, "", "Proj 1 sg", "")
		Expect(err).ToNot(HaveOccurred())

		sg := fake.SecurityGroups[sgID]
		Expect(sg.GroupName).To(HaveValue(Equal("wecloud-sg-1")))
		Expect(sg.Description).To(HaveValue(Equal("Proj 1 sg")))
		Expect(cmp.Diff(sg.IpPermissions, []types.IpPermission{clec2.SSHIngress()},
			cmpopts.IgnoreUnexported(types.IpPermission{}, types.IpRange{}))).To(BeEmpty())
		Expect(*sg.IpPermissions[0].FromPort).To(BeEquivalentTo(22))
		Expect(fake.Tags[sgID]).To(Equal(tagsOf("wecloud-sg-1")))
	})

	It("should launch and tag instances", func(ctx context.Context) {
		vpcID, err := prov.CreateNetwork(ctx, "10.0.0.0/16", "")
		Expect(err).ToNot(HaveOccurred())
		subnetID, err := prov.CreateSubnet(ctx, vpcID, "10.0.0.0/24", "us-east-1a", "")
		Expect(err).ToNot(HaveOccurred())

		instID, err := prov.CreateInstance(ctx, clec2.InstanceConfig{
			ImageID:          "ami-1",
			InstanceType:     "t2.small",
			KeyName:          "key",
			SubnetID:         subnetID,
			SecurityGroupIDs: []string{"sg-1"},
			UserData:         "#!/bin/bash\necho BEGIN\n",
		}, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(fake.Instances).To(HaveLen(1))
		Expect(fake.Tags[instID]).To(Equal(tagsOf("wecloud-proj-1-ec2")))

		inp := fake.Instances[0].Input
		Expect(inp.InstanceType).To(Equal(types.InstanceTypeT2Small))
		Expect(inp.MinCount).To(HaveValue(BeEquivalentTo(1)))
		Expect(inp.MaxCount).To(HaveValue(BeEquivalentTo(1)))

		script, err := base64.StdEncoding.DecodeString(*inp.UserData)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(script)).To(Equal("#!/bin/bash\necho BEGIN\n"))
	})

	It("should tag every instance of a reservation", func(ctx context.Context) {
		vpcID, err := prov.CreateNetwork(ctx, "10.0.0.0/16", "")
		Expect(err).ToNot(HaveOccurred())
		subnetID, err := prov.CreateSubnet(ctx, vpcID, "10.0.0.0/24", "us-east-1a", "")
		Expect(err).ToNot(HaveOccurred())

		_, err = prov.CreateInstance(ctx, clec2.InstanceConfig{SubnetID: subnetID, MinCount: 2, MaxCount: 2}, "pool")
		Expect(err).ToNot(HaveOccurred())
		Expect(fake.Instances).To(HaveLen(2))

		for _, inst := range fake.Instances {
			Expect(fake.Tags[inst.ID]).To(Equal(tagsOf("pool")))
			Expect(inst.Input.UserData).To(BeNil())
		}

		Expect(createdCounts(ctx, mrd)).To(Equal(map[string]int64{"vpc": 1, "subnet": 1, "instance": 2}))
	})
})

var _ = Describe("launch request", func() {
	It("should never ask for fewer than one instance", func() {
		inp := clec2.InstanceConfig{MaxCount: 0}.RunInstancesInput()
		Expect(*inp.MinCount).To(BeEquivalentTo(1))
		Expect(*inp.MaxCount).To(BeEquivalentTo(1))
	})

	It("should keep max at least min", func() {
		inp := clec2.InstanceConfig{MinCount: 3}.RunInstancesInput()
		Expect(*inp.MaxCount).To(BeEquivalentTo(3))
	})
})

var _ = Describe("provider failures", func() {
	var api *clec2mock.MockAPI
	var prov *clec2.Provisioner

	BeforeEach(func(ctx context.Context) {
		api = clec2mock.NewMockAPI(GinkgoT())
		prov, _, _ = setup(ctx, api)
	})

	It("should tag with exactly the project marker and name", func(ctx context.Context) {
		api.EXPECT().CreateVpc(mock.Anything, mock.Anything, mock.Anything).
			Return(&ec2.CreateVpcOutput{Vpc: &types.Vpc{VpcId: aws.String("vpc-1")}}, nil).Once()
		api.EXPECT().CreateTags(mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, params *ec2.CreateTagsInput, _ ...func(*ec2.Options)) {
				Expect(cmp.Diff(params, &ec2.CreateTagsInput{
					Resources: []string{"vpc-1"},
					Tags: []types.Tag{
						{Key: aws.String("project"), Value: aws.String("wecloud")},
						{Key: aws.String("Name"), Value: aws.String("net")},
					},
				}, cmpopts.IgnoreUnexported(ec2.CreateTagsInput{}, types.Tag{}))).To(BeEmpty())
			}).
			Return(&ec2.CreateTagsOutput{}, nil).Once()

		vpcID, err := prov.CreateNetwork(ctx, "10.0.0.0/16", "net")
		Expect(err).ToNot(HaveOccurred())
		Expect(vpcID).To(Equal("vpc-1"))
	})

	It("should stop at the first error without tagging", func(ctx context.Context) {
		api.EXPECT().CreateInternetGateway(mock.Anything, mock.Anything, mock.Anything).
			Return(&ec2.CreateInternetGatewayOutput{
				InternetGateway: &types.InternetGateway{InternetGatewayId: aws.String("igw-1")},
			}, nil).Once()
		api.EXPECT().AttachInternetGateway(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apiErr("Resource.AlreadyAssociated")).Once()

		_, err := prov.CreateGateway(ctx, "vpc-1", "")
		Expect(err).To(MatchError(ContainSubstring("Resource.AlreadyAssociated")))
		api.AssertNotCalled(GinkgoT(), "CreateTags", mock.Anything, mock.Anything, mock.Anything)
	})

	It("should report responses without an id", func(ctx context.Context) {
		api.EXPECT().RunInstances(mock.Anything, mock.Anything, mock.Anything).
			Return(&ec2.RunInstancesOutput{}, nil).Once()

		_, err := prov.CreateInstance(ctx, clec2.InstanceConfig{}, "")
		Expect(err).To(MatchError(clec2.ErrNoID))
	})

	It("should propagate tagging errors", func(ctx context.Context) {
		api.EXPECT().CreateSecurityGroup(mock.Anything, mock.Anything, mock.Anything).
			Return(&ec2.CreateSecurityGroupOutput{GroupId: aws.String("sg-1")}, nil).Once()
		api.EXPECT().CreateTags(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apiErr("TagLimitExceeded")).Once()

		_, err := prov.CreateSecurityGroup(ctx, "vpc-1", "", "", "")
		Expect(err).To(MatchError(ContainSubstring("failed to tag security-group")))
		api.AssertNotCalled(GinkgoT(), "AuthorizeSecurityGroupIngress", mock.Anything, mock.Anything, mock.Anything)
	})
})
