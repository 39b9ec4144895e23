package clec2_test

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/crewlinker/clinfra/clec2"
	"github.com/crewlinker/clinfra/clec2/clec2fake"
	"github.com/crewlinker/clinfra/clec2/clec2mock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest/observer"
)

// hasDefaultRoute asserts the table routes all addresses to the gateway.
func hasDefaultRoute(fake *clec2fake.EC2, rtbID, igwID string) {
	tbl, ok := fake.RouteTable(rtbID)
	Expect(ok).To(BeTrue())
	Expect(tbl.Routes).To(ContainElement(And(
		HaveField("DestinationCidrBlock", HaveValue(Equal("0.0.0.0/0"))),
		HaveField("GatewayId", HaveValue(Equal(igwID))),
	)))
}

// table builds a route table with the given main flags on its associations.
func table(id, vpcID string, mains ...bool) types.RouteTable {
	tbl := types.RouteTable{RouteTableId: aws.String(id), VpcId: aws.String(vpcID)}
	for _, m := range mains {
		tbl.Associations = append(tbl.Associations, types.RouteTableAssociation{Main: aws.Bool(m)})
	}

	return tbl
}

var _ = DescribeTable("main association check", func(tbl types.RouteTable, exp bool) {
	Expect(clec2.IsMain(tbl)).To(Equal(exp))
},
	Entry("no associations", table("rtb-1", "vpc-1"), false),
	Entry("single main", table("rtb-1", "vpc-1", true), true),
	Entry("single non-main", table("rtb-1", "vpc-1", false), false),
	Entry("main not first", table("rtb-1", "vpc-1", false, true), true),
	Entry("nil main flag", types.RouteTable{Associations: []types.RouteTableAssociation{{}}}, false),
)

var _ = Describe("route resolver", func() {
	var fake *clec2fake.EC2
	var prov *clec2.Provisioner
	var obs *observer.ObservedLogs
	var vpcID, igwID string

	prepare := func(ctx context.Context, opts ...clec2fake.Option) {
		fake = clec2fake.New(opts...)
		prov, obs, _ = setup(ctx, fake)

		var err error
		vpcID, err = prov.CreateNetwork(ctx, "10.0.0.0/16", "")
		Expect(err).ToNot(HaveOccurred())
		igwID, err = prov.CreateGateway(ctx, vpcID, "")
		Expect(err).ToNot(HaveOccurred())
	}

	When("the vpc has a main route table", func() {
		BeforeEach(func(ctx context.Context) { prepare(ctx) })

		It("should add the route to the main table", func(ctx context.Context) {
			Expect(fake.RouteTables).To(HaveLen(1))
			mainID := *fake.RouteTables[0].RouteTableId

			rtbID, err := prov.ResolveDefaultRoute(ctx, vpcID, igwID)
			Expect(err).ToNot(HaveOccurred())
			Expect(rtbID).To(Equal(mainID))
			hasDefaultRoute(fake, rtbID, igwID)

			Expect(fake.Calls).ToNot(ContainElement("CreateRouteTable"))
			Expect(fake.RouteTables).To(HaveLen(1))
			Expect(fake.Tags).ToNot(HaveKey(mainID))
			Expect(obs.FilterMessage("added route to the internet gateway in the main route table").Len()).To(Equal(1))
		})
	})

	When("the vpc has no route tables", func() {
		BeforeEach(func(ctx context.Context) { prepare(ctx, clec2fake.WithoutMainRouteTable()) })

		It("should create a new table holding the route", func(ctx context.Context) {
			rtbID, err := prov.ResolveDefaultRoute(ctx, vpcID, igwID)
			Expect(err).ToNot(HaveOccurred())
			Expect(rtbID).To(HavePrefix("rtb-"))
			hasDefaultRoute(fake, rtbID, igwID)

			Expect(fake.RouteTables).To(HaveLen(1))
			Expect(fake.Tags[rtbID]).To(Equal(map[string]string{"project": "wecloud", "Name": "wecloud-proj-1-rt"}))
			Expect(fake.Calls).To(HaveExactElements(
				"CreateVpc", "CreateTags",
				"CreateInternetGateway", "AttachInternetGateway", "CreateTags",
				"DescribeRouteTables", "CreateRouteTable", "CreateTags", "CreateRoute"))
		})
	})

	When("the vpc only has a table without associations", func() {
		BeforeEach(func(ctx context.Context) {
			prepare(ctx, clec2fake.WithoutMainRouteTable())
			fake.AddRouteTable(table("rtb-orphan", vpcID))
		})

		It("should skip it and fall back to a new table", func(ctx context.Context) {
			rtbID, err := prov.ResolveDefaultRoute(ctx, vpcID, igwID)
			Expect(err).ToNot(HaveOccurred())
			Expect(rtbID).ToNot(Equal("rtb-orphan"))
			hasDefaultRoute(fake, rtbID, igwID)

			orphan, _ := fake.RouteTable("rtb-orphan")
			Expect(orphan.Routes).To(BeEmpty())
		})
	})

	When("the vpc has several tables", func() {
		BeforeEach(func(ctx context.Context) {
			prepare(ctx, clec2fake.WithoutMainRouteTable(), clec2fake.WithPageSize(2))
			fake.AddRouteTable(table("rtb-empty", vpcID))
			fake.AddRouteTable(table("rtb-custom", vpcID, false))
			fake.AddRouteTable(table("rtb-other-vpc", "vpc-other", true))
			fake.AddRouteTable(table("rtb-main", vpcID, false, true))
		})

		It("should pick the main one regardless of order and across pages", func(ctx context.Context) {
			rtbID, err := prov.ResolveDefaultRoute(ctx, vpcID, igwID)
			Expect(err).ToNot(HaveOccurred())
			Expect(rtbID).To(Equal("rtb-main"))
			hasDefaultRoute(fake, "rtb-main", igwID)

			Expect(lo.Count(fake.Calls, "DescribeRouteTables")).To(Equal(2))
			Expect(fake.Calls).ToNot(ContainElement("CreateRouteTable"))
		})
	})
})

var _ = Describe("route resolver failures", func() {
	var api *clec2mock.MockAPI
	var prov *clec2.Provisioner

	BeforeEach(func(ctx context.Context) {
		api = clec2mock.NewMockAPI(GinkgoT())
		prov, _, _ = setup(ctx, api)
	})

	It("should propagate lookup errors without creating anything", func(ctx context.Context) {
		api.EXPECT().DescribeRouteTables(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apiErr("UnauthorizedOperation")).Once()

		_, err := prov.ResolveDefaultRoute(ctx, "vpc-1", "igw-1")
		Expect(err).To(MatchError(ContainSubstring("UnauthorizedOperation")))
		api.AssertNotCalled(GinkgoT(), "CreateRoute", mock.Anything, mock.Anything, mock.Anything)
	})

	It("should report a created table without id", func(ctx context.Context) {
		api.EXPECT().DescribeRouteTables(mock.Anything, mock.Anything, mock.Anything).
			Return(&ec2.DescribeRouteTablesOutput{}, nil).Once()
		api.EXPECT().CreateRouteTable(mock.Anything, mock.Anything, mock.Anything).
			Return(&ec2.CreateRouteTableOutput{}, nil).Once()

		_, err := prov.ResolveDefaultRoute(ctx, "vpc-1", "igw-1")
		Expect(err).To(MatchError(clec2.ErrNoRouteTable))
	})

	It("should propagate route creation errors on the main table", func(ctx context.Context) {
		api.EXPECT().DescribeRouteTables(mock.Anything, mock.Anything, mock.Anything).
			Return(&ec2.DescribeRouteTablesOutput{RouteTables: []types.RouteTable{table("rtb-1", "vpc-1", true)}}, nil).Once()
		api.EXPECT().CreateRoute(mock.Anything, &ec2.CreateRouteInput{
			RouteTableId:         aws.String("rtb-1"),
			DestinationCidrBlock: aws.String("0.0.0.0/0"),
			GatewayId:            aws.String("igw-1"),
		}, mock.Anything).Return(nil, apiErr("RouteAlreadyExists")).Once()

		_, err := prov.ResolveDefaultRoute(ctx, "vpc-1", "igw-1")
		Expect(err).To(MatchError(ContainSubstring("failed to create default route in 'rtb-1'")))
	})
})
