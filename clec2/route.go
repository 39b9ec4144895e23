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

// DefaultRouteDestination matches all IPv4 addresses.
const DefaultRouteDestination = "0.0.0.0/0"

// ErrNoRouteTable is returned when no route table could be found or created to hold the default route.
var ErrNoRouteTable = errors.New("no route table to hold the default route")

// IsMain reports whether any of the table's associations marks it as the main table. A table without
// associations is not main.
func IsMain(tbl types.RouteTable) bool {
	return lo.ContainsBy(tbl.Associations, func(a types.RouteTableAssociation) bool {
		return lo.FromPtr(a.Main)
	})
}

// MainRouteTable looks up the main route table of the VPC. It returns the first table, in the order
// the API lists them, that has a main association.
func (p *Provisioner) MainRouteTable(ctx context.Context, vpcID string) (string, bool, error) {
	pgr := ec2.NewDescribeRouteTablesPaginator(p.api, &ec2.DescribeRouteTablesInput{
		Filters: []types.Filter{{Name: aws.String("vpc-id"), Values: []string{vpcID}}},
	})

	for pgr.HasMorePages() {
		page, err := pgr.NextPage(ctx)
		if err != nil {
			return "", false, fmt.Errorf("failed to describe route tables of '%s': %w", vpcID, err)
		}

		for _, tbl := range page.RouteTables {
			mains := lo.Map(tbl.Associations, func(a types.RouteTableAssociation, _ int) bool {
				return lo.FromPtr(a.Main)
			})

			p.log(ctx).Debug("route table associations",
				zap.String("route_table_id", lo.FromPtr(tbl.RouteTableId)), zap.Bools("main", mains))

			if IsMain(tbl) && lo.FromPtr(tbl.RouteTableId) != "" {
				return *tbl.RouteTableId, true, nil
			}
		}
	}

	return "", false, nil
}

// CreateRouteTable creates a new route table in the VPC and inserts the default route to the gateway
// into it.
func (p *Provisioner) CreateRouteTable(ctx context.Context, vpcID, igwID, name string) (string, error) {
	name = orDefault(name, DefaultRouteTableName)

	out, err := p.api.CreateRouteTable(ctx, &ec2.CreateRouteTableInput{VpcId: aws.String(vpcID)})
	if err != nil {
		return "", fmt.Errorf("failed to create route table: %w", err)
	}

	if out.RouteTable == nil || lo.FromPtr(out.RouteTable.RouteTableId) == "" {
		return "", fmt.Errorf("create route table: %w", ErrNoRouteTable)
	}

	rtbID := *out.RouteTable.RouteTableId
	if err := p.tag(ctx, KindRouteTable, name, rtbID); err != nil {
		return "", err
	}

	if err := p.createDefaultRoute(ctx, rtbID, igwID); err != nil {
		return "", err
	}

	p.log(ctx).Debug("route table response", zap.Any("route_table", out.RouteTable))
	p.log(ctx).Info("route table created",
		zap.String("route_table_id", rtbID), zap.String("vpc_id", vpcID), zap.String("name", name))

	return rtbID, nil
}

// ResolveDefaultRoute makes sure the VPC routes all addresses to the internet gateway. The route is
// added to the VPC's main route table, or to a newly created table if the VPC has no main table. It
// returns the id of the table that holds the route.
func (p *Provisioner) ResolveDefaultRoute(ctx context.Context, vpcID, igwID string) (string, error) {
	mainID, found, err := p.MainRouteTable(ctx, vpcID)
	if err != nil {
		return "", err
	}

	if !found {
		p.log(ctx).Info("no main route table found for the vpc, creating a custom route table",
			zap.String("vpc_id", vpcID))

		return p.CreateRouteTable(ctx, vpcID, igwID, "")
	}

	if err := p.createDefaultRoute(ctx, mainID, igwID); err != nil {
		return "", err
	}

	p.log(ctx).Info("added route to the internet gateway in the main route table",
		zap.String("route_table_id", mainID), zap.String("igw_id", igwID))

	return mainID, nil
}

func (p *Provisioner) createDefaultRoute(ctx context.Context, rtbID, igwID string) error {
	if _, err := p.api.CreateRoute(ctx, &ec2.CreateRouteInput{
		RouteTableId:         aws.String(rtbID),
		DestinationCidrBlock: aws.String(DefaultRouteDestination),
		GatewayId:            aws.String(igwID),
	}); err != nil {
		return fmt.Errorf("failed to create default route in '%s': %w", rtbID, err)
	}

	return nil
}
