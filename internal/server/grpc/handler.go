package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/server/services"
	"github.com/dmitrijs2005/gophfund/internal/wire"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func (s *GRPCServer) ListCampaigns(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	var pr models.PageRequest
	if err := wire.FromStruct(req, &pr); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if pr.Limit == 0 {
		pr.Limit = services.DefaultLimit
	}

	page, err := s.catalog.ListCampaigns(ctx, pr)
	if err != nil {
		s.logger.Error(ctx, "list campaigns failed", "filter", pr.Filter, "offset", pr.Offset, "error", err)
		return nil, status.Error(codes.Internal, "failed to fetch campaigns")
	}
	if page.Campaigns == nil {
		page.Campaigns = []models.CampaignSummary{}
	}

	resp, err := wire.ToStruct(page)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}
	return resp, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	return wire.ToStruct(wire.PingResponse{Status: "OK"})

}
