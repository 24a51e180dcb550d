package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophfund/internal/wire"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// CampaignServiceServer is the server side of gophfund.v1.CampaignService.
// Requests and responses are google.protobuf.Struct values holding the
// JSON payloads of the HTTP API.
type CampaignServiceServer interface {
	ListCampaigns(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var campaignServiceDesc = grpc.ServiceDesc{
	ServiceName: wire.ServiceName,
	HandlerType: (*CampaignServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListCampaigns", Handler: unaryHandler(wire.ListCampaignsMethod, CampaignServiceServer.ListCampaigns)},
		{MethodName: "Ping", Handler: unaryHandler(wire.PingMethod, CampaignServiceServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gophfund/v1/campaign.proto",
}

type unaryMethod func(CampaignServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CampaignServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CampaignServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
