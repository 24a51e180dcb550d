package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophfund/internal/common"
	"github.com/dmitrijs2005/gophfund/internal/models"
	"github.com/dmitrijs2005/gophfund/internal/wire"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
}

// NewGRPCClient prepares a connection to endpointURL. Calls without a
// deadline get timeout; zero disables that. Extra dial options are
// appended to the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.timeoutInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	return nil
}

func (s *GRPCClient) timeoutInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if _, ok := ctx.Deadline(); !ok && s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	var resp wire.PingResponse
	if err := s.call(ctx, wire.PingMethod, struct{}{}, &resp); err != nil {
		return err
	}

	if resp.Status != "OK" {
		return common.ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) ListCampaigns(ctx context.Context, req models.PageRequest) (*models.CampaignPage, error) {

	var page models.CampaignPage
	if err := s.call(ctx, wire.ListCampaignsMethod, req, &page); err != nil {
		return nil, err
	}
	return &page, nil

}

func (s *GRPCClient) call(ctx context.Context, method string, req, resp any) error {
	in, err := wire.ToStruct(req)
	if err != nil {
		return err
	}

	out := &structpb.Struct{}
	if err := s.conn.Invoke(ctx, method, in, out); err != nil {
		return s.mapError(err)
	}

	if err := wire.FromStruct(out, resp); err != nil {
		return fmt.Errorf("%w: %w", common.ErrFetchFailed, err)
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Canceled:
		return context.Canceled
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", common.ErrUnavailable, st.Message())
	case codes.NotFound:
		return common.ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrValidation, st.Message())
	default:
		return fmt.Errorf("%w: rpc error: %w", common.ErrFetchFailed, err)
	}
}
