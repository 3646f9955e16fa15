package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/timeout"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/dzoniops/room-booking-service/api"
	"github.com/dzoniops/room-booking-service/utils"
)

const DefaultTimeout = 500 * time.Millisecond

type ReservationClient struct {
	client api.ReservationServiceClient
	conn   *grpc.ClientConn
}

type Options struct {
	Logger     log.Logger
	Registerer prometheus.Registerer
	Timeout    time.Duration
	// DialOptions are appended after the defaults, e.g. a bufconn dialer.
	DialOptions []grpc.DialOption
}

func Dial(url string, opts Options) (*ReservationClient, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	rpcLogger := log.With(logger, "service", "gRPC/client", "component", "reservation-client")
	logTraceID := func(ctx context.Context) logging.Fields {
		if span := trace.SpanContextFromContext(ctx); span.IsSampled() {
			return logging.Fields{"traceID", span.TraceID().String()}
		}
		return nil
	}
	callTimeout := opts.Timeout
	if callTimeout <= 0 {
		callTimeout = DefaultTimeout
	}

	// Setup metrics.
	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	clMetrics := grpcprom.NewClientMetrics(
		grpcprom.WithClientHandlingTimeHistogram(
			grpcprom.WithHistogramBuckets(
				[]float64{0.001, 0.01, 0.1, 0.3, 0.6, 1, 3, 6, 9, 20, 30, 60, 90, 120},
			),
		),
	)
	if err := reg.Register(clMetrics); err != nil {
		return nil, fmt.Errorf("registering client metrics: %w", err)
	}
	exemplarFromContext := func(ctx context.Context) prometheus.Labels {
		if span := trace.SpanContextFromContext(ctx); span.IsSampled() {
			return prometheus.Labels{"traceID": span.TraceID().String()}
		}
		return nil
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(
			timeout.UnaryClientInterceptor(callTimeout),
			otelgrpc.UnaryClientInterceptor(),
			clMetrics.UnaryClientInterceptor(grpcprom.WithExemplarFromContext(exemplarFromContext)),
			logging.UnaryClientInterceptor(
				utils.InterceptorLogger(rpcLogger),
				logging.WithFieldsFromContext(logTraceID),
			),
		),
		grpc.WithChainStreamInterceptor(
			otelgrpc.StreamClientInterceptor(),
			clMetrics.StreamClientInterceptor(
				grpcprom.WithExemplarFromContext(exemplarFromContext),
			),
			logging.StreamClientInterceptor(
				utils.InterceptorLogger(rpcLogger),
				logging.WithFieldsFromContext(logTraceID),
			),
		),
	}, opts.DialOptions...)

	conn, err := grpc.Dial(url, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", url, err)
	}
	return &ReservationClient{client: api.NewReservationServiceClient(conn), conn: conn}, nil
}

func (c *ReservationClient) Close() error {
	return c.conn.Close()
}

func (c *ReservationClient) Reserve(ctx context.Context, req *api.ReserveRequest) (*api.Reservation, error) {
	res, err := c.client.Reserve(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Reservation, nil
}

func (c *ReservationClient) Update(ctx context.Context, req *api.UpdateRequest) (*api.Reservation, error) {
	res, err := c.client.Update(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Reservation, nil
}

func (c *ReservationClient) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := c.client.Delete(ctx, &api.IdRequest{Id: id})
	if err != nil {
		return false, err
	}
	return res.Deleted, nil
}

func (c *ReservationClient) GetReservation(ctx context.Context, id int64) (*api.Reservation, error) {
	res, err := c.client.Get(ctx, &api.IdRequest{Id: id})
	if err != nil {
		return nil, err
	}
	return res.Reservation, nil
}

func (c *ReservationClient) UserReservations(
	ctx context.Context,
	userID int64,
	page, pageSize int,
) (*api.ReservationsResponse, error) {
	return c.client.UserReservations(ctx, &api.UserReservationsRequest{
		UserId:   userID,
		Page:     int32(page),
		PageSize: int32(pageSize),
	})
}

func (c *ReservationClient) Reservations(ctx context.Context, page, pageSize int) (*api.ReservationsResponse, error) {
	return c.client.Reservations(ctx, &api.PageRequest{Page: int32(page), PageSize: int32(pageSize)})
}
