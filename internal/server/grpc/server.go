// Package grpc serves the MoodJournal API: it authenticates calls with
// session-bound access tokens and translates between wire messages and the
// auth and journal services.
package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/moodyssey/internal/api"
	"github.com/dmitrijs2005/moodyssey/internal/logging"
	"github.com/dmitrijs2005/moodyssey/internal/models"
	"github.com/dmitrijs2005/moodyssey/internal/server/services"
	"github.com/dmitrijs2005/moodyssey/internal/server/session"
	"github.com/dmitrijs2005/moodyssey/internal/summary"
)

// AuthService is the subset of services.AuthService the server calls.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) services.Result
	Authenticate(ctx context.Context, username string, password []byte) services.Result
}

// JournalService is the subset of services.JournalService the server calls.
type JournalService interface {
	Append(ctx context.Context, userID, mood, note string) (models.MoodRecord, error)
	List(ctx context.Context, userID string) ([]models.MoodRecord, error)
	History(ctx context.Context, userID string) ([]models.MoodRecord, error)
	Summarize(ctx context.Context, userID string, bucket summary.Bucket, window summary.Window) (summary.Table, error)
	Compare(ctx context.Context, userID string, recentDays, previousDays int) (summary.Comparison, error)
	Frequency(ctx context.Context, userID string) ([]summary.MoodCount, error)
}

type GRPCServer struct {
	address   string
	auth      AuthService
	journal   JournalService
	sessions  *session.Manager
	logger    logging.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewGRPCServer(a string, l logging.Logger, as AuthService, js JournalService, sm *session.Manager, secretKey string, tokenTTL time.Duration) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		auth:      as,
		journal:   js,
		sessions:  sm,
		jwtSecret: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// NewServer returns a grpc.Server with the interceptors installed and the
// service registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	}, opts...)
	srv := grpc.NewServer(opts...)
	api.RegisterMoodJournalServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	go s.purgeSessions(ctx)

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

func (s *GRPCServer) purgeSessions(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.Purge(); n > 0 {
				s.logger.Debug(ctx, "purged expired sessions", "count", n)
			}
		}
	}
}
