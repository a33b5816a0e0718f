package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/moodyssey/internal/api"
	"github.com/dmitrijs2005/moodyssey/internal/common"
	"github.com/dmitrijs2005/moodyssey/internal/models"
	"github.com/dmitrijs2005/moodyssey/internal/summary"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      *api.MoodJournalClient

	mu          sync.Mutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

// callInterceptor attaches the access token, when there is one, and bounds
// every call by the configured timeout.
func (s *GRPCClient) callInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults (insecure transport, call interceptor).
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.callInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewMoodJournalClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// Register returns the server's confirmation message.
func (s *GRPCClient) Register(ctx context.Context, username string, password []byte) (string, error) {
	resp, err := s.client.Register(ctx, &api.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return "", mapError(err)
	}
	return resp.Message, nil
}

// Login keeps the returned access token for later calls. A rejected password
// unwraps to common.ErrInvalidCredential.
func (s *GRPCClient) Login(ctx context.Context, username string, password []byte) (string, error) {
	resp, err := s.client.Login(ctx, &api.LoginRequest{Username: username, Password: password})
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			return "", &ServerError{Err: common.ErrInvalidCredential, Message: status.Convert(err).Message()}
		}
		return "", mapError(err)
	}

	s.setToken(resp.AccessToken)
	return resp.Message, nil
}

// Logout ends the server session. The local token is dropped even when the
// server call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if s.token() == "" {
		return ErrNotLoggedIn
	}
	_, err := s.client.Logout(ctx, &api.LogoutRequest{})
	s.setToken("")
	if err != nil && !errors.Is(mapError(err), common.ErrUnauthorized) {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) AddMood(ctx context.Context, mood, note string) (models.MoodRecord, error) {
	resp, err := s.client.AddMood(ctx, &api.AddMoodRequest{Mood: mood, Note: note})
	if err != nil {
		return models.MoodRecord{}, mapError(err)
	}
	return resp.Record, nil
}

func (s *GRPCClient) ListMoods(ctx context.Context, newestFirst bool) ([]models.MoodRecord, string, error) {
	resp, err := s.client.ListMoods(ctx, &api.ListMoodsRequest{NewestFirst: newestFirst})
	if err != nil {
		return nil, "", mapError(err)
	}
	return resp.Records, resp.Warning, nil
}

func (s *GRPCClient) Summarize(ctx context.Context, bucket summary.Bucket, window summary.Window) (summary.Table, string, error) {
	resp, err := s.client.Summarize(ctx, &api.SummarizeRequest{Bucket: string(bucket), Window: window})
	if err != nil {
		return summary.Table{}, "", mapError(err)
	}
	return resp.Table, resp.Warning, nil
}

func (s *GRPCClient) Compare(ctx context.Context, recentDays, previousDays int) (summary.Comparison, string, error) {
	resp, err := s.client.Compare(ctx, &api.CompareRequest{RecentDays: recentDays, PreviousDays: previousDays})
	if err != nil {
		return summary.Comparison{}, "", mapError(err)
	}
	return resp.Comparison, resp.Warning, nil
}

func (s *GRPCClient) Frequency(ctx context.Context) ([]summary.MoodCount, string, error) {
	resp, err := s.client.Frequency(ctx, &api.FrequencyRequest{})
	if err != nil {
		return nil, "", mapError(err)
	}
	return resp.Counts, resp.Warning, nil
}
