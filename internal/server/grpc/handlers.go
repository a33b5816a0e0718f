package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/moodyssey/internal/api"
	"github.com/dmitrijs2005/moodyssey/internal/common"
	"github.com/dmitrijs2005/moodyssey/internal/server/auth"
	"github.com/dmitrijs2005/moodyssey/internal/server/session"
	"github.com/dmitrijs2005/moodyssey/internal/summary"
)

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {
	defer common.WipeByteArray(req.Password)

	res := s.auth.Register(ctx, req.Username, req.Password)
	if !res.Success {
		return nil, toStatus(res.Err, res.Message)
	}
	return &api.RegisterResponse{Message: res.Message}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	defer common.WipeByteArray(req.Password)

	res := s.auth.Authenticate(ctx, req.Username, req.Password)
	if !res.Success {
		s.logger.Info(ctx, "login rejected", "username", req.Username, "reason", res.Err.Error())
		return nil, toStatus(res.Err, res.Message)
	}

	sess := s.sessions.Create(req.Username)
	token, err := auth.GenerateToken(sess.ID, sess.Username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		s.sessions.End(sess.ID)
		s.logger.Error(ctx, "signing access token failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "logged in", "username", sess.Username)
	return &api.LoginResponse{AccessToken: token, Message: res.Message}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *api.LogoutRequest) (*api.LogoutResponse, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}
	s.sessions.End(sess.ID)
	return &api.LogoutResponse{}, nil
}

func (s *GRPCServer) AddMood(ctx context.Context, req *api.AddMoodRequest) (*api.AddMoodResponse, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.journal.Append(ctx, sess.Username, req.Mood, req.Note)
	if err != nil {
		return nil, toStatus(err, "")
	}
	return &api.AddMoodResponse{Record: rec}, nil
}

func (s *GRPCServer) ListMoods(ctx context.Context, req *api.ListMoodsRequest) (*api.ListMoodsResponse, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	list := s.journal.List
	if req.NewestFirst {
		list = s.journal.History
	}
	recs, warn := list(ctx, sess.Username)
	return &api.ListMoodsResponse{Records: recs, Warning: warning(warn)}, nil
}

func (s *GRPCServer) Summarize(ctx context.Context, req *api.SummarizeRequest) (*api.SummarizeResponse, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	bucket, err := summary.ParseBucket(req.Bucket)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	table, err := s.journal.Summarize(ctx, sess.Username, bucket, req.Window)
	if isHardError(err) {
		return nil, toStatus(err, "")
	}
	return &api.SummarizeResponse{Table: table, Warning: warning(err)}, nil
}

func (s *GRPCServer) Compare(ctx context.Context, req *api.CompareRequest) (*api.CompareResponse, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	cmp, err := s.journal.Compare(ctx, sess.Username, req.RecentDays, req.PreviousDays)
	if isHardError(err) {
		return nil, toStatus(err, "")
	}
	return &api.CompareResponse{Comparison: cmp, Warning: warning(err)}, nil
}

func (s *GRPCServer) Frequency(ctx context.Context, req *api.FrequencyRequest) (*api.FrequencyResponse, error) {
	sess, err := currentSession(ctx)
	if err != nil {
		return nil, err
	}

	counts, warn := s.journal.Frequency(ctx, sess.Username)
	return &api.FrequencyResponse{Counts: counts, Warning: warning(warn)}, nil
}

func currentSession(ctx context.Context) (session.Session, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return session.Session{}, status.Error(codes.Unauthenticated, "no session")
	}
	return sess, nil
}

// isHardError reports whether err failed the request rather than being a
// storage warning next to usable data.
func isHardError(err error) bool {
	return errors.Is(err, summary.ErrInvalidBucket) || errors.Is(err, summary.ErrInvalidWindow)
}

func warning(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
