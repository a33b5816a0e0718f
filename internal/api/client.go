package api

import (
	"context"

	"google.golang.org/grpc"
)

// MoodJournalClient calls the MoodJournal service over a client connection,
// always with the JSON codec.
type MoodJournalClient struct {
	cc grpc.ClientConnInterface
}

func NewMoodJournalClient(cc grpc.ClientConnInterface) *MoodJournalClient {
	return &MoodJournalClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MoodJournalClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, "Ping", in, opts)
}

func (c *MoodJournalClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, "Register", in, opts)
}

func (c *MoodJournalClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, "Login", in, opts)
}

func (c *MoodJournalClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, "Logout", in, opts)
}

func (c *MoodJournalClient) AddMood(ctx context.Context, in *AddMoodRequest, opts ...grpc.CallOption) (*AddMoodResponse, error) {
	return invoke[AddMoodResponse](ctx, c.cc, "AddMood", in, opts)
}

func (c *MoodJournalClient) ListMoods(ctx context.Context, in *ListMoodsRequest, opts ...grpc.CallOption) (*ListMoodsResponse, error) {
	return invoke[ListMoodsResponse](ctx, c.cc, "ListMoods", in, opts)
}

func (c *MoodJournalClient) Summarize(ctx context.Context, in *SummarizeRequest, opts ...grpc.CallOption) (*SummarizeResponse, error) {
	return invoke[SummarizeResponse](ctx, c.cc, "Summarize", in, opts)
}

func (c *MoodJournalClient) Compare(ctx context.Context, in *CompareRequest, opts ...grpc.CallOption) (*CompareResponse, error) {
	return invoke[CompareResponse](ctx, c.cc, "Compare", in, opts)
}

func (c *MoodJournalClient) Frequency(ctx context.Context, in *FrequencyRequest, opts ...grpc.CallOption) (*FrequencyResponse, error) {
	return invoke[FrequencyResponse](ctx, c.cc, "Frequency", in, opts)
}
