package api

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "moodyssey.MoodJournal"

// FullMethod returns the gRPC method path of a MoodJournal method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// MoodJournalServer is implemented by the journal server.
type MoodJournalServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	AddMood(context.Context, *AddMoodRequest) (*AddMoodResponse, error)
	ListMoods(context.Context, *ListMoodsRequest) (*ListMoodsResponse, error)
	Summarize(context.Context, *SummarizeRequest) (*SummarizeResponse, error)
	Compare(context.Context, *CompareRequest) (*CompareResponse, error)
	Frequency(context.Context, *FrequencyRequest) (*FrequencyResponse, error)
}

// PublicMethods lists the full method names callable without an access
// token.
var PublicMethods = map[string]bool{
	FullMethod("Ping"):     true,
	FullMethod("Register"): true,
	FullMethod("Login"):    true,
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MoodJournalServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Ping", MoodJournalServer.Ping),
		unary("Register", MoodJournalServer.Register),
		unary("Login", MoodJournalServer.Login),
		unary("Logout", MoodJournalServer.Logout),
		unary("AddMood", MoodJournalServer.AddMood),
		unary("ListMoods", MoodJournalServer.ListMoods),
		unary("Summarize", MoodJournalServer.Summarize),
		unary("Compare", MoodJournalServer.Compare),
		unary("Frequency", MoodJournalServer.Frequency),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "moodyssey/api",
}

func RegisterMoodJournalServer(s grpc.ServiceRegistrar, srv MoodJournalServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func unary[Req, Resp any](name string, call func(MoodJournalServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MoodJournalServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(MoodJournalServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
