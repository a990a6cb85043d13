package grpcentropy

import (
	"context"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/entropy/entropy"
)

// State is the handle the server serializes access to. Any instantiation of
// entropy.Global satisfies it regardless of the wrapped algorithm.
type State interface {
	entropy.Source
	SeedSize() int
	ReseedBytes(seed []byte) error
	Snapshot() entropy.Record
	Restore(rec entropy.Record) error
}

// DefaultMaxFill bounds a single Fill request.
const DefaultMaxFill = 1 << 20

// Server exposes one State over the Entropy gRPC service.
//
// The wrapper itself is not safe for concurrent mutation; the server is the
// embedder that imposes exclusive access, so every RPC holds the mutex for
// the duration of the state operation.
type Server struct {
	UnimplementedEntropyServer

	// State is the single shared generator handle. Required.
	State State

	// MaxFill caps a single Fill request in bytes; DefaultMaxFill when zero.
	MaxFill uint32

	mu sync.Mutex
}

func (s *Server) Next32(ctx context.Context, in *emptypb.Empty) (*wrapperspb.UInt32Value, error) {
	_ = ctx
	if s == nil || s.State == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing generator state")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return wrapperspb.UInt32(s.State.Uint32()), nil
}

func (s *Server) Next64(ctx context.Context, in *emptypb.Empty) (*wrapperspb.UInt64Value, error) {
	_ = ctx
	if s == nil || s.State == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing generator state")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return wrapperspb.UInt64(s.State.Uint64()), nil
}

func (s *Server) Fill(ctx context.Context, in *wrapperspb.UInt32Value) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.State == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing generator state")
	}
	n := in.GetValue()
	max := s.MaxFill
	if max == 0 {
		max = DefaultMaxFill
	}
	if n > max {
		return nil, status.Error(codes.InvalidArgument, "fill size exceeds limit")
	}
	if n == 0 {
		return wrapperspb.Bytes(nil), nil
	}

	buf := make([]byte, n)
	s.mu.Lock()
	err := s.State.TryFill(buf)
	s.mu.Unlock()
	if err != nil {
		return nil, status.Error(codes.ResourceExhausted, err.Error())
	}
	return wrapperspb.Bytes(buf), nil
}

func (s *Server) Reseed(ctx context.Context, in *wrapperspb.BytesValue) (*emptypb.Empty, error) {
	_ = ctx
	if s == nil || s.State == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing generator state")
	}
	seed := in.GetValue()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(seed) != s.State.SeedSize() {
		return nil, status.Error(codes.InvalidArgument, "seed length does not match algorithm")
	}
	if err := s.State.ReseedBytes(seed); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) Snapshot(ctx context.Context, in *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.State == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing generator state")
	}
	s.mu.Lock()
	rec := s.State.Snapshot()
	s.mu.Unlock()

	b, err := entropy.EncodeSnapshot(rec)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wrapperspb.Bytes(b), nil
}

func (s *Server) Restore(ctx context.Context, in *wrapperspb.BytesValue) (*emptypb.Empty, error) {
	_ = ctx
	if s == nil || s.State == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing generator state")
	}
	rec, err := entropy.DecodeSnapshot(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.State.Restore(rec); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &emptypb.Empty{}, nil
}
