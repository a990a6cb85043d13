// Package grpcentropy exposes one global generator wrapper as an addressable
// gRPC service, so every consumer in a deployment draws from the same
// canonical randomness sequence.
package grpcentropy

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// EntropyServer is the server API for the Entropy gRPC service.
//
// We intentionally use protobuf well-known wrapper types so this package does
// not require a protoc/codegen toolchain.
//
// Proto definition: entropy.proto.
type EntropyServer interface {
	Next32(context.Context, *emptypb.Empty) (*wrapperspb.UInt32Value, error)
	Next64(context.Context, *emptypb.Empty) (*wrapperspb.UInt64Value, error)
	Fill(context.Context, *wrapperspb.UInt32Value) (*wrapperspb.BytesValue, error)
	Reseed(context.Context, *wrapperspb.BytesValue) (*emptypb.Empty, error)
	Snapshot(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error)
	Restore(context.Context, *wrapperspb.BytesValue) (*emptypb.Empty, error)
}

// UnimplementedEntropyServer can be embedded to have forward compatible implementations.
type UnimplementedEntropyServer struct{}

func (UnimplementedEntropyServer) Next32(context.Context, *emptypb.Empty) (*wrapperspb.UInt32Value, error) {
	return nil, status.Error(codes.Unimplemented, "method Next32 not implemented")
}
func (UnimplementedEntropyServer) Next64(context.Context, *emptypb.Empty) (*wrapperspb.UInt64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method Next64 not implemented")
}
func (UnimplementedEntropyServer) Fill(context.Context, *wrapperspb.UInt32Value) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Fill not implemented")
}
func (UnimplementedEntropyServer) Reseed(context.Context, *wrapperspb.BytesValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Reseed not implemented")
}
func (UnimplementedEntropyServer) Snapshot(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Snapshot not implemented")
}
func (UnimplementedEntropyServer) Restore(context.Context, *wrapperspb.BytesValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Restore not implemented")
}

// RegisterEntropyServer registers the Entropy service on a gRPC server.
func RegisterEntropyServer(s grpc.ServiceRegistrar, srv EntropyServer) {
	s.RegisterService(&Entropy_ServiceDesc, srv)
}

// EntropyClient is the client API for the Entropy gRPC service.
type EntropyClient interface {
	Next32(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.UInt32Value, error)
	Next64(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error)
	Fill(ctx context.Context, in *wrapperspb.UInt32Value, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Reseed(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Snapshot(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Restore(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type entropyClient struct{ cc grpc.ClientConnInterface }

func NewEntropyClient(cc grpc.ClientConnInterface) EntropyClient { return &entropyClient{cc: cc} }

func (c *entropyClient) Next32(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.UInt32Value, error) {
	out := new(wrapperspb.UInt32Value)
	err := c.cc.Invoke(ctx, "/xdao.entropy.grpcentropy.v1.Entropy/Next32", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *entropyClient) Next64(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error) {
	out := new(wrapperspb.UInt64Value)
	err := c.cc.Invoke(ctx, "/xdao.entropy.grpcentropy.v1.Entropy/Next64", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *entropyClient) Fill(ctx context.Context, in *wrapperspb.UInt32Value, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/xdao.entropy.grpcentropy.v1.Entropy/Fill", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *entropyClient) Reseed(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, "/xdao.entropy.grpcentropy.v1.Entropy/Reseed", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *entropyClient) Snapshot(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/xdao.entropy.grpcentropy.v1.Entropy/Snapshot", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *entropyClient) Restore(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, "/xdao.entropy.grpcentropy.v1.Entropy/Restore", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Entropy_Next32_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EntropyServer).Next32(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.entropy.grpcentropy.v1.Entropy/Next32"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EntropyServer).Next32(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Entropy_Next64_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EntropyServer).Next64(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.entropy.grpcentropy.v1.Entropy/Next64"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EntropyServer).Next64(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Entropy_Fill_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt32Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EntropyServer).Fill(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.entropy.grpcentropy.v1.Entropy/Fill"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EntropyServer).Fill(ctx, req.(*wrapperspb.UInt32Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _Entropy_Reseed_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EntropyServer).Reseed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.entropy.grpcentropy.v1.Entropy/Reseed"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EntropyServer).Reseed(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Entropy_Snapshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EntropyServer).Snapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.entropy.grpcentropy.v1.Entropy/Snapshot"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EntropyServer).Snapshot(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Entropy_Restore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EntropyServer).Restore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.entropy.grpcentropy.v1.Entropy/Restore"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EntropyServer).Restore(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Entropy_ServiceDesc is the grpc.ServiceDesc for the Entropy service.
var Entropy_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "xdao.entropy.grpcentropy.v1.Entropy",
	HandlerType: (*EntropyServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Next32", Handler: _Entropy_Next32_Handler},
		{MethodName: "Next64", Handler: _Entropy_Next64_Handler},
		{MethodName: "Fill", Handler: _Entropy_Fill_Handler},
		{MethodName: "Reseed", Handler: _Entropy_Reseed_Handler},
		{MethodName: "Snapshot", Handler: _Entropy_Snapshot_Handler},
		{MethodName: "Restore", Handler: _Entropy_Restore_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "entropy.proto",
}
