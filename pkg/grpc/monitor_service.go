package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Mirrors proto/monitor_service.proto. All messages are google.protobuf.Struct
// so no generated code is needed.

const (
	MonitorServiceName = "monitors.v1.MonitorService"

	ListMonitorsFullMethod = "/monitors.v1.MonitorService/ListMonitors"
	GetMonitorFullMethod   = "/monitors.v1.MonitorService/GetMonitor"
	SetLimiterFullMethod   = "/monitors.v1.MonitorService/SetLimiter"
)

type MonitorServiceServer interface {
	ListMonitors(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetMonitor(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterMonitorServiceServer(s grpc.ServiceRegistrar, srv MonitorServiceServer) {
	s.RegisterService(&MonitorServiceDesc, srv)
}

type unaryMethod func(MonitorServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// methodHandler has the shape grpc.MethodDesc.Handler expects.
type methodHandler = func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error)

func unaryHandler(fullMethod string, call unaryMethod) methodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MonitorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MonitorServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var MonitorServiceDesc = grpc.ServiceDesc{
	ServiceName: MonitorServiceName,
	HandlerType: (*MonitorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListMonitors",
			Handler:    unaryHandler(ListMonitorsFullMethod, MonitorServiceServer.ListMonitors),
		},
		{
			MethodName: "GetMonitor",
			Handler:    unaryHandler(GetMonitorFullMethod, MonitorServiceServer.GetMonitor),
		},
		{
			MethodName: "SetLimiter",
			Handler:    unaryHandler(SetLimiterFullMethod, MonitorServiceServer.SetLimiter),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "monitor_service.proto",
}

type MonitorServiceClient interface {
	ListMonitors(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetMonitor(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type monitorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMonitorServiceClient(cc grpc.ClientConnInterface) MonitorServiceClient {
	return &monitorServiceClient{cc}
}

func (c *monitorServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *monitorServiceClient) ListMonitors(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListMonitorsFullMethod, in, opts...)
}

func (c *monitorServiceClient) GetMonitor(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetMonitorFullMethod, in, opts...)
}

func (c *monitorServiceClient) SetLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SetLimiterFullMethod, in, opts...)
}
