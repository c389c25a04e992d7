package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	LeakDetectorService_Analyze_FullMethodName         = "/profitleak.LeakDetectorService/Analyze"
	LeakDetectorService_CompareScenario_FullMethodName = "/profitleak.LeakDetectorService/CompareScenario"
	LeakDetectorService_GetThresholds_FullMethodName   = "/profitleak.LeakDetectorService/GetThresholds"
)

// LeakDetectorServiceClient is the client API for LeakDetectorService.
type LeakDetectorServiceClient interface {
	Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error)
	CompareScenario(ctx context.Context, in *ScenarioRequest, opts ...grpc.CallOption) (*ScenarioResponse, error)
	GetThresholds(ctx context.Context, in *GetThresholdsRequest, opts ...grpc.CallOption) (*GetThresholdsResponse, error)
}

type leakDetectorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLeakDetectorServiceClient(cc grpc.ClientConnInterface) LeakDetectorServiceClient {
	return &leakDetectorServiceClient{cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *leakDetectorServiceClient) Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error) {
	out := new(AnalyzeResponse)
	err := c.cc.Invoke(ctx, LeakDetectorService_Analyze_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *leakDetectorServiceClient) CompareScenario(ctx context.Context, in *ScenarioRequest, opts ...grpc.CallOption) (*ScenarioResponse, error) {
	out := new(ScenarioResponse)
	err := c.cc.Invoke(ctx, LeakDetectorService_CompareScenario_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *leakDetectorServiceClient) GetThresholds(ctx context.Context, in *GetThresholdsRequest, opts ...grpc.CallOption) (*GetThresholdsResponse, error) {
	out := new(GetThresholdsResponse)
	err := c.cc.Invoke(ctx, LeakDetectorService_GetThresholds_FullMethodName, in, out, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LeakDetectorServiceServer is the server API for LeakDetectorService.
// Implementations must embed UnimplementedLeakDetectorServiceServer.
type LeakDetectorServiceServer interface {
	Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error)
	CompareScenario(context.Context, *ScenarioRequest) (*ScenarioResponse, error)
	GetThresholds(context.Context, *GetThresholdsRequest) (*GetThresholdsResponse, error)
	mustEmbedUnimplementedLeakDetectorServiceServer()
}

// UnimplementedLeakDetectorServiceServer returns Unimplemented for every method.
type UnimplementedLeakDetectorServiceServer struct{}

func (UnimplementedLeakDetectorServiceServer) Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Analyze not implemented")
}
func (UnimplementedLeakDetectorServiceServer) CompareScenario(context.Context, *ScenarioRequest) (*ScenarioResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareScenario not implemented")
}
func (UnimplementedLeakDetectorServiceServer) GetThresholds(context.Context, *GetThresholdsRequest) (*GetThresholdsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetThresholds not implemented")
}
func (UnimplementedLeakDetectorServiceServer) mustEmbedUnimplementedLeakDetectorServiceServer() {}

func RegisterLeakDetectorServiceServer(s grpc.ServiceRegistrar, srv LeakDetectorServiceServer) {
	s.RegisterService(&LeakDetectorService_ServiceDesc, srv)
}

func _LeakDetectorService_Analyze_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeakDetectorServiceServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LeakDetectorService_Analyze_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeakDetectorServiceServer).Analyze(ctx, req.(*AnalyzeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LeakDetectorService_CompareScenario_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScenarioRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeakDetectorServiceServer).CompareScenario(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LeakDetectorService_CompareScenario_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeakDetectorServiceServer).CompareScenario(ctx, req.(*ScenarioRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LeakDetectorService_GetThresholds_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetThresholdsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LeakDetectorServiceServer).GetThresholds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LeakDetectorService_GetThresholds_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LeakDetectorServiceServer).GetThresholds(ctx, req.(*GetThresholdsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LeakDetectorService_ServiceDesc is the grpc.ServiceDesc for LeakDetectorService.
var LeakDetectorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "profitleak.LeakDetectorService",
	HandlerType: (*LeakDetectorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Analyze",
			Handler:    _LeakDetectorService_Analyze_Handler,
		},
		{
			MethodName: "CompareScenario",
			Handler:    _LeakDetectorService_CompareScenario_Handler,
		},
		{
			MethodName: "GetThresholds",
			Handler:    _LeakDetectorService_GetThresholds_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "leakdetector/api/service.go",
}
