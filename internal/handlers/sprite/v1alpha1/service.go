package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "sprites.api.v1alpha1.SpriteService"

// Full method names
const (
	SpriteServiceListOptionsFullMethodName          = "/" + ServiceName + "/ListOptions"
	SpriteServiceListParametersFullMethodName       = "/" + ServiceName + "/ListParameters"
	SpriteServiceResolveConfigurationFullMethodName = "/" + ServiceName + "/ResolveConfiguration"
	SpriteServiceRandomConfigurationFullMethodName  = "/" + ServiceName + "/RandomConfiguration"
	SpriteServiceGenerateSpritesheetFullMethodName  = "/" + ServiceName + "/GenerateSpritesheet"
	SpriteServiceGetSpritesheetFullMethodName       = "/" + ServiceName + "/GetSpritesheet"
	SpriteServiceDeleteSpritesheetFullMethodName    = "/" + ServiceName + "/DeleteSpritesheet"
)

// SpriteServiceServer is the server API for the sprite service
type SpriteServiceServer interface {
	ListOptions(context.Context, *ListOptionsRequest) (*ListOptionsResponse, error)
	ListParameters(context.Context, *ListParametersRequest) (*ListParametersResponse, error)
	ResolveConfiguration(context.Context, *ResolveConfigurationRequest) (*ResolveConfigurationResponse, error)
	RandomConfiguration(context.Context, *RandomConfigurationRequest) (*RandomConfigurationResponse, error)
	GenerateSpritesheet(context.Context, *GenerateSpritesheetRequest) (*GenerateSpritesheetResponse, error)
	GetSpritesheet(context.Context, *GetSpritesheetRequest) (*GetSpritesheetResponse, error)
	DeleteSpritesheet(context.Context, *DeleteSpritesheetRequest) (*DeleteSpritesheetResponse, error)
}

// SpriteServiceDesc is the grpc.ServiceDesc for the sprite service
var SpriteServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SpriteServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListOptions",
			Handler:    unaryHandler(SpriteServiceListOptionsFullMethodName, SpriteServiceServer.ListOptions),
		},
		{
			MethodName: "ListParameters",
			Handler:    unaryHandler(SpriteServiceListParametersFullMethodName, SpriteServiceServer.ListParameters),
		},
		{
			MethodName: "ResolveConfiguration",
			Handler:    unaryHandler(SpriteServiceResolveConfigurationFullMethodName, SpriteServiceServer.ResolveConfiguration),
		},
		{
			MethodName: "RandomConfiguration",
			Handler:    unaryHandler(SpriteServiceRandomConfigurationFullMethodName, SpriteServiceServer.RandomConfiguration),
		},
		{
			MethodName: "GenerateSpritesheet",
			Handler:    unaryHandler(SpriteServiceGenerateSpritesheetFullMethodName, SpriteServiceServer.GenerateSpritesheet),
		},
		{
			MethodName: "GetSpritesheet",
			Handler:    unaryHandler(SpriteServiceGetSpritesheetFullMethodName, SpriteServiceServer.GetSpritesheet),
		},
		{
			MethodName: "DeleteSpritesheet",
			Handler:    unaryHandler(SpriteServiceDeleteSpritesheetFullMethodName, SpriteServiceServer.DeleteSpritesheet),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sprites/api/v1alpha1/sprite.go",
}

// RegisterSpriteServiceServer registers srv on s
func RegisterSpriteServiceServer(s grpc.ServiceRegistrar, srv SpriteServiceServer) {
	s.RegisterService(&SpriteServiceDesc, srv)
}

func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(SpriteServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SpriteServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SpriteServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// SpriteServiceClient is the client API for the sprite service
type SpriteServiceClient interface {
	ListOptions(ctx context.Context, in *ListOptionsRequest, opts ...grpc.CallOption) (*ListOptionsResponse, error)
	ListParameters(ctx context.Context, in *ListParametersRequest, opts ...grpc.CallOption) (*ListParametersResponse, error)
	ResolveConfiguration(ctx context.Context, in *ResolveConfigurationRequest, opts ...grpc.CallOption) (*ResolveConfigurationResponse, error)
	RandomConfiguration(ctx context.Context, in *RandomConfigurationRequest, opts ...grpc.CallOption) (*RandomConfigurationResponse, error)
	GenerateSpritesheet(ctx context.Context, in *GenerateSpritesheetRequest, opts ...grpc.CallOption) (*GenerateSpritesheetResponse, error)
	GetSpritesheet(ctx context.Context, in *GetSpritesheetRequest, opts ...grpc.CallOption) (*GetSpritesheetResponse, error)
	DeleteSpritesheet(ctx context.Context, in *DeleteSpritesheetRequest, opts ...grpc.CallOption) (*DeleteSpritesheetResponse, error)
}

type spriteServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSpriteServiceClient creates a client that speaks the JSON codec over cc
func NewSpriteServiceClient(cc grpc.ClientConnInterface) SpriteServiceClient {
	return &spriteServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *spriteServiceClient) ListOptions(ctx context.Context, in *ListOptionsRequest, opts ...grpc.CallOption) (*ListOptionsResponse, error) {
	return invoke[ListOptionsResponse](ctx, c.cc, SpriteServiceListOptionsFullMethodName, in, opts)
}

func (c *spriteServiceClient) ListParameters(ctx context.Context, in *ListParametersRequest, opts ...grpc.CallOption) (*ListParametersResponse, error) {
	return invoke[ListParametersResponse](ctx, c.cc, SpriteServiceListParametersFullMethodName, in, opts)
}

func (c *spriteServiceClient) ResolveConfiguration(ctx context.Context, in *ResolveConfigurationRequest, opts ...grpc.CallOption) (*ResolveConfigurationResponse, error) {
	return invoke[ResolveConfigurationResponse](ctx, c.cc, SpriteServiceResolveConfigurationFullMethodName, in, opts)
}

func (c *spriteServiceClient) RandomConfiguration(ctx context.Context, in *RandomConfigurationRequest, opts ...grpc.CallOption) (*RandomConfigurationResponse, error) {
	return invoke[RandomConfigurationResponse](ctx, c.cc, SpriteServiceRandomConfigurationFullMethodName, in, opts)
}

func (c *spriteServiceClient) GenerateSpritesheet(ctx context.Context, in *GenerateSpritesheetRequest, opts ...grpc.CallOption) (*GenerateSpritesheetResponse, error) {
	return invoke[GenerateSpritesheetResponse](ctx, c.cc, SpriteServiceGenerateSpritesheetFullMethodName, in, opts)
}

func (c *spriteServiceClient) GetSpritesheet(ctx context.Context, in *GetSpritesheetRequest, opts ...grpc.CallOption) (*GetSpritesheetResponse, error) {
	return invoke[GetSpritesheetResponse](ctx, c.cc, SpriteServiceGetSpritesheetFullMethodName, in, opts)
}

func (c *spriteServiceClient) DeleteSpritesheet(ctx context.Context, in *DeleteSpritesheetRequest, opts ...grpc.CallOption) (*DeleteSpritesheetResponse, error) {
	return invoke[DeleteSpritesheetResponse](ctx, c.cc, SpriteServiceDeleteSpritesheetFullMethodName, in, opts)
}
