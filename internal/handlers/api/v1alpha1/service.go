package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// PlannerServiceName is the fully qualified gRPC service name
const PlannerServiceName = "heroplanner.api.v1alpha1.PlannerService"

// Full method names
const (
	PlannerServiceManageHeroFullMethodName        = "/" + PlannerServiceName + "/ManageHero"
	PlannerServiceCalculateRelicsFullMethodName   = "/" + PlannerServiceName + "/CalculateRelics"
	PlannerServiceListTrackedHeroesFullMethodName = "/" + PlannerServiceName + "/ListTrackedHeroes"
)

// PlannerServiceServer is the server API for the planner admin service.
// Requests and responses are google.protobuf.Struct documents.
type PlannerServiceServer interface {
	ManageHero(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CalculateRelics(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListTrackedHeroes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterPlannerServiceServer registers srv on s
func RegisterPlannerServiceServer(s grpc.ServiceRegistrar, srv PlannerServiceServer) {
	s.RegisterService(&PlannerServiceDesc, srv)
}

type unaryMethod func(srv PlannerServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error,
		interceptor grpc.UnaryServerInterceptor,
	) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PlannerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(PlannerServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PlannerServiceDesc is the grpc.ServiceDesc for the planner admin service
var PlannerServiceDesc = grpc.ServiceDesc{
	ServiceName: PlannerServiceName,
	HandlerType: (*PlannerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ManageHero",
			Handler: unaryHandler(PlannerServiceManageHeroFullMethodName,
				PlannerServiceServer.ManageHero),
		},
		{
			MethodName: "CalculateRelics",
			Handler: unaryHandler(PlannerServiceCalculateRelicsFullMethodName,
				PlannerServiceServer.CalculateRelics),
		},
		{
			MethodName: "ListTrackedHeroes",
			Handler: unaryHandler(PlannerServiceListTrackedHeroesFullMethodName,
				PlannerServiceServer.ListTrackedHeroes),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "heroplanner/api/v1alpha1/planner.proto",
}

// PlannerServiceClient is the client API for the planner admin service
type PlannerServiceClient interface {
	ManageHero(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CalculateRelics(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListTrackedHeroes(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type plannerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPlannerServiceClient creates a client over cc
func NewPlannerServiceClient(cc grpc.ClientConnInterface) PlannerServiceClient {
	return &plannerServiceClient{cc: cc}
}

func (c *plannerServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct,
	opts []grpc.CallOption,
) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plannerServiceClient) ManageHero(ctx context.Context, in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, PlannerServiceManageHeroFullMethodName, in, opts)
}

func (c *plannerServiceClient) CalculateRelics(ctx context.Context, in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, PlannerServiceCalculateRelicsFullMethodName, in, opts)
}

func (c *plannerServiceClient) ListTrackedHeroes(ctx context.Context, in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	return c.invoke(ctx, PlannerServiceListTrackedHeroesFullMethodName, in, opts)
}
