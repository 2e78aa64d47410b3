package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "expedition.api.v1alpha1.ExpeditionService"

const (
	ExpeditionService_GetRoster_FullMethodName       = "/" + ServiceName + "/GetRoster"
	ExpeditionService_ListRaids_FullMethodName       = "/" + ServiceName + "/ListRaids"
	ExpeditionService_LoadSelections_FullMethodName  = "/" + ServiceName + "/LoadSelections"
	ExpeditionService_GetSelections_FullMethodName   = "/" + ServiceName + "/GetSelections"
	ExpeditionService_ToggleRaid_FullMethodName      = "/" + ServiceName + "/ToggleRaid"
	ExpeditionService_SetDifficulty_FullMethodName   = "/" + ServiceName + "/SetDifficulty"
	ExpeditionService_SetExtraIncome_FullMethodName  = "/" + ServiceName + "/SetExtraIncome"
	ExpeditionService_SaveSelections_FullMethodName  = "/" + ServiceName + "/SaveSelections"
	ExpeditionService_ResetSelections_FullMethodName = "/" + ServiceName + "/ResetSelections"
)

// ExpeditionServiceClient is the client API for ExpeditionService
type ExpeditionServiceClient interface {
	GetRoster(ctx context.Context, in *GetRosterRequest, opts ...grpc.CallOption) (*GetRosterResponse, error)
	ListRaids(ctx context.Context, in *ListRaidsRequest, opts ...grpc.CallOption) (*ListRaidsResponse, error)
	LoadSelections(ctx context.Context, in *LoadSelectionsRequest, opts ...grpc.CallOption) (*LoadSelectionsResponse, error)
	GetSelections(ctx context.Context, in *GetSelectionsRequest, opts ...grpc.CallOption) (*GetSelectionsResponse, error)
	ToggleRaid(ctx context.Context, in *ToggleRaidRequest, opts ...grpc.CallOption) (*ToggleRaidResponse, error)
	SetDifficulty(ctx context.Context, in *SetDifficultyRequest, opts ...grpc.CallOption) (*SetDifficultyResponse, error)
	SetExtraIncome(ctx context.Context, in *SetExtraIncomeRequest, opts ...grpc.CallOption) (*SetExtraIncomeResponse, error)
	SaveSelections(ctx context.Context, in *SaveSelectionsRequest, opts ...grpc.CallOption) (*SaveSelectionsResponse, error)
	ResetSelections(ctx context.Context, in *ResetSelectionsRequest, opts ...grpc.CallOption) (*ResetSelectionsResponse, error)
}

type expeditionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewExpeditionServiceClient returns a client that always requests the JSON codec
func NewExpeditionServiceClient(cc grpc.ClientConnInterface) ExpeditionServiceClient {
	return &expeditionServiceClient{cc}
}

func (c *expeditionServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *expeditionServiceClient) GetRoster(ctx context.Context, in *GetRosterRequest, opts ...grpc.CallOption) (*GetRosterResponse, error) {
	out := new(GetRosterResponse)
	if err := c.invoke(ctx, ExpeditionService_GetRoster_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expeditionServiceClient) ListRaids(ctx context.Context, in *ListRaidsRequest, opts ...grpc.CallOption) (*ListRaidsResponse, error) {
	out := new(ListRaidsResponse)
	if err := c.invoke(ctx, ExpeditionService_ListRaids_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expeditionServiceClient) LoadSelections(ctx context.Context, in *LoadSelectionsRequest, opts ...grpc.CallOption) (*LoadSelectionsResponse, error) {
	out := new(LoadSelectionsResponse)
	if err := c.invoke(ctx, ExpeditionService_LoadSelections_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expeditionServiceClient) GetSelections(ctx context.Context, in *GetSelectionsRequest, opts ...grpc.CallOption) (*GetSelectionsResponse, error) {
	out := new(GetSelectionsResponse)
	if err := c.invoke(ctx, ExpeditionService_GetSelections_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expeditionServiceClient) ToggleRaid(ctx context.Context, in *ToggleRaidRequest, opts ...grpc.CallOption) (*ToggleRaidResponse, error) {
	out := new(ToggleRaidResponse)
	if err := c.invoke(ctx, ExpeditionService_ToggleRaid_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expeditionServiceClient) SetDifficulty(ctx context.Context, in *SetDifficultyRequest, opts ...grpc.CallOption) (*SetDifficultyResponse, error) {
	out := new(SetDifficultyResponse)
	if err := c.invoke(ctx, ExpeditionService_SetDifficulty_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expeditionServiceClient) SetExtraIncome(ctx context.Context, in *SetExtraIncomeRequest, opts ...grpc.CallOption) (*SetExtraIncomeResponse, error) {
	out := new(SetExtraIncomeResponse)
	if err := c.invoke(ctx, ExpeditionService_SetExtraIncome_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expeditionServiceClient) SaveSelections(ctx context.Context, in *SaveSelectionsRequest, opts ...grpc.CallOption) (*SaveSelectionsResponse, error) {
	out := new(SaveSelectionsResponse)
	if err := c.invoke(ctx, ExpeditionService_SaveSelections_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *expeditionServiceClient) ResetSelections(ctx context.Context, in *ResetSelectionsRequest, opts ...grpc.CallOption) (*ResetSelectionsResponse, error) {
	out := new(ResetSelectionsResponse)
	if err := c.invoke(ctx, ExpeditionService_ResetSelections_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// ExpeditionServiceServer is the server API for ExpeditionService.
// Implementations must embed UnimplementedExpeditionServiceServer.
type ExpeditionServiceServer interface {
	GetRoster(context.Context, *GetRosterRequest) (*GetRosterResponse, error)
	ListRaids(context.Context, *ListRaidsRequest) (*ListRaidsResponse, error)
	LoadSelections(context.Context, *LoadSelectionsRequest) (*LoadSelectionsResponse, error)
	GetSelections(context.Context, *GetSelectionsRequest) (*GetSelectionsResponse, error)
	ToggleRaid(context.Context, *ToggleRaidRequest) (*ToggleRaidResponse, error)
	SetDifficulty(context.Context, *SetDifficultyRequest) (*SetDifficultyResponse, error)
	SetExtraIncome(context.Context, *SetExtraIncomeRequest) (*SetExtraIncomeResponse, error)
	SaveSelections(context.Context, *SaveSelectionsRequest) (*SaveSelectionsResponse, error)
	ResetSelections(context.Context, *ResetSelectionsRequest) (*ResetSelectionsResponse, error)
	mustEmbedUnimplementedExpeditionServiceServer()
}

// UnimplementedExpeditionServiceServer must be embedded for forward compatible implementations
type UnimplementedExpeditionServiceServer struct{}

func (UnimplementedExpeditionServiceServer) GetRoster(context.Context, *GetRosterRequest) (*GetRosterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRoster not implemented")
}
func (UnimplementedExpeditionServiceServer) ListRaids(context.Context, *ListRaidsRequest) (*ListRaidsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRaids not implemented")
}
func (UnimplementedExpeditionServiceServer) LoadSelections(context.Context, *LoadSelectionsRequest) (*LoadSelectionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LoadSelections not implemented")
}
func (UnimplementedExpeditionServiceServer) GetSelections(context.Context, *GetSelectionsRequest) (*GetSelectionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSelections not implemented")
}
func (UnimplementedExpeditionServiceServer) ToggleRaid(context.Context, *ToggleRaidRequest) (*ToggleRaidResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ToggleRaid not implemented")
}
func (UnimplementedExpeditionServiceServer) SetDifficulty(context.Context, *SetDifficultyRequest) (*SetDifficultyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetDifficulty not implemented")
}
func (UnimplementedExpeditionServiceServer) SetExtraIncome(context.Context, *SetExtraIncomeRequest) (*SetExtraIncomeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetExtraIncome not implemented")
}
func (UnimplementedExpeditionServiceServer) SaveSelections(context.Context, *SaveSelectionsRequest) (*SaveSelectionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveSelections not implemented")
}
func (UnimplementedExpeditionServiceServer) ResetSelections(context.Context, *ResetSelectionsRequest) (*ResetSelectionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResetSelections not implemented")
}
func (UnimplementedExpeditionServiceServer) mustEmbedUnimplementedExpeditionServiceServer() {}

// RegisterExpeditionServiceServer registers srv with the gRPC server
func RegisterExpeditionServiceServer(s grpc.ServiceRegistrar, srv ExpeditionServiceServer) {
	s.RegisterService(&ExpeditionService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodDesc
func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(ExpeditionServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ExpeditionServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ExpeditionServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ExpeditionService_ServiceDesc is the grpc.ServiceDesc for ExpeditionService
var ExpeditionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ExpeditionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetRoster",
			Handler:    unaryHandler(ExpeditionService_GetRoster_FullMethodName, ExpeditionServiceServer.GetRoster),
		},
		{
			MethodName: "ListRaids",
			Handler:    unaryHandler(ExpeditionService_ListRaids_FullMethodName, ExpeditionServiceServer.ListRaids),
		},
		{
			MethodName: "LoadSelections",
			Handler:    unaryHandler(ExpeditionService_LoadSelections_FullMethodName, ExpeditionServiceServer.LoadSelections),
		},
		{
			MethodName: "GetSelections",
			Handler:    unaryHandler(ExpeditionService_GetSelections_FullMethodName, ExpeditionServiceServer.GetSelections),
		},
		{
			MethodName: "ToggleRaid",
			Handler:    unaryHandler(ExpeditionService_ToggleRaid_FullMethodName, ExpeditionServiceServer.ToggleRaid),
		},
		{
			MethodName: "SetDifficulty",
			Handler:    unaryHandler(ExpeditionService_SetDifficulty_FullMethodName, ExpeditionServiceServer.SetDifficulty),
		},
		{
			MethodName: "SetExtraIncome",
			Handler:    unaryHandler(ExpeditionService_SetExtraIncome_FullMethodName, ExpeditionServiceServer.SetExtraIncome),
		},
		{
			MethodName: "SaveSelections",
			Handler:    unaryHandler(ExpeditionService_SaveSelections_FullMethodName, ExpeditionServiceServer.SaveSelections),
		},
		{
			MethodName: "ResetSelections",
			Handler:    unaryHandler(ExpeditionService_ResetSelections_FullMethodName, ExpeditionServiceServer.ResetSelections),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "expedition/api/v1alpha1/service.go",
}
