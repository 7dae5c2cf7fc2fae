package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "armybook.v1alpha1.ArmyBookService"

const (
	ArmyBookService_GetArmyBook_FullMethodName      = "/" + ServiceName + "/GetArmyBook"
	ArmyBookService_RecalculateCosts_FullMethodName = "/" + ServiceName + "/RecalculateCosts"
	ArmyBookService_GetPdf_FullMethodName           = "/" + ServiceName + "/GetPdf"
	ArmyBookService_ImportArmyBook_FullMethodName   = "/" + ServiceName + "/ImportArmyBook"
	ArmyBookService_ListArmyBooks_FullMethodName    = "/" + ServiceName + "/ListArmyBooks"
	ArmyBookService_ListMyArmyBooks_FullMethodName  = "/" + ServiceName + "/ListMyArmyBooks"
	ArmyBookService_CreateDetachment_FullMethodName = "/" + ServiceName + "/CreateDetachment"
	ArmyBookService_UpdateArmyBook_FullMethodName   = "/" + ServiceName + "/UpdateArmyBook"
	ArmyBookService_DeleteArmyBook_FullMethodName   = "/" + ServiceName + "/DeleteArmyBook"
	ArmyBookService_CheckOwnership_FullMethodName   = "/" + ServiceName + "/CheckOwnership"
)

// ArmyBookServiceClient is the client API for ArmyBookService
type ArmyBookServiceClient interface {
	GetArmyBook(ctx context.Context, in *GetArmyBookRequest, opts ...grpc.CallOption) (*GetArmyBookResponse, error)
	RecalculateCosts(ctx context.Context, in *RecalculateCostsRequest, opts ...grpc.CallOption) (*RecalculateCostsResponse, error)
	GetPdf(ctx context.Context, in *GetPdfRequest, opts ...grpc.CallOption) (*GetPdfResponse, error)
	ImportArmyBook(ctx context.Context, in *ImportArmyBookRequest, opts ...grpc.CallOption) (*ImportArmyBookResponse, error)
	ListArmyBooks(ctx context.Context, in *ListArmyBooksRequest, opts ...grpc.CallOption) (*ListArmyBooksResponse, error)
	ListMyArmyBooks(ctx context.Context, in *ListMyArmyBooksRequest, opts ...grpc.CallOption) (*ListMyArmyBooksResponse, error)
	CreateDetachment(ctx context.Context, in *CreateDetachmentRequest, opts ...grpc.CallOption) (*CreateDetachmentResponse, error)
	UpdateArmyBook(ctx context.Context, in *UpdateArmyBookRequest, opts ...grpc.CallOption) (*UpdateArmyBookResponse, error)
	DeleteArmyBook(ctx context.Context, in *DeleteArmyBookRequest, opts ...grpc.CallOption) (*DeleteArmyBookResponse, error)
	CheckOwnership(ctx context.Context, in *CheckOwnershipRequest, opts ...grpc.CallOption) (*CheckOwnershipResponse, error)
}

type armyBookServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewArmyBookServiceClient creates a client speaking the JSON codec
func NewArmyBookServiceClient(cc grpc.ClientConnInterface) ArmyBookServiceClient {
	return &armyBookServiceClient{cc}
}

func (c *armyBookServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *armyBookServiceClient) GetArmyBook(ctx context.Context, in *GetArmyBookRequest, opts ...grpc.CallOption) (*GetArmyBookResponse, error) {
	out := new(GetArmyBookResponse)
	if err := c.invoke(ctx, ArmyBookService_GetArmyBook_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *armyBookServiceClient) RecalculateCosts(ctx context.Context, in *RecalculateCostsRequest, opts ...grpc.CallOption) (*RecalculateCostsResponse, error) {
	out := new(RecalculateCostsResponse)
	if err := c.invoke(ctx, ArmyBookService_RecalculateCosts_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *armyBookServiceClient) GetPdf(ctx context.Context, in *GetPdfRequest, opts ...grpc.CallOption) (*GetPdfResponse, error) {
	out := new(GetPdfResponse)
	if err := c.invoke(ctx, ArmyBookService_GetPdf_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *armyBookServiceClient) ImportArmyBook(ctx context.Context, in *ImportArmyBookRequest, opts ...grpc.CallOption) (*ImportArmyBookResponse, error) {
	out := new(ImportArmyBookResponse)
	if err := c.invoke(ctx, ArmyBookService_ImportArmyBook_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *armyBookServiceClient) ListArmyBooks(ctx context.Context, in *ListArmyBooksRequest, opts ...grpc.CallOption) (*ListArmyBooksResponse, error) {
	out := new(ListArmyBooksResponse)
	if err := c.invoke(ctx, ArmyBookService_ListArmyBooks_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *armyBookServiceClient) ListMyArmyBooks(ctx context.Context, in *ListMyArmyBooksRequest, opts ...grpc.CallOption) (*ListMyArmyBooksResponse, error) {
	out := new(ListMyArmyBooksResponse)
	if err := c.invoke(ctx, ArmyBookService_ListMyArmyBooks_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *armyBookServiceClient) CreateDetachment(ctx context.Context, in *CreateDetachmentRequest, opts ...grpc.CallOption) (*CreateDetachmentResponse, error) {
	out := new(CreateDetachmentResponse)
	if err := c.invoke(ctx, ArmyBookService_CreateDetachment_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *armyBookServiceClient) UpdateArmyBook(ctx context.Context, in *UpdateArmyBookRequest, opts ...grpc.CallOption) (*UpdateArmyBookResponse, error) {
	out := new(UpdateArmyBookResponse)
	if err := c.invoke(ctx, ArmyBookService_UpdateArmyBook_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *armyBookServiceClient) DeleteArmyBook(ctx context.Context, in *DeleteArmyBookRequest, opts ...grpc.CallOption) (*DeleteArmyBookResponse, error) {
	out := new(DeleteArmyBookResponse)
	if err := c.invoke(ctx, ArmyBookService_DeleteArmyBook_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *armyBookServiceClient) CheckOwnership(ctx context.Context, in *CheckOwnershipRequest, opts ...grpc.CallOption) (*CheckOwnershipResponse, error) {
	out := new(CheckOwnershipResponse)
	if err := c.invoke(ctx, ArmyBookService_CheckOwnership_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// ArmyBookServiceServer is the server API for ArmyBookService
type ArmyBookServiceServer interface {
	GetArmyBook(context.Context, *GetArmyBookRequest) (*GetArmyBookResponse, error)
	RecalculateCosts(context.Context, *RecalculateCostsRequest) (*RecalculateCostsResponse, error)
	GetPdf(context.Context, *GetPdfRequest) (*GetPdfResponse, error)
	ImportArmyBook(context.Context, *ImportArmyBookRequest) (*ImportArmyBookResponse, error)
	ListArmyBooks(context.Context, *ListArmyBooksRequest) (*ListArmyBooksResponse, error)
	ListMyArmyBooks(context.Context, *ListMyArmyBooksRequest) (*ListMyArmyBooksResponse, error)
	CreateDetachment(context.Context, *CreateDetachmentRequest) (*CreateDetachmentResponse, error)
	UpdateArmyBook(context.Context, *UpdateArmyBookRequest) (*UpdateArmyBookResponse, error)
	DeleteArmyBook(context.Context, *DeleteArmyBookRequest) (*DeleteArmyBookResponse, error)
	CheckOwnership(context.Context, *CheckOwnershipRequest) (*CheckOwnershipResponse, error)
}

// UnimplementedArmyBookServiceServer can be embedded for forward compatibility
type UnimplementedArmyBookServiceServer struct{}

func (UnimplementedArmyBookServiceServer) GetArmyBook(context.Context, *GetArmyBookRequest) (*GetArmyBookResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetArmyBook not implemented")
}

func (UnimplementedArmyBookServiceServer) RecalculateCosts(context.Context, *RecalculateCostsRequest) (*RecalculateCostsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecalculateCosts not implemented")
}

func (UnimplementedArmyBookServiceServer) GetPdf(context.Context, *GetPdfRequest) (*GetPdfResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPdf not implemented")
}

func (UnimplementedArmyBookServiceServer) ImportArmyBook(context.Context, *ImportArmyBookRequest) (*ImportArmyBookResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ImportArmyBook not implemented")
}

func (UnimplementedArmyBookServiceServer) ListArmyBooks(context.Context, *ListArmyBooksRequest) (*ListArmyBooksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListArmyBooks not implemented")
}

func (UnimplementedArmyBookServiceServer) ListMyArmyBooks(context.Context, *ListMyArmyBooksRequest) (*ListMyArmyBooksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMyArmyBooks not implemented")
}

func (UnimplementedArmyBookServiceServer) CreateDetachment(context.Context, *CreateDetachmentRequest) (*CreateDetachmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateDetachment not implemented")
}

func (UnimplementedArmyBookServiceServer) UpdateArmyBook(context.Context, *UpdateArmyBookRequest) (*UpdateArmyBookResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateArmyBook not implemented")
}

func (UnimplementedArmyBookServiceServer) DeleteArmyBook(context.Context, *DeleteArmyBookRequest) (*DeleteArmyBookResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteArmyBook not implemented")
}

func (UnimplementedArmyBookServiceServer) CheckOwnership(context.Context, *CheckOwnershipRequest) (*CheckOwnershipResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckOwnership not implemented")
}

// RegisterArmyBookServiceServer registers srv on s
func RegisterArmyBookServiceServer(s grpc.ServiceRegistrar, srv ArmyBookServiceServer) {
	s.RegisterService(&ArmyBookService_ServiceDesc, srv)
}

func _ArmyBookService_GetArmyBook_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetArmyBookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ArmyBookServiceServer).GetArmyBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ArmyBookService_GetArmyBook_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ArmyBookServiceServer).GetArmyBook(ctx, req.(*GetArmyBookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ArmyBookService_RecalculateCosts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RecalculateCostsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ArmyBookServiceServer).RecalculateCosts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ArmyBookService_RecalculateCosts_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ArmyBookServiceServer).RecalculateCosts(ctx, req.(*RecalculateCostsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ArmyBookService_GetPdf_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetPdfRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ArmyBookServiceServer).GetPdf(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ArmyBookService_GetPdf_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ArmyBookServiceServer).GetPdf(ctx, req.(*GetPdfRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ArmyBookService_ImportArmyBook_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ImportArmyBookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ArmyBookServiceServer).ImportArmyBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ArmyBookService_ImportArmyBook_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ArmyBookServiceServer).ImportArmyBook(ctx, req.(*ImportArmyBookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ArmyBookService_ListArmyBooks_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListArmyBooksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ArmyBookServiceServer).ListArmyBooks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ArmyBookService_ListArmyBooks_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ArmyBookServiceServer).ListArmyBooks(ctx, req.(*ListArmyBooksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ArmyBookService_ListMyArmyBooks_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListMyArmyBooksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ArmyBookServiceServer).ListMyArmyBooks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ArmyBookService_ListMyArmyBooks_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ArmyBookServiceServer).ListMyArmyBooks(ctx, req.(*ListMyArmyBooksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ArmyBookService_CreateDetachment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateDetachmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ArmyBookServiceServer).CreateDetachment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ArmyBookService_CreateDetachment_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ArmyBookServiceServer).CreateDetachment(ctx, req.(*CreateDetachmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ArmyBookService_UpdateArmyBook_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateArmyBookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ArmyBookServiceServer).UpdateArmyBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ArmyBookService_UpdateArmyBook_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ArmyBookServiceServer).UpdateArmyBook(ctx, req.(*UpdateArmyBookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ArmyBookService_DeleteArmyBook_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteArmyBookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ArmyBookServiceServer).DeleteArmyBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ArmyBookService_DeleteArmyBook_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ArmyBookServiceServer).DeleteArmyBook(ctx, req.(*DeleteArmyBookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ArmyBookService_CheckOwnership_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CheckOwnershipRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ArmyBookServiceServer).CheckOwnership(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ArmyBookService_CheckOwnership_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ArmyBookServiceServer).CheckOwnership(ctx, req.(*CheckOwnershipRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ArmyBookService_ServiceDesc is the grpc.ServiceDesc for ArmyBookService
var ArmyBookService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ArmyBookServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetArmyBook", Handler: _ArmyBookService_GetArmyBook_Handler},
		{MethodName: "RecalculateCosts", Handler: _ArmyBookService_RecalculateCosts_Handler},
		{MethodName: "GetPdf", Handler: _ArmyBookService_GetPdf_Handler},
		{MethodName: "ImportArmyBook", Handler: _ArmyBookService_ImportArmyBook_Handler},
		{MethodName: "ListArmyBooks", Handler: _ArmyBookService_ListArmyBooks_Handler},
		{MethodName: "ListMyArmyBooks", Handler: _ArmyBookService_ListMyArmyBooks_Handler},
		{MethodName: "CreateDetachment", Handler: _ArmyBookService_CreateDetachment_Handler},
		{MethodName: "UpdateArmyBook", Handler: _ArmyBookService_UpdateArmyBook_Handler},
		{MethodName: "DeleteArmyBook", Handler: _ArmyBookService_DeleteArmyBook_Handler},
		{MethodName: "CheckOwnership", Handler: _ArmyBookService_CheckOwnership_Handler},
	},
	Streams: []grpc.StreamDesc{},
}
