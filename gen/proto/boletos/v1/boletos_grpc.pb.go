// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: boletos/v1/boletos.proto

package boletosv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	BoletosService_CreateCompany_FullMethodName        = "/boletos.v1.BoletosService/CreateCompany"
	BoletosService_ListCompanies_FullMethodName        = "/boletos.v1.BoletosService/ListCompanies"
	BoletosService_ListBoletos_FullMethodName          = "/boletos.v1.BoletosService/ListBoletos"
	BoletosService_UpdateBoletoStatus_FullMethodName   = "/boletos.v1.BoletosService/UpdateBoletoStatus"
	BoletosService_UpdateBoletoComments_FullMethodName = "/boletos.v1.BoletosService/UpdateBoletoComments"
	BoletosService_DeleteBoleto_FullMethodName         = "/boletos.v1.BoletosService/DeleteBoleto"
	BoletosService_ExportBoletos_FullMethodName        = "/boletos.v1.BoletosService/ExportBoletos"
)

// BoletosServiceClient is the client API for BoletosService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// BoletosService manages companies and their payment slips.
type BoletosServiceClient interface {
	CreateCompany(ctx context.Context, in *CreateCompanyRequest, opts ...grpc.CallOption) (*CreateCompanyResponse, error)
	ListCompanies(ctx context.Context, in *ListCompaniesRequest, opts ...grpc.CallOption) (*ListCompaniesResponse, error)
	ListBoletos(ctx context.Context, in *ListBoletosRequest, opts ...grpc.CallOption) (*ListBoletosResponse, error)
	UpdateBoletoStatus(ctx context.Context, in *UpdateBoletoStatusRequest, opts ...grpc.CallOption) (*UpdateBoletoStatusResponse, error)
	UpdateBoletoComments(ctx context.Context, in *UpdateBoletoCommentsRequest, opts ...grpc.CallOption) (*UpdateBoletoCommentsResponse, error)
	DeleteBoleto(ctx context.Context, in *DeleteBoletoRequest, opts ...grpc.CallOption) (*DeleteBoletoResponse, error)
	ExportBoletos(ctx context.Context, in *ExportBoletosRequest, opts ...grpc.CallOption) (*ExportBoletosResponse, error)
}

type boletosServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBoletosServiceClient(cc grpc.ClientConnInterface) BoletosServiceClient {
	return &boletosServiceClient{cc}
}

func (c *boletosServiceClient) CreateCompany(ctx context.Context, in *CreateCompanyRequest, opts ...grpc.CallOption) (*CreateCompanyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateCompanyResponse)
	err := c.cc.Invoke(ctx, BoletosService_CreateCompany_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boletosServiceClient) ListCompanies(ctx context.Context, in *ListCompaniesRequest, opts ...grpc.CallOption) (*ListCompaniesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListCompaniesResponse)
	err := c.cc.Invoke(ctx, BoletosService_ListCompanies_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boletosServiceClient) ListBoletos(ctx context.Context, in *ListBoletosRequest, opts ...grpc.CallOption) (*ListBoletosResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListBoletosResponse)
	err := c.cc.Invoke(ctx, BoletosService_ListBoletos_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boletosServiceClient) UpdateBoletoStatus(ctx context.Context, in *UpdateBoletoStatusRequest, opts ...grpc.CallOption) (*UpdateBoletoStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateBoletoStatusResponse)
	err := c.cc.Invoke(ctx, BoletosService_UpdateBoletoStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boletosServiceClient) UpdateBoletoComments(ctx context.Context, in *UpdateBoletoCommentsRequest, opts ...grpc.CallOption) (*UpdateBoletoCommentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateBoletoCommentsResponse)
	err := c.cc.Invoke(ctx, BoletosService_UpdateBoletoComments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boletosServiceClient) DeleteBoleto(ctx context.Context, in *DeleteBoletoRequest, opts ...grpc.CallOption) (*DeleteBoletoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteBoletoResponse)
	err := c.cc.Invoke(ctx, BoletosService_DeleteBoleto_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boletosServiceClient) ExportBoletos(ctx context.Context, in *ExportBoletosRequest, opts ...grpc.CallOption) (*ExportBoletosResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportBoletosResponse)
	err := c.cc.Invoke(ctx, BoletosService_ExportBoletos_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BoletosServiceServer is the server API for BoletosService service.
// All implementations must embed UnimplementedBoletosServiceServer
// for forward compatibility.
//
// BoletosService manages companies and their payment slips.
type BoletosServiceServer interface {
	CreateCompany(context.Context, *CreateCompanyRequest) (*CreateCompanyResponse, error)
	ListCompanies(context.Context, *ListCompaniesRequest) (*ListCompaniesResponse, error)
	ListBoletos(context.Context, *ListBoletosRequest) (*ListBoletosResponse, error)
	UpdateBoletoStatus(context.Context, *UpdateBoletoStatusRequest) (*UpdateBoletoStatusResponse, error)
	UpdateBoletoComments(context.Context, *UpdateBoletoCommentsRequest) (*UpdateBoletoCommentsResponse, error)
	DeleteBoleto(context.Context, *DeleteBoletoRequest) (*DeleteBoletoResponse, error)
	ExportBoletos(context.Context, *ExportBoletosRequest) (*ExportBoletosResponse, error)
	mustEmbedUnimplementedBoletosServiceServer()
}

// UnimplementedBoletosServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBoletosServiceServer struct{}

func (UnimplementedBoletosServiceServer) CreateCompany(context.Context, *CreateCompanyRequest) (*CreateCompanyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCompany not implemented")
}
func (UnimplementedBoletosServiceServer) ListCompanies(context.Context, *ListCompaniesRequest) (*ListCompaniesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCompanies not implemented")
}
func (UnimplementedBoletosServiceServer) ListBoletos(context.Context, *ListBoletosRequest) (*ListBoletosResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBoletos not implemented")
}
func (UnimplementedBoletosServiceServer) UpdateBoletoStatus(context.Context, *UpdateBoletoStatusRequest) (*UpdateBoletoStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateBoletoStatus not implemented")
}
func (UnimplementedBoletosServiceServer) UpdateBoletoComments(context.Context, *UpdateBoletoCommentsRequest) (*UpdateBoletoCommentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateBoletoComments not implemented")
}
func (UnimplementedBoletosServiceServer) DeleteBoleto(context.Context, *DeleteBoletoRequest) (*DeleteBoletoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteBoleto not implemented")
}
func (UnimplementedBoletosServiceServer) ExportBoletos(context.Context, *ExportBoletosRequest) (*ExportBoletosResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportBoletos not implemented")
}
func (UnimplementedBoletosServiceServer) mustEmbedUnimplementedBoletosServiceServer() {}
func (UnimplementedBoletosServiceServer) testEmbeddedByValue()                        {}

// UnsafeBoletosServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BoletosServiceServer will
// result in compilation errors.
type UnsafeBoletosServiceServer interface {
	mustEmbedUnimplementedBoletosServiceServer()
}

func RegisterBoletosServiceServer(s grpc.ServiceRegistrar, srv BoletosServiceServer) {
	// If the following call panics, it indicates UnimplementedBoletosServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BoletosService_ServiceDesc, srv)
}

func _BoletosService_CreateCompany_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateCompanyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoletosServiceServer).CreateCompany(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoletosService_CreateCompany_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoletosServiceServer).CreateCompany(ctx, req.(*CreateCompanyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoletosService_ListCompanies_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCompaniesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoletosServiceServer).ListCompanies(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoletosService_ListCompanies_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoletosServiceServer).ListCompanies(ctx, req.(*ListCompaniesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoletosService_ListBoletos_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBoletosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoletosServiceServer).ListBoletos(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoletosService_ListBoletos_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoletosServiceServer).ListBoletos(ctx, req.(*ListBoletosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoletosService_UpdateBoletoStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateBoletoStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoletosServiceServer).UpdateBoletoStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoletosService_UpdateBoletoStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoletosServiceServer).UpdateBoletoStatus(ctx, req.(*UpdateBoletoStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoletosService_UpdateBoletoComments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateBoletoCommentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoletosServiceServer).UpdateBoletoComments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoletosService_UpdateBoletoComments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoletosServiceServer).UpdateBoletoComments(ctx, req.(*UpdateBoletoCommentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoletosService_DeleteBoleto_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteBoletoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoletosServiceServer).DeleteBoleto(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoletosService_DeleteBoleto_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoletosServiceServer).DeleteBoleto(ctx, req.(*DeleteBoletoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BoletosService_ExportBoletos_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportBoletosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BoletosServiceServer).ExportBoletos(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BoletosService_ExportBoletos_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BoletosServiceServer).ExportBoletos(ctx, req.(*ExportBoletosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BoletosService_ServiceDesc is the grpc.ServiceDesc for BoletosService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BoletosService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "boletos.v1.BoletosService",
	HandlerType: (*BoletosServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateCompany",
			Handler:    _BoletosService_CreateCompany_Handler,
		},
		{
			MethodName: "ListCompanies",
			Handler:    _BoletosService_ListCompanies_Handler,
		},
		{
			MethodName: "ListBoletos",
			Handler:    _BoletosService_ListBoletos_Handler,
		},
		{
			MethodName: "UpdateBoletoStatus",
			Handler:    _BoletosService_UpdateBoletoStatus_Handler,
		},
		{
			MethodName: "UpdateBoletoComments",
			Handler:    _BoletosService_UpdateBoletoComments_Handler,
		},
		{
			MethodName: "DeleteBoleto",
			Handler:    _BoletosService_DeleteBoleto_Handler,
		},
		{
			MethodName: "ExportBoletos",
			Handler:    _BoletosService_ExportBoletos_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "boletos/v1/boletos.proto",
}

const (
	IngestionService_IngestFile_FullMethodName      = "/boletos.v1.IngestionService/IngestFile"
	IngestionService_IngestDirectory_FullMethodName = "/boletos.v1.IngestionService/IngestDirectory"
)

// IngestionServiceClient is the client API for IngestionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// IngestionService accepts documents and runs the extraction pipeline.
type IngestionServiceClient interface {
	IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error)
	IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error)
}

type ingestionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestionServiceClient(cc grpc.ClientConnInterface) IngestionServiceClient {
	return &ingestionServiceClient{cc}
}

func (c *ingestionServiceClient) IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestResponse)
	err := c.cc.Invoke(ctx, IngestionService_IngestFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestDirectoryResponse)
	err := c.cc.Invoke(ctx, IngestionService_IngestDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestionServiceServer is the server API for IngestionService service.
// All implementations must embed UnimplementedIngestionServiceServer
// for forward compatibility.
//
// IngestionService accepts documents and runs the extraction pipeline.
type IngestionServiceServer interface {
	IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error)
	IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error)
	mustEmbedUnimplementedIngestionServiceServer()
}

// UnimplementedIngestionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedIngestionServiceServer struct{}

func (UnimplementedIngestionServiceServer) IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IngestFile not implemented")
}
func (UnimplementedIngestionServiceServer) IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method IngestDirectory not implemented")
}
func (UnimplementedIngestionServiceServer) mustEmbedUnimplementedIngestionServiceServer() {}
func (UnimplementedIngestionServiceServer) testEmbeddedByValue()                          {}

// UnsafeIngestionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestionServiceServer will
// result in compilation errors.
type UnsafeIngestionServiceServer interface {
	mustEmbedUnimplementedIngestionServiceServer()
}

func RegisterIngestionServiceServer(s grpc.ServiceRegistrar, srv IngestionServiceServer) {
	// If the following call panics, it indicates UnimplementedIngestionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&IngestionService_ServiceDesc, srv)
}

func _IngestionService_IngestFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).IngestFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_IngestFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).IngestFile(ctx, req.(*IngestFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_IngestDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).IngestDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_IngestDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).IngestDirectory(ctx, req.(*IngestDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestionService_ServiceDesc is the grpc.ServiceDesc for IngestionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "boletos.v1.IngestionService",
	HandlerType: (*IngestionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestFile",
			Handler:    _IngestionService_IngestFile_Handler,
		},
		{
			MethodName: "IngestDirectory",
			Handler:    _IngestionService_IngestDirectory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "boletos/v1/boletos.proto",
}
