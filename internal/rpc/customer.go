// Package rpc describes customer gRPC service on top of protobuf well-known types.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CustomerServiceName is full name of customer gRPC service
const CustomerServiceName = "customers.CustomerService"

const (
	listCustomersMethod  = "/" + CustomerServiceName + "/ListCustomers"
	getCustomerMethod    = "/" + CustomerServiceName + "/GetCustomer"
	createCustomerMethod = "/" + CustomerServiceName + "/CreateCustomer"
	deleteCustomerMethod = "/" + CustomerServiceName + "/DeleteCustomer"
)

// CustomerServiceServer is the server API for customer service
type CustomerServiceServer interface {
	ListCustomers(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetCustomer(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	CreateCustomer(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	DeleteCustomer(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
}

// UnimplementedCustomerServiceServer can be embedded to have forward compatible implementations
type UnimplementedCustomerServiceServer struct{}

func (UnimplementedCustomerServiceServer) ListCustomers(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCustomers not implemented")
}

func (UnimplementedCustomerServiceServer) GetCustomer(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCustomer not implemented")
}

func (UnimplementedCustomerServiceServer) CreateCustomer(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateCustomer not implemented")
}

func (UnimplementedCustomerServiceServer) DeleteCustomer(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteCustomer not implemented")
}

// RegisterCustomerServiceServer registers srv on s
func RegisterCustomerServiceServer(s grpc.ServiceRegistrar, srv CustomerServiceServer) {
	s.RegisterService(&CustomerServiceDesc, srv)
}

func listCustomersHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CustomerServiceServer).ListCustomers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: listCustomersMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CustomerServiceServer).ListCustomers(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func getCustomerHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CustomerServiceServer).GetCustomer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getCustomerMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CustomerServiceServer).GetCustomer(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func createCustomerHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CustomerServiceServer).CreateCustomer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: createCustomerMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CustomerServiceServer).CreateCustomer(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteCustomerHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CustomerServiceServer).DeleteCustomer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: deleteCustomerMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CustomerServiceServer).DeleteCustomer(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// CustomerServiceDesc is the grpc.ServiceDesc for customer service
var CustomerServiceDesc = grpc.ServiceDesc{
	ServiceName: CustomerServiceName,
	HandlerType: (*CustomerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListCustomers", Handler: listCustomersHandler},
		{MethodName: "GetCustomer", Handler: getCustomerHandler},
		{MethodName: "CreateCustomer", Handler: createCustomerHandler},
		{MethodName: "DeleteCustomer", Handler: deleteCustomerHandler},
	},
	Streams: []grpc.StreamDesc{},
}

// CustomerServiceClient is the client API for customer service
type CustomerServiceClient interface {
	ListCustomers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetCustomer(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreateCustomer(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteCustomer(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type customerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCustomerServiceClient builds client on top of provided connection
func NewCustomerServiceClient(cc grpc.ClientConnInterface) CustomerServiceClient {
	return &customerServiceClient{cc: cc}
}

func (c *customerServiceClient) ListCustomers(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, listCustomersMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *customerServiceClient) GetCustomer(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getCustomerMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *customerServiceClient) CreateCustomer(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, createCustomerMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *customerServiceClient) DeleteCustomer(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, deleteCustomerMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
