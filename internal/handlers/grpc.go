package handlers

import (
	"context"

	"github.com/umalmyha/customer-registry/internal/model"
	"github.com/umalmyha/customer-registry/internal/rpc"
	"github.com/umalmyha/customer-registry/internal/service"
	"github.com/umalmyha/customer-registry/internal/validation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CustomerGrpcHandler is gRPC handler for customer endpoint
type CustomerGrpcHandler struct {
	rpc.UnimplementedCustomerServiceServer
	customerSvc service.CustomerService
	validator   *validation.Validator
}

// NewCustomerGrpcHandler builds new CustomerGrpcHandler
func NewCustomerGrpcHandler(customerSvc service.CustomerService, validator *validation.Validator) *CustomerGrpcHandler {
	return &CustomerGrpcHandler{
		UnimplementedCustomerServiceServer: rpc.UnimplementedCustomerServiceServer{},
		customerSvc:                        customerSvc,
		validator:                          validator,
	}
}

// ListCustomers returns all customers
func (h *CustomerGrpcHandler) ListCustomers(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	customers, err := h.customerSvc.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return rpc.CustomersToList(customers), nil
}

// GetCustomer returns customer by name
func (h *CustomerGrpcHandler) GetCustomer(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	c, err := h.customerSvc.FindByName(ctx, req.GetValue())
	if err != nil {
		return nil, err
	}
	return rpc.CustomerToStruct(*c), nil
}

// CreateCustomer creates new customer
func (h *CustomerGrpcHandler) CreateCustomer(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	c, err := rpc.StructToCustomer(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	nc := newCustomer{Name: c.Name, MailAddress: c.MailAddress, Category: c.Category}
	if err := h.validator.Struct(&nc); err != nil {
		return nil, err
	}

	if err := h.customerSvc.Create(ctx, model.Customer(nc)); err != nil {
		return nil, err
	}
	return new(emptypb.Empty), nil
}

// DeleteCustomer deletes customer by name
func (h *CustomerGrpcHandler) DeleteCustomer(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := h.customerSvc.DeleteByName(ctx, req.GetValue()); err != nil {
		return nil, err
	}
	return new(emptypb.Empty), nil
}
