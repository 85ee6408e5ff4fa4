package infra

import (
	"github.com/umalmyha/customer-registry/internal/handlers"
	"github.com/umalmyha/customer-registry/internal/interceptors"
	"github.com/umalmyha/customer-registry/internal/rpc"
	"github.com/umalmyha/customer-registry/internal/service"
	"github.com/umalmyha/customer-registry/internal/validation"
	"google.golang.org/grpc"
)

// GrpcServer builds gRPC server with customer service registered
func GrpcServer(customerSvc service.CustomerService, validator *validation.Validator) *grpc.Server {
	customerSvcOnly := interceptors.UnaryApplicableForService(rpc.CustomerServiceName)

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptors.LoggingUnaryInterceptor(),
		interceptors.ErrorUnaryInterceptor(customerSvcOnly),
	))

	rpc.RegisterCustomerServiceServer(server, handlers.NewCustomerGrpcHandler(customerSvc, validator))
	return server
}
