package interceptors

import (
	"context"
	"errors"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/customer-registry/internal/errors"
	"github.com/umalmyha/customer-registry/internal/validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const testService = "customers.CustomerService"

func callWithError(t *testing.T, interceptor grpc.UnaryServerInterceptor, method string, handlerErr error) error {
	t.Helper()
	info := &grpc.UnaryServerInfo{FullMethod: method}
	_, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, handlerErr
	})
	return err
}

func TestUnaryApplicableForService(t *testing.T) {
	applicable := UnaryApplicableForService(testService)
	require.True(t, applicable(&grpc.UnaryServerInfo{FullMethod: "/customers.CustomerService/GetCustomer"}))
	require.False(t, applicable(&grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}))
	require.False(t, applicable(&grpc.UnaryServerInfo{FullMethod: "/customers.CustomerServiceV2/GetCustomer"}))
}

func TestErrorUnaryInterceptor(t *testing.T) {
	interceptor := ErrorUnaryInterceptor(UnaryApplicableForService(testService))
	method := "/customers.CustomerService/GetCustomer"

	t.Log("not found error is converted to NotFound with hint")
	{
		err := callWithError(t, interceptor, method, apperrors.NewCustomerNotFoundErr("customerA"))
		st, _ := status.FromError(err)
		require.Equal(t, codes.NotFound, st.Code())
		require.Equal(t, "A customer with name customerA does not exist", st.Message())
		require.Equal(t, apperrors.ListCustomersHint, Hint(err))
	}

	t.Log("already exists error is converted to AlreadyExists with hint")
	{
		err := callWithError(t, interceptor, method, apperrors.NewCustomerExistsErr("customerA"))
		st, _ := status.FromError(err)
		require.Equal(t, codes.AlreadyExists, st.Code())
		require.Equal(t, "A customer with name customerA already exists", st.Message())
		require.Equal(t, apperrors.ListCustomersHint, Hint(err))
	}

	t.Log("payload error is converted to InvalidArgument")
	{
		err := callWithError(t, interceptor, method, &validation.PayloadError{})
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	}

	t.Log("status error is passed as is")
	{
		err := callWithError(t, interceptor, method, status.Error(codes.InvalidArgument, "bad"))
		require.Equal(t, codes.InvalidArgument, status.Code(err))
		require.Empty(t, Hint(err))
	}

	t.Log("echo error is converted by http status")
	{
		err := callWithError(t, interceptor, method, echo.NewHTTPError(400, "bad request"))
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	}

	t.Log("unknown error is hidden behind internal error")
	{
		err := callWithError(t, interceptor, method, errors.New("boom"))
		st, _ := status.FromError(err)
		require.Equal(t, codes.Internal, st.Code())
		require.Equal(t, "Internal server error", st.Message())
	}

	t.Log("interceptor is skipped for other services")
	{
		raw := errors.New("boom")
		err := callWithError(t, interceptor, "/grpc.health.v1.Health/Check", raw)
		require.Same(t, raw, err)
	}
}
