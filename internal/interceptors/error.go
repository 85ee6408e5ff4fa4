package interceptors

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/customer-registry/internal/errors"
	"github.com/umalmyha/customer-registry/internal/validation"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	errorInfoDomain         = "customers"
	reasonCustomerNotFound  = "CUSTOMER_NOT_FOUND"
	reasonCustomerExists    = "CUSTOMER_ALREADY_EXISTS"
	errorInfoHintMetadata   = "hint"
	internalServerErrorText = "Internal server error"
)

func httpToGrpcCode(s int) codes.Code {
	switch s {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

// ErrorUnaryInterceptor converts error retrieved from handler to gRPC error with corresponding code
func ErrorUnaryInterceptor(applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		res, err := h(ctx, req)
		if err == nil {
			return res, nil
		}

		if _, ok := status.FromError(err); ok { // it is already grpc status error
			logrus.Infof("grpc request %s rejected - %v", info.FullMethod, err)
			return nil, err
		}

		var (
			notFoundErr *apperrors.EntryNotFoundErr
			existsErr   *apperrors.EntryExistsErr
			pldErr      *validation.PayloadError
			echoErr     *echo.HTTPError
		)

		switch {
		case errors.As(err, &notFoundErr):
			logrus.Info(err.Error())
			return nil, businessStatus(codes.NotFound, reasonCustomerNotFound, err)
		case errors.As(err, &existsErr):
			logrus.Info(err.Error())
			return nil, businessStatus(codes.AlreadyExists, reasonCustomerExists, err)
		case errors.As(err, &pldErr):
			logrus.Infof("invalid payload - %v", err)
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		logrus.Errorf("error occurred on grpc request processing - %v", err)

		code := codes.Internal
		if errors.As(err, &echoErr) {
			code = httpToGrpcCode(echoErr.Code)
		}

		if code == codes.Internal {
			return nil, status.Error(code, internalServerErrorText)
		}
		return nil, status.Error(code, err.Error())
	}
}

func businessStatus(code codes.Code, reason string, err error) error {
	st := status.New(code, err.Error())

	detailed, detailsErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   errorInfoDomain,
		Metadata: map[string]string{errorInfoHintMetadata: apperrors.ListCustomersHint},
	})
	if detailsErr != nil {
		logrus.Errorf("failed to attach details to grpc status - %v", detailsErr)
		return st.Err()
	}
	return detailed.Err()
}

// Hint extracts hint attached to business error status, empty string is returned if there is no hint
func Hint(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}

	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetMetadata()[errorInfoHintMetadata]
		}
	}
	return ""
}
