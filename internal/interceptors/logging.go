package interceptors

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDMetadata = "x-request-id"

// LoggingUnaryInterceptor logs every call with its duration and resulting code
func LoggingUnaryInterceptor(applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		start := time.Now()
		res, err := h(ctx, req)

		logrus.WithFields(logrus.Fields{
			"method":    info.FullMethod,
			"code":      status.Code(err).String(),
			"latency":   time.Since(start).String(),
			"requestId": requestID(ctx),
		}).Info("grpc request")

		return res, err
	}
}

func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(requestIDMetadata); len(ids) > 0 {
			return ids[0]
		}
	}
	return uuid.NewString()
}
