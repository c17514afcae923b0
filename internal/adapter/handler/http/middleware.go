package http

import (
	"strings"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const operatorPayloadKey = "operator_payload"

func authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			abort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Fields(header)
		if len(words) != 2 {
			abort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if !strings.EqualFold(words[0], authType) {
			abort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		payload, err := tokenService.VerifyToken(words[1])
		if err != nil {
			abort(ctx, err)
			return
		}

		ctx.Set(operatorPayloadKey, payload)

		ctx.Next()
	}
}

func abort(ctx *gin.Context, err error) {
	statusCode, _ := statusFor(err)
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Message: err.Error()})
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(operatorPayloadKey).(*port.TokenPayload)
}

// requestLogger writes one line per request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		fields := []zap.Field{
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Int("status", ctx.Writer.Status()),
		}
		if p, ok := ctx.Get(operatorPayloadKey); ok {
			fields = append(fields, zap.String("operator", p.(*port.TokenPayload).OperatorID))
		}
		logger.Debug("Request", fields...)
	}
}
