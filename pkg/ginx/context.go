package ginx

import (
	"github.com/gin-gonic/gin"
)

// requestIDKey 在 gin.Context 中存储请求 ID 的 key
const requestIDKey = "ginx.request_id"

// RequestIDHeader 响应头中携带请求 ID
const RequestIDHeader = "X-Request-ID"

// RequestID 返回为每个请求分配 ID 的中间件，generate 失败时不设置 ID
func RequestID(generate func() (string, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			if generated, err := generate(); err == nil {
				id = generated
			}
		}
		if id != "" {
			ctx.Set(requestIDKey, id)
			ctx.Header(RequestIDHeader, id)
		}
		ctx.Next()
	}
}

// GetRequestID 获取当前请求的 ID，不存在时返回空字符串
func GetRequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}
