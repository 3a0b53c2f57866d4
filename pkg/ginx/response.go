package ginx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/assetdash/pkg/apierror"
	"github.com/rs/zerolog"
)

// renderResponse 渲染 JSON 响应，nil 响应返回 204
func renderResponse(ctx *gin.Context, response any) {
	if response == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// renderError 渲染错误响应
// *apierror.Error 使用自身的 HTTP 状态码；其它错误包装为 InternalError
func renderError(ctx *gin.Context, statusCode int, err error) {
	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		apiErr = apierror.Internal(err.Error(), err)
		apiErr.HTTPStatus = statusCode
	}
	if apiErr.HTTPStatus > 0 {
		statusCode = apiErr.HTTPStatus
	}

	if apiErr.RawError != nil {
		zerolog.Ctx(ctx.Request.Context()).Error().
			Err(apiErr.RawError).
			Str("code", apiErr.Code).
			Msg("Request failed")
	}

	ctx.AbortWithStatusJSON(statusCode, apierror.NewErrorResponse(GetRequestID(ctx), apiErr))
}
