package ginx

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/assetdash/pkg/apierror"
)

// bindArgs 绑定请求参数到 args 结构体
// 优先级：JSON Body > Query 参数；空 body 视为没有参数
func bindArgs(ctx *gin.Context, args any) error {
	if ctx.Request.Body != nil && ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(args); err != nil && !errors.Is(err, io.EOF) {
			return apierror.InvalidParameter("invalid request body: %v", err)
		}
	}

	if err := ctx.ShouldBindQuery(args); err != nil {
		return apierror.InvalidParameter("invalid query parameters: %v", err)
	}
	return nil
}
