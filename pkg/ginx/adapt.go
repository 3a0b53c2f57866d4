package ginx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// validator 请求结构体实现 IsValid 后会在调用 handler 前校验
type validator interface {
	IsValid() error
}

// Adapt3 适配只读取路由本身、不需要请求参数的 handler，例如 GET 查询当前设置
func Adapt3[TResp any](fn func(*gin.Context) (TResp, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, err := fn(ctx)
		respond(ctx, result, err)
	}
}

// Adapt5 适配带请求参数的 handler：绑定、校验、调用、渲染
func Adapt5[TArgs any, TResp any](fn func(*gin.Context, *TArgs) (TResp, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		args := new(TArgs)
		if err := bindAndValidate(ctx, args); err != nil {
			renderError(ctx, http.StatusBadRequest, err)
			return
		}
		result, err := fn(ctx, args)
		respond(ctx, result, err)
	}
}

func bindAndValidate(ctx *gin.Context, args any) error {
	if err := bindArgs(ctx, args); err != nil {
		return err
	}
	if v, ok := args.(validator); ok {
		return v.IsValid()
	}
	return nil
}

func respond(ctx *gin.Context, result any, err error) {
	if err != nil {
		renderError(ctx, http.StatusInternalServerError, err)
		return
	}
	renderResponse(ctx, result)
}
