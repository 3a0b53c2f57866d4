// Package ginx 提供 gin 框架的 handler 适配器，支持自动参数绑定和 JSON 响应处理
//
// 支持的 handler 函数签名：
//
//	// 1. 有参数，有返回值，有 error
//	func(c *gin.Context, args *Args) (resp, error)
//
//	// 2. 无参数，有返回值，有 error
//	func(c *gin.Context) (resp, error)
//
// 参数结构体如果实现了 IsValid() error，绑定后会自动调用做参数校验，
// 校验失败返回 400
//
// 错误响应：
//   - *apierror.Error 使用错误自带的 HTTP 状态码，并序列化为 apierror.ErrorResponse
//   - 其它 error 包装为 InternalError，状态码 500
//
// 使用示例：
//
//	router := gin.New()
//	router.Use(ginx.RequestID(idgen.GenerateRequestID))
//
//	router.POST("/api/describe-certificates", ginx.Adapt5(func(c *gin.Context, args *DescribeCertificatesRequest) (*DescribeCertificatesResponse, error) {
//	    return svc.DescribeCertificates(c, args)
//	}))
package ginx
