// Package apierror 提供统一的 API 错误类型
//
// 错误响应格式（JSON）：
//
//	{
//	    "errors": [
//	        {
//	            "code": "InvalidCertificateID.NotFound",
//	            "message": "The certificate ID 'cert-001' does not exist"
//	        }
//	    ],
//	    "requestID": "req-123456"
//	}
//
// 使用示例：
//
//	// 基于预定义错误包装底层错误
//	err := apierror.WrapError(apierror.ErrLoadFailure, "Failed to load certificates", rawErr)
//
//	// 判断错误类型
//	if errors.Is(err, apierror.ErrLoadFailure) { ... }
//
// 预定义错误：
//
//   - ErrLoadFailure: 快照无法解析或加载过程中出错
//   - ErrInvalidParameter: 请求参数非法
//   - ErrCertificateNotFound / ErrSSHKeyNotFound / ErrCodeSigningKeyNotFound: 记录不存在
//   - ErrInternalError: 其它内部错误
package apierror
