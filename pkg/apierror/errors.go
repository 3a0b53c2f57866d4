package apierror

import "net/http"

var (
	// ErrLoadFailure 快照存在但无法解析，或加载过程中出现任何错误
	ErrLoadFailure = &Error{
		Code:       "LoadFailure",
		Message:    "The records could not be loaded. Retry the request.",
		HTTPStatus: http.StatusInternalServerError,
	}

	// ErrInvalidParameter 请求参数非法
	ErrInvalidParameter = &Error{
		Code:       "InvalidParameter",
		Message:    "A parameter specified in the request is not valid.",
		HTTPStatus: http.StatusBadRequest,
	}

	// ErrCertificateNotFound 证书不存在
	ErrCertificateNotFound = &Error{
		Code:       "InvalidCertificateID.NotFound",
		Message:    "The specified certificate does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrSSHKeyNotFound SSH 密钥不存在
	ErrSSHKeyNotFound = &Error{
		Code:       "InvalidSSHKeyID.NotFound",
		Message:    "The specified SSH key does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrCodeSigningKeyNotFound 代码签名密钥不存在
	ErrCodeSigningKeyNotFound = &Error{
		Code:       "InvalidCodeSigningKeyID.NotFound",
		Message:    "The specified code-signing key does not exist.",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrInternalError 发生了内部错误
	ErrInternalError = &Error{
		Code:       "InternalError",
		Message:    "An internal error has occurred.",
		HTTPStatus: http.StatusInternalServerError,
	}
)
