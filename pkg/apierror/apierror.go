package apierror

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorResponse 是所有失败请求的响应体
type ErrorResponse struct {
	Errors    []Error `json:"errors"`
	RequestID string  `json:"requestID"`
}

func (er *ErrorResponse) Error() string {
	var b strings.Builder
	b.WriteString("RequestID: " + er.RequestID)
	for _, e := range er.Errors {
		b.WriteString("; " + e.Error())
	}
	return b.String()
}

// Error 单个错误信息，Code 是稳定的机器可读标识
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	RawError   error  `json:"-"` // 仅写入服务端日志
}

func (e *Error) Error() string {
	if e.RawError == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (RawError: %v)", e.Code, e.Message, e.RawError)
}

// Is 按 Code 比较，使 errors.Is(err, ErrLoadFailure) 对包装后的错误成立
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.RawError
}

// Status 返回 HTTP 状态码，未设置时为 500
func (e *Error) Status() int {
	if e.HTTPStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.HTTPStatus
}

// NewErrorWithStatus 创建不在预定义列表中的错误
func NewErrorWithStatus(code, message string, httpStatus int) *Error {
	return &Error{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewErrorResponse 组装响应体
func NewErrorResponse(requestID string, errors ...*Error) *ErrorResponse {
	resp := &ErrorResponse{Errors: make([]Error, 0, len(errors)), RequestID: requestID}
	for _, e := range errors {
		resp.Errors = append(resp.Errors, *e)
	}
	return resp
}

// WrapError 沿用预定义错误的 Code 和状态码，替换消息并附带底层错误
func WrapError(base *Error, message string, rawError error) *Error {
	return &Error{
		Code:       base.Code,
		Message:    message,
		HTTPStatus: base.HTTPStatus,
		RawError:   rawError,
	}
}

// InvalidParameter 参数校验失败
func InvalidParameter(format string, args ...any) *Error {
	return WrapError(ErrInvalidParameter, fmt.Sprintf(format, args...), nil)
}

// NotFound 记录不存在，noun 用于消息，例如 "certificate"
func NotFound(base *Error, noun, id string) *Error {
	return WrapError(base, fmt.Sprintf("The %s '%s' does not exist.", noun, id), nil)
}

// LoadFailure 集合加载失败，kind 为集合名称
func LoadFailure(kind string, err error) *Error {
	return WrapError(ErrLoadFailure, "Failed to load "+kind+". Retry the request.", err)
}

// Internal 其它服务端错误
func Internal(message string, err error) *Error {
	return WrapError(ErrInternalError, message, err)
}
