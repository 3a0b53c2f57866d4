// Package idgen 提供递增 ID 生成器
//
// 使用 Sonyflake 算法生成全局唯一且递增的 ID，
// 目前用于给每个 HTTP 请求分配请求 ID：
//
//	requestID, err := idgen.GenerateRequestID()
//	// requestID: "req-1234567890"
package idgen
