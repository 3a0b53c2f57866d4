package idgen

import (
	"fmt"
	"sync"
	"time"

	"github.com/sony/sonyflake"
)

// RequestIDPrefix 请求 ID 前缀
const RequestIDPrefix = "req-"

// epoch sonyflake 的起始时间
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Generator 生成带前缀的递增 ID
type Generator struct {
	prefix string
	sf     *sonyflake.Sonyflake
}

// New 创建生成器，拿不到机器 ID（例如没有私有 IP）时使用固定机器 ID 1
func New(prefix string) *Generator {
	sf := sonyflake.NewSonyflake(sonyflake.Settings{StartTime: epoch})
	if sf == nil {
		sf = sonyflake.NewSonyflake(sonyflake.Settings{
			StartTime: epoch,
			MachineID: func() (uint16, error) { return 1, nil },
		})
	}
	return &Generator{prefix: prefix, sf: sf}
}

// Next 返回下一个 ID，格式 {prefix}{递增数字}
func (g *Generator) Next() (string, error) {
	id, err := g.sf.NextID()
	if err != nil {
		return "", fmt.Errorf("generate %sID: %w", g.prefix, err)
	}
	return fmt.Sprintf("%s%d", g.prefix, id), nil
}

var requestIDs = sync.OnceValue(func() *Generator { return New(RequestIDPrefix) })

// GenerateRequestID 生成请求 ID，可直接传给 ginx.RequestID
func GenerateRequestID() (string, error) {
	return requestIDs().Next()
}
