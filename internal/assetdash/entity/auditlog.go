package entity

import (
	"time"

	"github.com/jimyag/assetdash/pkg/apierror"
	"github.com/jimyag/assetdash/pkg/listview"
)

// AuditLog 审计日志
type AuditLog struct {
	ID             string            `json:"id"             yaml:"id"`
	Timestamp      time.Time         `json:"timestamp"      yaml:"timestamp"`
	Actor          string            `json:"actor"          yaml:"actor"`
	ActionType     string            `json:"actionType"     yaml:"actionType"` // 点分层级，例如 certificate.renew
	TargetResource string            `json:"targetResource" yaml:"targetResource"`
	Metadata       map[string]string `json:"metadata"       yaml:"metadata"`
}

// DateLayout 日期范围参数支持的纯日期格式
const DateLayout = "2006-01-02"

// DescribeAuditLogsRequest 查询审计日志请求
type DescribeAuditLogsRequest struct {
	Search       string `json:"search,omitempty"       form:"search"`
	ActionType   string `json:"actionType,omitempty"   form:"actionType"`   // 精确匹配，空或 all 表示不限
	StartDate    string `json:"startDate,omitempty"    form:"startDate"`    // 2006-01-02 或 RFC3339，闭区间
	EndDate      string `json:"endDate,omitempty"      form:"endDate"`      // 2006-01-02（包含当天）或 RFC3339
	SortOrder    string `json:"sortOrder,omitempty"    form:"sortOrder"`    // 按时间排序：desc（默认）, asc
	VisibleCount int    `json:"visibleCount,omitempty" form:"visibleCount"` // 期望展示的条数，0 表示首次加载（一个步长），请求更多时传入当前条数加一个步长
}

// IsValid 校验请求参数
func (r *DescribeAuditLogsRequest) IsValid() error {
	if _, err := listview.ParseSortOrder(r.SortOrder, listview.SortDesc); err != nil {
		return apierror.InvalidParameter("%v", err)
	}
	if r.VisibleCount < 0 {
		return apierror.InvalidParameter("visibleCount must not be negative")
	}
	from, to, err := r.DateRange()
	if err != nil {
		return err
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return apierror.InvalidParameter("startDate must not be after endDate")
	}
	return nil
}

// DateRange 解析日期范围，纯日期的 EndDate 包含当天
func (r *DescribeAuditLogsRequest) DateRange() (from, to time.Time, err error) {
	from, _, err = parseDate("startDate", r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, dateOnly, err := parseDate("endDate", r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if dateOnly {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

func parseDate(field, value string) (t time.Time, dateOnly bool, err error) {
	if value == "" {
		return time.Time{}, false, nil
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, true, nil
	}
	t, err = time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, apierror.InvalidParameter("invalid %s %q, expected YYYY-MM-DD or RFC3339", field, value)
	}
	return t, false, nil
}

// DescribeAuditLogsResponse 查询审计日志响应
type DescribeAuditLogsResponse struct {
	AuditLogs    []AuditLog `json:"auditLogs"`
	VisibleCount int        `json:"visibleCount"`
	TotalCount   int        `json:"totalCount"`
	HasMore      bool       `json:"hasMore"`
	RevealStep   int        `json:"revealStep"` // 请求更多时 visibleCount 应增加的条数
}

// ListAuditActionTypesResponse 审计日志中出现过的操作类型
type ListAuditActionTypesResponse struct {
	ActionTypes []string `json:"actionTypes"`
}
