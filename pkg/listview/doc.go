// Package listview 提供列表视图的通用控制器：搜索、过滤、排序、分页/增量展示以及行展开状态
//
// 每种记录类型只需要提供字段访问器：
//
//	pipeline := listview.Pipeline[Certificate]{
//	    SearchFields: func(c Certificate) []string { return []string{c.Name, c.Domain, c.Issuer} },
//	    Compare:      func(a, b Certificate) int { return a.ExpiryDate.Compare(b.ExpiryDate) },
//	}
//
//	ctrl := listview.NewController(pipeline, func(c Certificate) string { return c.ID }, listview.NewPages(10), listview.SortAsc)
//	ctrl.SetItems(certs)
//	ctrl.SetSearch("example.com")
//	ctrl.SetFilter("status", listview.Equals(func(c Certificate) string { return c.Status }, "active"))
//	visible := ctrl.Visible()
//
// 所有派生视图（过滤结果、可见切片）都由当前输入确定性地计算得出，
// 不需要手动失效缓存
package listview
