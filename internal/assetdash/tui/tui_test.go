package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/internal/assetdash/repository"
	"github.com/jimyag/assetdash/internal/assetdash/sampledata"
	"github.com/jimyag/assetdash/internal/assetdash/service"
	"github.com/jimyag/assetdash/pkg/listview"
)

var testOptions = Options{SearchDebounce: time.Millisecond, PageSize: 5, RevealStep: 20}

func setupServices(t *testing.T) *service.Services {
	t.Helper()

	repo, err := repository.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return service.New(repo, service.Options{PageSize: 5, RevealStep: 20})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadPage 用 fetch 的结果驱动页面进入 ready 状态
func loadPage[T any](t *testing.T, p *listPage[T]) {
	t.Helper()

	p.load()
	items, err := p.cfg.fetch(p.ctx)
	require.NoError(t, err)
	p.update(loadedMsg[T]{kind: p.cfg.kind, items: items})
	require.Equal(t, phaseReady, p.phase)
}

func visibleIDs[T any](p *listPage[T]) []string {
	out := []string{}
	for _, item := range p.ctrl.Visible() {
		out = append(out, p.ctrl.ID(item))
	}
	return out
}

func filteredIDs[T any](p *listPage[T]) []string {
	out := []string{}
	for _, item := range p.ctrl.Filtered() {
		out = append(out, p.ctrl.ID(item))
	}
	return out
}

func sampleCertificatesPage(t *testing.T) *listPage[entity.Certificate] {
	t.Helper()

	certs, err := sampledata.Certificates()
	require.NoError(t, err)
	p := newCertificatesPage(context.Background(), &service.CertificateService{}, testOptions)
	p.cfg.fetch = func(context.Context) ([]entity.Certificate, error) { return certs, nil }
	loadPage(t, p)
	return p
}

func sampleAuditLogsPage(t *testing.T) *listPage[entity.AuditLog] {
	t.Helper()

	logs, err := sampledata.AuditLogs()
	require.NoError(t, err)
	p := newAuditLogsPage(context.Background(), &service.AuditLogService{}, testOptions)
	p.cfg.fetch = func(context.Context) ([]entity.AuditLog, error) { return logs, nil }
	loadPage(t, p)
	return p
}

func TestModel_Tabs(t *testing.T) {
	t.Parallel()

	m := New(context.Background(), setupServices(t), testOptions)
	require.NotNil(t, m.Init())
	assert.Equal(t, []bool{true, false, false, false}, m.started)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.active)
	assert.NotNil(t, cmd, "first activation starts loading")
	assert.True(t, m.started[1])

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, m.active)
	assert.Nil(t, cmd, "page already started")

	m.Update(keyRunes("4"))
	assert.Equal(t, 3, m.active)
	assert.Contains(t, m.View(), "Audit Logs")

	_, cmd = m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_RoutesMessagesByKind(t *testing.T) {
	t.Parallel()

	m := New(context.Background(), setupServices(t), testOptions)
	m.Init()

	certs, err := sampledata.Certificates()
	require.NoError(t, err)
	m.Update(loadedMsg[entity.Certificate]{kind: entity.KindCertificates, items: certs})

	certPage := m.pages[0].(*listPage[entity.Certificate])
	sshPage := m.pages[1].(*listPage[entity.SSHKey])
	assert.Equal(t, phaseReady, certPage.phase)
	assert.Len(t, certPage.ctrl.Items(), 14)
	assert.Equal(t, phaseIdle, sshPage.phase)
}

func TestModel_TypingDoesNotSwitchTabs(t *testing.T) {
	t.Parallel()

	m := New(context.Background(), setupServices(t), testOptions)
	m.Init()
	p := m.pages[0].(*listPage[entity.Certificate])
	certs, err := sampledata.Certificates()
	require.NoError(t, err)
	p.update(loadedMsg[entity.Certificate]{kind: entity.KindCertificates, items: certs})

	m.Update(keyRunes("/"))
	require.True(t, p.capturing())

	_, cmd := m.Update(keyRunes("q"))
	assert.Equal(t, 0, m.active)
	assert.Equal(t, "q", p.search.Value())
	if cmd != nil {
		assert.NotEqual(t, tea.QuitMsg{}, cmd())
	}
}

func TestListPage_LoadingErrorAndRetry(t *testing.T) {
	t.Parallel()

	calls := 0
	p := newCertificatesPage(context.Background(), &service.CertificateService{}, testOptions)
	p.cfg.fetch = func(context.Context) ([]entity.Certificate, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("disk on fire")
		}
		return sampledata.Certificates()
	}

	require.NotNil(t, p.init())
	assert.Equal(t, phaseLoading, p.phase)
	assert.Contains(t, p.view(100, 30), "Loading Certificates")

	_, err := p.cfg.fetch(p.ctx)
	p.update(loadedMsg[entity.Certificate]{kind: entity.KindCertificates, err: err})
	assert.Equal(t, phaseError, p.phase)
	view := p.view(100, 30)
	assert.Contains(t, view, "disk on fire")
	assert.Contains(t, view, "Press r to retry")

	// 错误状态下其它按键无效
	assert.Nil(t, p.update(keyRunes("s")))

	require.NotNil(t, p.update(keyRunes("r")))
	assert.Equal(t, phaseLoading, p.phase)

	loadPage(t, p)
	assert.Equal(t, 2, calls)
	assert.NotContains(t, p.view(100, 30), "retry")
}

func TestListPage_SearchDebounce(t *testing.T) {
	t.Parallel()

	p := sampleCertificatesPage(t)

	p.update(keyRunes("/"))
	require.True(t, p.searching)

	cmd := p.update(keyRunes("example.com"))
	assert.NotNil(t, cmd, "schedules debounce tick")
	assert.Len(t, p.ctrl.Filtered(), 14, "search applies only after debounce")

	p.update(debounceMsg{kind: entity.KindCertificates, seq: p.searchSeq - 1})
	assert.Len(t, p.ctrl.Filtered(), 14, "stale tick is ignored")

	p.update(debounceMsg{kind: entity.KindSSHKeys, seq: p.searchSeq})
	assert.Len(t, p.ctrl.Filtered(), 14, "tick for another page is ignored")

	p.update(debounceMsg{kind: entity.KindCertificates, seq: p.searchSeq})
	assert.Equal(t, []string{"cert-009", "cert-002", "cert-001"}, filteredIDs(p))

	p.update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.searching)
	assert.Empty(t, p.search.Value())
	assert.Len(t, p.ctrl.Filtered(), 14)
}

func TestListPage_SearchEnterAppliesImmediately(t *testing.T) {
	t.Parallel()

	p := sampleCertificatesPage(t)
	p.update(keyRunes("/"))
	p.update(keyRunes("zzz-nothing"))
	p.update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, p.searching)
	assert.Empty(t, p.ctrl.Filtered())
	assert.Contains(t, p.view(100, 30), "No Certificates match")
}

func TestListPage_FilterCycle(t *testing.T) {
	t.Parallel()

	p := sampleCertificatesPage(t)

	tests := []struct {
		want  string
		count int
	}{
		{entity.CertificateStatusActive, -1},
		{entity.CertificateStatusExpiring, -1},
		{entity.CertificateStatusExpired, 3},
		{listview.FilterAll, 14},
	}
	for _, tt := range tests {
		p.update(keyRunes("f"))
		assert.Equal(t, tt.want, p.cfg.filter.current)
		if tt.count >= 0 {
			assert.Len(t, p.ctrl.Filtered(), tt.count)
		}
		for _, c := range p.ctrl.Filtered() {
			if tt.want != listview.FilterAll {
				assert.Equal(t, tt.want, c.Status)
			}
		}
	}

	p.update(keyRunes("f"))
	p.update(keyRunes("f"))
	p.update(keyRunes("f"))
	assert.Equal(t, []string{"cert-013", "cert-004", "cert-009"}, filteredIDs(p))
}

func TestListPage_Paging(t *testing.T) {
	t.Parallel()

	p := sampleCertificatesPage(t)
	assert.Equal(t, []string{"cert-013", "cert-004", "cert-009", "cert-006", "cert-002"}, visibleIDs(p))

	p.update(keyRunes("j"))
	p.update(keyRunes("n"))
	assert.Equal(t, 0, p.cursor)
	assert.Equal(t, []string{"cert-011", "cert-010", "cert-014", "cert-007", "cert-005"}, visibleIDs(p))

	p.update(keyRunes("n"))
	p.update(keyRunes("n"))
	assert.Equal(t, []string{"cert-012", "cert-001", "cert-008", "cert-003"}, visibleIDs(p))
	assert.Contains(t, p.view(100, 30), "page 3/3")

	p.update(keyRunes("p"))
	assert.Equal(t, 2, p.ctrl.Policy().(*listview.Pages).Page())

	p.update(keyRunes("+"))
	pages := p.ctrl.Policy().(*listview.Pages)
	assert.Equal(t, 10, pages.Size())
	assert.Equal(t, 1, pages.Page())
	assert.Len(t, p.ctrl.Visible(), 10)
}

func TestListPage_SortToggleKeepsPage(t *testing.T) {
	t.Parallel()

	p := sampleCertificatesPage(t)
	p.update(keyRunes("n"))
	p.update(keyRunes("s"))

	assert.Equal(t, listview.SortDesc, p.ctrl.Order())
	assert.Equal(t, 2, p.ctrl.Policy().(*listview.Pages).Page())
	assert.Equal(t, []string{"cert-005", "cert-007", "cert-014", "cert-010", "cert-011"}, visibleIDs(p))
}

func TestListPage_Expansion(t *testing.T) {
	t.Parallel()

	p := sampleCertificatesPage(t)
	assert.NotContains(t, p.view(100, 30), "Serial:")

	p.update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, p.ctrl.IsExpanded("cert-013"))
	assert.Contains(t, p.view(100, 30), "Serial:")

	// 展开状态跨页保留
	p.update(keyRunes("n"))
	p.update(keyRunes("p"))
	assert.True(t, p.ctrl.IsExpanded("cert-013"))

	p.update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, p.ctrl.IsExpanded("cert-013"))
}

func TestListPage_Rename(t *testing.T) {
	t.Parallel()

	services := setupServices(t)
	p := newCertificatesPage(context.Background(), services.Certificate, testOptions)
	loadPage(t, p)

	tests := []struct {
		name        string
		input       string
		wantName    string
		wantStatus  string
		wantUpdated bool
	}{
		{name: "trimmed", input: "  Metrics Edge  ", wantName: "Metrics Edge", wantStatus: "renamed", wantUpdated: true},
		{name: "blank is ignored", input: "   ", wantName: "Metrics Edge", wantStatus: "name is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, p.update(keyRunes("e")))
			require.NotNil(t, p.prompt)
			assert.True(t, p.capturing())

			p.prompt.input.SetValue(tt.input)
			cmd := p.update(tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)
			assert.Nil(t, p.prompt)

			msg, ok := cmd().(renamedMsg[entity.Certificate])
			require.True(t, ok)
			assert.Equal(t, tt.wantUpdated, msg.updated)
			p.update(msg)

			cert, found := p.ctrl.Find("cert-013")
			require.True(t, found)
			assert.Equal(t, tt.wantName, cert.Name)
			assert.Contains(t, p.status, tt.wantStatus)

			resp, err := services.Certificate.DescribeCertificate(context.Background(), &entity.DescribeCertificateRequest{CertificateID: "cert-013"})
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, resp.Certificate.Name)
		})
	}
}

func TestListPage_RenameCancel(t *testing.T) {
	t.Parallel()

	p := sampleCertificatesPage(t)
	p.update(keyRunes("e"))
	require.NotNil(t, p.prompt)
	assert.Equal(t, "Metrics Collector", p.prompt.input.Value())

	p.update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, p.prompt)
	cert, _ := p.ctrl.Find("cert-013")
	assert.Equal(t, "Metrics Collector", cert.Name)
}

func TestListPage_RevealOnScroll(t *testing.T) {
	t.Parallel()

	p := sampleAuditLogsPage(t)
	require.Len(t, p.ctrl.Visible(), 20)
	assert.Equal(t, "log-001", visibleIDs(p)[0])

	for range 19 {
		p.update(keyRunes("j"))
	}
	assert.Equal(t, 19, p.cursor)
	assert.Len(t, p.ctrl.Visible(), 20)

	p.update(keyRunes("j"))
	assert.Equal(t, 20, p.cursor)
	assert.Len(t, p.ctrl.Visible(), 40)

	p.update(keyRunes("m"))
	assert.Len(t, p.ctrl.Visible(), 45)
	assert.Contains(t, p.view(100, 60), "showing all 45")

	// 条件变化后回到一个步长
	p.update(keyRunes("s"))
	p.update(keyRunes("f"))
	assert.LessOrEqual(t, len(p.ctrl.Visible()), 20)
}

func TestListPage_DateRange(t *testing.T) {
	t.Parallel()

	p := sampleAuditLogsPage(t)

	p.update(keyRunes("d"))
	require.NotNil(t, p.prompt)
	p.prompt.input.SetValue("2024-10-31..2024-10-31")
	p.update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, p.ctrl.Filtered(), 15)
	assert.Equal(t, "2024-10-31..2024-10-31", p.dateDesc)

	p.update(keyRunes("d"))
	p.prompt.input.SetValue("nope")
	p.update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, p.status, "invalid startDate")
	assert.Len(t, p.ctrl.Filtered(), 15)

	p.update(keyRunes("d"))
	p.prompt.input.SetValue("")
	p.update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Len(t, p.ctrl.Filtered(), 45)
	assert.Empty(t, p.dateDesc)
}

func TestListPage_ActionFilterUsesLoadedTypes(t *testing.T) {
	t.Parallel()

	p := sampleAuditLogsPage(t)
	types := service.ActionTypes(p.ctrl.Items())
	require.NotEmpty(t, types)

	p.update(keyRunes("f"))
	assert.Equal(t, types[0], p.cfg.filter.current)
	for _, l := range p.ctrl.Filtered() {
		assert.Equal(t, types[0], l.ActionType)
	}
}

func TestListPage_ViewModeToggle(t *testing.T) {
	t.Parallel()

	services := setupServices(t)
	p := newCodeSigningKeysPage(context.Background(), services.CodeSigningKey, testOptions)
	loadPage(t, p)

	msg := p.loadViewMode()()
	p.update(msg)
	assert.Equal(t, entity.ViewModeTable, p.mode)

	cmd := p.update(keyRunes("v"))
	require.NotNil(t, cmd)
	assert.Equal(t, entity.ViewModeGrid, p.mode)
	p.update(cmd())
	assert.Contains(t, p.view(100, 40), "used ")

	resp, err := services.CodeSigningKey.GetViewMode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.ViewModeGrid, resp.ViewMode)

	// 重新打开页面时恢复上次的展示方式
	reopened := newCodeSigningKeysPage(context.Background(), services.CodeSigningKey, testOptions)
	reopened.update(reopened.loadViewMode()())
	assert.Equal(t, entity.ViewModeGrid, reopened.mode)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trun…"},
		{"ab", 1, "a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.in, tt.width))
	}
}
