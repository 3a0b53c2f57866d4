package tui

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/internal/assetdash/service"
	"github.com/jimyag/assetdash/pkg/listview"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// 证书页面可循环切换的每页条数
var certificatePageSizes = []int{5, 10, 20, 50}

func newCertificatesPage(ctx context.Context, svc *service.CertificateService, opts Options) *listPage[entity.Certificate] {
	return newListPage(ctx, pageConfig[entity.Certificate]{
		kind:     entity.KindCertificates,
		title:    "Certificates",
		pipeline: service.CertificatePipeline(),
		idOf:     func(c entity.Certificate) string { return c.ID },
		order:    service.CertificateDefaultOrder,
		policy:   listview.NewPages(opts.PageSize),
		columns: []column[entity.Certificate]{
			{title: "Name", width: 24, value: func(c entity.Certificate) string { return c.Name }},
			{title: "Domain", width: 26, value: func(c entity.Certificate) string { return c.Domain }},
			{title: "Issuer", width: 16, value: func(c entity.Certificate) string { return c.Issuer }},
			{
				title: "Status", width: 9,
				value: func(c entity.Certificate) string { return c.Status },
				style: func(c entity.Certificate) lipgloss.Style { return levelStyle(c.Status) },
			},
			{title: "Expires", width: 10, value: func(c entity.Certificate) string { return c.ExpiryDate.Format(dateLayout) }},
		},
		detail: func(c entity.Certificate) []string {
			return []string{
				"Serial:    " + c.SerialNumber,
				"Algorithm: " + c.Algorithm,
				"Created:   " + c.CreatedAt.Format(dateLayout),
			}
		},
		filter: &filter[entity.Certificate]{
			name:    "status",
			options: func([]entity.Certificate) []string { return entity.CertificateStatuses },
			build:   service.CertificateStatusFilter,
		},
		fetch:  svc.ListCertificates,
		nameOf: func(c entity.Certificate) string { return c.Name },
		rename: func(ctx context.Context, id, name string) (entity.Certificate, bool, error) {
			resp, err := svc.RenameCertificate(ctx, &entity.RenameCertificateRequest{CertificateID: id, Name: name})
			if err != nil {
				return entity.Certificate{}, false, err
			}
			return *resp.Certificate, resp.Updated, nil
		},
		pageSizes: certificatePageSizes,
	}, opts.SearchDebounce)
}

func newSSHKeysPage(ctx context.Context, svc *service.SSHKeyService, opts Options) *listPage[entity.SSHKey] {
	return newListPage(ctx, pageConfig[entity.SSHKey]{
		kind:     entity.KindSSHKeys,
		title:    "SSH Keys",
		pipeline: service.SSHKeyPipeline(),
		idOf:     func(k entity.SSHKey) string { return k.ID },
		order:    service.SSHKeyDefaultOrder,
		columns: []column[entity.SSHKey]{
			{title: "Owner", width: 18, value: func(k entity.SSHKey) string { return k.Owner }},
			{title: "Fingerprint", width: 30, value: func(k entity.SSHKey) string { return k.Fingerprint }},
			{title: "Type", width: 12, value: func(k entity.SSHKey) string { return k.KeyType }},
			{
				title: "Trust", width: 7,
				value: func(k entity.SSHKey) string { return k.TrustLevel },
				style: func(k entity.SSHKey) lipgloss.Style { return levelStyle(k.TrustLevel) },
			},
			{title: "Last used", width: 16, value: func(k entity.SSHKey) string { return k.LastUsed.Format(dateTimeLayout) }},
		},
		detail: func(k entity.SSHKey) []string {
			return []string{
				"Fingerprint: " + k.Fingerprint,
				"Servers:     " + strings.Join(k.Servers, ", "),
			}
		},
		filter: &filter[entity.SSHKey]{
			name:    "trust",
			options: func([]entity.SSHKey) []string { return entity.TrustLevels },
			build:   service.SSHKeyTrustFilter,
		},
		fetch: svc.ListSSHKeys,
	}, opts.SearchDebounce)
}

func newCodeSigningKeysPage(ctx context.Context, svc *service.CodeSigningKeyService, opts Options) *listPage[entity.CodeSigningKey] {
	return newListPage(ctx, pageConfig[entity.CodeSigningKey]{
		kind:     entity.KindCodeSigningKeys,
		title:    "Code Signing",
		pipeline: service.CodeSigningKeyPipeline(),
		idOf:     func(k entity.CodeSigningKey) string { return k.ID },
		order:    service.CodeSigningKeyDefaultOrder,
		columns: []column[entity.CodeSigningKey]{
			{title: "Alias", width: 24, value: func(k entity.CodeSigningKey) string { return k.Alias }},
			{title: "Algorithm", width: 14, value: func(k entity.CodeSigningKey) string { return k.Algorithm }},
			{
				title: "Protection", width: 10,
				value: func(k entity.CodeSigningKey) string { return k.ProtectionLevel },
				style: func(k entity.CodeSigningKey) lipgloss.Style { return levelStyle(k.ProtectionLevel) },
			},
			{title: "Last used", width: 16, value: func(k entity.CodeSigningKey) string { return k.LastUsed.Format(dateTimeLayout) }},
			{title: "Uses", width: 8, value: func(k entity.CodeSigningKey) string { return fmt.Sprint(k.UsageCount) }},
		},
		detail: func(k entity.CodeSigningKey) []string {
			return []string{"Created: " + k.CreatedAt.Format(dateLayout)}
		},
		card: func(k entity.CodeSigningKey) string {
			return strings.Join([]string{
				titleStyle.Render(truncate(k.Alias, 26)),
				k.Algorithm,
				levelStyle(k.ProtectionLevel).Render(k.ProtectionLevel),
				"used " + fmt.Sprint(k.UsageCount) + "x",
				"last " + k.LastUsed.Format(dateLayout),
			}, "\n")
		},
		filter: &filter[entity.CodeSigningKey]{
			name:    "protection",
			options: func([]entity.CodeSigningKey) []string { return entity.ProtectionLevels },
			build:   service.CodeSigningKeyProtectionFilter,
		},
		fetch: svc.ListCodeSigningKeys,
		viewMode: &viewModeHooks{
			load: func(ctx context.Context) (entity.ViewMode, error) {
				resp, err := svc.GetViewMode(ctx)
				if err != nil {
					return "", err
				}
				return resp.ViewMode, nil
			},
			save: func(ctx context.Context, mode entity.ViewMode) error {
				_, err := svc.SetViewMode(ctx, &entity.SetViewModeRequest{ViewMode: mode})
				return err
			},
		},
	}, opts.SearchDebounce)
}

func newAuditLogsPage(ctx context.Context, svc *service.AuditLogService, opts Options) *listPage[entity.AuditLog] {
	return newListPage(ctx, pageConfig[entity.AuditLog]{
		kind:     entity.KindAuditLogs,
		title:    "Audit Logs",
		pipeline: service.AuditLogPipeline(),
		idOf:     func(l entity.AuditLog) string { return l.ID },
		order:    service.AuditLogDefaultOrder,
		policy:   listview.NewReveal(opts.RevealStep),
		columns: []column[entity.AuditLog]{
			{title: "Time", width: 16, value: func(l entity.AuditLog) string { return l.Timestamp.Format(dateTimeLayout) }},
			{title: "Actor", width: 16, value: func(l entity.AuditLog) string { return l.Actor }},
			{title: "Action", width: 24, value: func(l entity.AuditLog) string { return l.ActionType }},
			{title: "Target", width: 24, value: func(l entity.AuditLog) string { return l.TargetResource }},
		},
		detail: func(l entity.AuditLog) []string {
			lines := []string{"Timestamp: " + l.Timestamp.Format(time.RFC3339)}
			for _, k := range slices.Sorted(maps.Keys(l.Metadata)) {
				lines = append(lines, k+": "+l.Metadata[k])
			}
			return lines
		},
		filter: &filter[entity.AuditLog]{
			name:    "action",
			options: service.ActionTypes,
			build:   service.AuditLogActionFilter,
		},
		fetch:     svc.ListAuditLogs,
		dateField: func(l entity.AuditLog) time.Time { return l.Timestamp },
	}, opts.SearchDebounce)
}
