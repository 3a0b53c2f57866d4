package service

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateService_DescribeCertificates(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name      string
		req       *entity.DescribeCertificatesRequest
		wantIDs   []string
		wantPage  int
		wantPages int
		wantTotal int
	}{
		{
			name:      "first page sorted by expiry",
			req:       &entity.DescribeCertificatesRequest{},
			wantIDs:   []string{"cert-013", "cert-004", "cert-009", "cert-006", "cert-002"},
			wantPage:  1,
			wantPages: 3,
			wantTotal: 14,
		},
		{
			name:      "search example.com",
			req:       &entity.DescribeCertificatesRequest{Search: "Example.COM"},
			wantIDs:   []string{"cert-009", "cert-002", "cert-001"},
			wantPage:  1,
			wantPages: 1,
			wantTotal: 3,
		},
		{
			name:      "search issuer",
			req:       &entity.DescribeCertificatesRequest{Search: "digicert", SortOrder: "desc"},
			wantIDs:   []string{"cert-005", "cert-002"},
			wantPage:  1,
			wantPages: 1,
			wantTotal: 2,
		},
		{
			name:      "expired status",
			req:       &entity.DescribeCertificatesRequest{Status: entity.CertificateStatusExpired},
			wantIDs:   []string{"cert-013", "cert-004", "cert-009"},
			wantPage:  1,
			wantPages: 1,
			wantTotal: 3,
		},
		{
			name:      "all status",
			req:       &entity.DescribeCertificatesRequest{Status: "all", Page: 3},
			wantIDs:   []string{"cert-012", "cert-001", "cert-008", "cert-003"},
			wantPage:  3,
			wantPages: 3,
			wantTotal: 14,
		},
		{
			name:      "page beyond range is clamped",
			req:       &entity.DescribeCertificatesRequest{Page: 99, PageSize: 10},
			wantIDs:   []string{"cert-012", "cert-001", "cert-008", "cert-003"},
			wantPage:  2,
			wantPages: 2,
			wantTotal: 14,
		},
		{
			name:      "no match",
			req:       &entity.DescribeCertificatesRequest{Search: "nothing-matches"},
			wantIDs:   []string{},
			wantPage:  1,
			wantPages: 0,
			wantTotal: 0,
		},
	}

	ts := setupTestServices(t)
	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			resp, err := ts.Certificate.DescribeCertificates(bg, tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantIDs, certIDs(resp.Certificates))
			assert.Equal(t, tc.wantPage, resp.Page)
			assert.Equal(t, tc.wantPages, resp.TotalPages)
			assert.Equal(t, tc.wantTotal, resp.TotalCount)
		})
	}
}

func TestCertificateService_TwelveCertificatesFivePerPage(t *testing.T) {
	t.Parallel()

	ts := setupTestServices(t)
	certs := make([]entity.Certificate, 12)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range certs {
		certs[i] = entity.Certificate{
			ID:         fmt.Sprintf("c-%02d", i+1),
			Name:       fmt.Sprintf("cert %d", i+1),
			Status:     entity.CertificateStatusActive,
			ExpiryDate: base.AddDate(0, 0, i),
		}
	}
	payload, err := json.Marshal(certs)
	require.NoError(t, err)
	require.NoError(t, ts.Snapshots.Put(bg, entity.KindCertificates, payload))

	sizes := []int{5, 5, 2}
	for page, want := range sizes {
		resp, err := ts.Certificate.DescribeCertificates(bg, &entity.DescribeCertificatesRequest{Page: page + 1})
		require.NoError(t, err)
		assert.Len(t, resp.Certificates, want)
		assert.Equal(t, 3, resp.TotalPages)
		assert.Equal(t, 12, resp.TotalCount)
	}

	resp, err := ts.Certificate.DescribeCertificates(bg, &entity.DescribeCertificatesRequest{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"c-11", "c-12"}, certIDs(resp.Certificates))
}

func TestCertificateService_StatusIndependentOfExpiry(t *testing.T) {
	t.Parallel()

	ts := setupTestServices(t)
	cert := entity.Certificate{
		ID:         "c-1",
		Status:     entity.CertificateStatusActive,
		ExpiryDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal([]entity.Certificate{cert})
	require.NoError(t, err)
	require.NoError(t, ts.Snapshots.Put(bg, entity.KindCertificates, payload))

	resp, err := ts.Certificate.DescribeCertificates(bg, &entity.DescribeCertificatesRequest{Status: entity.CertificateStatusActive})
	require.NoError(t, err)
	require.Len(t, resp.Certificates, 1)
	assert.Equal(t, entity.CertificateStatusActive, resp.Certificates[0].Status)
}

func TestCertificateService_InvalidSortOrder(t *testing.T) {
	t.Parallel()

	ts := setupTestServices(t)
	_, err := ts.Certificate.DescribeCertificates(bg, &entity.DescribeCertificatesRequest{SortOrder: "sideways"})
	assert.ErrorIs(t, err, apierror.ErrInvalidParameter)
}

func TestCertificateService_LoadFailureAndRetry(t *testing.T) {
	t.Parallel()

	ts := setupTestServices(t)
	require.NoError(t, ts.Snapshots.Put(bg, entity.KindCertificates, []byte("[{")))

	_, err := ts.Certificate.DescribeCertificates(bg, &entity.DescribeCertificatesRequest{})
	assert.ErrorIs(t, err, apierror.ErrLoadFailure)
	state := ts.Certificate.LoadState()
	assert.Equal(t, "error", state.State)
	assert.NotEmpty(t, state.Error)

	require.NoError(t, ts.Snapshots.Delete(bg, entity.KindCertificates))
	resp, err := ts.Certificate.DescribeCertificates(bg, &entity.DescribeCertificatesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 14, resp.TotalCount)
	assert.Equal(t, entity.LoadState{Kind: entity.KindCertificates, State: "ready"}, ts.Certificate.LoadState())
}

func TestCertificateService_DescribeCertificate(t *testing.T) {
	t.Parallel()

	ts := setupTestServices(t)

	resp, err := ts.Certificate.DescribeCertificate(bg, &entity.DescribeCertificateRequest{CertificateID: "cert-001"})
	require.NoError(t, err)
	assert.Equal(t, "api.example.com", resp.Certificate.Domain)

	// 返回值是拷贝，修改不影响内存中的集合
	resp.Certificate.Name = "mutated"
	again, err := ts.Certificate.DescribeCertificate(bg, &entity.DescribeCertificateRequest{CertificateID: "cert-001"})
	require.NoError(t, err)
	assert.Equal(t, "Primary API", again.Certificate.Name)

	_, err = ts.Certificate.DescribeCertificate(bg, &entity.DescribeCertificateRequest{CertificateID: "cert-404"})
	assert.ErrorIs(t, err, apierror.ErrCertificateNotFound)
}

func TestCertificateService_RenameCertificate(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name        string
		req         *entity.RenameCertificateRequest
		wantErr     error
		wantUpdated bool
		wantName    string
	}{
		{
			name:        "trimmed name",
			req:         &entity.RenameCertificateRequest{CertificateID: "cert-002", Name: "  Website  "},
			wantUpdated: true,
			wantName:    "Website",
		},
		{
			name:     "blank name is ignored",
			req:      &entity.RenameCertificateRequest{CertificateID: "cert-002", Name: "   "},
			wantName: "Marketing Site",
		},
		{
			name:    "unknown certificate",
			req:     &entity.RenameCertificateRequest{CertificateID: "cert-404", Name: "x"},
			wantErr: apierror.ErrCertificateNotFound,
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ts := setupTestServices(t)

			resp, err := ts.Certificate.RenameCertificate(bg, tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantUpdated, resp.Updated)
			assert.Equal(t, tc.wantName, resp.Certificate.Name)

			// 重新打开后从快照读取
			reopened := ts.reopen()
			got, err := reopened.Certificate.DescribeCertificate(bg, &entity.DescribeCertificateRequest{CertificateID: tc.req.CertificateID})
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, got.Certificate.Name)
		})
	}
}

func TestCertificateService_RenameKeepsOtherRecords(t *testing.T) {
	t.Parallel()

	ts := setupTestServices(t)
	before, err := ts.Certificate.ListCertificates(bg)
	require.NoError(t, err)

	_, err = ts.Certificate.RenameCertificate(bg, &entity.RenameCertificateRequest{CertificateID: "cert-005", Name: "Gateway"})
	require.NoError(t, err)

	after, err := ts.Certificate.ListCertificates(bg)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		if before[i].ID == "cert-005" {
			assert.Equal(t, "Gateway", after[i].Name)
			before[i].Name = "Gateway"
		}
		assert.Equal(t, before[i], after[i])
	}
}
