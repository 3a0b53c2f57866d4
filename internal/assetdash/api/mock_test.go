package api

import (
	"context"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/stretchr/testify/mock"
)

// MockCertificateService 是 CertificateService 的 mock 实现
type MockCertificateService struct {
	mock.Mock
}

func (m *MockCertificateService) DescribeCertificates(ctx context.Context, req *entity.DescribeCertificatesRequest) (*entity.DescribeCertificatesResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DescribeCertificatesResponse), args.Error(1)
}

func (m *MockCertificateService) DescribeCertificate(ctx context.Context, req *entity.DescribeCertificateRequest) (*entity.DescribeCertificateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DescribeCertificateResponse), args.Error(1)
}

func (m *MockCertificateService) RenameCertificate(ctx context.Context, req *entity.RenameCertificateRequest) (*entity.RenameCertificateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RenameCertificateResponse), args.Error(1)
}

// MockSSHKeyService 是 SSHKeyService 的 mock 实现
type MockSSHKeyService struct {
	mock.Mock
}

func (m *MockSSHKeyService) DescribeSSHKeys(ctx context.Context, req *entity.DescribeSSHKeysRequest) (*entity.DescribeSSHKeysResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DescribeSSHKeysResponse), args.Error(1)
}

func (m *MockSSHKeyService) DescribeSSHKey(ctx context.Context, req *entity.DescribeSSHKeyRequest) (*entity.DescribeSSHKeyResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DescribeSSHKeyResponse), args.Error(1)
}

// MockCodeSigningKeyService 是 CodeSigningKeyService 的 mock 实现
type MockCodeSigningKeyService struct {
	mock.Mock
}

func (m *MockCodeSigningKeyService) DescribeCodeSigningKeys(ctx context.Context, req *entity.DescribeCodeSigningKeysRequest) (*entity.DescribeCodeSigningKeysResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DescribeCodeSigningKeysResponse), args.Error(1)
}

func (m *MockCodeSigningKeyService) DescribeCodeSigningKey(ctx context.Context, req *entity.DescribeCodeSigningKeyRequest) (*entity.DescribeCodeSigningKeyResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DescribeCodeSigningKeyResponse), args.Error(1)
}

func (m *MockCodeSigningKeyService) GetViewMode(ctx context.Context) (*entity.ViewModeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ViewModeResponse), args.Error(1)
}

func (m *MockCodeSigningKeyService) SetViewMode(ctx context.Context, req *entity.SetViewModeRequest) (*entity.ViewModeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ViewModeResponse), args.Error(1)
}

// MockAuditLogService 是 AuditLogService 的 mock 实现
type MockAuditLogService struct {
	mock.Mock
}

func (m *MockAuditLogService) DescribeAuditLogs(ctx context.Context, req *entity.DescribeAuditLogsRequest) (*entity.DescribeAuditLogsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DescribeAuditLogsResponse), args.Error(1)
}

func (m *MockAuditLogService) ListAuditActionTypes(ctx context.Context) (*entity.ListAuditActionTypesResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ListAuditActionTypesResponse), args.Error(1)
}
