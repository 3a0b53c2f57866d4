package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/pkg/ginx"
	"github.com/rs/zerolog"
)

// CertificateServiceInterface 定义证书服务的接口
type CertificateServiceInterface interface {
	DescribeCertificates(ctx context.Context, req *entity.DescribeCertificatesRequest) (*entity.DescribeCertificatesResponse, error)
	DescribeCertificate(ctx context.Context, req *entity.DescribeCertificateRequest) (*entity.DescribeCertificateResponse, error)
	RenameCertificate(ctx context.Context, req *entity.RenameCertificateRequest) (*entity.RenameCertificateResponse, error)
}

type Certificate struct {
	certificateService CertificateServiceInterface
}

func NewCertificate(certificateService CertificateServiceInterface) *Certificate {
	return &Certificate{
		certificateService: certificateService,
	}
}

func (c *Certificate) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/describe-certificates", ginx.Adapt5(c.DescribeCertificates))
	router.POST("/describe-certificate", ginx.Adapt5(c.DescribeCertificate))
	router.POST("/rename-certificate", ginx.Adapt5(c.RenameCertificate))
}

func (c *Certificate) DescribeCertificates(ctx *gin.Context, req *entity.DescribeCertificatesRequest) (*entity.DescribeCertificatesResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Interface("request", req).
		Msg("DescribeCertificates called")

	resp, err := c.certificateService.DescribeCertificates(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to describe certificates")
		return nil, err
	}
	return resp, nil
}

func (c *Certificate) DescribeCertificate(ctx *gin.Context, req *entity.DescribeCertificateRequest) (*entity.DescribeCertificateResponse, error) {
	resp, err := c.certificateService.DescribeCertificate(ctx, req)
	if err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("certificate_id", req.CertificateID).
			Msg("Failed to describe certificate")
		return nil, err
	}
	return resp, nil
}

func (c *Certificate) RenameCertificate(ctx *gin.Context, req *entity.RenameCertificateRequest) (*entity.RenameCertificateResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("certificate_id", req.CertificateID).
		Str("name", req.Name).
		Msg("RenameCertificate called")

	resp, err := c.certificateService.RenameCertificate(ctx, req)
	if err != nil {
		logger.Error().
			Err(err).
			Str("certificate_id", req.CertificateID).
			Msg("Failed to rename certificate")
		return nil, err
	}

	logger.Info().
		Str("certificate_id", req.CertificateID).
		Bool("updated", resp.Updated).
		Msg("Certificate rename handled")
	return resp, nil
}
