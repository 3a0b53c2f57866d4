package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/pkg/ginx"
)

// LoadStateServiceInterface 定义加载状态查询的接口
type LoadStateServiceInterface interface {
	DescribeLoadStates(ctx context.Context) (*entity.DescribeLoadStatesResponse, error)
}

type LoadState struct {
	loadStateService LoadStateServiceInterface
}

func NewLoadState(loadStateService LoadStateServiceInterface) *LoadState {
	return &LoadState{
		loadStateService: loadStateService,
	}
}

func (l *LoadState) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/describe-load-states", ginx.Adapt3(l.DescribeLoadStates))
}

func (l *LoadState) DescribeLoadStates(ctx *gin.Context) (*entity.DescribeLoadStatesResponse, error) {
	return l.loadStateService.DescribeLoadStates(ctx)
}
