package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"github.com/jimyag/assetdash/internal/assetdash/repository"
	"github.com/stretchr/testify/require"
)

// TestServices 包含测试所需的所有服务和依赖
type TestServices struct {
	Repo      *repository.Repository
	Snapshots repository.SnapshotRepository
	*Services
}

// setupTestServices 为每个测试用例创建独立的数据库和服务实例，加载延迟为 0
func setupTestServices(t *testing.T) *TestServices {
	t.Helper()

	repo, err := repository.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return &TestServices{
		Repo:      repo,
		Snapshots: repository.NewSnapshotRepository(repo.DB()),
		Services:  New(repo, Options{PageSize: 5, RevealStep: 20}),
	}
}

// reopen 基于同一个数据库重新创建服务，模拟进程重启
func (ts *TestServices) reopen() *Services {
	return New(ts.Repo, Options{PageSize: 5, RevealStep: 20})
}

func ids[T any](items []T, idOf func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, idOf(item))
	}
	return out
}

func certIDs(certs []entity.Certificate) []string {
	return ids(certs, func(c entity.Certificate) string { return c.ID })
}

var bg = context.Background()
