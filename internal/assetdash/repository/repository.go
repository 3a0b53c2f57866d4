// Package repository 基于 SQLite 保存各集合的快照
package repository

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jimyag/assetdash/internal/assetdash/repository/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // 纯 Go SQLite 驱动，不需要 CGO
)

// Repository 持有快照数据库连接
type Repository struct {
	db *gorm.DB
}

// dsn 打开 WAL 并设置忙等待，HTTP 与终端界面可以同时打开同一个数据库
func dsn(dbPath string) string {
	return "file:" + dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// New 打开（必要时创建）快照数据库并迁移表结构
func New(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// 快照写入是整体替换，单连接即可避免 SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm database: %w", err)
	}

	if err := db.AutoMigrate(&model.Snapshot{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate snapshots: %w", err)
	}
	return &Repository{db: db}, nil
}

// DB 返回 GORM 实例
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Close 关闭底层连接，可重复调用
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
