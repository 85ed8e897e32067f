package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"campus_hub_backend/internal/config"
	"campus_hub_backend/internal/store"
	"campus_hub_backend/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider 定义通用存储接口
type StorageProvider interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, filename string) error
	GetURL(filename string) string
}

// LocalStorageProvider 本地存储实现
type LocalStorageProvider struct {
	Config *config.BackupConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, filename)
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	_, err = io.Copy(out, reader)
	if err != nil {
		return "", err
	}

	return p.GetURL(filename), nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, filename string) error {
	dst := filepath.Join(p.Config.LocalPath, filename)
	return os.Remove(dst)
}

func (p *LocalStorageProvider) GetURL(filename string) string {
	return "/backups/" + filename
}

// MinioStorageProvider MinIO存储实现
type MinioStorageProvider struct {
	Config *config.BackupConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.BackupConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, filename string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, filename, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) GetURL(filename string) string {
	return fmt.Sprintf("http://%s/%s/%s", p.Config.MinioEndpoint, p.Config.MinioBucket, filename)
}

// NewStorageProvider 按配置选择备份存储实现
func NewStorageProvider(cfg *config.BackupConfig) (StorageProvider, error) {
	switch cfg.Type {
	case "minio":
		return NewMinioStorageProvider(cfg)
	case "local":
		return &LocalStorageProvider{Config: cfg}, nil
	default:
		return nil, nil
	}
}

// BackupService 整用户导出/导入，导出文档可选推送到备份存储
type BackupService struct {
	store    *store.EntityStore
	provider StorageProvider
}

func NewBackupService(s *store.EntityStore, provider StorageProvider) *BackupService {
	return &BackupService{store: s, provider: provider}
}

func (s *BackupService) Export(userID string) []byte {
	return s.store.ExportUserData(userID)
}

// ExportToStorage 导出并上传备份，返回备份地址
func (s *BackupService) ExportToStorage(ctx context.Context, userID string) (string, error) {
	if s.provider == nil {
		return "", util.ErrBackupNotConfigured
	}
	blob := s.store.ExportUserData(userID)
	filename := fmt.Sprintf("%s/export-%s.json", userID, time.Now().Format("20060102-150405"))
	return s.provider.Upload(ctx, filename, bytes.NewReader(blob), int64(len(blob)), "application/json")
}

func (s *BackupService) Import(userID string, blob []byte) error {
	if !s.store.ImportUserData(userID, blob) {
		return util.ErrImportFailed
	}
	return nil
}
