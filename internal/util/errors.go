package util

import "errors"

var (
	ErrNoteNotFound         = errors.New("笔记不存在")
	ErrNotificationNotFound = errors.New("通知不存在")
	ErrFavoriteNotFound     = errors.New("收藏不存在")
	ErrImportFailed         = errors.New("导入文档解析失败")
	ErrBackupNotConfigured  = errors.New("backup storage not configured")
)
