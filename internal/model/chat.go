package model

import (
	"time"
)

// ChatMessage 聊天消息记录（每个用户 1:N）
type ChatMessage struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Sender    string            `json:"sender"` // user / assistant / system
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata"`
	Timestamp time.Time         `json:"timestamp"`
}

// NotificationItem 通知条目（每个用户 1:N，最新在前，最多保留 50 条）
type NotificationItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	ActionURL string    `json:"actionUrl"`
	Timestamp time.Time `json:"timestamp"`
}
