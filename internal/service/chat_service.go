package service

import (
	"campus_hub_backend/internal/model"
	"campus_hub_backend/internal/store"
	"campus_hub_backend/internal/util"
)

// ChatService 聊天消息与通知
type ChatService struct {
	store *store.EntityStore
}

func NewChatService(s *store.EntityStore) *ChatService {
	return &ChatService{store: s}
}

func (s *ChatService) ListMessages(userID string) []model.ChatMessage {
	return s.store.GetMessages(userID)
}

func (s *ChatService) SendMessage(userID string, msg model.ChatMessage) model.ChatMessage {
	return s.store.AddMessage(userID, msg)
}

func (s *ChatService) ClearMessages(userID string) {
	s.store.ClearMessages(userID)
}

func (s *ChatService) ListNotifications(userID string) []model.NotificationItem {
	return s.store.GetNotifications(userID)
}

func (s *ChatService) Notify(userID string, n model.NotificationItem) model.NotificationItem {
	return s.store.AddNotification(userID, n)
}

func (s *ChatService) MarkNotificationRead(userID, notificationID string) error {
	if !s.store.MarkNotificationRead(userID, notificationID) {
		return util.ErrNotificationNotFound
	}
	return nil
}
