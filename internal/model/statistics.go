package model

import (
	"time"
)

// UserStatistics 派生统计（每个用户一条）
// 计数字段与对应集合的长度保持一致，由存储层在集合变更时刷新
type UserStatistics struct {
	UserID                string     `json:"userId"`
	LoginCount            int        `json:"loginCount"`
	LastLoginDate         *time.Time `json:"lastLoginDate"`
	StudyTimeMinutes      int        `json:"studyTimeMinutes"`
	CompletedCoursesCount int        `json:"completedCoursesCount"`
	NotesCount            int        `json:"notesCount"`
	MessagesCount         int        `json:"messagesCount"`
	FavoriteCoursesCount  int        `json:"favoriteCoursesCount"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func DefaultUserStatistics(userID string) UserStatistics {
	return UserStatistics{
		UserID:    userID,
		UpdatedAt: time.Now(),
	}
}
