package model

import (
	"time"
)

// UserProfile 用户档案（每个用户一条）
type UserProfile struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	StudentID string    `json:"studentId"`
	Major     string    `json:"major"`
	Grade     int       `json:"grade"`    // 年级 1-4
	Semester  int       `json:"semester"` // 当前学期 1-2
	Phone     string    `json:"phone"`
	Nickname  string    `json:"nickname"`
	Interests []string  `json:"interests"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultUserProfile 返回字段齐全的空档案
func DefaultUserProfile(userID string) UserProfile {
	now := time.Now()
	return UserProfile{
		UserID:    userID,
		Grade:     1,
		Semester:  1,
		Interests: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
