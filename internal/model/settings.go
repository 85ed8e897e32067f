package model

import (
	"time"
)

// UserSettings 偏好设置（每个用户一条）
type UserSettings struct {
	UserID        string    `json:"userId"`
	Theme         string    `json:"theme"` // light / dark / system
	Notifications bool      `json:"notifications"`
	AutoSave      bool      `json:"autoSave"`
	Language      string    `json:"language"`
	Timezone      string    `json:"timezone"`
	HighContrast  bool      `json:"highContrast"`
	ReduceMotion  bool      `json:"reduceMotion"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func DefaultUserSettings(userID string) UserSettings {
	return UserSettings{
		UserID:        userID,
		Theme:         "light",
		Notifications: true,
		AutoSave:      true,
		Language:      "ko",
		Timezone:      "Asia/Seoul",
		UpdatedAt:     time.Now(),
	}
}
