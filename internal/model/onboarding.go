package model

import (
	"time"
)

// Onboarding 新手引导进度（每个用户一条）
type Onboarding struct {
	UserID         string     `json:"userId"`
	Completed      bool       `json:"completed"`
	CurrentStep    int        `json:"currentStep"`
	CompletedSteps []int      `json:"completedSteps"`
	Interests      []string   `json:"interests"`
	SetupDate      *time.Time `json:"setupDate"` // 完成设置的时间，nil 表示未完成
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func DefaultOnboarding(userID string) Onboarding {
	return Onboarding{
		UserID:         userID,
		CompletedSteps: []int{},
		Interests:      []string{},
		UpdatedAt:      time.Now(),
	}
}
