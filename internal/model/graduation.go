package model

import (
	"time"
)

// GraduationInfo 毕业学分汇总（由已修课程推导，但独立存储，调用方负责刷新）
type GraduationInfo struct {
	UserID           string    `json:"userId"`
	TotalCredits     int       `json:"totalCredits"`
	MajorRequired    int       `json:"majorRequired"`
	MajorElective    int       `json:"majorElective"`
	GeneralRequired  int       `json:"generalRequired"`
	GeneralElective  int       `json:"generalElective"`
	Progress         float64   `json:"progress"` // 0-100
	RemainingCredits int       `json:"remainingCredits"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func DefaultGraduationInfo(userID string) GraduationInfo {
	return GraduationInfo{
		UserID:           userID,
		RemainingCredits: 130,
		UpdatedAt:        time.Now(),
	}
}

// GraduationRequirement 毕业要求条目
type GraduationRequirement struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	Category        string `json:"category"` // majorRequired / majorElective / generalRequired / generalElective
	Name            string `json:"name"`
	RequiredCredits int    `json:"requiredCredits"`
	EarnedCredits   int    `json:"earnedCredits"`
	Satisfied       bool   `json:"satisfied"`
}
