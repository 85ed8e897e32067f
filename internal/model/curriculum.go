package model

import (
	"time"
)

// Subject 培养方案中的科目
type Subject struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
	Category string `json:"category"`
	Semester int    `json:"semester"` // 建议修读学期
}

// Curriculum 培养方案（每个用户一条）
type Curriculum struct {
	UserID            string    `json:"userId"`
	Type              string    `json:"type"` // 培养方案年份，如 "2023"
	Subjects          []Subject `json:"subjects"`
	CompletedSubjects []string  `json:"completedSubjects"` // 已修科目ID
	CurrentSemester   int       `json:"currentSemester"`
	Track             string    `json:"track"` // 方向/轨道
	UpdatedAt         time.Time `json:"updatedAt"`
}

func DefaultCurriculum(userID string) Curriculum {
	return Curriculum{
		UserID:            userID,
		Subjects:          []Subject{},
		CompletedSubjects: []string{},
		CurrentSemester:   1,
		UpdatedAt:         time.Now(),
	}
}
