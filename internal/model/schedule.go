package model

import (
	"time"
)

// TimetableEntry 课程表条目
type TimetableEntry struct {
	CourseID    string `json:"courseId"`
	CourseName  string `json:"courseName"`
	DayOfWeek   int    `json:"dayOfWeek"` // 1=周一
	StartPeriod int    `json:"startPeriod"`
	EndPeriod   int    `json:"endPeriod"`
	Room        string `json:"room"`
	Professor   string `json:"professor"`
}

// CustomEvent 用户自定义日程
type CustomEvent struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`
	Color     string `json:"color"`
}

// Schedule 当前学期课程表（每个用户一条）
type Schedule struct {
	UserID          string           `json:"userId"`
	CurrentSemester string           `json:"currentSemester"` // 如 "2026-1"
	Entries         []TimetableEntry `json:"entries"`
	CustomEvents    []CustomEvent    `json:"customEvents"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func DefaultSchedule(userID string) Schedule {
	return Schedule{
		UserID:       userID,
		Entries:      []TimetableEntry{},
		CustomEvents: []CustomEvent{},
		UpdatedAt:    time.Now(),
	}
}
