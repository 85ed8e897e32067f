package model

// Course 课程条目，用于 courses / completedCourses / timetableCourses / favorites 集合
type Course struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Credits     int    `json:"credits"`
	Category    string `json:"category"`
	Professor   string `json:"professor"`
	Semester    string `json:"semester"` // 如 "2026-1"
	DayOfWeek   int    `json:"dayOfWeek"`
	StartPeriod int    `json:"startPeriod"`
	EndPeriod   int    `json:"endPeriod"`
	Room        string `json:"room"`
	Grade       string `json:"grade"` // 成绩，仅已修课程使用
}
