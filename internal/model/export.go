package model

// UserDataExport 整用户导出文档，顶层字段名与实体种类一一对应
type UserDataExport struct {
	Profile                UserProfile             `json:"profile"`
	GraduationInfo         GraduationInfo          `json:"graduationInfo"`
	Curriculum             Curriculum              `json:"curriculum"`
	Schedule               Schedule                `json:"schedule"`
	Onboarding             Onboarding              `json:"onboarding"`
	Settings               UserSettings            `json:"settings"`
	Statistics             UserStatistics          `json:"statistics"`
	Notes                  []Note                  `json:"notes"`
	Messages               []ChatMessage           `json:"messages"`
	Notifications          []NotificationItem      `json:"notifications"`
	Courses                []Course                `json:"courses"`
	CompletedCourses       []Course                `json:"completedCourses"`
	TimetableCourses       []Course                `json:"timetableCourses"`
	GraduationRequirements []GraduationRequirement `json:"graduationRequirements"`
	Favorites              []Course                `json:"favorites"`
	RecentSearches         []string                `json:"recentSearches"`
}
