package store

// Kind 实体种类，存储键的命名空间前缀
type Kind string

const (
	KindProfile                Kind = "profile"
	KindGraduationInfo         Kind = "graduationInfo"
	KindCurriculum             Kind = "curriculum"
	KindSchedule               Kind = "schedule"
	KindOnboarding             Kind = "onboarding"
	KindSettings               Kind = "settings"
	KindStatistics             Kind = "statistics"
	KindNotes                  Kind = "notes"
	KindMessages               Kind = "messages"
	KindNotifications          Kind = "notifications"
	KindCourses                Kind = "courses"
	KindCompletedCourses       Kind = "completedCourses"
	KindTimetableCourses       Kind = "timetableCourses"
	KindGraduationRequirements Kind = "graduationRequirements"
	KindFavorites              Kind = "favorites"
	KindRecentSearches         Kind = "recentSearches"
)

// AllKinds 全量实体种类，整用户删除/导出按此遍历
var AllKinds = []Kind{
	KindProfile,
	KindGraduationInfo,
	KindCurriculum,
	KindSchedule,
	KindOnboarding,
	KindSettings,
	KindStatistics,
	KindNotes,
	KindMessages,
	KindNotifications,
	KindCourses,
	KindCompletedCourses,
	KindTimetableCourses,
	KindGraduationRequirements,
	KindFavorites,
	KindRecentSearches,
}

// Key 组合存储键。键格式是对外契约，不能改
func Key(kind Kind, userID string) string {
	return string(kind) + ":" + userID
}
