package store

import (
	"encoding/json"

	"campus_hub_backend/internal/model"

	"go.uber.org/zap"
)

// InitializeUserData 为用户写入全部实体默认值与空集合。幂等：重复调用即覆盖。
func (s *EntityStore) InitializeUserData(userID string) {
	defer s.lockUser(userID)()

	putEntity(s, KindProfile, userID, model.DefaultUserProfile(userID))
	putEntity(s, KindGraduationInfo, userID, model.DefaultGraduationInfo(userID))
	putEntity(s, KindCurriculum, userID, model.DefaultCurriculum(userID))
	putEntity(s, KindSchedule, userID, model.DefaultSchedule(userID))
	putEntity(s, KindOnboarding, userID, model.DefaultOnboarding(userID))
	putEntity(s, KindSettings, userID, model.DefaultUserSettings(userID))
	putEntity(s, KindStatistics, userID, model.DefaultUserStatistics(userID))
	putEntity(s, KindNotes, userID, []model.Note{})
	putEntity(s, KindMessages, userID, []model.ChatMessage{})
	putEntity(s, KindNotifications, userID, []model.NotificationItem{})
	putEntity(s, KindCourses, userID, []model.Course{})
	putEntity(s, KindCompletedCourses, userID, []model.Course{})
	putEntity(s, KindTimetableCourses, userID, []model.Course{})
	putEntity(s, KindGraduationRequirements, userID, []model.GraduationRequirement{})
	putEntity(s, KindFavorites, userID, []model.Course{})
	putEntity(s, KindRecentSearches, userID, []string{})

	s.log.Info("用户数据已初始化", zap.String("userId", userID))
}

// DeleteUserData 删除该用户的全部键，不触碰其他用户的命名空间
func (s *EntityStore) DeleteUserData(userID string) {
	defer s.lockUser(userID)()
	for _, kind := range AllKinds {
		s.removeRaw(kind, userID)
	}
	s.pending.Delete(userID)
	s.log.Info("用户数据已删除", zap.String("userId", userID))
}

// ExportUserData 读取用户全部实体与集合，汇总为单个 JSON 文档
func (s *EntityStore) ExportUserData(userID string) []byte {
	defer s.lockUser(userID)()

	doc := model.UserDataExport{
		Profile:                getEntity(s, KindProfile, userID, model.DefaultUserProfile(userID)),
		GraduationInfo:         getEntity(s, KindGraduationInfo, userID, model.DefaultGraduationInfo(userID)),
		Curriculum:             getEntity(s, KindCurriculum, userID, model.DefaultCurriculum(userID)),
		Schedule:               getEntity(s, KindSchedule, userID, model.DefaultSchedule(userID)),
		Onboarding:             getEntity(s, KindOnboarding, userID, model.DefaultOnboarding(userID)),
		Settings:               getEntity(s, KindSettings, userID, model.DefaultUserSettings(userID)),
		Statistics:             getEntity(s, KindStatistics, userID, model.DefaultUserStatistics(userID)),
		Notes:                  getSlice[model.Note](s, KindNotes, userID),
		Messages:               getSlice[model.ChatMessage](s, KindMessages, userID),
		Notifications:          getSlice[model.NotificationItem](s, KindNotifications, userID),
		Courses:                getSlice[model.Course](s, KindCourses, userID),
		CompletedCourses:       getSlice[model.Course](s, KindCompletedCourses, userID),
		TimetableCourses:       getSlice[model.Course](s, KindTimetableCourses, userID),
		GraduationRequirements: getSlice[model.GraduationRequirement](s, KindGraduationRequirements, userID),
		Favorites:              getSlice[model.Course](s, KindFavorites, userID),
		RecentSearches:         getSlice[string](s, KindRecentSearches, userID),
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		s.log.Error("导出序列化失败", zap.String("userId", userID), zap.Error(err))
		return nil
	}
	return raw
}

// importDoc 指针字段区分"字段缺失"和"字段为空值"，缺失的字段不写入
type importDoc struct {
	Profile                *model.UserProfile             `json:"profile"`
	GraduationInfo         *model.GraduationInfo          `json:"graduationInfo"`
	Curriculum             *model.Curriculum              `json:"curriculum"`
	Schedule               *model.Schedule                `json:"schedule"`
	Onboarding             *model.Onboarding              `json:"onboarding"`
	Settings               *model.UserSettings            `json:"settings"`
	Statistics             *model.UserStatistics          `json:"statistics"`
	Notes                  *[]model.Note                  `json:"notes"`
	Messages               *[]model.ChatMessage           `json:"messages"`
	Notifications          *[]model.NotificationItem      `json:"notifications"`
	Courses                *[]model.Course                `json:"courses"`
	CompletedCourses       *[]model.Course                `json:"completedCourses"`
	TimetableCourses       *[]model.Course                `json:"timetableCourses"`
	GraduationRequirements *[]model.GraduationRequirement `json:"graduationRequirements"`
	Favorites              *[]model.Course                `json:"favorites"`
	RecentSearches         *[]string                      `json:"recentSearches"`
}

// ImportUserData 全有或全无：先完整解析整个文档，解析失败不落任何写入。
// 每条记录的 userId 强制盖成目标用户，防止外来导出串号。未识别字段忽略。
func (s *EntityStore) ImportUserData(userID string, blob []byte) bool {
	var doc importDoc
	if err := json.Unmarshal(blob, &doc); err != nil {
		s.log.Warn("导入文档解析失败，未应用任何写入",
			zap.String("userId", userID), zap.Error(err))
		return false
	}

	defer s.lockUser(userID)()

	if doc.Profile != nil {
		doc.Profile.UserID = userID
		putEntity(s, KindProfile, userID, *doc.Profile)
	}
	if doc.GraduationInfo != nil {
		doc.GraduationInfo.UserID = userID
		putEntity(s, KindGraduationInfo, userID, *doc.GraduationInfo)
	}
	if doc.Curriculum != nil {
		doc.Curriculum.UserID = userID
		putEntity(s, KindCurriculum, userID, *doc.Curriculum)
	}
	if doc.Schedule != nil {
		doc.Schedule.UserID = userID
		putEntity(s, KindSchedule, userID, *doc.Schedule)
	}
	if doc.Onboarding != nil {
		doc.Onboarding.UserID = userID
		putEntity(s, KindOnboarding, userID, *doc.Onboarding)
	}
	if doc.Settings != nil {
		doc.Settings.UserID = userID
		putEntity(s, KindSettings, userID, *doc.Settings)
	}
	if doc.Statistics != nil {
		doc.Statistics.UserID = userID
		putEntity(s, KindStatistics, userID, *doc.Statistics)
	}
	if doc.Notes != nil {
		notes := *doc.Notes
		for i := range notes {
			notes[i].UserID = userID
		}
		putEntity(s, KindNotes, userID, notes)
	}
	if doc.Messages != nil {
		msgs := *doc.Messages
		for i := range msgs {
			msgs[i].UserID = userID
		}
		putEntity(s, KindMessages, userID, msgs)
	}
	if doc.Notifications != nil {
		items := *doc.Notifications
		for i := range items {
			items[i].UserID = userID
		}
		putEntity(s, KindNotifications, userID, items)
	}
	if doc.Courses != nil {
		putEntity(s, KindCourses, userID, stampCourses(userID, *doc.Courses))
	}
	if doc.CompletedCourses != nil {
		putEntity(s, KindCompletedCourses, userID, stampCourses(userID, *doc.CompletedCourses))
	}
	if doc.TimetableCourses != nil {
		putEntity(s, KindTimetableCourses, userID, stampCourses(userID, *doc.TimetableCourses))
	}
	if doc.GraduationRequirements != nil {
		reqs := *doc.GraduationRequirements
		for i := range reqs {
			reqs[i].UserID = userID
		}
		putEntity(s, KindGraduationRequirements, userID, reqs)
	}
	if doc.Favorites != nil {
		putEntity(s, KindFavorites, userID, stampCourses(userID, *doc.Favorites))
	}
	if doc.RecentSearches != nil {
		putEntity(s, KindRecentSearches, userID, *doc.RecentSearches)
	}

	// 导入后以集合为准修复派生计数
	s.refreshStatistics(userID)

	s.log.Info("用户数据导入完成", zap.String("userId", userID))
	return true
}
