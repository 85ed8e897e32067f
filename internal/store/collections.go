package store

import (
	"encoding/json"
	"time"

	"campus_hub_backend/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxNotifications  = 50
	maxRecentSearches = 10
)

// refreshStatistics 从各集合重算派生计数并写回。
// 必须在持有用户锁时调用；统计写入失败的用户进入对账队列。
func (s *EntityStore) refreshStatistics(userID string) {
	stats := getEntity(s, KindStatistics, userID, model.DefaultUserStatistics(userID))
	stats.NotesCount = len(getSlice[model.Note](s, KindNotes, userID))
	stats.MessagesCount = len(getSlice[model.ChatMessage](s, KindMessages, userID))
	stats.FavoriteCoursesCount = len(getSlice[model.Course](s, KindFavorites, userID))
	stats.CompletedCoursesCount = len(getSlice[model.Course](s, KindCompletedCourses, userID))
	stats.UpdatedAt = s.now()
	if putEntity(s, KindStatistics, userID, stats) {
		s.pending.Delete(userID)
		return
	}
	s.pending.Store(userID, struct{}{})
	s.log.Warn("统计写入失败，加入对账队列", zap.String("userId", userID))
}

// ReconcileStatistics 以集合为准重算某用户的全部派生计数
func (s *EntityStore) ReconcileStatistics(userID string) {
	defer s.lockUser(userID)()
	s.refreshStatistics(userID)
}

// ReconcilePending 对账队列兜底，由后台定时任务驱动，返回处理的用户数
func (s *EntityStore) ReconcilePending() int {
	var users []string
	s.pending.Range(func(k, _ interface{}) bool {
		users = append(users, k.(string))
		return true
	})
	for _, userID := range users {
		s.ReconcileStatistics(userID)
	}
	return len(users)
}

// mergeItem 集合条目的浅合并，id 和 userId 不可经补丁修改
func mergeItem[T any](cur T, patch map[string]interface{}, now time.Time) (T, error) {
	raw, err := json.Marshal(cur)
	if err != nil {
		return cur, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return cur, err
	}
	for k, v := range patch {
		if k == "id" || k == "userId" {
			continue
		}
		m[k] = v
	}
	m["updatedAt"] = now.Format(time.RFC3339Nano)
	mergedRaw, err := json.Marshal(m)
	if err != nil {
		return cur, err
	}
	var out T
	if err := json.Unmarshal(mergedRaw, &out); err != nil {
		return cur, err
	}
	return out, nil
}

// ---- 笔记 ----

func (s *EntityStore) GetNotes(userID string) []model.Note {
	return getSlice[model.Note](s, KindNotes, userID)
}

func (s *EntityStore) SaveNotes(userID string, notes []model.Note) {
	defer s.lockUser(userID)()
	if notes == nil {
		notes = []model.Note{}
	}
	putEntity(s, KindNotes, userID, notes)
	s.refreshStatistics(userID)
}

func (s *EntityStore) AddNote(userID string, note model.Note) model.Note {
	defer s.lockUser(userID)()
	notes := getSlice[model.Note](s, KindNotes, userID)

	now := s.now()
	note.ID = uuid.New().String()
	note.UserID = userID
	note.Order = len(notes)
	note.CreatedAt = now
	note.UpdatedAt = now
	if note.Tags == nil {
		note.Tags = []string{}
	}

	notes = append(notes, note)
	putEntity(s, KindNotes, userID, notes)
	s.refreshStatistics(userID)
	return note
}

// UpdateNote 按 id 更新，找不到返回 nil
func (s *EntityStore) UpdateNote(userID, noteID string, patch map[string]interface{}) *model.Note {
	defer s.lockUser(userID)()
	notes := getSlice[model.Note](s, KindNotes, userID)
	for i := range notes {
		if notes[i].ID != noteID {
			continue
		}
		merged, err := mergeItem(notes[i], patch, s.now())
		if err != nil {
			s.log.Warn("笔记补丁不兼容，更新丢弃",
				zap.String("userId", userID), zap.String("noteId", noteID), zap.Error(err))
			return nil
		}
		notes[i] = merged
		putEntity(s, KindNotes, userID, notes)
		return &merged
	}
	return nil
}

func (s *EntityStore) DeleteNote(userID, noteID string) bool {
	defer s.lockUser(userID)()
	notes := getSlice[model.Note](s, KindNotes, userID)
	for i := range notes {
		if notes[i].ID == noteID {
			notes = append(notes[:i], notes[i+1:]...)
			putEntity(s, KindNotes, userID, notes)
			s.refreshStatistics(userID)
			return true
		}
	}
	return false
}

// ---- 聊天消息 ----

func (s *EntityStore) GetMessages(userID string) []model.ChatMessage {
	return getSlice[model.ChatMessage](s, KindMessages, userID)
}

func (s *EntityStore) AddMessage(userID string, msg model.ChatMessage) model.ChatMessage {
	defer s.lockUser(userID)()
	msgs := getSlice[model.ChatMessage](s, KindMessages, userID)

	msg.ID = uuid.New().String()
	msg.UserID = userID
	msg.Timestamp = s.now()
	if msg.Metadata == nil {
		msg.Metadata = map[string]string{}
	}

	msgs = append(msgs, msg)
	putEntity(s, KindMessages, userID, msgs)
	s.refreshStatistics(userID)
	return msg
}

func (s *EntityStore) ClearMessages(userID string) {
	defer s.lockUser(userID)()
	putEntity(s, KindMessages, userID, []model.ChatMessage{})
	s.refreshStatistics(userID)
}

// ---- 通知 ----

func (s *EntityStore) GetNotifications(userID string) []model.NotificationItem {
	return getSlice[model.NotificationItem](s, KindNotifications, userID)
}

// AddNotification 最新在前，只保留最近 50 条
func (s *EntityStore) AddNotification(userID string, n model.NotificationItem) model.NotificationItem {
	defer s.lockUser(userID)()
	items := getSlice[model.NotificationItem](s, KindNotifications, userID)

	n.ID = uuid.New().String()
	n.UserID = userID
	n.Read = false
	n.Timestamp = s.now()

	items = append([]model.NotificationItem{n}, items...)
	if len(items) > maxNotifications {
		items = items[:maxNotifications]
	}
	putEntity(s, KindNotifications, userID, items)
	return n
}

// MarkNotificationRead 按 id 标记已读，找不到返回 false
func (s *EntityStore) MarkNotificationRead(userID, notificationID string) bool {
	defer s.lockUser(userID)()
	items := getSlice[model.NotificationItem](s, KindNotifications, userID)
	for i := range items {
		if items[i].ID == notificationID {
			items[i].Read = true
			putEntity(s, KindNotifications, userID, items)
			return true
		}
	}
	return false
}

// ---- 收藏课程 ----

func (s *EntityStore) GetFavorites(userID string) []model.Course {
	return getSlice[model.Course](s, KindFavorites, userID)
}

func (s *EntityStore) SaveFavorites(userID string, favorites []model.Course) {
	defer s.lockUser(userID)()
	if favorites == nil {
		favorites = []model.Course{}
	}
	for i := range favorites {
		favorites[i].UserID = userID
	}
	putEntity(s, KindFavorites, userID, favorites)
	s.refreshStatistics(userID)
}

// AddToFavorites 已收藏的课程不会重复加入
func (s *EntityStore) AddToFavorites(userID string, course model.Course) {
	defer s.lockUser(userID)()
	favorites := getSlice[model.Course](s, KindFavorites, userID)
	for i := range favorites {
		if favorites[i].ID == course.ID {
			return
		}
	}
	course.UserID = userID
	favorites = append(favorites, course)
	putEntity(s, KindFavorites, userID, favorites)
	s.refreshStatistics(userID)
}

func (s *EntityStore) RemoveFromFavorites(userID, courseID string) bool {
	defer s.lockUser(userID)()
	favorites := getSlice[model.Course](s, KindFavorites, userID)
	for i := range favorites {
		if favorites[i].ID == courseID {
			favorites = append(favorites[:i], favorites[i+1:]...)
			putEntity(s, KindFavorites, userID, favorites)
			s.refreshStatistics(userID)
			return true
		}
	}
	return false
}

// ---- 最近搜索 ----

func (s *EntityStore) GetRecentSearches(userID string) []string {
	return getSlice[string](s, KindRecentSearches, userID)
}

// AddRecentSearch 精确去重、最新在前、最多 10 条
func (s *EntityStore) AddRecentSearch(userID, term string) []string {
	defer s.lockUser(userID)()
	searches := getSlice[string](s, KindRecentSearches, userID)

	next := make([]string, 0, len(searches)+1)
	next = append(next, term)
	for _, t := range searches {
		if t != term {
			next = append(next, t)
		}
	}
	if len(next) > maxRecentSearches {
		next = next[:maxRecentSearches]
	}
	putEntity(s, KindRecentSearches, userID, next)
	return next
}

func (s *EntityStore) ClearRecentSearches(userID string) {
	defer s.lockUser(userID)()
	putEntity(s, KindRecentSearches, userID, []string{})
}

// ---- 课程集合 ----

func (s *EntityStore) GetCourses(userID string) []model.Course {
	return getSlice[model.Course](s, KindCourses, userID)
}

func (s *EntityStore) SaveCourses(userID string, courses []model.Course) {
	defer s.lockUser(userID)()
	putEntity(s, KindCourses, userID, stampCourses(userID, courses))
}

func (s *EntityStore) GetCompletedCourses(userID string) []model.Course {
	return getSlice[model.Course](s, KindCompletedCourses, userID)
}

func (s *EntityStore) SaveCompletedCourses(userID string, courses []model.Course) {
	defer s.lockUser(userID)()
	putEntity(s, KindCompletedCourses, userID, stampCourses(userID, courses))
	s.refreshStatistics(userID)
}

func (s *EntityStore) GetTimetableCourses(userID string) []model.Course {
	return getSlice[model.Course](s, KindTimetableCourses, userID)
}

func (s *EntityStore) SaveTimetableCourses(userID string, courses []model.Course) {
	defer s.lockUser(userID)()
	putEntity(s, KindTimetableCourses, userID, stampCourses(userID, courses))
}

func (s *EntityStore) GetGraduationRequirements(userID string) []model.GraduationRequirement {
	return getSlice[model.GraduationRequirement](s, KindGraduationRequirements, userID)
}

func (s *EntityStore) SaveGraduationRequirements(userID string, reqs []model.GraduationRequirement) {
	defer s.lockUser(userID)()
	if reqs == nil {
		reqs = []model.GraduationRequirement{}
	}
	for i := range reqs {
		reqs[i].UserID = userID
	}
	putEntity(s, KindGraduationRequirements, userID, reqs)
}

func stampCourses(userID string, courses []model.Course) []model.Course {
	if courses == nil {
		return []model.Course{}
	}
	for i := range courses {
		courses[i].UserID = userID
	}
	return courses
}
