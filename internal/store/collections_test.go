package store

import (
	"fmt"
	"testing"

	"campus_hub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAddNoteAssignsIdentity(t *testing.T) {
	s, _ := newTestStore()

	note := s.AddNote("u1", model.Note{Title: "이산수학 정리", Content: "귀납법"})
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "u1", note.UserID)
	assert.Equal(t, 0, note.Order)
	assert.False(t, note.CreatedAt.IsZero())

	second := s.AddNote("u1", model.Note{Title: "두 번째"})
	assert.Equal(t, 1, second.Order)
	assert.NotEqual(t, note.ID, second.ID)

	notes := s.GetNotes("u1")
	require.Len(t, notes, 2)
	assert.Equal(t, "이산수학 정리", notes[0].Title)
}

func TestUpdateNote(t *testing.T) {
	s, _ := newTestStore()

	note := s.AddNote("u1", model.Note{Title: "초안", Content: "본문"})
	updated := s.UpdateNote("u1", note.ID, map[string]interface{}{
		"title":  "수정본",
		"pinned": true,
		"id":     "forged",
		"userId": "intruder",
	})
	require.NotNil(t, updated)
	assert.Equal(t, "수정본", updated.Title)
	assert.Equal(t, "본문", updated.Content)
	assert.True(t, updated.Pinned)
	// id 和 userId 不可经补丁修改
	assert.Equal(t, note.ID, updated.ID)
	assert.Equal(t, "u1", updated.UserID)

	assert.Nil(t, s.UpdateNote("u1", "missing", map[string]interface{}{"title": "x"}))
}

func TestDeleteNote(t *testing.T) {
	s, _ := newTestStore()

	note := s.AddNote("u1", model.Note{Title: "삭제 대상"})
	keep := s.AddNote("u1", model.Note{Title: "보존"})

	assert.True(t, s.DeleteNote("u1", note.ID))
	assert.False(t, s.DeleteNote("u1", note.ID))

	notes := s.GetNotes("u1")
	require.Len(t, notes, 1)
	assert.Equal(t, keep.ID, notes[0].ID)
	assert.Equal(t, 1, s.GetStatistics("u1").NotesCount)
}

func TestStatisticsTrackCollections(t *testing.T) {
	s, _ := newTestStore()

	s.AddNote("u1", model.Note{Title: "a"})
	s.AddNote("u1", model.Note{Title: "b"})
	s.AddMessage("u1", model.ChatMessage{Sender: "user", Content: "안녕"})
	s.AddToFavorites("u1", model.Course{ID: "c1", Name: "자료구조"})
	s.SaveCompletedCourses("u1", []model.Course{
		{ID: "c2", Name: "미적분학", Grade: "A"},
		{ID: "c3", Name: "선형대수", Grade: "B+"},
		{ID: "c4", Name: "프로그래밍", Grade: "A+"},
	})

	stats := s.GetStatistics("u1")
	assert.Equal(t, 2, stats.NotesCount)
	assert.Equal(t, 1, stats.MessagesCount)
	assert.Equal(t, 1, stats.FavoriteCoursesCount)
	assert.Equal(t, 3, stats.CompletedCoursesCount)

	s.ClearMessages("u1")
	assert.Zero(t, s.GetStatistics("u1").MessagesCount)
}

func TestStatisticsWriteFailureIsReconciled(t *testing.T) {
	backend := &flakyBackend{MemoryBackend: NewMemoryBackend(), failPrefix: "statistics:"}
	s := NewEntityStore(backend, zap.NewNop())

	backend.failWrites = true
	s.AddNote("u1", model.Note{Title: "메모"})

	// 统计写入失败，计数暂时落后
	assert.Zero(t, s.GetStatistics("u1").NotesCount)

	backend.failWrites = false
	assert.Equal(t, 1, s.ReconcilePending())
	assert.Equal(t, 1, s.GetStatistics("u1").NotesCount)

	// 队列已清空
	assert.Zero(t, s.ReconcilePending())
}

func TestNotificationsCapped(t *testing.T) {
	s, _ := newTestStore()

	for i := 0; i < maxNotifications+5; i++ {
		s.AddNotification("u1", model.NotificationItem{Title: fmt.Sprintf("공지 %d", i)})
	}

	items := s.GetNotifications("u1")
	require.Len(t, items, maxNotifications)
	// 最新在前，最老的 5 条被淘汰
	assert.Equal(t, fmt.Sprintf("공지 %d", maxNotifications+4), items[0].Title)
	assert.Equal(t, "공지 5", items[maxNotifications-1].Title)
}

func TestMarkNotificationRead(t *testing.T) {
	s, _ := newTestStore()

	n := s.AddNotification("u1", model.NotificationItem{Title: "과제 마감"})
	assert.False(t, n.Read)

	assert.True(t, s.MarkNotificationRead("u1", n.ID))
	assert.True(t, s.GetNotifications("u1")[0].Read)

	assert.False(t, s.MarkNotificationRead("u1", "missing"))
}

func TestFavoritesDedupe(t *testing.T) {
	s, _ := newTestStore()

	course := model.Course{ID: "c1", Name: "운영체제"}
	s.AddToFavorites("u1", course)
	s.AddToFavorites("u1", course)

	favorites := s.GetFavorites("u1")
	require.Len(t, favorites, 1)
	assert.Equal(t, "u1", favorites[0].UserID)
	assert.Equal(t, 1, s.GetStatistics("u1").FavoriteCoursesCount)

	assert.True(t, s.RemoveFromFavorites("u1", "c1"))
	assert.False(t, s.RemoveFromFavorites("u1", "c1"))
	assert.Zero(t, s.GetStatistics("u1").FavoriteCoursesCount)
}

func TestRecentSearches(t *testing.T) {
	s, _ := newTestStore()

	s.AddRecentSearch("u1", "자료구조")
	s.AddRecentSearch("u1", "운영체제")
	s.AddRecentSearch("u1", "자료구조")

	// 精确去重，最新在前
	assert.Equal(t, []string{"자료구조", "운영체제"}, s.GetRecentSearches("u1"))

	for i := 0; i < maxRecentSearches+3; i++ {
		s.AddRecentSearch("u1", fmt.Sprintf("검색 %d", i))
	}
	searches := s.GetRecentSearches("u1")
	require.Len(t, searches, maxRecentSearches)
	assert.Equal(t, fmt.Sprintf("검색 %d", maxRecentSearches+2), searches[0])

	s.ClearRecentSearches("u1")
	assert.Empty(t, s.GetRecentSearches("u1"))
}

func TestCourseCollectionsStampOwner(t *testing.T) {
	s, _ := newTestStore()

	s.SaveTimetableCourses("u1", []model.Course{
		{ID: "c1", Name: "알고리즘", DayOfWeek: 2, StartPeriod: 3, EndPeriod: 4},
	})
	courses := s.GetTimetableCourses("u1")
	require.Len(t, courses, 1)
	assert.Equal(t, "u1", courses[0].UserID)

	s.SaveTimetableCourses("u1", nil)
	assert.Empty(t, s.GetTimetableCourses("u1"))

	s.SaveGraduationRequirements("u1", []model.GraduationRequirement{
		{Category: "전공필수", RequiredCredits: 45},
	})
	reqs := s.GetGraduationRequirements("u1")
	require.Len(t, reqs, 1)
	assert.Equal(t, "u1", reqs[0].UserID)
}
