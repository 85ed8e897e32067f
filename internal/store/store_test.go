package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"campus_hub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore() (*EntityStore, *MemoryBackend) {
	backend := NewMemoryBackend()
	return NewEntityStore(backend, zap.NewNop()), backend
}

// flakyBackend 按键前缀注入读写失败
type flakyBackend struct {
	*MemoryBackend
	failPrefix string
	failReads  bool
	failWrites bool
}

func (b *flakyBackend) matches(key string) bool {
	return b.failPrefix == "" || strings.HasPrefix(key, b.failPrefix)
}

func (b *flakyBackend) Get(key string) (string, bool, error) {
	if b.failReads && b.matches(key) {
		return "", false, errors.New("backend unavailable")
	}
	return b.MemoryBackend.Get(key)
}

func (b *flakyBackend) Set(key, value string) error {
	if b.failWrites && b.matches(key) {
		return errors.New("backend unavailable")
	}
	return b.MemoryBackend.Set(key, value)
}

func TestDefaultsAreFullyPopulated(t *testing.T) {
	s, _ := newTestStore()

	profile := s.GetProfile("u1")
	assert.Equal(t, "u1", profile.UserID)
	assert.Equal(t, 1, profile.Grade)
	assert.NotNil(t, profile.Interests)
	assert.False(t, profile.UpdatedAt.IsZero())

	settings := s.GetSettings("u1")
	assert.Equal(t, "u1", settings.UserID)
	assert.Equal(t, "light", settings.Theme)
	assert.Equal(t, "Asia/Seoul", settings.Timezone)
	assert.True(t, settings.Notifications)

	stats := s.GetStatistics("u1")
	assert.Equal(t, "u1", stats.UserID)
	assert.Zero(t, stats.NotesCount)
	assert.Nil(t, stats.LastLoginDate)

	curriculum := s.GetCurriculum("u1")
	assert.NotNil(t, curriculum.Subjects)
	assert.NotNil(t, curriculum.CompletedSubjects)

	schedule := s.GetSchedule("u1")
	assert.NotNil(t, schedule.Entries)
	assert.NotNil(t, schedule.CustomEvents)

	onboarding := s.GetOnboarding("u1")
	assert.False(t, onboarding.Completed)
	assert.NotNil(t, onboarding.CompletedSteps)

	assert.NotNil(t, s.GetNotes("u1"))
	assert.NotNil(t, s.GetMessages("u1"))
	assert.NotNil(t, s.GetFavorites("u1"))
	assert.NotNil(t, s.GetRecentSearches("u1"))
}

func TestUpdateShallowMerge(t *testing.T) {
	s, _ := newTestStore()

	base := time.Now()
	tick := 0
	s.clock = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	first := s.UpdateProfile("u1", map[string]interface{}{
		"name":  "김철수",
		"major": "컴퓨터공학",
	})
	assert.Equal(t, "김철수", first.Name)
	assert.Equal(t, "컴퓨터공학", first.Major)
	assert.Equal(t, "u1", first.UserID)

	second := s.UpdateProfile("u1", map[string]interface{}{
		"nickname": "cskim",
	})
	// 未出现在补丁中的字段保持不变
	assert.Equal(t, "김철수", second.Name)
	assert.Equal(t, "컴퓨터공학", second.Major)
	assert.Equal(t, "cskim", second.Nickname)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestUpdateCannotChangePartitionKey(t *testing.T) {
	s, _ := newTestStore()

	updated := s.UpdateProfile("u1", map[string]interface{}{
		"userId": "intruder",
		"name":   "김철수",
	})
	assert.Equal(t, "u1", updated.UserID)
	assert.Equal(t, "u1", s.GetProfile("u1").UserID)
}

func TestIncompatiblePatchIsDropped(t *testing.T) {
	s, _ := newTestStore()

	s.UpdateProfile("u1", map[string]interface{}{"name": "김철수"})
	updated := s.UpdateProfile("u1", map[string]interface{}{"grade": "four"})
	// 类型不兼容的补丁整体丢弃，原值保留
	assert.Equal(t, "김철수", updated.Name)
	assert.Equal(t, 1, updated.Grade)
}

func TestNamespaceIsolation(t *testing.T) {
	s, _ := newTestStore()

	s.InitializeUserData("B")
	before := s.ExportUserData("B")

	s.InitializeUserData("A")
	s.UpdateProfile("A", map[string]interface{}{"name": "김철수"})
	s.AddNote("A", model.Note{Title: "메모"})
	s.AddRecentSearch("A", "자료구조")
	s.RecordLogin("A")
	s.DeleteUserData("A")

	after := s.ExportUserData("B")
	assert.JSONEq(t, string(before), string(after))
}

func TestMalformedValueFallsBackToDefault(t *testing.T) {
	s, backend := newTestStore()

	require.NoError(t, backend.Set(Key(KindProfile, "u1"), "{corrupt json"))
	profile := s.GetProfile("u1")
	assert.Equal(t, "u1", profile.UserID)
	assert.Equal(t, 1, profile.Grade)
}

func TestReadFailureFallsBackToDefault(t *testing.T) {
	backend := &flakyBackend{MemoryBackend: NewMemoryBackend(), failReads: true}
	s := NewEntityStore(backend, zap.NewNop())

	settings := s.GetSettings("u1")
	assert.Equal(t, "light", settings.Theme)
}

func TestWriteFailureDegradesToNoop(t *testing.T) {
	backend := &flakyBackend{MemoryBackend: NewMemoryBackend(), failWrites: true}
	s := NewEntityStore(backend, zap.NewNop())

	profile := s.GetProfile("u1")
	profile.Name = "김철수"
	s.SaveProfile(profile)

	// 写入被丢弃，读取仍是默认值
	assert.Empty(t, s.GetProfile("u1").Name)
}

func TestRecordLogin(t *testing.T) {
	s, _ := newTestStore()

	stats := s.RecordLogin("u1")
	assert.Equal(t, 1, stats.LoginCount)
	require.NotNil(t, stats.LastLoginDate)

	stats = s.RecordLogin("u1")
	assert.Equal(t, 2, stats.LoginCount)
}

func TestAddStudyTime(t *testing.T) {
	s, _ := newTestStore()

	stats := s.AddStudyTime("u1", 30)
	assert.Equal(t, 30, stats.StudyTimeMinutes)

	stats = s.AddStudyTime("u1", 15)
	assert.Equal(t, 45, stats.StudyTimeMinutes)

	stats = s.AddStudyTime("u1", -5)
	assert.Equal(t, 45, stats.StudyTimeMinutes)
}
