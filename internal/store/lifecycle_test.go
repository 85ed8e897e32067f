package store

import (
	"encoding/json"
	"testing"
	"time"

	"campus_hub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeUserData(t *testing.T) {
	s, backend := newTestStore()

	s.InitializeUserData("u1")
	assert.Equal(t, len(AllKinds), backend.Len())

	// 幂等：重复初始化即覆盖为默认值
	s.UpdateProfile("u1", map[string]interface{}{"name": "김철수"})
	s.InitializeUserData("u1")
	assert.Empty(t, s.GetProfile("u1").Name)
	assert.Equal(t, len(AllKinds), backend.Len())
}

func TestDeleteUserData(t *testing.T) {
	s, backend := newTestStore()

	s.InitializeUserData("u1")
	s.AddNote("u1", model.Note{Title: "메모"})
	s.RecordLogin("u1")

	s.DeleteUserData("u1")
	assert.Zero(t, backend.Len())

	// 删除后读取回退默认值
	assert.Empty(t, s.GetNotes("u1"))
	assert.Zero(t, s.GetStatistics("u1").LoginCount)
	assert.Equal(t, 1, s.GetProfile("u1").Grade)
}

func TestExportContainsAllKinds(t *testing.T) {
	s, _ := newTestStore()

	raw := s.ExportUserData("u1")
	require.NotNil(t, raw)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, kind := range AllKinds {
		assert.Contains(t, doc, string(kind))
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s, _ := newTestStore()

	s.InitializeUserData("u1")
	s.UpdateProfile("u1", map[string]interface{}{"name": "김철수", "major": "컴퓨터공학"})
	s.AddNote("u1", model.Note{Title: "이산수학", Content: "정리"})
	s.AddMessage("u1", model.ChatMessage{Sender: "user", Content: "안녕"})
	s.AddNotification("u1", model.NotificationItem{Title: "공지"})
	s.AddToFavorites("u1", model.Course{ID: "c1", Name: "자료구조"})
	s.SaveCompletedCourses("u1", []model.Course{{ID: "c2", Name: "미적분학", Grade: "A"}})
	s.AddRecentSearch("u1", "운영체제")
	s.RecordLogin("u1")

	exported := s.ExportUserData("u1")
	require.True(t, s.ImportUserData("u1", exported))
	reExported := s.ExportUserData("u1")

	// 导入后统计会重算，updatedAt 随之刷新，比较时归零
	var a, b model.UserDataExport
	require.NoError(t, json.Unmarshal(exported, &a))
	require.NoError(t, json.Unmarshal(reExported, &b))
	a.Statistics.UpdatedAt = time.Time{}
	b.Statistics.UpdatedAt = time.Time{}
	assert.Equal(t, a, b)
}

func TestImportStampsTargetUser(t *testing.T) {
	s, _ := newTestStore()

	s.InitializeUserData("A")
	s.UpdateProfile("A", map[string]interface{}{"name": "김철수"})
	s.AddNote("A", model.Note{Title: "A의 메모"})
	exported := s.ExportUserData("A")

	// 把 A 的导出灌入 B，所有记录的归属必须改写为 B
	require.True(t, s.ImportUserData("B", exported))
	assert.Equal(t, "B", s.GetProfile("B").UserID)
	assert.Equal(t, "김철수", s.GetProfile("B").Name)

	notes := s.GetNotes("B")
	require.Len(t, notes, 1)
	assert.Equal(t, "B", notes[0].UserID)

	// A 的命名空间不受影响
	assert.Equal(t, "A", s.GetProfile("A").UserID)
}

func TestImportMalformedDocIsRejected(t *testing.T) {
	s, backend := newTestStore()

	assert.False(t, s.ImportUserData("u1", []byte("{not json")))
	assert.Zero(t, backend.Len())
}

func TestImportTypeMismatchRejectsWholeDoc(t *testing.T) {
	s, backend := newTestStore()

	// 任何字段类型不符都判整个文档解析失败，不落任何写入
	blob := []byte(`{"profile":{"name":"김철수"},"notes":42}`)
	assert.False(t, s.ImportUserData("u1", blob))
	assert.Zero(t, backend.Len())
}

func TestImportIgnoresUnknownFields(t *testing.T) {
	s, _ := newTestStore()

	blob := []byte(`{"profile":{"name":"김철수"},"legacyField":{"x":1}}`)
	require.True(t, s.ImportUserData("u1", blob))
	assert.Equal(t, "김철수", s.GetProfile("u1").Name)
}

func TestImportPartialDocLeavesOtherKindsAlone(t *testing.T) {
	s, _ := newTestStore()

	s.AddNote("u1", model.Note{Title: "기존 메모"})
	require.True(t, s.ImportUserData("u1", []byte(`{"settings":{"theme":"dark"}}`)))

	assert.Equal(t, "dark", s.GetSettings("u1").Theme)
	// 文档中缺失的实体不被触碰
	require.Len(t, s.GetNotes("u1"), 1)
	assert.Equal(t, "기존 메모", s.GetNotes("u1")[0].Title)
}

func TestImportRefreshesStatistics(t *testing.T) {
	s, _ := newTestStore()

	blob := []byte(`{
		"notes": [{"title":"하나"},{"title":"둘"}],
		"statistics": {"notesCount": 99}
	}`)
	require.True(t, s.ImportUserData("u1", blob))

	// 派生计数以集合为准，导入文档里的计数被重算覆盖
	assert.Equal(t, 2, s.GetStatistics("u1").NotesCount)
}
