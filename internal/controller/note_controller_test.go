package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campus_hub_backend/internal/model"
	"campus_hub_backend/internal/service"
	"campus_hub_backend/internal/store"
	"campus_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newNoteTestRouter(userID string) (*gin.Engine, *store.EntityStore) {
	gin.SetMode(gin.TestMode)

	st := store.NewEntityStore(store.NewMemoryBackend(), zap.NewNop())
	ctrl := NewNoteController(service.NewNoteService(st))

	router := gin.New()
	group := router.Group("/api")
	if userID != "" {
		group.Use(func(c *gin.Context) {
			c.Set("user", &util.Claims{UserID: userID})
		})
	}
	group.GET("/notes", ctrl.ListNotes)
	group.POST("/notes", ctrl.CreateNote)
	group.PUT("/notes/:id", ctrl.UpdateNote)
	group.DELETE("/notes/:id", ctrl.DeleteNote)
	return router, st
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCreateAndListNotes(t *testing.T) {
	router, st := newNoteTestRouter("u1")

	w, resp := doJSON(t, router, http.MethodPost, "/api/notes",
		`{"title":"이산수학","content":"귀납법","tags":["수학"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var created model.Note
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, "이산수학", created.Title)

	w, resp = doJSON(t, router, http.MethodGet, "/api/notes", "")
	require.Equal(t, http.StatusOK, w.Code)
	raw, err = json.Marshal(resp.Data)
	require.NoError(t, err)
	var notes []model.Note
	require.NoError(t, json.Unmarshal(raw, &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, created.ID, notes[0].ID)

	// 创建同步刷新统计
	assert.Equal(t, 1, st.GetStatistics("u1").NotesCount)
}

func TestCreateNoteRequiresTitle(t *testing.T) {
	router, _ := newNoteTestRouter("u1")

	w, _ := doJSON(t, router, http.MethodPost, "/api/notes", `{"content":"제목 없음"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateNoteEndpoint(t *testing.T) {
	router, st := newNoteTestRouter("u1")
	note := st.AddNote("u1", model.Note{Title: "초안"})

	w, resp := doJSON(t, router, http.MethodPut, "/api/notes/"+note.ID, `{"title":"수정본"}`)
	require.Equal(t, http.StatusOK, w.Code)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var updated model.Note
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "수정본", updated.Title)

	w, _ = doJSON(t, router, http.MethodPut, "/api/notes/missing", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteNoteEndpoint(t *testing.T) {
	router, st := newNoteTestRouter("u1")
	note := st.AddNote("u1", model.Note{Title: "삭제 대상"})

	w, _ := doJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, st.GetNotes("u1"))

	w, _ = doJSON(t, router, http.MethodDelete, "/api/notes/"+note.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotesRequireAuth(t *testing.T) {
	router, _ := newNoteTestRouter("")

	w, _ := doJSON(t, router, http.MethodGet, "/api/notes", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
