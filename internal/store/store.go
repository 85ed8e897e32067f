package store

import (
	"encoding/json"
	"sync"
	"time"

	"campus_hub_backend/internal/model"
	"campus_hub_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// EntityStore 按 (实体种类, 用户ID) 组键的持久化门面。
// 对外契约：读失败回退默认值，写失败降级为空操作并记录日志，永不向调用方抛错。
// 读-改-写序列按用户加锁串行化，集合变更与统计刷新在同一次加锁内完成。
type EntityStore struct {
	backend Backend
	log     *zap.Logger
	clock   func() time.Time

	locks   sync.Map // userID -> *sync.Mutex
	pending sync.Map // 统计写入失败待对账的 userID 集合
}

func NewEntityStore(backend Backend, log *zap.Logger) *EntityStore {
	return &EntityStore{
		backend: backend,
		log:     log,
		clock:   time.Now,
	}
}

func (s *EntityStore) now() time.Time {
	return s.clock()
}

func (s *EntityStore) lockUser(userID string) func() {
	v, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *EntityStore) readRaw(kind Kind, userID string) (string, bool) {
	v, ok, err := s.backend.Get(Key(kind, userID))
	if err != nil {
		monitoring.StoreFailures.WithLabelValues(string(kind), "read").Inc()
		s.log.Error("后端读取失败，回退默认值",
			zap.String("kind", string(kind)), zap.String("userId", userID), zap.Error(err))
		return "", false
	}
	return v, ok
}

func (s *EntityStore) writeRaw(kind Kind, userID, value string) bool {
	if err := s.backend.Set(Key(kind, userID), value); err != nil {
		monitoring.StoreFailures.WithLabelValues(string(kind), "write").Inc()
		s.log.Error("后端写入失败，本次写入丢弃",
			zap.String("kind", string(kind)), zap.String("userId", userID), zap.Error(err))
		return false
	}
	monitoring.StoreOps.WithLabelValues(string(kind), "write").Inc()
	return true
}

func (s *EntityStore) removeRaw(kind Kind, userID string) bool {
	if err := s.backend.Remove(Key(kind, userID)); err != nil {
		monitoring.StoreFailures.WithLabelValues(string(kind), "remove").Inc()
		s.log.Error("后端删除失败",
			zap.String("kind", string(kind)), zap.String("userId", userID), zap.Error(err))
		return false
	}
	return true
}

// getEntity 反序列化失败或键不存在时回退默认值
func getEntity[T any](s *EntityStore, kind Kind, userID string, def T) T {
	raw, ok := s.readRaw(kind, userID)
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		monitoring.StoreFailures.WithLabelValues(string(kind), "decode").Inc()
		s.log.Warn("存储数据损坏，回退默认值",
			zap.String("kind", string(kind)), zap.String("userId", userID), zap.Error(err))
		return def
	}
	return out
}

func putEntity[T any](s *EntityStore, kind Kind, userID string, v T) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		monitoring.StoreFailures.WithLabelValues(string(kind), "encode").Inc()
		s.log.Error("序列化失败，本次写入丢弃",
			zap.String("kind", string(kind)), zap.String("userId", userID), zap.Error(err))
		return false
	}
	return s.writeRaw(kind, userID, string(raw))
}

func getSlice[T any](s *EntityStore, kind Kind, userID string) []T {
	out := getEntity(s, kind, userID, []T{})
	if out == nil {
		return []T{}
	}
	return out
}

// updateEntity 浅合并补丁：当前值（缺失则默认值）转 map，覆盖补丁字段，
// 强制刷新 updatedAt，单次后端写入。userId 是分区键，不可经补丁修改。
func updateEntity[T any](s *EntityStore, kind Kind, userID string, def T, patch map[string]interface{}) T {
	cur := getEntity(s, kind, userID, def)

	raw, err := json.Marshal(cur)
	if err != nil {
		s.log.Error("合并前序列化失败", zap.String("kind", string(kind)), zap.Error(err))
		return cur
	}
	var merged map[string]interface{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		s.log.Error("合并前反序列化失败", zap.String("kind", string(kind)), zap.Error(err))
		return cur
	}

	for k, v := range patch {
		if k == "userId" {
			continue
		}
		merged[k] = v
	}
	merged["updatedAt"] = s.now().Format(time.RFC3339Nano)

	mergedRaw, err := json.Marshal(merged)
	if err != nil {
		s.log.Error("合并后序列化失败", zap.String("kind", string(kind)), zap.Error(err))
		return cur
	}
	var out T
	if err := json.Unmarshal(mergedRaw, &out); err != nil {
		// 补丁字段类型不兼容，丢弃本次更新
		s.log.Warn("补丁与实体类型不兼容，更新丢弃",
			zap.String("kind", string(kind)), zap.String("userId", userID), zap.Error(err))
		return cur
	}
	putEntity(s, kind, userID, out)
	return out
}

// ---- 单例实体 ----

func (s *EntityStore) GetProfile(userID string) model.UserProfile {
	return getEntity(s, KindProfile, userID, model.DefaultUserProfile(userID))
}

func (s *EntityStore) SaveProfile(p model.UserProfile) {
	defer s.lockUser(p.UserID)()
	p.UpdatedAt = s.now()
	putEntity(s, KindProfile, p.UserID, p)
}

func (s *EntityStore) UpdateProfile(userID string, patch map[string]interface{}) model.UserProfile {
	defer s.lockUser(userID)()
	return updateEntity(s, KindProfile, userID, model.DefaultUserProfile(userID), patch)
}

func (s *EntityStore) GetGraduationInfo(userID string) model.GraduationInfo {
	return getEntity(s, KindGraduationInfo, userID, model.DefaultGraduationInfo(userID))
}

func (s *EntityStore) SaveGraduationInfo(g model.GraduationInfo) {
	defer s.lockUser(g.UserID)()
	g.UpdatedAt = s.now()
	putEntity(s, KindGraduationInfo, g.UserID, g)
}

func (s *EntityStore) UpdateGraduationInfo(userID string, patch map[string]interface{}) model.GraduationInfo {
	defer s.lockUser(userID)()
	return updateEntity(s, KindGraduationInfo, userID, model.DefaultGraduationInfo(userID), patch)
}

func (s *EntityStore) GetCurriculum(userID string) model.Curriculum {
	return getEntity(s, KindCurriculum, userID, model.DefaultCurriculum(userID))
}

func (s *EntityStore) SaveCurriculum(c model.Curriculum) {
	defer s.lockUser(c.UserID)()
	c.UpdatedAt = s.now()
	putEntity(s, KindCurriculum, c.UserID, c)
}

func (s *EntityStore) UpdateCurriculum(userID string, patch map[string]interface{}) model.Curriculum {
	defer s.lockUser(userID)()
	return updateEntity(s, KindCurriculum, userID, model.DefaultCurriculum(userID), patch)
}

func (s *EntityStore) GetSchedule(userID string) model.Schedule {
	return getEntity(s, KindSchedule, userID, model.DefaultSchedule(userID))
}

func (s *EntityStore) SaveSchedule(sc model.Schedule) {
	defer s.lockUser(sc.UserID)()
	sc.UpdatedAt = s.now()
	putEntity(s, KindSchedule, sc.UserID, sc)
}

func (s *EntityStore) UpdateSchedule(userID string, patch map[string]interface{}) model.Schedule {
	defer s.lockUser(userID)()
	return updateEntity(s, KindSchedule, userID, model.DefaultSchedule(userID), patch)
}

func (s *EntityStore) GetOnboarding(userID string) model.Onboarding {
	return getEntity(s, KindOnboarding, userID, model.DefaultOnboarding(userID))
}

func (s *EntityStore) SaveOnboarding(o model.Onboarding) {
	defer s.lockUser(o.UserID)()
	o.UpdatedAt = s.now()
	putEntity(s, KindOnboarding, o.UserID, o)
}

func (s *EntityStore) UpdateOnboarding(userID string, patch map[string]interface{}) model.Onboarding {
	defer s.lockUser(userID)()
	return updateEntity(s, KindOnboarding, userID, model.DefaultOnboarding(userID), patch)
}

func (s *EntityStore) GetSettings(userID string) model.UserSettings {
	return getEntity(s, KindSettings, userID, model.DefaultUserSettings(userID))
}

func (s *EntityStore) SaveSettings(st model.UserSettings) {
	defer s.lockUser(st.UserID)()
	st.UpdatedAt = s.now()
	putEntity(s, KindSettings, st.UserID, st)
}

func (s *EntityStore) UpdateSettings(userID string, patch map[string]interface{}) model.UserSettings {
	defer s.lockUser(userID)()
	return updateEntity(s, KindSettings, userID, model.DefaultUserSettings(userID), patch)
}

func (s *EntityStore) GetStatistics(userID string) model.UserStatistics {
	return getEntity(s, KindStatistics, userID, model.DefaultUserStatistics(userID))
}

func (s *EntityStore) UpdateStatistics(userID string, patch map[string]interface{}) model.UserStatistics {
	defer s.lockUser(userID)()
	return updateEntity(s, KindStatistics, userID, model.DefaultUserStatistics(userID), patch)
}

// RecordLogin 登录计数 +1 并刷新最后登录时间
func (s *EntityStore) RecordLogin(userID string) model.UserStatistics {
	defer s.lockUser(userID)()
	stats := getEntity(s, KindStatistics, userID, model.DefaultUserStatistics(userID))
	now := s.now()
	stats.LoginCount++
	stats.LastLoginDate = &now
	stats.UpdatedAt = now
	putEntity(s, KindStatistics, userID, stats)
	return stats
}

// AddStudyTime 累加学习时长（分钟）
func (s *EntityStore) AddStudyTime(userID string, minutes int) model.UserStatistics {
	defer s.lockUser(userID)()
	stats := getEntity(s, KindStatistics, userID, model.DefaultUserStatistics(userID))
	if minutes > 0 {
		stats.StudyTimeMinutes += minutes
	}
	stats.UpdatedAt = s.now()
	putEntity(s, KindStatistics, userID, stats)
	return stats
}
