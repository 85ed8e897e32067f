package service

import (
	"campus_hub_backend/internal/model"
	"campus_hub_backend/internal/store"
)

// UserDataService 档案、设置、引导、统计与整用户生命周期
type UserDataService struct {
	store *store.EntityStore
}

func NewUserDataService(s *store.EntityStore) *UserDataService {
	return &UserDataService{store: s}
}

func (s *UserDataService) GetProfile(userID string) model.UserProfile {
	return s.store.GetProfile(userID)
}

func (s *UserDataService) UpdateProfile(userID string, patch map[string]interface{}) model.UserProfile {
	return s.store.UpdateProfile(userID, patch)
}

func (s *UserDataService) GetSettings(userID string) model.UserSettings {
	return s.store.GetSettings(userID)
}

func (s *UserDataService) UpdateSettings(userID string, patch map[string]interface{}) model.UserSettings {
	return s.store.UpdateSettings(userID, patch)
}

func (s *UserDataService) GetOnboarding(userID string) model.Onboarding {
	return s.store.GetOnboarding(userID)
}

func (s *UserDataService) UpdateOnboarding(userID string, patch map[string]interface{}) model.Onboarding {
	return s.store.UpdateOnboarding(userID, patch)
}

func (s *UserDataService) GetStatistics(userID string) model.UserStatistics {
	return s.store.GetStatistics(userID)
}

func (s *UserDataService) RecordLogin(userID string) model.UserStatistics {
	return s.store.RecordLogin(userID)
}

func (s *UserDataService) AddStudyTime(userID string, minutes int) model.UserStatistics {
	return s.store.AddStudyTime(userID, minutes)
}

// Initialize 幂等：重复调用覆盖为默认值
func (s *UserDataService) Initialize(userID string) {
	s.store.InitializeUserData(userID)
}

func (s *UserDataService) Delete(userID string) {
	s.store.DeleteUserData(userID)
}
