package service

import (
	"campus_hub_backend/internal/model"
	"campus_hub_backend/internal/store"
)

// AcademicService 毕业信息、培养方案、课程表与毕业要求
type AcademicService struct {
	store *store.EntityStore
}

func NewAcademicService(s *store.EntityStore) *AcademicService {
	return &AcademicService{store: s}
}

func (s *AcademicService) GetGraduationInfo(userID string) model.GraduationInfo {
	return s.store.GetGraduationInfo(userID)
}

func (s *AcademicService) UpdateGraduationInfo(userID string, patch map[string]interface{}) model.GraduationInfo {
	return s.store.UpdateGraduationInfo(userID, patch)
}

func (s *AcademicService) GetCurriculum(userID string) model.Curriculum {
	return s.store.GetCurriculum(userID)
}

func (s *AcademicService) UpdateCurriculum(userID string, patch map[string]interface{}) model.Curriculum {
	return s.store.UpdateCurriculum(userID, patch)
}

func (s *AcademicService) GetSchedule(userID string) model.Schedule {
	return s.store.GetSchedule(userID)
}

func (s *AcademicService) UpdateSchedule(userID string, patch map[string]interface{}) model.Schedule {
	return s.store.UpdateSchedule(userID, patch)
}

func (s *AcademicService) GetGraduationRequirements(userID string) []model.GraduationRequirement {
	return s.store.GetGraduationRequirements(userID)
}

func (s *AcademicService) SaveGraduationRequirements(userID string, reqs []model.GraduationRequirement) []model.GraduationRequirement {
	s.store.SaveGraduationRequirements(userID, reqs)
	return s.store.GetGraduationRequirements(userID)
}
