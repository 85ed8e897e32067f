package service

import (
	"campus_hub_backend/internal/model"
	"campus_hub_backend/internal/store"
	"campus_hub_backend/internal/util"
)

// CourseService 课程集合、收藏与最近搜索
type CourseService struct {
	store *store.EntityStore
}

func NewCourseService(s *store.EntityStore) *CourseService {
	return &CourseService{store: s}
}

func (s *CourseService) ListCourses(userID string) []model.Course {
	return s.store.GetCourses(userID)
}

func (s *CourseService) SaveCourses(userID string, courses []model.Course) []model.Course {
	s.store.SaveCourses(userID, courses)
	return s.store.GetCourses(userID)
}

func (s *CourseService) ListCompletedCourses(userID string) []model.Course {
	return s.store.GetCompletedCourses(userID)
}

func (s *CourseService) SaveCompletedCourses(userID string, courses []model.Course) []model.Course {
	s.store.SaveCompletedCourses(userID, courses)
	return s.store.GetCompletedCourses(userID)
}

func (s *CourseService) ListTimetableCourses(userID string) []model.Course {
	return s.store.GetTimetableCourses(userID)
}

func (s *CourseService) SaveTimetableCourses(userID string, courses []model.Course) []model.Course {
	s.store.SaveTimetableCourses(userID, courses)
	return s.store.GetTimetableCourses(userID)
}

func (s *CourseService) ListFavorites(userID string) []model.Course {
	return s.store.GetFavorites(userID)
}

func (s *CourseService) AddFavorite(userID string, course model.Course) []model.Course {
	s.store.AddToFavorites(userID, course)
	return s.store.GetFavorites(userID)
}

func (s *CourseService) RemoveFavorite(userID, courseID string) error {
	if !s.store.RemoveFromFavorites(userID, courseID) {
		return util.ErrFavoriteNotFound
	}
	return nil
}

func (s *CourseService) ListRecentSearches(userID string) []string {
	return s.store.GetRecentSearches(userID)
}

func (s *CourseService) AddRecentSearch(userID, term string) []string {
	return s.store.AddRecentSearch(userID, term)
}

func (s *CourseService) ClearRecentSearches(userID string) {
	s.store.ClearRecentSearches(userID)
}
