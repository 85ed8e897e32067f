package controller

import (
	"campus_hub_backend/internal/model"
	"campus_hub_backend/internal/service"
	"campus_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	service *service.CourseService
}

func NewCourseController(s *service.CourseService) *CourseController {
	return &CourseController{service: s}
}

func (c *CourseController) bindCourses(ctx *gin.Context) ([]model.Course, bool) {
	var courses []model.Course
	if err := ctx.ShouldBindJSON(&courses); err != nil {
		util.BadRequest(ctx, err.Error())
		return nil, false
	}
	return courses, true
}

// ListCourses godoc
// @Summary 获取课程列表
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.ListCourses(user.UserID))
}

// SaveCourses godoc
// @Summary 整体覆盖课程列表
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body []model.Course true "课程列表"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [put]
func (c *CourseController) SaveCourses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	courses, ok := c.bindCourses(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.service.SaveCourses(user.UserID, courses))
}

// ListCompletedCourses godoc
// @Summary 获取已修课程
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses/completed [get]
func (c *CourseController) ListCompletedCourses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.ListCompletedCourses(user.UserID))
}

// SaveCompletedCourses godoc
// @Summary 整体覆盖已修课程，并同步刷新 completedCoursesCount 统计
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body []model.Course true "已修课程"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses/completed [put]
func (c *CourseController) SaveCompletedCourses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	courses, ok := c.bindCourses(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.service.SaveCompletedCourses(user.UserID, courses))
}

// ListTimetableCourses godoc
// @Summary 获取课表课程
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses/timetable [get]
func (c *CourseController) ListTimetableCourses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.ListTimetableCourses(user.UserID))
}

// SaveTimetableCourses godoc
// @Summary 整体覆盖课表课程
// @Tags 课程
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body []model.Course true "课表课程"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses/timetable [put]
func (c *CourseController) SaveTimetableCourses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	courses, ok := c.bindCourses(ctx)
	if !ok {
		return
	}
	util.Success(ctx, c.service.SaveTimetableCourses(user.UserID, courses))
}

// ListFavorites godoc
// @Summary 获取收藏课程
// @Tags 收藏
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/favorites [get]
func (c *CourseController) ListFavorites(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.ListFavorites(user.UserID))
}

// AddFavorite godoc
// @Summary 收藏课程（重复收藏忽略），并同步刷新 favoriteCoursesCount 统计
// @Tags 收藏
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Course true "课程"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/favorites [post]
func (c *CourseController) AddFavorite(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var course model.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if course.ID == "" {
		util.BadRequest(ctx, "course id is required")
		return
	}

	util.Success(ctx, c.service.AddFavorite(user.UserID, course))
}

// RemoveFavorite godoc
// @Summary 取消收藏
// @Tags 收藏
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/favorites/{courseId} [delete]
func (c *CourseController) RemoveFavorite(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.service.RemoveFavorite(user.UserID, ctx.Param("courseId")); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, nil)
}

type recentSearchRequest struct {
	Term string `json:"term" binding:"required"`
}

// ListRecentSearches godoc
// @Summary 获取最近搜索（最新在前，最多 10 条）
// @Tags 搜索
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/searches/recent [get]
func (c *CourseController) ListRecentSearches(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, c.service.ListRecentSearches(user.UserID))
}

// AddRecentSearch godoc
// @Summary 记录一次搜索（精确去重并置顶）
// @Tags 搜索
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body recentSearchRequest true "搜索词"
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/searches/recent [post]
func (c *CourseController) AddRecentSearch(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req recentSearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.service.AddRecentSearch(user.UserID, req.Term))
}

// ClearRecentSearches godoc
// @Summary 清空最近搜索
// @Tags 搜索
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/searches/recent [delete]
func (c *CourseController) ClearRecentSearches(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	c.service.ClearRecentSearches(user.UserID)
	util.Success(ctx, nil)
}
