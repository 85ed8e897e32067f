package app

import (
	"campus_hub_backend/docs"
	"campus_hub_backend/internal/config"
	"campus_hub_backend/internal/middleware"
	"campus_hub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		// 档案、设置、引导、统计
		authGroup.GET("/profile", c.user.GetProfile)
		authGroup.PUT("/profile", c.user.UpdateProfile)
		authGroup.GET("/settings", c.user.GetSettings)
		authGroup.PUT("/settings", c.user.UpdateSettings)
		authGroup.GET("/onboarding", c.user.GetOnboarding)
		authGroup.PUT("/onboarding", c.user.UpdateOnboarding)
		authGroup.GET("/statistics", c.user.GetStatistics)
		authGroup.POST("/statistics/login", c.user.RecordLogin)
		authGroup.POST("/statistics/study-time", c.user.AddStudyTime)

		// 学业相关
		authGroup.GET("/graduation", c.academic.GetGraduationInfo)
		authGroup.PUT("/graduation", c.academic.UpdateGraduationInfo)
		authGroup.GET("/graduation/requirements", c.academic.GetGraduationRequirements)
		authGroup.PUT("/graduation/requirements", c.academic.SaveGraduationRequirements)
		authGroup.GET("/curriculum", c.academic.GetCurriculum)
		authGroup.PUT("/curriculum", c.academic.UpdateCurriculum)
		authGroup.GET("/schedule", c.academic.GetSchedule)
		authGroup.PUT("/schedule", c.academic.UpdateSchedule)

		// 笔记
		authGroup.GET("/notes", c.note.ListNotes)
		authGroup.POST("/notes", c.note.CreateNote)
		authGroup.PUT("/notes/:id", c.note.UpdateNote)
		authGroup.DELETE("/notes/:id", c.note.DeleteNote)

		// 聊天与通知
		authGroup.GET("/chat/messages", c.chat.ListMessages)
		authGroup.POST("/chat/messages", c.chat.SendMessage)
		authGroup.DELETE("/chat/messages", c.chat.ClearMessages)
		authGroup.GET("/notifications", c.chat.ListNotifications)
		authGroup.POST("/notifications", c.chat.Notify)
		authGroup.PATCH("/notifications/:id/read", c.chat.MarkNotificationRead)

		// 课程集合、收藏、最近搜索
		authGroup.GET("/courses", c.course.ListCourses)
		authGroup.PUT("/courses", c.course.SaveCourses)
		authGroup.GET("/courses/completed", c.course.ListCompletedCourses)
		authGroup.PUT("/courses/completed", c.course.SaveCompletedCourses)
		authGroup.GET("/courses/timetable", c.course.ListTimetableCourses)
		authGroup.PUT("/courses/timetable", c.course.SaveTimetableCourses)
		authGroup.GET("/favorites", c.course.ListFavorites)
		authGroup.POST("/favorites", c.course.AddFavorite)
		authGroup.DELETE("/favorites/:courseId", c.course.RemoveFavorite)
		authGroup.GET("/searches/recent", c.course.ListRecentSearches)
		authGroup.POST("/searches/recent", c.course.AddRecentSearch)
		authGroup.DELETE("/searches/recent", c.course.ClearRecentSearches)

		// 整用户生命周期
		authGroup.POST("/user-data/initialize", c.userData.Initialize)
		authGroup.DELETE("/user-data", c.userData.Delete)
		authGroup.GET("/user-data/export", c.userData.Export)
		authGroup.POST("/user-data/import", c.userData.Import)
	}
}
