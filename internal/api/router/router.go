package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatimaezzahramahouat/StudyFlow1/config"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/api/handler"
	"github.com/fatimaezzahramahouat/StudyFlow1/internal/api/middleware"
	"github.com/fatimaezzahramahouat/StudyFlow1/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 科目模块
		subjects := v1.Group("/subjects")
		{
			subjects.GET("", h.Subject.ListSubjects)
			subjects.POST("", h.Subject.CreateSubject)
			subjects.DELETE("", h.Subject.RequestDeleteAll)
			subjects.GET("/:id", h.Subject.GetSubject)
			subjects.PUT("/:id", h.Subject.UpdateSubject)
			subjects.POST("/:id/archive", h.Archive.RequestArchive)
			subjects.PUT("/:id/objectives/:oid", h.Subject.EditObjective)
			subjects.DELETE("/:id/objectives/:oid", h.Subject.DeleteObjective)
			subjects.POST("/:id/objectives/:oid/toggle", h.Subject.ToggleObjective)
		}

		// 归档模块
		archive := v1.Group("/archive")
		{
			archive.GET("", h.Archive.ListArchive)
			archive.DELETE("", h.Archive.RequestPurge)
			archive.POST("/:id/restore", h.Archive.RestoreArchived)
			archive.DELETE("/:id", h.Archive.RequestDeleteArchived)
		}

		// 确认模块
		confirmations := v1.Group("/confirmations")
		{
			confirmations.POST("/:id/confirm", h.Confirmation.Confirm)
			confirmations.DELETE("/:id", h.Confirmation.Cancel)
		}

		// 进度模块
		v1.GET("/progress", h.Progress.GetOverview)

		// 日历模块
		calendar := v1.Group("/calendar")
		{
			calendar.GET("/day/:date", h.Calendar.GetDay)
			calendar.GET("/month", h.Calendar.GetMonth)
		}

		// 笔记模块
		notes := v1.Group("/notes")
		{
			notes.GET("", h.Note.ListNotes)
			notes.POST("", h.Note.CreateNote)
			notes.PUT("/:id", h.Note.UpdateNote)
			notes.DELETE("/:id", h.Note.DeleteNote)
		}

		// 成绩模块
		gradeModules := v1.Group("/grade-modules")
		{
			gradeModules.GET("", h.Grade.ListGradeModules)
			gradeModules.POST("", h.Grade.CreateGradeModule)
			gradeModules.PUT("/:id", h.Grade.UpdateGradeScores)
			gradeModules.DELETE("/last", h.Grade.DeleteLastGradeModule)
		}

		// 助手模块（限流保护上游配额）
		assistant := v1.Group("/assistant")
		assistant.Use(middleware.RateLimit(rdb, cfg.Assistant.RateLimit, time.Minute))
		{
			assistant.POST("/messages", h.Assistant.SendMessage)
			assistant.GET("/messages", h.Assistant.GetHistory)
			assistant.DELETE("/messages", h.Assistant.ClearHistory)
		}

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/progress", h.Export.ExportProgress)
			export.GET("/grades", h.Export.ExportGrades)
			export.GET("/calendar", h.Export.ExportCalendar)
		}

		// 偏好模块
		preferences := v1.Group("/preferences")
		{
			preferences.GET("/theme", h.Preference.GetTheme)
			preferences.PUT("/theme", h.Preference.UpdateTheme)
		}
	}

	return r
}
