package handlers

import (
	"net/http"

	"virtual-lawyer/models"
	"virtual-lawyer/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services bundles what the HTTP layer needs
type Services struct {
	Auth           *service.AuthService
	Match          *service.MatchService
	Laws           *service.LawService
	History        *service.HistoryService
	Documents      *service.DocumentService
	MaxUploadBytes int64
	Logger         *zap.Logger
}

// RegisterRoutes mounts every endpoint on r
func RegisterRoutes(r *gin.Engine, s Services) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	authHandler := NewAuthHandler(s.Auth, logger)
	matchHandler := NewMatchHandler(s.Match, s.MaxUploadBytes, logger)
	lawHandler := NewLawHandler(s.Laws, logger)
	historyHandler := NewHistoryHandler(s.History, logger)
	documentHandler := NewDocumentHandler(s.Documents, logger)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(RequireSession(s.Auth, logger))
	{
		authed.POST("/auth/logout", authHandler.Logout)
		authed.GET("/me", authHandler.Me)

		authed.POST("/match", matchHandler.Match)

		authed.GET("/checklists", ListChecklists)
		authed.GET("/checklists/:category", GetChecklist)

		authed.GET("/laws", lawHandler.ListLaws)
		authed.GET("/laws/:section", lawHandler.GetLaw)
	}

	advocate := authed.Group("")
	advocate.Use(RequireRole(models.RoleAdvocate))
	{
		advocate.POST("/laws", lawHandler.CreateLaw)
		advocate.PUT("/laws/:section", lawHandler.UpdateLaw)
		advocate.DELETE("/laws/:section", lawHandler.DeleteLaw)
		advocate.POST("/laws/:section/penalties", lawHandler.AddPenalty)
		advocate.DELETE("/laws/:section/penalties/:id", lawHandler.DeletePenalty)

		advocate.GET("/documents/:id", documentHandler.GetDocument)

		advocate.GET("/admin/queries", historyHandler.RecentQueries)
		advocate.GET("/admin/queries/export", historyHandler.DownloadExport)
		advocate.POST("/admin/queries/export", historyHandler.SaveExport)
	}
}
