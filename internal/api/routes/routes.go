package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nvoss/meetnotes/internal/api/handlers"
)

type Deps struct {
	Meetings *handlers.MeetingHandler
	Exports  *handlers.ExportHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/meetings", d.Meetings.Process)
	api.POST("/exports/transcript", d.Exports.Transcript)
	api.POST("/exports/notes", d.Exports.Notes)
}
