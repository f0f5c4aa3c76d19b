package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nvoss/meetnotes/internal/utils"
)

// maxExportBytes bounds the artifact text accepted for re-download.
const maxExportBytes = 10 << 20

// ExportHandler turns pipeline artifacts back into downloadable files. The
// client posts the artifact text it already holds; nothing is stored
// server-side between requests.
type ExportHandler struct{}

func NewExportHandler() *ExportHandler { return &ExportHandler{} }

func (h *ExportHandler) Transcript(c *gin.Context) {
	h.export(c, "transcription.txt", "text/plain; charset=utf-8")
}

func (h *ExportHandler) Notes(c *gin.Context) {
	h.export(c, "meeting_notes.md", "text/markdown; charset=utf-8")
}

func (h *ExportHandler) export(c *gin.Context, filename, contentType string) {
	const op = "ExportHandler"

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxExportBytes))
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to read request body", err))
		return
	}
	if len(body) == 0 {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "empty body", nil))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}
