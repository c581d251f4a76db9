package handler

import (
	"bytes"
	"net/http"

	"jokipro/internal/clock"
	"jokipro/internal/logger"
	"jokipro/internal/model"
	"jokipro/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	auth  *service.AuthService
	data  *service.DataService
	clock clock.Clock
}

func NewSettingsHandler(auth *service.AuthService, data *service.DataService, c clock.Clock) *SettingsHandler {
	return &SettingsHandler{auth: auth, data: data, clock: c}
}

// POST /api/settings/password
func (h *SettingsHandler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	uid := c.GetInt("user_id")
	if err := h.auth.ChangePassword(c.Request.Context(), uid, req.OldPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		logger.Warn("password.change_failed", "uid", uid, "err", err)
		fail(c, err)
		return
	}
	logger.Info("password.changed", "uid", uid)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GET /api/settings/export
func (h *SettingsHandler) Export(c *gin.Context) {
	now := h.clock.Now()
	var buf bytes.Buffer
	if err := h.data.ExportCSV(c.Request.Context(), &buf, now); err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+service.BackupFilename(now))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// POST /api/settings/reset
func (h *SettingsHandler) Reset(c *gin.Context) {
	if err := h.data.ResetAll(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	logger.Warn("data.reset", "uid", c.GetInt("user_id"))
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
