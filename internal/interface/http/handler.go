package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/wellness-tips/internal/domain/profile"
	"github.com/yanqian/wellness-tips/internal/domain/settings"
	"github.com/yanqian/wellness-tips/internal/domain/wellness"
)

const heartbeatInterval = 25 * time.Second

// Handler wires the HTTP transport to domain services.
type Handler struct {
	profileSvc  profile.Service
	tipsSvc     wellness.Service
	settingsSvc settings.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(profileSvc profile.Service, tipsSvc wellness.Service, settingsSvc settings.Service, logger *slog.Logger) *Handler {
	return &Handler{
		profileSvc:  profileSvc,
		tipsSvc:     tipsSvc,
		settingsSvc: settingsSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

type favoriteRequest struct {
	IsFavorite *bool `json:"isFavorite"`
}

type languageRequest struct {
	Language string `json:"language"`
}

// GetProfile returns the stored profile.
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.profileSvc.Get(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SaveProfile validates and replaces the profile.
func (h *Handler) SaveProfile(c *gin.Context) {
	var req profile.UserProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	saved, err := h.profileSvc.Save(c.Request.Context(), req)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteProfile removes the profile.
func (h *Handler) DeleteProfile(c *gin.Context) {
	if err := h.profileSvc.Delete(c.Request.Context()); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ProfileExists answers HEAD probes with 200 once onboarding has completed.
func (h *Handler) ProfileExists(c *gin.Context) {
	ok, err := h.profileSvc.Exists(c.Request.Context())
	if err != nil {
		h.logger.Error("profile lookup failed", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusOK)
}

// ListTips returns the tips of the requested view.
func (h *Handler) ListTips(c *gin.Context) {
	view, ok := wellness.ParseView(c.Query("view"))
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_input", "view must be one of current, favorites, all", nil))
		return
	}
	tips, err := h.tipsSvc.ListTips(c.Request.Context(), view)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": view, "tips": tips})
}

// GetTip returns one tip by id.
func (h *Handler) GetTip(c *gin.Context) {
	tip, err := h.tipsSvc.GetTip(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tip)
}

// GenerateTips produces a fresh batch for the stored profile.
func (h *Handler) GenerateTips(c *gin.Context) {
	tips, err := h.tipsSvc.GenerateTips(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

// ExpandTip fills in the long explanation of a tip.
func (h *Handler) ExpandTip(c *gin.Context) {
	tip, err := h.tipsSvc.ExpandTip(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, tip)
}

// ToggleFavorite applies the smart favorite toggle.
func (h *Handler) ToggleFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if req.IsFavorite == nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "isFavorite is required", nil))
		return
	}
	res, err := h.tipsSvc.ToggleFavorite(c.Request.Context(), c.Param("id"), *req.IsFavorite)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ClearTips deletes every stored tip.
func (h *Handler) ClearTips(c *gin.Context) {
	if err := h.tipsSvc.ClearTips(c.Request.Context()); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TranslateTips translates the current tips without changing the saved language.
func (h *Handler) TranslateTips(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	report, err := h.tipsSvc.TranslateTips(c.Request.Context(), req.Language)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetLanguage returns the saved language and the supported options.
func (h *Handler) GetLanguage(c *gin.Context) {
	lang, err := h.settingsSvc.Language(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"language":  lang,
		"name":      lang.DisplayName(),
		"supported": h.settingsSvc.Supported(),
	})
}

// SetLanguage saves the language and translates the current tips when it changed.
func (h *Handler) SetLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	lang, report, err := h.tipsSvc.SwitchLanguage(c.Request.Context(), req.Language)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": lang, "translation": report})
}

// StreamEvents pushes tip store changes using Server-Sent Events.
func (h *Handler) StreamEvents(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "stream_unsupported", "streaming not supported", nil))
		return
	}
	// The server write timeout would otherwise cut long-lived streams.
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	ctx := c.Request.Context()
	events := h.tipsSvc.Subscribe(ctx)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			c.Writer.Write([]byte(": ping\n\n"))
			flusher.Flush()
		case evt, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(evt)
			if err != nil {
				h.logger.Error("marshal event failed", "error", err)
				continue
			}
			c.Writer.Write([]byte("data: "))
			c.Writer.Write(payload)
			c.Writer.Write([]byte("\n\n"))
			flusher.Flush()
		}
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
