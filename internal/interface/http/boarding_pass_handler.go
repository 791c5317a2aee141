package http

import (
	"errors"
	"net/http"
	"strconv"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/interface/artifact"
	"boardingpass-service/internal/usecase"
	"boardingpass-service/pkg/logger"
	"boardingpass-service/templates"

	"github.com/gin-gonic/gin"
)

const maxQRSize = 1000

// BoardingPassHandler serves the boarding pass HTTP API and pages
type BoardingPassHandler struct {
	service usecase.BoardingPassUseCase
	logger  logger.Logger
}

// NewBoardingPassHandler creates a new handler
func NewBoardingPassHandler(service usecase.BoardingPassUseCase, logger logger.Logger) *BoardingPassHandler {
	return &BoardingPassHandler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the routes on router
func (h *BoardingPassHandler) Register(router gin.IRouter) {
	router.GET("/", h.page("index.html"))
	router.GET("/view", h.page("view.html"))
	router.GET("/admin", h.admin)
	router.POST("/generate", h.generate)

	api := router.Group("/api")
	api.GET("/pass/:id", h.getPass)
	api.GET("/pass/:id/qr.png", h.passQR)
	api.GET("/passes", h.listPasses)
}

type generateResponse struct {
	Message string                 `json:"message"`
	Passes  []*entity.BoardingPass `json:"passes"`
}

func (h *BoardingPassHandler) generate(c *gin.Context) {
	var req entity.IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	passes, err := h.service.IssueBatch(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, entity.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.serverError(c, "Failed to issue boarding passes", err)
		return
	}

	c.JSON(http.StatusOK, generateResponse{
		Message: "Boarding passes generated and sent",
		Passes:  passes,
	})
}

func (h *BoardingPassHandler) getPass(c *gin.Context) {
	pass, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, pass)
}

func (h *BoardingPassHandler) passQR(c *gin.Context) {
	size := artifact.QRSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxQRSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
			return
		}
		size = parsed
	}

	pass, ok := h.lookup(c)
	if !ok {
		return
	}

	png, err := artifact.RenderQRPNG(pass.ID, size)
	if err != nil {
		h.serverError(c, "Failed to render QR code", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *BoardingPassHandler) listPasses(c *gin.Context) {
	passes, err := h.service.ListPasses(c.Request.Context())
	if err != nil {
		h.serverError(c, "Failed to list boarding passes", err)
		return
	}
	c.JSON(http.StatusOK, passes)
}

func (h *BoardingPassHandler) admin(c *gin.Context) {
	passes, err := h.service.ListPasses(c.Request.Context())
	if err != nil {
		h.serverError(c, "Failed to list boarding passes", err)
		return
	}
	c.HTML(http.StatusOK, "admin.html", gin.H{"Passes": passes})
}

func (h *BoardingPassHandler) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := templates.Page(name)
		if err != nil {
			h.serverError(c, "Failed to load page", err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", body)
	}
}

// lookup writes the 404/500 response itself when ok is false
func (h *BoardingPassHandler) lookup(c *gin.Context) (*entity.BoardingPass, bool) {
	pass, err := h.service.GetPass(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, entity.ErrPassNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Boarding pass not found"})
			return nil, false
		}
		h.serverError(c, "Failed to get boarding pass", err)
		return nil, false
	}
	return pass, true
}

func (h *BoardingPassHandler) serverError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, "path", c.FullPath(), "requestID", c.GetString(RequestIDKey), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error", "details": err.Error()})
}
