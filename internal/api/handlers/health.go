package handlers

import (
	"net/http"

	"github.com/osa911/inquiry-mailer/internal/api/dto/common"
	"github.com/osa911/inquiry-mailer/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.HealthResponse{
		Status:  "ok",
		Version: version.Version,
	})
}
