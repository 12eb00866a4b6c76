package api

import (
	"errors"
	"net/http"
	"strconv"

	"LottoSync/internal/repository"
	"LottoSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ResultsHandler 提供给前端的开奖结果查询接口
type ResultsHandler struct {
	resultsService *service.ResultsService
	logger         *logrus.Logger
}

// NewResultsHandler 创建 ResultsHandler
func NewResultsHandler(db *gorm.DB, logger *logrus.Logger) *ResultsHandler {
	repo := repository.NewArchiveRepository(db)
	svc := service.NewResultsService(repo, logger)
	return &ResultsHandler{
		resultsService: svc,
		logger:         logger,
	}
}

// ListResults 开奖结果列表接口（开奖时间倒序）
// GET /api/results?page=1&limit=10
func (h *ResultsHandler) ListResults(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.resultsService.ListResults(c.Request.Context(), page, limit)
	if err != nil {
		h.logger.WithError(err).Error("ListResults failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetResult 单期开奖详情
// GET /api/results/:id
func (h *ResultsHandler) GetResult(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	item, err := h.resultsService.GetResult(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
			return
		}
		h.logger.WithError(err).Error("GetResult failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}
