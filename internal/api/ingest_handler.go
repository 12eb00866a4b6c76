package api

import (
	"fmt"
	"net/http"

	"LottoSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type IngestHandler struct {
	ingestService *service.IngestService
	logger        *logrus.Logger
}

func NewIngestHandler(ingestService *service.IngestService, logger *logrus.Logger) *IngestHandler {
	return &IngestHandler{
		ingestService: ingestService,
		logger:        logger,
	}
}

// FetchResults 手动触发一次全量摄取
// @Summary 拉取上游开奖历史并入库
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/fetch-results [post]
func (h *IngestHandler) FetchResults(c *gin.Context) {
	summary, err := h.ingestService.Run(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("手动摄取失败")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching results: " + err.Error(),
		})
		return
	}

	// 单期失败不影响本次请求结果，只记日志
	for _, e := range summary.Errors {
		h.logger.WithField("draw_date", e.DrawDate).Warnf("单期写入失败: %s", e.Cause)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Successfully fetched results. %d new results added.", summary.NewCount),
	})
}
