package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// StartIngestScheduler 启动定时摄取：启动时先跑一次，此后每interval执行一次。
// 定时路径没有调用方等待响应，汇总仅记录日志后丢弃。返回停止函数。
func StartIngestScheduler(ctx context.Context, svc *IngestService, interval time.Duration, logger *logrus.Logger) func() {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	ticker := time.NewTicker(interval)
	stopChan := make(chan struct{})

	runOnce := func() {
		summary, err := svc.Run(ctx)
		if err != nil {
			logger.WithError(err).Error("定时摄取失败")
			return
		}
		for _, e := range summary.Errors {
			logger.WithField("draw_date", e.DrawDate).Warnf("单期写入失败: %s", e.Cause)
		}
	}

	go func() {
		logger.Infof("定时摄取已启动，间隔%s", interval)
		runOnce()

		for {
			select {
			case <-ctx.Done():
				logger.Info("定时摄取停止（context已取消）")
				return
			case <-stopChan:
				logger.Info("定时摄取停止")
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(stopChan)
	}
}
