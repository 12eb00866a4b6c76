package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"LottoSync/internal/model"
	"LottoSync/internal/repository"
)

func TestSchedulerRunsOnStartup(t *testing.T) {
	db := setupTestDB(t)
	store := repository.NewResultRepository(db)
	drawDate := time.Date(2024, 1, 6, 20, 0, 0, 0, time.UTC)
	svc := NewIngestService(&fakeFeed{draws: []*model.DrawRecord{testDraw(drawDate)}}, store, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 间隔设长，只验证启动时立即执行的那一轮
	stop := StartIngestScheduler(ctx, svc, time.Hour, testLogger())
	defer stop()

	deadline := time.Now().Add(5 * time.Second)
	for {
		var total int64
		require.NoError(t, db.Model(&model.LotteryResult{}).Count(&total).Error)
		if total == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("定时摄取未在期限内完成，当前期数: %d", total)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
