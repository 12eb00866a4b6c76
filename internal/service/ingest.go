package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"LottoSync/internal/interfaces"
	"LottoSync/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DrawError 单期写入失败记录
type DrawError struct {
	DrawDate time.Time `json:"draw_date"`
	Cause    string    `json:"cause"`
}

// IngestionSummary 单轮摄取汇总
type IngestionSummary struct {
	RunID    string      `json:"run_id"`
	NewCount int         `json:"new_count"`
	Errors   []DrawError `json:"errors,omitempty"`
}

// IngestService 摄取编排：拉取→逐期查重→缺失则写入→汇总
// 手动触发与定时触发共用同一个Run契约
type IngestService struct {
	feed   interfaces.FeedClient
	store  interfaces.ResultStore
	logger *logrus.Logger
}

func NewIngestService(feed interfaces.FeedClient, store interfaces.ResultStore, logger *logrus.Logger) *IngestService {
	return &IngestService{
		feed:   feed,
		store:  store,
		logger: logger,
	}
}

// Run 全量摄取一次。拉取失败整轮失败、不产生部分汇总；
// 单期写入失败只记入汇总不中断整轮
func (s *IngestService) Run(ctx context.Context) (*IngestionSummary, error) {
	draws, err := s.feed.FetchDraws(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s拉取失败: %w", s.feed.GetName(), err)
	}

	summary := &IngestionSummary{RunID: uuid.NewString()}

	// 严格顺序处理：同一轮内靠后的查重必须能看到靠前的写入
	for _, d := range draws {
		exists, err := s.store.ExistsByDrawDate(ctx, d.DrawDate)
		if err != nil {
			summary.Errors = append(summary.Errors, DrawError{DrawDate: d.DrawDate, Cause: err.Error()})
			continue
		}
		if exists {
			continue
		}

		if _, err := s.store.CreateResult(ctx, d); err != nil {
			// 唯一约束命中说明并发方已写入同一期，该期已存在，不算失败
			if errors.Is(err, repository.ErrDuplicateDraw) {
				continue
			}
			summary.Errors = append(summary.Errors, DrawError{DrawDate: d.DrawDate, Cause: err.Error()})
			continue
		}
		summary.NewCount++
	}

	s.logger.Infof("摄取完成 run_id=%s 共%d期 新增%d期 失败%d期",
		summary.RunID, len(draws), summary.NewCount, len(summary.Errors))
	return summary, nil
}
