package interfaces

import (
	"context"
	"time"

	"LottoSync/internal/model"
)

// FeedClient 上游开奖数据源必须实现的核心接口
type FeedClient interface {
	GetName() string                                             // 数据源名称
	FetchDraws(ctx context.Context) ([]*model.DrawRecord, error) // 拉取并归一化全量开奖历史
}

// ResultStore 摄取侧的数据库操作接口
type ResultStore interface {
	// ExistsByDrawDate 按开奖时间精确查重（去重键）
	ExistsByDrawDate(ctx context.Context, drawDate time.Time) (bool, error)
	// CreateResult 事务写入单期结果及其子表，返回生成的结果ID
	CreateResult(ctx context.Context, rec *model.DrawRecord) (uint64, error)
}
