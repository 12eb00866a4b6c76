package repository

import (
	"context"

	"LottoSync/internal/model"

	"gorm.io/gorm"
)

// ArchiveRepository 面向前端查询的开奖结果仓储接口（只读路径）
type ArchiveRepository interface {
	// ListResults 按开奖时间倒序分页查询
	ListResults(ctx context.Context, page, limit int) ([]*model.LotteryResult, int64, error)
	// GetResultByID 按ID获取单期结果
	GetResultByID(ctx context.Context, id uint64) (*model.LotteryResult, error)
	// GetWinningNumbersByResultIDs 批量查询号码子表
	GetWinningNumbersByResultIDs(ctx context.Context, resultIDs []uint64) ([]*model.WinningNumbers, error)
	// GetPrizeBreakdownByResultIDs 批量查询奖级子表
	GetPrizeBreakdownByResultIDs(ctx context.Context, resultIDs []uint64) ([]*model.PrizeBreakdown, error)
	// CountResults 已存储的开奖总期数
	CountResults(ctx context.Context) (int64, error)
}

type archiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &archiveRepository{db: db}
}

// ListResults 按开奖时间倒序分页查询
func (r *archiveRepository) ListResults(ctx context.Context, page, limit int) ([]*model.LotteryResult, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	db := r.db.WithContext(ctx).Model(&model.LotteryResult{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*model.LotteryResult
	if err := db.
		Order("draw_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// GetResultByID 按ID获取单期结果，未找到时透传gorm.ErrRecordNotFound
func (r *archiveRepository) GetResultByID(ctx context.Context, id uint64) (*model.LotteryResult, error) {
	var result model.LotteryResult
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// GetWinningNumbersByResultIDs 批量查询号码子表
func (r *archiveRepository) GetWinningNumbersByResultIDs(ctx context.Context, resultIDs []uint64) ([]*model.WinningNumbers, error) {
	if len(resultIDs) == 0 {
		return []*model.WinningNumbers{}, nil
	}
	var rows []*model.WinningNumbers
	if err := r.db.WithContext(ctx).
		Where("result_id IN ?", resultIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetPrizeBreakdownByResultIDs 批量查询奖级子表
func (r *archiveRepository) GetPrizeBreakdownByResultIDs(ctx context.Context, resultIDs []uint64) ([]*model.PrizeBreakdown, error) {
	if len(resultIDs) == 0 {
		return []*model.PrizeBreakdown{}, nil
	}
	var rows []*model.PrizeBreakdown
	if err := r.db.WithContext(ctx).
		Where("result_id IN ?", resultIDs).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountResults 已存储的开奖总期数
func (r *archiveRepository) CountResults(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.LotteryResult{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
