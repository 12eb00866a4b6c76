package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"LottoSync/internal/interfaces"
	"LottoSync/internal/model"

	"gorm.io/gorm"
)

// ErrDuplicateDraw 同一开奖时间的结果已被写入（唯一约束命中，并发场景下视为成功）
var ErrDuplicateDraw = errors.New("该开奖时间的开奖结果已存在")

type ResultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) interfaces.ResultStore {
	return &ResultRepository{db: db}
}

// ExistsByDrawDate 按开奖时间精确查重。入参必须是Feed侧归一化后的时间，
// 否则两次运行间的表示漂移会让去重悄悄失效
func (r *ResultRepository) ExistsByDrawDate(ctx context.Context, drawDate time.Time) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.LotteryResult{}).
		Where("draw_date = ?", drawDate).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("查询开奖结果失败: %w", err)
	}
	return count > 0, nil
}

// CreateResult 单期结果及两张子表在同一事务内写入；任一步失败整体回滚，
// 不会留下会被下次查重误判为"已摄取"的孤立父记录
func (r *ResultRepository) CreateResult(ctx context.Context, rec *model.DrawRecord) (uint64, error) {
	numbersJSON, err := json.Marshal(rec.Numbers)
	if err != nil {
		return 0, fmt.Errorf("序列化中奖号码失败: %w", err)
	}

	// 开启事务
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, fmt.Errorf("开启事务失败: %w", tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
		}
	}()

	// 1. 保存LotteryResult，拿到生成的ID
	result := &model.LotteryResult{
		DrawDate:      rec.DrawDate,
		JackpotAmount: rec.JackpotAmount,
	}
	if err := tx.Create(result).Error; err != nil {
		tx.Rollback()
		// 唯一约束是并发双写下真正的安全网，查重SELECT只是优化
		if isDuplicateDrawErr(err) {
			return 0, ErrDuplicateDraw
		}
		return 0, fmt.Errorf("保存开奖结果失败: %w", err)
	}

	// 2. 保存WinningNumbers
	numbers := &model.WinningNumbers{
		ResultID:    result.ID,
		GameType:    model.GameTypeMain,
		Numbers:     numbersJSON,
		BonusNumber: rec.BonusNumber,
	}
	if err := tx.Create(numbers).Error; err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("保存中奖号码失败: %w", err)
	}

	// 3. 逐等级保存PrizeBreakdown
	for _, tier := range rec.PrizeTiers {
		row := &model.PrizeBreakdown{
			ResultID:    result.ID,
			GameType:    model.GameTypeMain,
			MatchType:   tier.MatchType,
			Winners:     tier.Winners,
			PrizeAmount: tier.PrizeAmount,
		}
		if err := tx.Create(row).Error; err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("保存中奖等级失败: %w, match: %s", err, tier.MatchType)
		}
	}

	// 提交事务
	if err := tx.Commit().Error; err != nil {
		return 0, fmt.Errorf("提交事务失败: %w", err)
	}
	return result.ID, nil
}

// isDuplicateDrawErr 识别draw_date唯一约束冲突（兼容postgres与sqlite的报错文案）
func isDuplicateDrawErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	if !strings.Contains(msg, "draw_date") && !strings.Contains(msg, "uk_draw_date") {
		return false
	}
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
