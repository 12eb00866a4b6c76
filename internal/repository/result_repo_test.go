package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"LottoSync/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "lotto.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(
		&model.LotteryResult{},
		&model.WinningNumbers{},
		&model.PrizeBreakdown{},
	))
	return db
}

func sampleDraw(drawDate time.Time) *model.DrawRecord {
	return &model.DrawRecord{
		DrawDate:      drawDate,
		JackpotAmount: 5000000,
		Numbers:       []int{3, 7, 12, 19, 25, 41},
		BonusNumber:   9,
		PrizeTiers: []model.PrizeTier{
			{MatchType: "6", Winners: 0, PrizeAmount: 5000000},
			{MatchType: "5+B", Winners: 1, PrizeAmount: 250000},
		},
	}
}

func TestCreateResultWritesParentAndChildren(t *testing.T) {
	db := setupTestDB(t)
	store := NewResultRepository(db)
	ctx := context.Background()

	drawDate := time.Date(2024, 1, 6, 20, 0, 0, 0, time.UTC)
	id, err := store.CreateResult(ctx, sampleDraw(drawDate))
	require.NoError(t, err)
	require.NotZero(t, id)

	var result model.LotteryResult
	require.NoError(t, db.Where("id = ?", id).First(&result).Error)
	require.Equal(t, int64(5000000), result.JackpotAmount)
	require.True(t, drawDate.Equal(result.DrawDate))

	var numbers []model.WinningNumbers
	require.NoError(t, db.Where("result_id = ?", id).Find(&numbers).Error)
	require.Len(t, numbers, 1)
	require.Equal(t, model.GameTypeMain, numbers[0].GameType)
	require.Equal(t, 9, numbers[0].BonusNumber)
	require.JSONEq(t, `[3,7,12,19,25,41]`, string(numbers[0].Numbers))

	var prizes []model.PrizeBreakdown
	require.NoError(t, db.Where("result_id = ?", id).Find(&prizes).Error)
	require.Len(t, prizes, 2)
	require.Equal(t, "6", prizes[0].MatchType)
	require.Equal(t, 0, prizes[0].Winners)
	require.Equal(t, "5+B", prizes[1].MatchType)
	require.Equal(t, int64(250000), prizes[1].PrizeAmount)
}

func TestExistsByDrawDate(t *testing.T) {
	db := setupTestDB(t)
	store := NewResultRepository(db)
	ctx := context.Background()

	drawDate := time.Date(2024, 1, 6, 20, 0, 0, 0, time.UTC)

	exists, err := store.ExistsByDrawDate(ctx, drawDate)
	require.NoError(t, err)
	require.False(t, exists)

	_, err = store.CreateResult(ctx, sampleDraw(drawDate))
	require.NoError(t, err)

	exists, err = store.ExistsByDrawDate(ctx, drawDate)
	require.NoError(t, err)
	require.True(t, exists)

	// 不同开奖时间互不影响
	exists, err = store.ExistsByDrawDate(ctx, drawDate.Add(72*time.Hour))
	require.NoError(t, err)
	require.False(t, exists)
}

func TestCreateResultDuplicateDrawDate(t *testing.T) {
	db := setupTestDB(t)
	store := NewResultRepository(db)
	ctx := context.Background()

	drawDate := time.Date(2024, 1, 6, 20, 0, 0, 0, time.UTC)

	_, err := store.CreateResult(ctx, sampleDraw(drawDate))
	require.NoError(t, err)

	_, err = store.CreateResult(ctx, sampleDraw(drawDate))
	require.ErrorIs(t, err, ErrDuplicateDraw)

	// 第二次写入整体回滚：父表仍1行，子表无冗余行
	var resultCount, numbersCount, prizeCount int64
	require.NoError(t, db.Model(&model.LotteryResult{}).Count(&resultCount).Error)
	require.NoError(t, db.Model(&model.WinningNumbers{}).Count(&numbersCount).Error)
	require.NoError(t, db.Model(&model.PrizeBreakdown{}).Count(&prizeCount).Error)
	require.Equal(t, int64(1), resultCount)
	require.Equal(t, int64(1), numbersCount)
	require.Equal(t, int64(2), prizeCount)
}
