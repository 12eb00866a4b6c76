package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"LottoSync/internal/model"
)

func seedResults(t *testing.T, store interface {
	CreateResult(ctx context.Context, rec *model.DrawRecord) (uint64, error)
}, n int) []time.Time {
	t.Helper()
	base := time.Date(2024, 1, 6, 20, 0, 0, 0, time.UTC)
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		d := base.AddDate(0, 0, i*3)
		rec := sampleDraw(d)
		rec.PrizeTiers = []model.PrizeTier{
			{MatchType: "6", Winners: i, PrizeAmount: int64(100000 * (i + 1))},
		}
		_, err := store.CreateResult(context.Background(), rec)
		require.NoError(t, err, fmt.Sprintf("seed draw %d", i))
		dates = append(dates, d)
	}
	return dates
}

func TestListResultsOrderAndPagination(t *testing.T) {
	db := setupTestDB(t)
	store := NewResultRepository(db)
	repo := NewArchiveRepository(db)
	ctx := context.Background()

	dates := seedResults(t, store, 25)

	results, total, err := repo.ListResults(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(25), total)
	require.Len(t, results, 10)
	// 开奖时间倒序：第一条是最新一期
	require.True(t, dates[24].Equal(results[0].DrawDate))
	require.True(t, results[0].DrawDate.After(results[9].DrawDate))

	results, total, err = repo.ListResults(ctx, 3, 10)
	require.NoError(t, err)
	require.Equal(t, int64(25), total)
	require.Len(t, results, 5)

	// 超范围页码返回空切片，不是错误
	results, _, err = repo.ListResults(ctx, 5, 10)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestGetResultByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArchiveRepository(db)

	_, err := repo.GetResultByID(context.Background(), 12345)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetChildRowsByResultIDs(t *testing.T) {
	db := setupTestDB(t)
	store := NewResultRepository(db)
	repo := NewArchiveRepository(db)
	ctx := context.Background()

	seedResults(t, store, 3)

	results, _, err := repo.ListResults(ctx, 1, 10)
	require.NoError(t, err)
	ids := []uint64{results[0].ID, results[1].ID}

	numbers, err := repo.GetWinningNumbersByResultIDs(ctx, ids)
	require.NoError(t, err)
	require.Len(t, numbers, 2)

	prizes, err := repo.GetPrizeBreakdownByResultIDs(ctx, ids)
	require.NoError(t, err)
	require.Len(t, prizes, 2)

	numbers, err = repo.GetWinningNumbersByResultIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, numbers)

	count, err := repo.CountResults(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
}
