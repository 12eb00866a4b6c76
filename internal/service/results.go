package service

import (
	"context"
	"encoding/json"
	"time"

	"LottoSync/internal/model"
	"LottoSync/internal/repository"

	"github.com/sirupsen/logrus"
)

// ResultsService 面向前端的开奖结果查询服务（只读）
type ResultsService struct {
	repo   repository.ArchiveRepository
	logger *logrus.Logger
}

func NewResultsService(repo repository.ArchiveRepository, logger *logrus.Logger) *ResultsService {
	return &ResultsService{
		repo:   repo,
		logger: logger,
	}
}

// WinningNumbersView 号码子表DTO（numbers列反序列化为数组）
type WinningNumbersView struct {
	GameType    string `json:"game_type"`
	Numbers     []int  `json:"numbers"`
	BonusNumber int    `json:"bonus_number"`
}

// PrizeRowView 奖级子表DTO
type PrizeRowView struct {
	GameType    string `json:"game_type"`
	MatchType   string `json:"match_type"`
	Winners     int    `json:"winners"`
	PrizeAmount int64  `json:"prize_amount"`
}

// ResultItem 单期开奖DTO
type ResultItem struct {
	ID             uint64               `json:"id"`
	DrawDate       string               `json:"draw_date"` // RFC3339 UTC
	JackpotAmount  int64                `json:"jackpot_amount"`
	WinningNumbers []WinningNumbersView `json:"winning_numbers"`
	PrizeBreakdown []PrizeRowView       `json:"prize_breakdown"`
}

// Pagination 分页信息
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ResultListResponse 列表返回
type ResultListResponse struct {
	Results    []ResultItem `json:"results"`
	Pagination Pagination   `json:"pagination"`
}

// ListResults 按开奖时间倒序分页返回。超范围页码返回空列表而非错误
func (s *ResultsService) ListResults(ctx context.Context, page, limit int) (*ResultListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	results, total, err := s.repo.ListResults(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	resp := &ResultListResponse{
		Results: make([]ResultItem, 0, len(results)),
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		},
	}
	if len(results) == 0 {
		return resp, nil
	}

	resultIDs := make([]uint64, 0, len(results))
	for _, r := range results {
		resultIDs = append(resultIDs, r.ID)
	}

	numbers, err := s.repo.GetWinningNumbersByResultIDs(ctx, resultIDs)
	if err != nil {
		return nil, err
	}
	prizes, err := s.repo.GetPrizeBreakdownByResultIDs(ctx, resultIDs)
	if err != nil {
		return nil, err
	}

	numbersByResult := make(map[uint64][]WinningNumbersView, len(numbers))
	for _, n := range numbers {
		numbersByResult[n.ResultID] = append(numbersByResult[n.ResultID], s.toNumbersView(n))
	}
	prizesByResult := make(map[uint64][]PrizeRowView, len(prizes))
	for _, p := range prizes {
		prizesByResult[p.ResultID] = append(prizesByResult[p.ResultID], toPrizeView(p))
	}

	for _, r := range results {
		resp.Results = append(resp.Results, s.assembleItem(r, numbersByResult[r.ID], prizesByResult[r.ID]))
	}
	return resp, nil
}

// GetResult 按ID返回单期详情，未找到时透传gorm.ErrRecordNotFound
func (s *ResultsService) GetResult(ctx context.Context, id uint64) (*ResultItem, error) {
	result, err := s.repo.GetResultByID(ctx, id)
	if err != nil {
		return nil, err
	}

	numbers, err := s.repo.GetWinningNumbersByResultIDs(ctx, []uint64{result.ID})
	if err != nil {
		return nil, err
	}
	prizes, err := s.repo.GetPrizeBreakdownByResultIDs(ctx, []uint64{result.ID})
	if err != nil {
		return nil, err
	}

	numbersViews := make([]WinningNumbersView, 0, len(numbers))
	for _, n := range numbers {
		numbersViews = append(numbersViews, s.toNumbersView(n))
	}
	prizeViews := make([]PrizeRowView, 0, len(prizes))
	for _, p := range prizes {
		prizeViews = append(prizeViews, toPrizeView(p))
	}

	item := s.assembleItem(result, numbersViews, prizeViews)
	return &item, nil
}

func (s *ResultsService) assembleItem(r *model.LotteryResult, numbers []WinningNumbersView, prizes []PrizeRowView) ResultItem {
	if numbers == nil {
		numbers = []WinningNumbersView{}
	}
	if prizes == nil {
		prizes = []PrizeRowView{}
	}
	return ResultItem{
		ID:             r.ID,
		DrawDate:       r.DrawDate.UTC().Format(time.RFC3339),
		JackpotAmount:  r.JackpotAmount,
		WinningNumbers: numbers,
		PrizeBreakdown: prizes,
	}
}

// toNumbersView numbers列存的是JSON数组文本，读取时解析回数组
func (s *ResultsService) toNumbersView(n *model.WinningNumbers) WinningNumbersView {
	var nums []int
	if err := json.Unmarshal(n.Numbers, &nums); err != nil {
		s.logger.WithError(err).WithField("result_id", n.ResultID).Warn("解析中奖号码失败")
		nums = []int{}
	}
	return WinningNumbersView{
		GameType:    n.GameType,
		Numbers:     nums,
		BonusNumber: n.BonusNumber,
	}
}

func toPrizeView(p *model.PrizeBreakdown) PrizeRowView {
	return PrizeRowView{
		GameType:    p.GameType,
		MatchType:   p.MatchType,
		Winners:     p.Winners,
		PrizeAmount: p.PrizeAmount,
	}
}
