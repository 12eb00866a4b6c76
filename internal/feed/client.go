package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"LottoSync/internal/config"
	"LottoSync/internal/interfaces"
	"LottoSync/internal/model"
	"LottoSync/internal/utils/httpclient"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	// ErrUpstreamUnavailable 网络失败或非2xx响应
	ErrUpstreamUnavailable = errors.New("上游开奖接口不可用")
	// ErrUpstreamFormat 响应结构缺失预期字段
	ErrUpstreamFormat = errors.New("上游开奖数据格式异常")
)

// Client lottery.ie 开奖历史数据源
type Client struct {
	cfg        *config.UpstreamConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewLotteryClient(cfg *config.UpstreamConfig, logger *logrus.Logger) interfaces.FeedClient {
	return &Client{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

func (c *Client) GetName() string {
	return "lottery.ie"
}

// FetchDraws 单次GET全量开奖历史并归一化。归一化只在此处做一次：
// 开奖时间转UTC秒精度，金额转欧分。不做重试（重试策略归调度方）。
func (c *Client) FetchDraws(ctx context.Context) ([]*model.DrawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.HistoryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: 构建请求失败: %v", ErrUpstreamUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: 请求失败: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: 状态码%d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var history model.LotteryHistoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		return nil, fmt.Errorf("%w: 解析响应失败: %v", ErrUpstreamFormat, err)
	}
	if len(history.PageProps.List) == 0 {
		return nil, fmt.Errorf("%w: pageProps.list缺失或为空", ErrUpstreamFormat)
	}

	draws := make([]*model.DrawRecord, 0, len(history.PageProps.List))
	for i, item := range history.PageProps.List {
		rec, err := c.convertItem(&item)
		if err != nil {
			return nil, fmt.Errorf("%w: 第%d条记录: %v", ErrUpstreamFormat, i, err)
		}
		draws = append(draws, rec)
	}

	c.logger.Infof("%s拉取完成，共%d期开奖记录", c.GetName(), len(draws))
	return draws, nil
}

// convertItem 单期条目转归一化DrawRecord（保持上游顺序由调用方负责）
func (c *Client) convertItem(item *model.LotteryHistoryItem) (*model.DrawRecord, error) {
	std := item.Standard
	if std == nil {
		return nil, fmt.Errorf("standard字段缺失")
	}
	if len(std.DrawDates) == 0 {
		return nil, fmt.Errorf("standard.drawDates缺失")
	}
	if len(std.Grids) == 0 || len(std.Grids[0].Standard) == 0 ||
		len(std.Grids[0].Additional) == 0 || len(std.Grids[0].Additional[0]) == 0 {
		return nil, fmt.Errorf("standard.grids号码矩阵缺失")
	}

	drawDate, err := parseDrawDate(std.DrawDates[0])
	if err != nil {
		return nil, fmt.Errorf("解析开奖时间失败: %v", err)
	}

	tiers := make([]model.PrizeTier, 0, len(std.PrizeTiers))
	for _, p := range std.PrizeTiers {
		tiers = append(tiers, model.PrizeTier{
			MatchType:   p.Match,
			Winners:     p.Winners,
			PrizeAmount: eurosToCents(p.Prize),
		})
	}

	return &model.DrawRecord{
		DrawDate:      drawDate,
		JackpotAmount: eurosToCents(std.JackpotAmount),
		Numbers:       std.Grids[0].Standard[0],
		BonusNumber:   std.Grids[0].Additional[0][0],
		PrizeTiers:    tiers,
	}, nil
}

// parseDrawDate 解析上游时间串并归一化为UTC秒精度
// 无时区后缀的时间串按UTC处理，避免两次运行间表示漂移破坏去重
func parseDrawDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Truncate(time.Second), nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.Truncate(time.Second), nil
}

// eurosToCents 欧元转欧分（四舍五入），全链路只在此转换一次
func eurosToCents(euros float64) int64 {
	return decimal.NewFromFloat(euros).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
