package model

// LotteryHistoryResponse lottery.ie 开奖历史接口的外层结构
type LotteryHistoryResponse struct {
	PageProps LotteryPageProps `json:"pageProps"`
}

type LotteryPageProps struct {
	List []LotteryHistoryItem `json:"list"` // 全量开奖历史列表
}

// LotteryHistoryItem 单期开奖条目（standard 为主玩法数据）
type LotteryHistoryItem struct {
	Standard *LotteryStandardDraw `json:"standard"`
}

// LotteryStandardDraw 主玩法开奖数据
type LotteryStandardDraw struct {
	DrawDates     []string          `json:"drawDates"`     // 开奖时间列表（取第一个元素）
	JackpotAmount float64           `json:"jackpotAmount"` // 头奖金额（欧元）
	Grids         []LotteryDrawGrid `json:"grids"`         // 号码矩阵（取第一个grid）
	PrizeTiers    []LotteryPrizeRow `json:"prizeTiers"`    // 中奖等级列表
}

// LotteryDrawGrid 号码矩阵：standard[0]为主号码，additional[0][0]为特别号码
type LotteryDrawGrid struct {
	Standard   [][]int `json:"standard"`
	Additional [][]int `json:"additional"`
}

// LotteryPrizeRow 单个中奖等级（match为等级标签，prize为欧元金额）
type LotteryPrizeRow struct {
	Match   string  `json:"match"`
	Winners int     `json:"winners"`
	Prize   float64 `json:"prize"`
}
