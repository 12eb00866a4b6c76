package model

import "time"

// GameTypeMain 当前唯一的玩法类型
const GameTypeMain = "main"

// DrawRecord 归一化后的单期开奖记录（入库前的中间结构）
// DrawDate 已经是 UTC、秒精度；金额均为欧分
type DrawRecord struct {
	DrawDate      time.Time   // 开奖时间（去重键）
	JackpotAmount int64       // 头奖金额
	Numbers       []int       // 主号码（保持上游顺序）
	BonusNumber   int         // 特别号码
	PrizeTiers    []PrizeTier // 各中奖等级
}

// PrizeTier 单个中奖等级
type PrizeTier struct {
	MatchType   string // 中奖等级标签（如"6"、"5+B"）
	Winners     int    // 中奖人数
	PrizeAmount int64  // 单注奖金
}
