package model

import (
	"time"

	"gorm.io/datatypes"
)

type LotteryResult struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	DrawDate      time.Time `gorm:"column:draw_date;type:timestamp;uniqueIndex:uk_draw_date;not null;comment:开奖时间（UTC秒精度，去重键）"`
	JackpotAmount int64     `gorm:"column:jackpot_amount;type:bigint;not null;comment:头奖金额（欧分）"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime;comment:创建时间"`
}

type WinningNumbers struct {
	ID          uint64         `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	ResultID    uint64         `gorm:"column:result_id;type:bigint;not null;uniqueIndex:uk_result_game;comment:关联开奖结果ID"`
	GameType    string         `gorm:"column:game_type;type:varchar(16);not null;uniqueIndex:uk_result_game;comment:玩法类型（当前仅main）"`
	Numbers     datatypes.JSON `gorm:"column:numbers;type:jsonb;not null;comment:中奖号码（JSON数组，读取时再解析）"`
	BonusNumber int            `gorm:"column:bonus_number;type:int;not null;comment:特别号码"`
}

type PrizeBreakdown struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	ResultID    uint64 `gorm:"column:result_id;type:bigint;not null;index;comment:关联开奖结果ID"`
	GameType    string `gorm:"column:game_type;type:varchar(16);not null;comment:玩法类型（当前仅main）"`
	MatchType   string `gorm:"column:match_type;type:varchar(32);not null;comment:中奖等级（如6、5+B）"`
	Winners     int    `gorm:"column:winners;type:int;not null;comment:中奖人数"`
	PrizeAmount int64  `gorm:"column:prize_amount;type:bigint;not null;comment:单注奖金（欧分）"`
}

func (LotteryResult) TableName() string  { return "lottery_results" }
func (WinningNumbers) TableName() string { return "winning_numbers" }
func (PrizeBreakdown) TableName() string { return "prize_breakdown" }
