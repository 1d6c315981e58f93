package user

import (
	"context"

	"gitee.com/taoJie_1/dialogue-bot/model/db"
)

// DefaultWeigher 默认的触发概率计算:
// 对每条问答的权重求和, 超过1时封顶为1。
type DefaultWeigher struct{}

func (DefaultWeigher) TotalWeight(_ context.Context, dialogues []db.Dialogues) (float64, error) {
	var total float64
	for i := range dialogues {
		total += dialogues[i].Weight
	}
	if total > 1 {
		total = 1
	}
	return total, nil
}
