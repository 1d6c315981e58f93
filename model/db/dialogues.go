package db

// Dialogues 问答记录表。
// Answer 可能本身是一条重定向表达式(形如 ${dialogue 目标问题})，
// 解析工作由 service 层完成, 存储层不感知。
type Dialogues struct {
	BaseField
	Original string  `db:"original" json:"original" info:"问题原文"`
	Answer   string  `db:"answer" json:"answer" info:"回答"`
	Flag     uint32  `db:"flag" json:"flag" info:"标志位"`
	Weight   float64 `db:"weight" json:"weight" info:"触发权重"`
}

func (Dialogues) TableName() string {
	return `dialogues`
}
