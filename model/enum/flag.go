package enum

// DialogueFlag 问答记录的行为标志位, 按位存储
type DialogueFlag uint32

const (
	// 冻结, 普通用户不可修改
	DialogueFlagFrozen DialogueFlag = 1 << iota
	// 问题按正则匹配
	DialogueFlagRegexp
	// 问题按关键词匹配命中
	DialogueFlagKeyword
)

func (f DialogueFlag) Has(flag DialogueFlag) bool {
	return f&flag != 0
}
