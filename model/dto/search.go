package dto

// DialogueTest 问答查询条件。
// Question/Answer 为空表示该维度不过滤; Keyword 为 true 时按关键词(子串)匹配。
type DialogueTest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Keyword  bool   `json:"keyword"`
}

// SearchRequest 一次搜索请求。
// 合并与重定向展开默认开启, NoMerge/NoRecursive 用于显式关闭。
type SearchRequest struct {
	DialogueTest
	Page        int  `json:"page"`
	NoMerge     bool `json:"no_merge"`
	NoRecursive bool `json:"no_recursive"`
}
