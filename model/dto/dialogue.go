package dto

// DialogueImport 批量导入中的单条问答
type DialogueImport struct {
	Original string  `json:"original" binding:"required"`
	Answer   string  `json:"answer" binding:"required"`
	Flag     uint32  `json:"flag"`
	Weight   float64 `json:"weight"`
}

// ImportRequest 批量导入问答的请求体
type ImportRequest struct {
	Items []DialogueImport `json:"items" binding:"required,min=1,dive"`
}

// UpdateDialogueRequest 更新单条问答的请求体, 为nil的字段不更新
type UpdateDialogueRequest struct {
	Answer *string  `json:"answer"`
	Flag   *uint32  `json:"flag"`
	Weight *float64 `json:"weight"`
}

// SuggestRequest 是 AI 问法生成助手的请求体。
// Type 为 'keyword' 时按关键词扩写, 否则按答案内容逆向生成问题。
type SuggestRequest struct {
	Context string `json:"context" binding:"required"`
	Type    string `json:"type"`
}

// SuggestResponse 是 AI 问法生成助手的响应体。
type SuggestResponse struct {
	Questions []string `json:"questions"`
}
