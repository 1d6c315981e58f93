package enum

// 搜索结果展示使用的文案。
// 模板中的占位符由 fmt.Sprintf 填充，修改时需保持动词数量一致(见 text_test.go)。
const (
	TextImagePlaceholder = `[图片]`
	TextKeywordTag       = `关键词`
	TextRegexpTag        = `正则`
	TextFrozenTag        = `锁定`
	TextImageTag         = `图片`
	TextQuestionLabel    = `问题`
	TextAnswerLabel      = `回答`

	// 列表头, 占位: 标题
	TextListHeader = `%s：`
	// 分页列表头, 占位: 标题, 当前页, 总页数
	TextPageHeader = `%s（第 %d/%d 页）：`
	// 分页提示尾行
	TextPageTrailer = `可以使用 -p 参数翻页。`

	TitleQuestion        = `问题“%s”的回答如下`
	TitleAnswer          = `回答“%s”的问题如下`
	TitleQA              = `“%s”“%s”的搜索结果如下`
	TitleKeywordQuestion = `问题关键词“%s”的搜索结果如下`
	TitleKeywordAnswer   = `回答关键词“%s”的搜索结果如下`
	TitleKeywordQA       = `问答关键词“%s”“%s”的搜索结果如下`

	MsgNoQuestionForAnswer = `没有搜索到回答“%s”，请尝试使用关键词匹配。`
	MsgNoAnswerForQuestion = `没有搜索到问题“%s”，请尝试使用关键词匹配。`
	MsgNoQA                = `没有搜索到问答“%s”“%s”，请尝试使用关键词匹配。`
	MsgNoKeywordQuestion   = `没有搜索到含有关键词“%s”的问题。`
	MsgNoKeywordAnswer     = `没有搜索到含有关键词“%s”的回答。`
	MsgNoKeywordQA         = `没有搜索到含有关键词“%s”“%s”的问答。`
	MsgEmptyTest           = `请输入要搜索的问题或回答。`

	// 合并行: 组内成员数量超过阈值时的计数形式, 占位: 组键, 数量, 名词(问题/回答)
	TextMergeCount = `%s (共 %d 个%s)`

	// 触发权重后缀, 占位: 百分比数值
	SuffixTriggerWeight = `其中任一回答的触发概率合计为 %v%%。`
)
