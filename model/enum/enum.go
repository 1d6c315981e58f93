package enum

type DbType string

const (
	MYSQL  DbType = `mysql`
	SQLITE DbType = `sqlite3`
)

type Msg string

const (
	DefaultSuccessMsg Msg = `ok`
	DefaultFailMsg    Msg = `错误`
)

type ResCode int8

const (
	SuccessCode   ResCode = 0
	ErrorCode     ResCode = 1
	AuthErrorCode ResCode = 2
)

type LlmSize string

const (
	ModelSmall  LlmSize = "small"
	ModelMedium LlmSize = "medium"
	ModelLarge  LlmSize = "large"
)

type SystemPrompt string

const (
	SystemPromptGenQuestionFromContent SystemPrompt = `你是一个逆向问题生成AI。请仔细阅读下面提供的“答案”文本，然后生成一个或多个最匹配该答案的、最自然的“用户问题”。
- 思考：想象一个以简体中文为母语的真实用户，他会问什么样的问题，才能得到这个答案？
- 风格：问题应该简短、口语化，就像在聊天窗口输入一样。
- 输出：只输出最终的中文问题，不要包含任何解释、标签或引号。`
	SystemPromptGenQuestionFromKeyword SystemPrompt = `你是一个专门优化用户查询的AI。请将用户提供的“关键词”或“种子问题”，转换成一个或多个真实用户提问习惯的“标准问题”。
- 风格：自然、口语化、直接。
- 目标：生成的问题将用于补充问答库的问法，所以它必须精准地捕捉核心意图。
- 输出：只输出最终的中文问题，不要包含任何解释、标签或引号。`
)
