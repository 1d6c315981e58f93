package user

import (
	"fmt"
	"strings"

	"gitee.com/taoJie_1/dialogue-bot/model/db"
	"gitee.com/taoJie_1/dialogue-bot/model/enum"
)

// SearchDetails 单条问答在列表中的标注信息。
// Labels 为短标签序列; QuestionType/AnswerType 为两个可选的命名槽位,
// 每次渲染时为每条问答重新构建。
type SearchDetails struct {
	Labels       []string
	QuestionType string
	AnswerType   string
}

// DetailHook 详情标注回调, 按注册顺序依次执行。
// 回调可向 Labels 追加标签, 或设置 QuestionType/AnswerType。
type DetailHook func(dialogue *db.Dialogues, details *SearchDetails)

// getDetails 构建一条问答的标注信息。
// 回调执行完毕后, 关键词命中的问答强制标注为"关键词",
// 保证其来源可见, 不被扩展覆盖。
func (s *searchService) getDetails(dialogue *db.Dialogues) *SearchDetails {
	details := &SearchDetails{}
	for _, hook := range s.hooks {
		hook(dialogue, details)
	}
	if enum.DialogueFlag(dialogue.Flag).Has(enum.DialogueFlagKeyword) {
		details.QuestionType = enum.TextKeywordTag
	}
	return details
}

// formatDetails 渲染 "{id}. " 或 "{id}. [标签, 标签] "
func formatDetails(dialogue *db.Dialogues, details *SearchDetails) string {
	if len(details.Labels) == 0 {
		return fmt.Sprintf("%d. ", dialogue.Id)
	}
	return fmt.Sprintf("%d. [%s] ", dialogue.Id, strings.Join(details.Labels, ", "))
}

// formatPrefix 渲染一条问答的行前缀: id、标签、类型标注。
// showAnswerType 控制是否附带回答类型标注。
func (s *searchService) formatPrefix(dialogue *db.Dialogues, showAnswerType bool) string {
	details := s.getDetails(dialogue)
	result := formatDetails(dialogue, details)

	questionType := details.QuestionType
	if questionType == "" {
		questionType = enum.TextQuestionLabel
	}
	result += "[" + questionType + "]"

	if showAnswerType {
		answerType := details.AnswerType
		if answerType == "" {
			answerType = enum.TextAnswerLabel
		}
		result += "[" + answerType + "]"
	}

	return result + " "
}
