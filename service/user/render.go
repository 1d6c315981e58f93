package user

import (
	"fmt"
	"strings"

	"gitee.com/taoJie_1/dialogue-bot/model/config"
	"gitee.com/taoJie_1/dialogue-bot/model/db"
	"gitee.com/taoJie_1/dialogue-bot/model/dto"
	"gitee.com/taoJie_1/dialogue-bot/model/enum"
)

// formatAnswers 回答优先的列表样式。
// 每条问答占一行: "=> "×层级 + 前缀 + 格式化后的回答;
// 带重定向的问答后跟递归渲染的子列表, 整块合并为该问答的单个条目。
func (s *searchService) formatAnswers(dialogues []db.Dialogues, table redirectTable, depth int, cfg config.Search) []string {
	lines := make([]string, 0, len(dialogues))
	for i := range dialogues {
		dialogue := &dialogues[i]

		block := []string{
			strings.Repeat("=> ", depth) + s.formatPrefix(dialogue, true) + FormatAnswer(dialogue.Answer, cfg.MaxAnswerLength),
		}
		block = append(block, s.formatRedirections(dialogue, table, depth+1, cfg)...)
		lines = append(lines, strings.Join(block, "\n"))
	}
	return lines
}

// formatQuestionAnswers 问题+回答的列表样式。
// 首行为前缀 + 问题 + 回答; 重定向子列表以回答优先样式缩进一层。
func (s *searchService) formatQuestionAnswers(dialogues []db.Dialogues, table redirectTable, cfg config.Search) []string {
	lines := make([]string, 0, len(dialogues))
	for i := range dialogues {
		dialogue := &dialogues[i]
		details := s.getDetails(dialogue)

		questionType := details.QuestionType
		if questionType == "" {
			questionType = enum.TextQuestionLabel
		}
		answerType := details.AnswerType
		if answerType == "" {
			answerType = enum.TextAnswerLabel
		}

		block := []string{fmt.Sprintf("%s%s：“%s”，%s：%s",
			formatDetails(dialogue, details),
			questionType, dialogue.Original,
			answerType, FormatAnswer(dialogue.Answer, cfg.MaxAnswerLength),
		)}
		block = append(block, s.formatRedirections(dialogue, table, 1, cfg)...)
		lines = append(lines, strings.Join(block, "\n"))
	}
	return lines
}

func (s *searchService) formatRedirections(dialogue *db.Dialogues, table redirectTable, depth int, cfg config.Search) []string {
	children, ok := table[dialogue.Id]
	if !ok {
		return nil
	}
	return s.formatAnswers(children, table, depth, cfg)
}

// mergeDialogues 关键词搜索的合并视图:
// 按未被搜索的维度分组(问题关键词按回答分组, 反之按问题分组),
// 组内id保持首次出现顺序; 小组列出id, 大组只显示计数。
func mergeDialogues(dialogues []db.Dialogues, test *dto.DialogueTest, mergeThreshold uint) []string {
	keys := make([]string, 0, len(dialogues))
	idMap := make(map[string][]uint, len(dialogues))
	byQuestion := test.Question != ""

	for i := range dialogues {
		dialogue := &dialogues[i]
		key := dialogue.Original
		if byQuestion {
			key = dialogue.Answer
		}
		if _, ok := idMap[key]; !ok {
			keys = append(keys, key)
		}
		idMap[key] = append(idMap[key], dialogue.Id)
	}

	noun := enum.TextAnswerLabel
	if byQuestion {
		noun = enum.TextQuestionLabel
	}

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		ids := idMap[key]
		if uint(len(ids)) <= mergeThreshold {
			parts := make([]string, 0, len(ids))
			for _, id := range ids {
				parts = append(parts, fmt.Sprintf("#%d", id))
			}
			lines = append(lines, fmt.Sprintf("%s (%s)", key, strings.Join(parts, ", ")))
		} else {
			lines = append(lines, fmt.Sprintf(enum.TextMergeCount, key, len(ids), noun))
		}
	}
	return lines
}
