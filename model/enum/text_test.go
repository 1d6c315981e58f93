package enum

import (
	"strings"
	"testing"
)

// TestTextTemplateConsistency 单元测试，用于确保展示文案模板中的
// fmt 占位符数量与渲染代码的传参保持严格一致。
// 这可以防止因修改文案而遗漏占位符导致输出中出现 %!s(MISSING) 之类的残缺。
func TestTextTemplateConsistency(t *testing.T) {
	// 模板 -> 期望的占位符数量
	templates := map[string]int{
		TextListHeader:         1,
		TextPageHeader:         3,
		TitleQuestion:          1,
		TitleAnswer:            1,
		TitleQA:                2,
		TitleKeywordQuestion:   1,
		TitleKeywordAnswer:     1,
		TitleKeywordQA:         2,
		MsgNoQuestionForAnswer: 1,
		MsgNoAnswerForQuestion: 1,
		MsgNoQA:                2,
		MsgNoKeywordQuestion:   1,
		MsgNoKeywordAnswer:     1,
		MsgNoKeywordQA:         2,
		TextMergeCount:         3,
	}

	for tpl, want := range templates {
		// %% 是字面百分号, 不算占位符
		got := strings.Count(tpl, "%") - 2*strings.Count(tpl, "%%")
		if got != want {
			t.Errorf("模板 %q 的占位符数量错误, want %d, got %d", tpl, want, got)
		}
	}

	// 固定文案不应含有占位符
	fixed := []string{
		TextImagePlaceholder,
		TextKeywordTag,
		TextRegexpTag,
		TextFrozenTag,
		TextImageTag,
		TextQuestionLabel,
		TextAnswerLabel,
		TextPageTrailer,
		MsgEmptyTest,
	}
	for _, s := range fixed {
		if strings.Contains(s, "%") {
			t.Errorf("固定文案 %q 不应含有占位符", s)
		}
	}

	// 权重后缀: 一个数值占位符加一个字面百分号
	if strings.Count(SuffixTriggerWeight, "%")-2*strings.Count(SuffixTriggerWeight, "%%") != 1 {
		t.Errorf("SuffixTriggerWeight 应恰好包含1个占位符: %q", SuffixTriggerWeight)
	}
	if !strings.Contains(SuffixTriggerWeight, "%%") {
		t.Errorf("SuffixTriggerWeight 应包含字面百分号: %q", SuffixTriggerWeight)
	}
}
