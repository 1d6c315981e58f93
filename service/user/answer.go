package user

import (
	"regexp"
	"strings"

	"gitee.com/taoJie_1/dialogue-bot/model/enum"
)

var (
	// 真实换行或存储格式中的字面 \n 转义
	lineBreakPattern = regexp.MustCompile(`\r?\n|\\n`)
	// 图片引用指令, 形如 [CQ:image,file=xxx]
	imagePattern = regexp.MustCompile(`\[CQ:image,[^\]]*\]`)
)

// FormatAnswer 把原始回答归一为单行的显示安全摘要:
// 只保留第一个换行前的内容, 图片指令替换为占位符,
// 超长截断, 截断过的文本补省略号。
func FormatAnswer(source string, maxAnswerLength uint) string {
	trimmed := false

	if segments := lineBreakPattern.Split(source, 2); len(segments) > 1 {
		trimmed = true
		source = strings.TrimSpace(segments[0])
	}

	source = imagePattern.ReplaceAllString(source, enum.TextImagePlaceholder)

	if runes := []rune(source); uint(len(runes)) > maxAnswerLength {
		trimmed = true
		source = string(runes[:maxAnswerLength])
	}

	// 已以双省略号结尾时不再追加, 避免重复
	if trimmed && !strings.HasSuffix(source, "……") {
		if strings.HasSuffix(source, "…") {
			source += "…"
		} else {
			source += "……"
		}
	}

	return source
}

const redirectPrefix = "${dialogue "

// ParseRedirect 判断一条回答是否为重定向表达式。
// 重定向表达式形如 ${dialogue 目标问题} (允许首尾空白);
// 是则返回去除空白后的目标问题文本, 否则 ok 为 false。
func ParseRedirect(answer string) (target string, ok bool) {
	answer = strings.TrimSpace(answer)
	if !strings.HasPrefix(answer, redirectPrefix) || !strings.HasSuffix(answer, "}") {
		return "", false
	}

	target = strings.TrimSpace(answer[len(redirectPrefix) : len(answer)-1])
	if target == "" {
		return "", false
	}
	return target, true
}
