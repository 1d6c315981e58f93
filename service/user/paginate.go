package user

import (
	"fmt"
	"strings"

	"gitee.com/taoJie_1/dialogue-bot/model/enum"
)

// paginate 将行列表切成一页并加上标题。
// 行数不超过单页容量时输出完整列表; 否则按 page(1起始)切片,
// 标题带页码, 并追加翻页提示。
// page 的正数校验由调用方负责, 超出总页数时切出空页体, 不做修正。
func paginate(title string, lines []string, page int, itemsPerPage uint, suffix string) string {
	perPage := int(itemsPerPage)

	if len(lines) <= perPage {
		out := make([]string, 0, len(lines)+2)
		out = append(out, fmt.Sprintf(enum.TextListHeader, title))
		out = append(out, lines...)
		if suffix != "" {
			out = append(out, suffix)
		}
		return strings.Join(out, "\n")
	}

	pageCount := (len(lines) + perPage - 1) / perPage
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(lines) {
		end = len(lines)
	}

	var window []string
	if start < len(lines) {
		window = lines[start:end]
	}

	out := make([]string, 0, len(window)+3)
	out = append(out, fmt.Sprintf(enum.TextPageHeader, title, page, pageCount))
	out = append(out, window...)
	if suffix != "" {
		out = append(out, suffix)
	}
	out = append(out, enum.TextPageTrailer)
	return strings.Join(out, "\n")
}
