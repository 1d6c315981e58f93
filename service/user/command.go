package user

import (
	"strconv"
	"strings"

	"gitee.com/taoJie_1/dialogue-bot/model/dto"
)

// ParseSearchCommand 从聊天消息解析搜索指令。
// 形如: 搜索 问题 [回答] [-k] [-p 页码] [--no-merge] [--no-recursive]
// 仅按回答搜索时问题位传占位符 ~ 。
// 消息不是搜索指令时 ok 为 false。
func ParseSearchCommand(text string) (req *dto.SearchRequest, ok bool) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 || fields[0] != "搜索" {
		return nil, false
	}

	req = &dto.SearchRequest{}
	var positional []string

	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "-k", "--keyword":
			req.Keyword = true
		case "--no-merge":
			req.NoMerge = true
		case "--no-recursive":
			req.NoRecursive = true
		case "-p", "--page":
			if i+1 < len(fields) {
				if n, err := strconv.Atoi(fields[i+1]); err == nil {
					req.Page = n
				}
				i++
			}
		default:
			positional = append(positional, fields[i])
		}
	}

	if len(positional) > 0 && positional[0] != "~" {
		req.Question = positional[0]
	}
	if len(positional) > 1 {
		req.Answer = positional[1]
	}

	return req, true
}
