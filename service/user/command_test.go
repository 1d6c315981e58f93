package user

import "testing"

// TestParseSearchCommand 单元测试, 验证聊天消息中搜索指令的解析。
func TestParseSearchCommand(t *testing.T) {
	// 非搜索指令
	if _, ok := ParseSearchCommand("你好"); ok {
		t.Error("普通消息不应被识别为搜索指令")
	}
	if _, ok := ParseSearchCommand(""); ok {
		t.Error("空消息不应被识别为搜索指令")
	}

	// 只有指令词: 问题与回答均为空, 交由搜索服务返回提示
	req, ok := ParseSearchCommand("搜索")
	if !ok || req.Question != "" || req.Answer != "" {
		t.Errorf("裸指令解析错误: %+v", req)
	}

	// 基本用法: 问题
	req, ok = ParseSearchCommand("搜索 你好")
	if !ok || req.Question != "你好" || req.Answer != "" || req.Keyword {
		t.Errorf("问题搜索解析错误: %+v", req)
	}

	// 问题 + 回答
	req, _ = ParseSearchCommand("搜索 你好 hello")
	if req.Question != "你好" || req.Answer != "hello" {
		t.Errorf("问答搜索解析错误: %+v", req)
	}

	// 占位符 ~ 表示仅按回答搜索
	req, _ = ParseSearchCommand("搜索 ~ hello")
	if req.Question != "" || req.Answer != "hello" {
		t.Errorf("占位符解析错误: %+v", req)
	}

	// 选项
	req, _ = ParseSearchCommand("搜索 你好 -k --no-merge --no-recursive -p 3")
	if !req.Keyword || !req.NoMerge || !req.NoRecursive || req.Page != 3 {
		t.Errorf("选项解析错误: %+v", req)
	}

	// 选项可以穿插在位置参数之间
	req, _ = ParseSearchCommand("搜索 -k 你好 -p 2 hello")
	if !req.Keyword || req.Question != "你好" || req.Answer != "hello" || req.Page != 2 {
		t.Errorf("穿插选项解析错误: %+v", req)
	}

	// -p 后跟非数字时忽略页码
	req, _ = ParseSearchCommand("搜索 你好 -p abc")
	if req.Page != 0 {
		t.Errorf("非法页码应被忽略: %+v", req)
	}
}
