package dao

import (
	"strings"
	"testing"

	"gitee.com/taoJie_1/dialogue-bot/model/db"
	"gitee.com/taoJie_1/dialogue-bot/model/dto"
)

// TestGetBatchInsertSql 单元测试, 验证批量插入SQL的构建:
// 字段按字典序固定、自动补充时间戳、占位符数量与参数一致。
func TestGetBatchInsertSql(t *testing.T) {
	u := new(dbUtils)

	data := []map[string]interface{}{
		{"original": "你好", "answer": "hello", "flag": uint32(0), "weight": 1.0},
		{"original": "早上好", "answer": "morning", "flag": uint32(0), "weight": 0.5},
	}

	sql, args, err := u.getBatchInsertSql(db.Dialogues{}, data)
	if err != nil {
		t.Fatalf("构建SQL失败: %v", err)
	}

	// 字段按字典序排列, 且补充了时间戳字段
	wantPrefix := "INSERT INTO `dialogues` (`answer`, `created_at`, `flag`, `original`, `updated_at`, `weight`) VALUES "
	if !strings.HasPrefix(sql, wantPrefix) {
		t.Errorf("SQL前缀错误, got: %q", sql)
	}

	// 2行×6字段
	if want := 12; len(args) != want {
		t.Errorf("参数数量错误, want %d, got %d", want, len(args))
	}
	if got := strings.Count(sql, "?"); got != len(args) {
		t.Errorf("占位符数量(%d)与参数数量(%d)不一致", got, len(args))
	}
	if !strings.HasSuffix(sql, "(?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?)") {
		t.Errorf("VALUES子句错误, got: %q", sql)
	}

	// 空数据不生成SQL
	sql, args, err = u.getBatchInsertSql(db.Dialogues{}, nil)
	if err != nil || sql != "" || args != nil {
		t.Errorf("空数据应返回空SQL: %q, %v, %v", sql, args, err)
	}

	// 字段数量不一致时报错
	bad := []map[string]interface{}{
		{"original": "你好", "answer": "hello"},
		{"original": "早上好"},
	}
	if _, _, err := u.getBatchInsertSql(db.Dialogues{}, bad); err == nil {
		t.Error("字段数量不一致应返回错误")
	}
}

// TestGetUpdateSql 单元测试, 验证按id更新SQL的构建。
func TestGetUpdateSql(t *testing.T) {
	u := new(dbUtils)

	sql, args := u.getUpdateSql(db.Dialogues{}, 7, map[string]interface{}{"answer": "hi"})
	if sql != "UPDATE `dialogues` SET `answer` = ? WHERE `id` = ?" {
		t.Errorf("SQL错误, got: %q", sql)
	}
	if len(args) != 2 || args[0] != "hi" || args[1] != uint(7) {
		t.Errorf("参数错误, got: %v", args)
	}

	// 空数据不生成SQL
	if sql, args := u.getUpdateSql(db.Dialogues{}, 7, nil); sql != "" || len(args) != 0 {
		t.Errorf("空数据应返回空SQL: %q, %v", sql, args)
	}
}

// TestBuildDialogueQuery 单元测试, 验证查询SQL按条件拼接,
// 关键词模式使用LIKE且转义特殊字符。
func TestBuildDialogueQuery(t *testing.T) {
	// 精确匹配
	sql, args := buildDialogueQuery(&dto.DialogueTest{Question: "你好"})
	if !strings.Contains(sql, "`original` = ?") || strings.Contains(sql, "LIKE") {
		t.Errorf("精确匹配SQL错误: %q", sql)
	}
	if len(args) != 1 || args[0] != "你好" {
		t.Errorf("精确匹配参数错误: %v", args)
	}
	if !strings.HasSuffix(sql, "ORDER BY `id` ASC") {
		t.Errorf("查询应按id升序: %q", sql)
	}

	// 关键词匹配, 特殊字符转义; 转义符 '|' 在sqlite与mysql上行为一致
	sql, args = buildDialogueQuery(&dto.DialogueTest{Question: "50%", Keyword: true})
	if !strings.Contains(sql, "`original` LIKE ? ESCAPE '|'") {
		t.Errorf("关键词SQL错误: %q", sql)
	}
	if strings.Contains(sql, `\`) {
		t.Errorf("SQL中不应出现反斜杠: %q", sql)
	}
	if args[0] != `%50|%%` {
		t.Errorf("LIKE模式转义错误: %v", args[0])
	}

	// 转义符本身也要被转义
	_, args = buildDialogueQuery(&dto.DialogueTest{Question: "a|b_c", Keyword: true})
	if args[0] != `%a||b|_c%` {
		t.Errorf("转义符自转义错误: %v", args[0])
	}

	// 双条件
	sql, args = buildDialogueQuery(&dto.DialogueTest{Question: "你好", Answer: "hello"})
	if !strings.Contains(sql, "`original` = ? AND `answer` = ?") {
		t.Errorf("双条件SQL错误: %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("双条件参数错误: %v", args)
	}
}

// TestSearchCacheKey 单元测试, 缓存键应区分查询维度与匹配模式。
func TestSearchCacheKey(t *testing.T) {
	a := searchCacheKey(&dto.DialogueTest{Question: "你好"})
	b := searchCacheKey(&dto.DialogueTest{Answer: "你好"})
	c := searchCacheKey(&dto.DialogueTest{Question: "你好", Keyword: true})

	if !strings.HasPrefix(a, SearchCacheKeyPrefix) {
		t.Errorf("缓存键前缀错误: %q", a)
	}
	if a == b {
		t.Error("问题搜索与回答搜索的缓存键不应相同")
	}
	if a == c {
		t.Error("精确匹配与关键词匹配的缓存键不应相同")
	}
	if a != searchCacheKey(&dto.DialogueTest{Question: "你好"}) {
		t.Error("相同查询条件的缓存键应稳定")
	}
}
