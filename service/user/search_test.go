package user

import (
	"context"
	"strings"
	"testing"

	"gitee.com/taoJie_1/dialogue-bot/model/db"
	"gitee.com/taoJie_1/dialogue-bot/model/dto"
	"gitee.com/taoJie_1/dialogue-bot/model/enum"
)

// fakeStore 内存中的问答存储, 按问题文本精确匹配, 用于单元测试。
type fakeStore struct {
	data    map[string][]db.Dialogues
	queries []string
}

func (f *fakeStore) GetDialogues(_ context.Context, test *dto.DialogueTest) ([]db.Dialogues, error) {
	f.queries = append(f.queries, test.Question)
	return f.data[test.Question], nil
}

func newTestService(store *fakeStore) SearchService {
	return NewSearchService(store, DefaultWeigher{})
}

// TestSearchEmptyTest 单元测试, 问题与回答均为空时返回输入提示。
func TestSearchEmptyTest(t *testing.T) {
	svc := newTestService(&fakeStore{})
	got, err := svc.Search(context.Background(), &dto.SearchRequest{})
	if err != nil {
		t.Fatalf("空搜索不应返回错误: %v", err)
	}
	if got != enum.MsgEmptyTest {
		t.Errorf("空搜索应返回输入提示, got: %q", got)
	}
}

// TestSearchPageDefault 单元测试, 页码未传(0)或为负时按第一页处理。
func TestSearchPageDefault(t *testing.T) {
	dialogues := make([]db.Dialogues, 0, 25)
	for i := uint(1); i <= 25; i++ {
		dialogues = append(dialogues, db.Dialogues{
			BaseField: db.BaseField{Id: i},
			Original:  "你好",
			Answer:    "hello",
			Weight:    0.01,
		})
	}
	store := &fakeStore{data: map[string][]db.Dialogues{"你好": dialogues}}
	svc := newTestService(store)
	ctx := context.Background()

	for _, page := range []int{0, -1} {
		got, err := svc.Search(ctx, &dto.SearchRequest{
			DialogueTest: dto.DialogueTest{Question: "你好"},
			Page:         page,
		})
		if err != nil {
			t.Fatalf("搜索失败: %v", err)
		}
		if !strings.Contains(got, "（第 1/2 页）：") {
			t.Errorf("页码 %d 应按第一页处理, got头行: %q", page, strings.SplitN(got, "\n", 2)[0])
		}
	}
}

// TestSearchNoResult 单元测试, 验证六种查询形态各自的无结果文案。
func TestSearchNoResult(t *testing.T) {
	svc := newTestService(&fakeStore{})
	ctx := context.Background()

	cases := []struct {
		req  dto.SearchRequest
		want string
	}{
		{dto.SearchRequest{DialogueTest: dto.DialogueTest{Question: "你好"}}, "没有搜索到问题“你好”，请尝试使用关键词匹配。"},
		{dto.SearchRequest{DialogueTest: dto.DialogueTest{Answer: "哈喽"}}, "没有搜索到回答“哈喽”，请尝试使用关键词匹配。"},
		{dto.SearchRequest{DialogueTest: dto.DialogueTest{Question: "你好", Answer: "哈喽"}}, "没有搜索到问答“你好”“哈喽”，请尝试使用关键词匹配。"},
		{dto.SearchRequest{DialogueTest: dto.DialogueTest{Question: "你", Keyword: true}}, "没有搜索到含有关键词“你”的问题。"},
		{dto.SearchRequest{DialogueTest: dto.DialogueTest{Answer: "哈", Keyword: true}}, "没有搜索到含有关键词“哈”的回答。"},
		{dto.SearchRequest{DialogueTest: dto.DialogueTest{Question: "你", Answer: "哈", Keyword: true}}, "没有搜索到含有关键词“你”“哈”的问答。"},
	}

	for _, c := range cases {
		got, err := svc.Search(ctx, &c.req)
		if err != nil {
			t.Fatalf("无结果搜索不应返回错误: %v", err)
		}
		if got != c.want {
			t.Errorf("无结果文案错误\nwant: %q\ngot:  %q", c.want, got)
		}
	}
}

// TestSearchByQuestion 单元测试, 按问题搜索时采用回答优先样式,
// 默认类型标注为[问题][回答], 并附带触发概率后缀。
func TestSearchByQuestion(t *testing.T) {
	store := &fakeStore{data: map[string][]db.Dialogues{
		"你好": {
			{BaseField: db.BaseField{Id: 7}, Original: "你好", Answer: "hello", Weight: 0.5},
		},
	}}
	svc := newTestService(store)

	got, err := svc.Search(context.Background(), &dto.SearchRequest{
		DialogueTest: dto.DialogueTest{Question: "你好"},
	})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}

	want := "问题“你好”的回答如下：\n" +
		"7. [问题][回答] hello\n" +
		"其中任一回答的触发概率合计为 50%。"
	if got != want {
		t.Errorf("按问题搜索结果错误\nwant: %q\ngot:  %q", want, got)
	}
}

// TestSearchByAnswer 单元测试, 按回答搜索时列出问题, 不展示回答类型标注,
// 也不附带触发概率后缀。
func TestSearchByAnswer(t *testing.T) {
	store := &fakeStore{data: map[string][]db.Dialogues{
		"": {
			{BaseField: db.BaseField{Id: 3}, Original: "你好", Answer: "hello", Weight: 1},
			{BaseField: db.BaseField{Id: 4}, Original: "早上好", Answer: "hello", Weight: 1},
		},
	}}
	svc := newTestService(store)

	got, err := svc.Search(context.Background(), &dto.SearchRequest{
		DialogueTest: dto.DialogueTest{Answer: "hello"},
	})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}

	want := "回答“hello”的问题如下：\n" +
		"3. [问题] 你好\n" +
		"4. [问题] 早上好"
	if got != want {
		t.Errorf("按回答搜索结果错误\nwant: %q\ngot:  %q", want, got)
	}
}

// TestSearchQuestionAnswer 单元测试, 问题回答双条件时采用问题+回答样式。
func TestSearchQuestionAnswer(t *testing.T) {
	store := &fakeStore{data: map[string][]db.Dialogues{
		"你好": {
			{BaseField: db.BaseField{Id: 9}, Original: "你好", Answer: "hello", Weight: 1},
		},
	}}
	svc := newTestService(store)

	got, err := svc.Search(context.Background(), &dto.SearchRequest{
		DialogueTest: dto.DialogueTest{Question: "你好", Answer: "hello"},
	})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}

	want := "“你好”“hello”的搜索结果如下：\n" +
		"9. 问题：“你好”，回答：hello"
	if got != want {
		t.Errorf("双条件搜索结果错误\nwant: %q\ngot:  %q", want, got)
	}
}

// TestSearchRedirection 单元测试, 重定向回答应递归展开目标问题,
// 子列表每层以 "=> " 缩进。
func TestSearchRedirection(t *testing.T) {
	store := &fakeStore{data: map[string][]db.Dialogues{
		"问A": {
			{BaseField: db.BaseField{Id: 1}, Original: "问A", Answer: "${dialogue 问B}", Weight: 1},
		},
		"问B": {
			{BaseField: db.BaseField{Id: 2}, Original: "问B", Answer: "world", Weight: 1},
		},
	}}
	svc := newTestService(store)

	got, err := svc.Search(context.Background(), &dto.SearchRequest{
		DialogueTest: dto.DialogueTest{Question: "问A"},
	})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}

	if !strings.Contains(got, "1. [问题][回答] ${dialogue 问B}\n=> 2. [问题][回答] world") {
		t.Errorf("重定向子列表渲染错误, got: %q", got)
	}
}

// TestSearchRedirectionCycle 单元测试, 循环重定向(A->B->A)必须终止,
// 且已解析过的问题不再重复挂载。
func TestSearchRedirectionCycle(t *testing.T) {
	store := &fakeStore{data: map[string][]db.Dialogues{
		"问A": {
			{BaseField: db.BaseField{Id: 1}, Original: "问A", Answer: "${dialogue 问B}", Weight: 1},
		},
		"问B": {
			{BaseField: db.BaseField{Id: 2}, Original: "问B", Answer: "${dialogue 问A}", Weight: 1},
		},
	}}
	svc := newTestService(store)

	got, err := svc.Search(context.Background(), &dto.SearchRequest{
		DialogueTest: dto.DialogueTest{Question: "问A"},
	})
	if err != nil {
		t.Fatalf("循环重定向不应返回错误: %v", err)
	}

	// 问B展开一次, 指回问A的重定向不再展开
	if !strings.Contains(got, "=> 2. [问题][回答] ${dialogue 问A}") {
		t.Errorf("问B应被展开一层, got: %q", got)
	}
	if strings.Contains(got, "=> => ") {
		t.Errorf("指回已解析问题的重定向不应再展开, got: %q", got)
	}

	// 根问题只在搜索入口查询一次, 解析重定向时不再重复查询
	rootQueries := 0
	for _, q := range store.queries {
		if q == "问A" {
			rootQueries++
		}
	}
	if rootQueries != 1 {
		t.Errorf("根问题应只查询一次, 实际 %d 次", rootQueries)
	}
}

// TestSearchRedirectionDiamond 单元测试, 两条问答重定向到同一目标时,
// 目标只查询一次, 但解析结果要挂载到两条问答之下。
func TestSearchRedirectionDiamond(t *testing.T) {
	store := &fakeStore{data: map[string][]db.Dialogues{
		"问": {
			{BaseField: db.BaseField{Id: 1}, Original: "问", Answer: "${dialogue 目标}", Weight: 0.5},
			{BaseField: db.BaseField{Id: 2}, Original: "问", Answer: "${dialogue 目标}", Weight: 0.5},
		},
		"目标": {
			{BaseField: db.BaseField{Id: 3}, Original: "目标", Answer: "ok", Weight: 1},
		},
	}}
	svc := newTestService(store)

	got, err := svc.Search(context.Background(), &dto.SearchRequest{
		DialogueTest: dto.DialogueTest{Question: "问"},
	})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}

	// 两条问答各自带有目标的子列表
	if n := strings.Count(got, "=> 3. [问题][回答] ok"); n != 2 {
		t.Errorf("目标应挂载到两条问答之下, 实际出现 %d 次\ngot: %q", n, got)
	}

	// 目标问题只查询一次
	targetQueries := 0
	for _, q := range store.queries {
		if q == "目标" {
			targetQueries++
		}
	}
	if targetQueries != 1 {
		t.Errorf("目标问题应只查询一次, 实际 %d 次", targetQueries)
	}
}

// TestSearchNoRecursive 单元测试, no-recursive 选项应跳过重定向展开。
func TestSearchNoRecursive(t *testing.T) {
	store := &fakeStore{data: map[string][]db.Dialogues{
		"问A": {
			{BaseField: db.BaseField{Id: 1}, Original: "问A", Answer: "${dialogue 问B}", Weight: 1},
		},
		"问B": {
			{BaseField: db.BaseField{Id: 2}, Original: "问B", Answer: "world", Weight: 1},
		},
	}}
	svc := newTestService(store)

	got, err := svc.Search(context.Background(), &dto.SearchRequest{
		DialogueTest: dto.DialogueTest{Question: "问A"},
		NoRecursive:  true,
	})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}

	if strings.Contains(got, "=> ") {
		t.Errorf("no-recursive时不应展开子列表, got: %q", got)
	}
	if len(store.queries) != 1 {
		t.Errorf("no-recursive时不应发起重定向查询, 查询次数: %d", len(store.queries))
	}
}

// TestSearchKeywordFlagForcesType 单元测试, 带关键词标记的问答
// 其问题类型标注强制为"关键词", 不受回调影响。
func TestSearchKeywordFlagForcesType(t *testing.T) {
	store := &fakeStore{data: map[string][]db.Dialogues{
		"你好": {
			{
				BaseField: db.BaseField{Id: 5},
				Original:  "你好",
				Answer:    "hello",
				Flag:      uint32(enum.DialogueFlagKeyword),
				Weight:    1,
			},
		},
	}}
	svc := newTestService(store)

	// 注册一个试图覆盖问题类型的回调
	svc.RegisterDetailHook(func(_ *db.Dialogues, details *SearchDetails) {
		details.QuestionType = "别的"
	})

	got, err := svc.Search(context.Background(), &dto.SearchRequest{
		DialogueTest: dto.DialogueTest{Question: "你好"},
	})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}

	if !strings.Contains(got, "5. [关键词][回答] hello") {
		t.Errorf("关键词标记应强制问题类型标注, got: %q", got)
	}
}

// TestSearchDetailHookLabels 单元测试, 回调追加的标签应渲染为
// "{id}. [标签1, 标签2] " 前缀。
func TestSearchDetailHookLabels(t *testing.T) {
	store := &fakeStore{data: map[string][]db.Dialogues{
		"你好": {
			{BaseField: db.BaseField{Id: 6}, Original: "你好", Answer: "hello", Weight: 1},
		},
	}}
	svc := newTestService(store)

	svc.RegisterDetailHook(func(_ *db.Dialogues, details *SearchDetails) {
		details.Labels = append(details.Labels, "甲")
	})
	svc.RegisterDetailHook(func(_ *db.Dialogues, details *SearchDetails) {
		details.Labels = append(details.Labels, "乙")
	})

	got, err := svc.Search(context.Background(), &dto.SearchRequest{
		DialogueTest: dto.DialogueTest{Question: "你好"},
	})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}

	if !strings.Contains(got, "6. [甲, 乙] [问题][回答] hello") {
		t.Errorf("标签前缀渲染错误, got: %q", got)
	}
}

// TestSearchWeightCap 单元测试, 触发概率合计超过1时封顶为100%。
func TestSearchWeightCap(t *testing.T) {
	store := &fakeStore{data: map[string][]db.Dialogues{
		"你好": {
			{BaseField: db.BaseField{Id: 1}, Original: "你好", Answer: "a", Weight: 0.8},
			{BaseField: db.BaseField{Id: 2}, Original: "你好", Answer: "b", Weight: 0.7},
		},
	}}
	svc := newTestService(store)

	got, err := svc.Search(context.Background(), &dto.SearchRequest{
		DialogueTest: dto.DialogueTest{Question: "你好"},
	})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}

	if !strings.HasSuffix(got, "其中任一回答的触发概率合计为 100%。") {
		t.Errorf("触发概率应封顶为100%%, got: %q", got)
	}
}
