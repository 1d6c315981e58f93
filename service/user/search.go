package user

import (
	"context"
	"fmt"

	"gitee.com/taoJie_1/dialogue-bot/global"
	"gitee.com/taoJie_1/dialogue-bot/model/config"
	"gitee.com/taoJie_1/dialogue-bot/model/db"
	"gitee.com/taoJie_1/dialogue-bot/model/dto"
	"gitee.com/taoJie_1/dialogue-bot/model/enum"
	"gitee.com/taoJie_1/dialogue-bot/utils"
)

// DialogueStore 问答存储的查询接口, 由 dao 层实现
type DialogueStore interface {
	GetDialogues(ctx context.Context, test *dto.DialogueTest) ([]db.Dialogues, error)
}

// Weigher 计算一组候选问答的总触发概率
type Weigher interface {
	TotalWeight(ctx context.Context, dialogues []db.Dialogues) (float64, error)
}

// SearchService 定义问答搜索与展示接口。
type SearchService interface {
	// Search 执行一次搜索, 返回渲染好的文本块。
	// 无结果时返回对应形态的提示文案; 存储或权重计算失败时返回错误。
	Search(ctx context.Context, req *dto.SearchRequest) (string, error)
	// RegisterDetailHook 注册详情标注回调, 需在搜索执行前完成注册。
	RegisterDetailHook(hook DetailHook)
}

type searchService struct {
	store   DialogueStore
	weigher Weigher
	hooks   []DetailHook
}

// NewSearchService 创建 SearchService 实例。
func NewSearchService(store DialogueStore, weigher Weigher) SearchService {
	return &searchService{
		store:   store,
		weigher: weigher,
	}
}

func (s *searchService) RegisterDetailHook(hook DetailHook) {
	s.hooks = append(s.hooks, hook)
}

func (s *searchService) Search(ctx context.Context, req *dto.SearchRequest) (string, error) {
	test := req.DialogueTest
	if test.Question == "" && test.Answer == "" {
		return enum.MsgEmptyTest, nil
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	cfg := searchConfig()

	dialogues, err := s.store.GetDialogues(ctx, &test)
	if err != nil {
		return "", fmt.Errorf("查询问答记录失败: %w", err)
	}

	if test.Keyword {
		return s.showKeywordSearch(req, dialogues, page, cfg)
	}
	return s.showExactSearch(ctx, req, dialogues, page, cfg)
}

// showExactSearch 处理精确匹配的三种查询形态
func (s *searchService) showExactSearch(ctx context.Context, req *dto.SearchRequest, dialogues []db.Dialogues, page int, cfg config.Search) (string, error) {
	test := req.DialogueTest

	switch {
	case test.Question == "":
		// 按回答找问题
		if len(dialogues) == 0 {
			return fmt.Sprintf(enum.MsgNoQuestionForAnswer, test.Answer), nil
		}
		lines := make([]string, 0, len(dialogues))
		for i := range dialogues {
			d := &dialogues[i]
			lines = append(lines, s.formatPrefix(d, false)+d.Original)
		}
		return paginate(fmt.Sprintf(enum.TitleAnswer, test.Answer), lines, page, cfg.ItemsPerPage, ""), nil

	case test.Answer == "":
		// 按问题找回答, 展开重定向并附带触发概率
		if len(dialogues) == 0 {
			return fmt.Sprintf(enum.MsgNoAnswerForQuestion, test.Question), nil
		}

		table := redirectTable(nil)
		if !req.NoRecursive {
			var err error
			table, err = s.resolveRedirections(ctx, dialogues, &test)
			if err != nil {
				return "", err
			}
		}
		lines := s.formatAnswers(dialogues, table, 0, cfg)

		suffix := ""
		if s.weigher != nil {
			total, err := s.weigher.TotalWeight(ctx, dialogues)
			if err != nil {
				return "", fmt.Errorf("计算触发概率失败: %w", err)
			}
			suffix = fmt.Sprintf(enum.SuffixTriggerWeight, utils.NumberFormat(total*100, 3))
		}
		return paginate(fmt.Sprintf(enum.TitleQuestion, test.Question), lines, page, cfg.ItemsPerPage, suffix), nil

	default:
		// 问题与回答同时精确匹配
		if len(dialogues) == 0 {
			return fmt.Sprintf(enum.MsgNoQA, test.Question, test.Answer), nil
		}
		lines := s.formatQuestionAnswers(dialogues, nil, cfg)
		return paginate(fmt.Sprintf(enum.TitleQA, test.Question, test.Answer), lines, page, cfg.ItemsPerPage, ""), nil
	}
}

// showKeywordSearch 处理关键词模式的三种查询形态
func (s *searchService) showKeywordSearch(req *dto.SearchRequest, dialogues []db.Dialogues, page int, cfg config.Search) (string, error) {
	test := req.DialogueTest

	var lines []string
	if req.NoMerge || (test.Question != "" && test.Answer != "") {
		lines = s.formatQuestionAnswers(dialogues, nil, cfg)
	} else {
		lines = mergeDialogues(dialogues, &test, cfg.MergeThreshold)
	}

	switch {
	case test.Question == "":
		if len(dialogues) == 0 {
			return fmt.Sprintf(enum.MsgNoKeywordAnswer, test.Answer), nil
		}
		return paginate(fmt.Sprintf(enum.TitleKeywordAnswer, test.Answer), lines, page, cfg.ItemsPerPage, ""), nil
	case test.Answer == "":
		if len(dialogues) == 0 {
			return fmt.Sprintf(enum.MsgNoKeywordQuestion, test.Question), nil
		}
		return paginate(fmt.Sprintf(enum.TitleKeywordQuestion, test.Question), lines, page, cfg.ItemsPerPage, ""), nil
	default:
		if len(dialogues) == 0 {
			return fmt.Sprintf(enum.MsgNoKeywordQA, test.Question, test.Answer), nil
		}
		return paginate(fmt.Sprintf(enum.TitleKeywordQA, test.Question, test.Answer), lines, page, cfg.ItemsPerPage, ""), nil
	}
}

// searchConfig 读取搜索配置, 未配置项取默认值
func searchConfig() config.Search {
	cfg := global.Config.Search
	if cfg.ItemsPerPage == 0 {
		cfg.ItemsPerPage = 20
	}
	if cfg.MergeThreshold == 0 {
		cfg.MergeThreshold = 5
	}
	if cfg.MaxAnswerLength == 0 {
		cfg.MaxAnswerLength = 100
	}
	return cfg
}
