package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/dialogue-bot/global"
	"gitee.com/taoJie_1/dialogue-bot/model/dto"
	"gitee.com/taoJie_1/dialogue-bot/model/enum"
)

// SuggestService 定义 AI 问法生成接口, 用于辅助编辑问答库。
type SuggestService interface {
	// GenerateQuestions 调用 LLM 根据上下文生成候选问法。
	GenerateQuestions(ctx context.Context, req *dto.SuggestRequest) (*dto.SuggestResponse, error)
}

type suggestService struct{}

// NewSuggestService 创建 SuggestService 实例。
func NewSuggestService() SuggestService {
	return &suggestService{}
}

func (s *suggestService) GenerateQuestions(ctx context.Context, req *dto.SuggestRequest) (*dto.SuggestResponse, error) {
	if global.LlmService == nil {
		return nil, errors.New("LLM 服务未初始化")
	}

	var prompt enum.SystemPrompt
	if req.Type == "keyword" {
		prompt = enum.SystemPromptGenQuestionFromKeyword
	} else {
		prompt = enum.SystemPromptGenQuestionFromContent
	}

	// 要求 LLM 返回换行分隔的列表，便于解析。
	const instruction = "请生成3个相关的、不同表述方式的用户问题。每个问题占一行，不要带序号或任何多余符号。"
	fullPrompt := fmt.Sprintf("%s\n\n%s", req.Context, instruction)

	rawResult, err := global.LlmService.GetCompletion(ctx, enum.ModelSmall, prompt, fullPrompt, 0.5)
	if err != nil {
		return nil, fmt.Errorf("调用LLM生成问题失败: %w", err)
	}

	var cleanedQuestions []string
	for _, q := range strings.Split(rawResult, "\n") {
		if trimmed := strings.TrimSpace(q); trimmed != "" {
			cleanedQuestions = append(cleanedQuestions, trimmed)
		}
	}

	return &dto.SuggestResponse{Questions: cleanedQuestions}, nil
}
