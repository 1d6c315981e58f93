package user

import (
	"context"
	"fmt"

	"gitee.com/taoJie_1/dialogue-bot/model/db"
	"gitee.com/taoJie_1/dialogue-bot/model/dto"
)

// redirectTable 一次搜索内的重定向解析结果: 问答id -> 重定向目标的问答列表。
// 随本次搜索构建, 渲染完成后废弃, 不回写问答记录本身。
type redirectTable map[uint][]db.Dialogues

// resolveRedirections 深度优先解析结果集中的重定向链。
// visited 以问题文本为键, 种子为根问题与根结果集;
// 同一问题文本在一次搜索中至多查询一次: 已解析过的目标直接复用其结果,
// 只有指回当前调用链上游的目标(真正的环)才被跳过, 保证渲染树无环且递归终止。
func (s *searchService) resolveRedirections(ctx context.Context, dialogues []db.Dialogues, test *dto.DialogueTest) (redirectTable, error) {
	r := &redirectResolver{
		store: s.store,
		test:  test,
		visited: map[string][]db.Dialogues{
			test.Question: dialogues,
		},
		stack: map[string]bool{
			test.Question: true,
		},
		table: make(redirectTable),
	}
	if err := r.walk(ctx, dialogues); err != nil {
		return nil, err
	}
	return r.table, nil
}

type redirectResolver struct {
	store   DialogueStore
	test    *dto.DialogueTest
	visited map[string][]db.Dialogues
	stack   map[string]bool
	table   redirectTable
}

func (r *redirectResolver) walk(ctx context.Context, dialogues []db.Dialogues) error {
	for i := range dialogues {
		dialogue := &dialogues[i]

		target, ok := ParseRedirect(dialogue.Answer)
		if !ok {
			continue
		}

		// 指回调用链上游问题的重定向构成环, 跳过不挂载
		if r.stack[target] {
			continue
		}

		// 其他分支已解析过的目标复用其结果, 只挂载不再下探
		if children, seen := r.visited[target]; seen {
			r.table[dialogue.Id] = children
			continue
		}

		// 沿用原查询的回答约束, 关闭关键词匹配, 问题替换为重定向目标
		sub := dto.DialogueTest{
			Question: target,
			Answer:   r.test.Answer,
		}
		children, err := r.store.GetDialogues(ctx, &sub)
		if err != nil {
			return fmt.Errorf("解析重定向问题“%s”失败: %w", target, err)
		}

		r.visited[target] = children
		r.table[dialogue.Id] = children

		r.stack[target] = true
		if err := r.walk(ctx, children); err != nil {
			return err
		}
		delete(r.stack, target)
	}
	return nil
}
