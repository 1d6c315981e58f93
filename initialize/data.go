package initialize

import (
	"context"
	"regexp"
	"time"

	"gitee.com/taoJie_1/dialogue-bot/dao"
	"gitee.com/taoJie_1/dialogue-bot/global"
	"gitee.com/taoJie_1/dialogue-bot/model/db"
	"gitee.com/taoJie_1/dialogue-bot/model/enum"
	"gitee.com/taoJie_1/dialogue-bot/service"
	"gitee.com/taoJie_1/dialogue-bot/service/user"
)

var imagePattern = regexp.MustCompile(`\[CQ:image,[^\]]*\]`)

// loadData 加载业务所需数据, 并注册内置的列表标注回调
func (i *Initializer) loadData() {
	searchSvc := service.Service.UserServiceGroup.SearchService

	// 正则问答在列表中标注为"正则"
	searchSvc.RegisterDetailHook(func(dialogue *db.Dialogues, details *user.SearchDetails) {
		if enum.DialogueFlag(dialogue.Flag).Has(enum.DialogueFlagRegexp) {
			details.QuestionType = enum.TextRegexpTag
		}
	})

	// 锁定的问答追加"锁定"标签
	searchSvc.RegisterDetailHook(func(dialogue *db.Dialogues, details *user.SearchDetails) {
		if enum.DialogueFlag(dialogue.Flag).Has(enum.DialogueFlagFrozen) {
			details.Labels = append(details.Labels, enum.TextFrozenTag)
		}
	})

	// 纯图片回答标注回答类型为"图片"
	searchSvc.RegisterDetailHook(func(dialogue *db.Dialogues, details *user.SearchDetails) {
		if dialogue.Answer != "" && imagePattern.ReplaceAllString(dialogue.Answer, "") == "" {
			details.AnswerType = enum.TextImageTag
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if count, err := dao.App.DialoguesDb.CountAll(ctx); err != nil {
		global.Log.Warnf("启动时统计问答数量失败: %v", err)
	} else {
		global.Log.Infof("问答库加载完成, 现有 %d 条问答", count)
	}
}
