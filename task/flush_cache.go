package task

import (
	"context"
	"time"

	"gitee.com/taoJie_1/dialogue-bot/dao"
	"gitee.com/taoJie_1/dialogue-bot/global"
)

// FlushSearchCache 清空搜索结果缓存。
// 问答库变更后由防抖任务触发, 也作为定时任务兜底执行,
// 保证缓存与库内数据的最终一致。
func (m *Manager) FlushSearchCache() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := dao.App.DialoguesDb.FlushSearchCache(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		global.Log.Infof("搜索缓存清理完成, 共删除 %d 个键", n)
	}
	return nil
}
