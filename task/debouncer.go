package task

import (
	"sync"
	"time"

	"gitee.com/taoJie_1/dialogue-bot/global"
)

var (
	cacheFlushTimer *time.Timer
	cacheFlushMutex sync.Mutex
)

// DebounceCacheFlush 为 FlushSearchCache 提供防抖调用功能。
// 每次调用都会重置定时器, 密集的数据变更只触发一次清理。
func (m *Manager) DebounceCacheFlush(delay time.Duration) {
	cacheFlushMutex.Lock()
	defer cacheFlushMutex.Unlock()

	// 如果已存在一个定时器，则停止它
	if cacheFlushTimer != nil {
		cacheFlushTimer.Stop()
	}

	cacheFlushTimer = time.AfterFunc(delay, func() {
		global.Log.Info("触发经防抖处理的搜索缓存清理任务...")
		if err := m.FlushSearchCache(); err != nil {
			global.Log.Errorf("执行经防抖处理的搜索缓存清理任务失败: %v", err)
		}
	})
	global.Log.Infof("搜索缓存清理任务已调度在 %v 后执行", delay)
}
