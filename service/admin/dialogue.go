package admin

import (
	"context"
	"fmt"
	"time"

	"gitee.com/taoJie_1/dialogue-bot/dao"
	"gitee.com/taoJie_1/dialogue-bot/global"
	"gitee.com/taoJie_1/dialogue-bot/model/dto"
	"gitee.com/taoJie_1/dialogue-bot/task"
)

// DialogueService 定义问答库的维护接口。
type DialogueService interface {
	// Import 批量导入问答记录, 返回实际写入的条数。
	Import(ctx context.Context, req *dto.ImportRequest) (int64, error)
	// Update 更新单条问答记录。
	Update(ctx context.Context, id uint, req *dto.UpdateDialogueRequest) error
	// Delete 删除单条问答记录。
	Delete(ctx context.Context, id uint) error
}

type dialogueService struct {
	taskManager *task.Manager
}

// NewDialogueService 创建 DialogueService 实例。
func NewDialogueService(tm *task.Manager) DialogueService {
	return &dialogueService{taskManager: tm}
}

func (s *dialogueService) Import(ctx context.Context, req *dto.ImportRequest) (int64, error) {
	const maxItemsPerImport = 1000
	if len(req.Items) > maxItemsPerImport {
		return 0, fmt.Errorf("单次最多导入 %d 条问答", maxItemsPerImport)
	}

	tx, err := dao.DB.Beginx()
	if err != nil {
		return 0, fmt.Errorf("开启事务失败: %w", err)
	}

	n, err := dao.App.DialoguesDb.BatchInsert(req.Items, tx)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("提交事务失败: %w", err)
	}

	s.scheduleCacheFlush()
	return n, nil
}

func (s *dialogueService) Update(ctx context.Context, id uint, req *dto.UpdateDialogueRequest) error {
	data := make(map[string]interface{}, 4)
	if req.Answer != nil {
		data["answer"] = *req.Answer
	}
	if req.Flag != nil {
		data["flag"] = *req.Flag
	}
	if req.Weight != nil {
		data["weight"] = *req.Weight
	}
	if len(data) == 0 {
		return nil
	}
	data["updated_at"] = time.Now().Unix()

	n, err := dao.App.DialoguesDb.UpdateById(ctx, id, data)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("问答 #%d 不存在", id)
	}

	s.scheduleCacheFlush()
	return nil
}

func (s *dialogueService) Delete(ctx context.Context, id uint) error {
	n, err := dao.App.DialoguesDb.DeleteById(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		global.Log.Infof("Delete: 问答 #%d 不存在, 无需操作", id)
		return nil
	}

	s.scheduleCacheFlush()
	return nil
}

// scheduleCacheFlush 数据变更后调度一次防抖的搜索缓存清理
func (s *dialogueService) scheduleCacheFlush() {
	if s.taskManager == nil {
		return
	}
	s.taskManager.DebounceCacheFlush(3 * time.Second)
}
