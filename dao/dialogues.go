package dao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/dialogue-bot/global"
	"gitee.com/taoJie_1/dialogue-bot/model/db"
	"gitee.com/taoJie_1/dialogue-bot/model/dto"
	"gitee.com/taoJie_1/dialogue-bot/utils"
	goredis "github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
)

// SearchCacheKeyPrefix 搜索结果在Redis中的键前缀
const SearchCacheKeyPrefix = "dialogue:search:"

type DialoguesDb struct{}

// GetDialogues 按查询条件获取问答记录。
// Keyword 为 true 时问题/回答按子串匹配, 否则按全文精确匹配。
// 命中Redis缓存时不再查库; 缓存读写失败只降级, 不影响查询。
func (d *DialoguesDb) GetDialogues(ctx context.Context, test *dto.DialogueTest) ([]db.Dialogues, error) {
	cacheKey := searchCacheKey(test)

	if global.RedisClient != nil {
		raw, err := global.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached []db.Dialogues
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			global.Log.Warnf("搜索缓存解析失败, 回源查库: %v", err)
		} else if !errors.Is(err, goredis.Nil) {
			global.Log.Warnf("读取搜索缓存失败, 回源查库: %v", err)
		}
	}

	sql, args := buildDialogueQuery(test)

	var list []db.Dialogues
	if err := DB.SelectContext(ctx, &list, sql, args...); err != nil {
		return nil, fmt.Errorf("查询问答记录失败[qk27dd]: %w", err)
	}

	if global.RedisClient != nil {
		if raw, err := json.Marshal(list); err == nil {
			ttl := utils.GetTTLWithJitter(global.Config.Redis.SearchCacheTTL)
			if err := global.RedisClient.Set(ctx, cacheKey, raw, ttl).Err(); err != nil {
				global.Log.Warnf("写入搜索缓存失败: %v", err)
			}
		}
	}

	return list, nil
}

// FlushSearchCache 清空Redis中的搜索结果缓存, 返回删除的键数量
func (d *DialoguesDb) FlushSearchCache(ctx context.Context) (int64, error) {
	if global.RedisClient == nil {
		return 0, nil
	}

	keys, err := global.RedisClient.Keys(ctx, SearchCacheKeyPrefix+"*").Result()
	if err != nil {
		return 0, fmt.Errorf("枚举搜索缓存键失败: %w", err)
	}
	if len(keys) == 0 {
		return 0, nil
	}

	n, err := global.RedisClient.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("删除搜索缓存失败: %w", err)
	}
	return n, nil
}

// BatchInsert 批量插入问答记录
func (d *DialoguesDb) BatchInsert(data []dto.DialogueImport, tx *sqlx.Tx) (int64, error) {
	if tx == nil {
		return 0, errors.New("请使用事务[b3wqpo]")
	}

	if len(data) == 0 {
		return 0, nil
	}

	var sqlData []map[string]interface{}
	for _, item := range data {
		original := strings.TrimSpace(item.Original)
		if original == "" || item.Answer == "" {
			continue // 跳过无效数据
		}

		weight := item.Weight
		if weight <= 0 {
			weight = 1
		}

		sqlData = append(sqlData, map[string]interface{}{
			"original": original,
			"answer":   item.Answer,
			"flag":     item.Flag,
			"weight":   weight,
		})
	}

	sql, args, err := sqlBuilder.getBatchInsertSql(db.Dialogues{}, sqlData)
	if err != nil {
		return 0, fmt.Errorf("构建批量插入SQL失败: %w", err)
	}
	if sql == "" {
		return 0, nil
	}

	sql = tx.Rebind(sql)
	result, err := tx.Exec(sql, args...)
	if err != nil {
		return 0, fmt.Errorf("批量插入数据失败: %w", err)
	}

	return result.RowsAffected()
}

// UpdateById 按id更新问答记录的部分字段
func (d *DialoguesDb) UpdateById(ctx context.Context, id uint, data map[string]interface{}) (int64, error) {
	sql, args := sqlBuilder.getUpdateSql(db.Dialogues{}, id, data)
	if sql == "" {
		return 0, nil
	}

	result, err := DB.ExecContext(ctx, DB.Rebind(sql), args...)
	if err != nil {
		return 0, fmt.Errorf("更新问答记录失败: %w", err)
	}
	return result.RowsAffected()
}

// DeleteById 按id删除一条问答记录
func (d *DialoguesDb) DeleteById(ctx context.Context, id uint) (int64, error) {
	sql := fmt.Sprintf("DELETE FROM `%s` WHERE `id` = ?", db.Dialogues{}.TableName())

	result, err := DB.ExecContext(ctx, DB.Rebind(sql), id)
	if err != nil {
		return 0, fmt.Errorf("删除问答记录失败: %w", err)
	}
	return result.RowsAffected()
}

// CountAll 统计问答记录总数
func (d *DialoguesDb) CountAll(ctx context.Context) (int64, error) {
	sql := fmt.Sprintf("SELECT COUNT(*) FROM `%s`", db.Dialogues{}.TableName())

	var total int64
	if err := DB.GetContext(ctx, &total, sql); err != nil {
		return 0, fmt.Errorf("统计问答记录失败: %w", err)
	}
	return total, nil
}

// buildDialogueQuery 按查询条件拼接SQL
func buildDialogueQuery(test *dto.DialogueTest) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	if test.Question != "" {
		if test.Keyword {
			conds = append(conds, "`original` LIKE ? ESCAPE '|'")
			args = append(args, "%"+escapeLike(test.Question)+"%")
		} else {
			conds = append(conds, "`original` = ?")
			args = append(args, test.Question)
		}
	}
	if test.Answer != "" {
		if test.Keyword {
			conds = append(conds, "`answer` LIKE ? ESCAPE '|'")
			args = append(args, "%"+escapeLike(test.Answer)+"%")
		} else {
			conds = append(conds, "`answer` = ?")
			args = append(args, test.Answer)
		}
	}

	sql := fmt.Sprintf("SELECT `id`, `created_at`, `updated_at`, `original`, `answer`, `flag`, `weight` FROM `%s`", db.Dialogues{}.TableName())
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY `id` ASC"

	return sql, args
}

// escapeLike 转义LIKE模式中的特殊字符。
// 转义符用 '|' 而不用反斜杠: MySQL默认模式下反斜杠会先被字符串字面量消耗,
// 同一条SQL在sqlite与mysql上行为不一致。
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `|`, `||`)
	s = strings.ReplaceAll(s, `%`, `|%`)
	s = strings.ReplaceAll(s, `_`, `|_`)
	return s
}

// searchCacheKey 由查询条件生成稳定的缓存键
func searchCacheKey(test *dto.DialogueTest) string {
	kw := "0"
	if test.Keyword {
		kw = "1"
	}
	return SearchCacheKeyPrefix + utils.Hash(strings.Join([]string{test.Question, test.Answer, kw}, "\x00"))
}
