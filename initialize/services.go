package initialize

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gitee.com/taoJie_1/dialogue-bot/global"
	"gitee.com/taoJie_1/dialogue-bot/internal/llm"
	"gitee.com/taoJie_1/dialogue-bot/internal/onebot"
	"gitee.com/taoJie_1/dialogue-bot/internal/oss"
	"gitee.com/taoJie_1/dialogue-bot/internal/redis"
	"gitee.com/taoJie_1/dialogue-bot/model/enum"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/sync/errgroup"
)

// initRedis 初始化Redis客户端
func (i *Initializer) initRedis() error {
	client, err := redis.NewClient(
		global.Config.Redis.Addr,
		global.Config.Redis.Password,
		global.Config.Redis.DB,
	)
	if err != nil {
		global.Log.Warnf("初始化Redis失败, 搜索缓存不可用: %v", err)
		return err
	}
	global.RedisClient = client
	global.Log.Info("初始化Redis服务成功")
	return nil
}

// redisClose 关闭Redis客户端连接
func (i *Initializer) redisClose() error {
	if global.RedisClient != nil {
		return global.RedisClient.Close()
	}
	return nil
}

// initOnebot 初始化OneBot消息推送客户端
func (i *Initializer) initOnebot() error {
	if global.Config.Onebot.Url == "" {
		global.Log.Info("OneBot配置不完整，跳过初始化")
		return nil
	}

	global.OnebotService = onebot.NewClient(
		global.Config.Onebot.Url,
		global.Config.Onebot.AccessToken,
		time.Duration(global.Config.Onebot.Timeout)*time.Second,
		global.Log,
	)
	global.Log.Info("初始化OneBot服务成功")
	return nil
}

func (i *Initializer) initLlm() error {
	if err := i.doInitLlm(); err != nil {
		global.Log.Warnf("初始化LLM服务失败: %v", err)
		return err
	}
	global.Log.Info("初始化LLM服务成功")
	return nil
}

func (i *Initializer) doInitLlm() error {
	if len(global.Config.Llm) == 0 {
		return fmt.Errorf("未配置任何LLM")
	}

	llmClients := make(map[enum.LlmSize]*openai.Client, len(global.Config.Llm))
	for _, cfg := range global.Config.Llm {
		config := openai.DefaultConfig(cfg.Auth)
		config.BaseURL = cfg.Url
		config.HTTPClient = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}
		llmClients[enum.LlmSize(cfg.Size)] = openai.NewClientWithConfig(config)
	}

	g, gCtx := errgroup.WithContext(context.Background())
	// 并发地对所有配置的LLM服务进行连接测试
	for _, cfg := range global.Config.Llm {
		cfg := cfg // 避免闭包陷阱
		g.Go(func() error {
			size := enum.LlmSize(cfg.Size)
			client := llmClients[size]

			reqCtx, cancel := context.WithTimeout(gCtx, 5*time.Second)
			defer cancel()

			// 通过ListModels接口验证服务是否可用
			if _, err := client.ListModels(reqCtx); err != nil {
				return fmt.Errorf("无法连接到LLM服务 (size: %s, url: %s): %w", size, cfg.Url, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	global.Llm = llmClients
	global.LlmService = llm.NewClient(
		global.Log,
		llmClients,
		global.Config.Llm,
	)
	return nil
}

func (i *Initializer) initOss() error {
	cfg := global.Config.Oss
	if cfg.Endpoint == "" || cfg.Bucket == "" || cfg.AccessKeyId == "" || cfg.AccessKeySecret == "" {
		global.Log.Info("OSS配置不完整，跳过初始化")
		return nil
	}

	// 传递全局时区信息给OSS客户端
	client, err := oss.NewClient(cfg, global.Tz)
	if err != nil {
		global.Log.Warnf("初始化OSS服务失败: %v", err)
		return err
	}
	global.OssService = client
	global.Log.Info("初始化OSS服务成功")
	return nil
}

func (i *Initializer) ossClose() error {
	if global.OssService != nil {
		return global.OssService.Close()
	}
	return nil
}
