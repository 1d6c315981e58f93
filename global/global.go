package global

import (
	"time"

	"gitee.com/taoJie_1/dialogue-bot/internal/llm"
	"gitee.com/taoJie_1/dialogue-bot/internal/onebot"
	"gitee.com/taoJie_1/dialogue-bot/internal/oss"
	"gitee.com/taoJie_1/dialogue-bot/internal/redis"
	"gitee.com/taoJie_1/dialogue-bot/model/config"
	"gitee.com/taoJie_1/dialogue-bot/model/enum"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// 全局变量
// 业务逻辑禁止修改
var (
	Config *config.Config = new(config.Config) //指针类型, 给与其内存空间
	Log    *logrus.Logger
	Tz     *time.Location

	Llm map[enum.LlmSize]*openai.Client = make(map[enum.LlmSize]*openai.Client, 3)

	RedisClient   redis.Service
	OnebotService onebot.Service
	LlmService    llm.Service
	OssService    oss.Service
)
