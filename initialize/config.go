package initialize

import (
	"flag"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/dialogue-bot/global"
	"gitee.com/taoJie_1/dialogue-bot/model/config"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

var (
	Conf string
	Act  string
)

func init() {
	flag.StringVar(&Conf, "c", "", "choose config file.")
	flag.StringVar(&Act, "a", "", `行为,默认为空,即启动服务; "flush": 清空搜索缓存; "cleanlog": 清理过期日志;`)
}

// New 创建一个新的初始化器，并加载配置文件
func New() *Initializer {
	var configPath string
	if gin.Mode() != gin.TestMode {
		flag.Parse()
		if Conf != "" {
			configPath = Conf
		}
	}
	if configPath == "" {
		configPath = `config.yaml`
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		panic("读取配置失败[xw41p]: " + configPath + err.Error())
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("配置文件变化[kq8sd]: ", e.Name)
		if err := v.Unmarshal(global.Config); err != nil {
			fmt.Println(err)
		}
		handleConfig(global.Config)
	})

	if err := v.Unmarshal(global.Config); err != nil {
		panic("出错[mh3fz]: " + err.Error())
	}

	handleConfig(global.Config)

	return &Initializer{}
}

// handleConfig 处理和设置配置的默认值
func handleConfig(c *config.Config) {
	c.StaticDir = strings.TrimRight(c.StaticDir, "/")

	if c.ProjectName == "" {
		c.ProjectName = "问答机器人"
	}
	if c.GinAddr == "" {
		c.GinAddr = ":80"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.GinLogPath == "" {
		c.GinLogPath = "log/gin.log"
	}
	if c.RunLogPath == "" {
		c.RunLogPath = "log/run.log"
	}
	if c.Tz == "" {
		c.Tz = "Asia/Shanghai"
	}
	if len(c.Cors) == 0 {
		c.Cors = []string{"*"}
	}
	if c.Database.Type == "" {
		c.Database.Type = "sqlite3"
	}
	if c.Database.SqlitePath == "" {
		c.Database.SqlitePath = "data.db"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Redis.SearchCacheTTL == 0 {
		c.Redis.SearchCacheTTL = 300 // 默认5分钟
	}
	if c.Onebot.Timeout == 0 {
		c.Onebot.Timeout = 10
	}
	for i := range c.Llm {
		if c.Llm[i].Timeout == 0 {
			c.Llm[i].Timeout = 10
		}
	}
	if c.Search.ItemsPerPage == 0 {
		c.Search.ItemsPerPage = 20
	}
	if c.Search.MergeThreshold == 0 {
		c.Search.MergeThreshold = 5
	}
	if c.Search.MaxAnswerLength == 0 {
		c.Search.MaxAnswerLength = 100
	}
}
