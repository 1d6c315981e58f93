package config

type Database struct {
	Type          string `json:"type" mapstructure:"type" yaml:"type"`
	SqlitePath    string `json:"sqlite_path" mapstructure:"sqlite_path" yaml:"sqlite_path"`
	MysqlHost     string `json:"mysql_host" mapstructure:"mysql_host" yaml:"mysql_host"`
	MysqlPort     string `json:"mysql_port" mapstructure:"mysql_port" yaml:"mysql_port"`
	MysqlDbname   string `json:"mysql_dbname" mapstructure:"mysql_dbname" yaml:"mysql_dbname"`
	MysqlUsername string `json:"mysql_username" mapstructure:"mysql_username" yaml:"mysql_username"`
	MysqlPassword string `json:"mysql_password" mapstructure:"mysql_password" yaml:"mysql_password"`
}

type Redis struct {
	Addr           string `json:"addr" mapstructure:"addr" yaml:"addr"`
	Password       string `json:"password" mapstructure:"password" yaml:"password"`
	DB             int    `json:"db" mapstructure:"db" yaml:"db"`
	SearchCacheTTL int64  `json:"search_cache_ttl" mapstructure:"search_cache_ttl" yaml:"search_cache_ttl"`
}

// Onebot 消息推送端(OneBot HTTP API)的连接配置
type Onebot struct {
	Url         string `json:"url" mapstructure:"url" yaml:"url"`
	AccessToken string `json:"access_token" mapstructure:"access_token" yaml:"access_token"`
	Timeout     int64  `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
}

type Llm struct {
	Url     string `json:"url" mapstructure:"url" yaml:"url"`
	Model   string `json:"model" mapstructure:"model" yaml:"model"`
	Auth    string `json:"auth" mapstructure:"auth" yaml:"auth"`
	Size    string `json:"size" mapstructure:"size" yaml:"size"`
	Timeout int64  `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
}

type Oss struct {
	Endpoint        string `json:"endpoint" mapstructure:"endpoint" yaml:"endpoint"`
	AccessKeyId     string `json:"access_key_id" mapstructure:"access_key_id" yaml:"access_key_id"`
	AccessKeySecret string `json:"access_key_secret" mapstructure:"access_key_secret" yaml:"access_key_secret"`
	Bucket          string `json:"bucket" mapstructure:"bucket" yaml:"bucket"`
	StoragePath     string `json:"storage_path" mapstructure:"storage_path" yaml:"storage_path"`
	CdnDomain       string `json:"cdn_domain" mapstructure:"cdn_domain" yaml:"cdn_domain"`
}

// Search 问答搜索与展示的配置项
type Search struct {
	ItemsPerPage    uint `json:"items_per_page" mapstructure:"items_per_page" yaml:"items_per_page"`
	MergeThreshold  uint `json:"merge_threshold" mapstructure:"merge_threshold" yaml:"merge_threshold"`
	MaxAnswerLength uint `json:"max_answer_length" mapstructure:"max_answer_length" yaml:"max_answer_length"`
}
