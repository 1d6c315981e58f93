package config

type Config struct {
	Debug            bool     `mapstructure:"debug" json:"debug" yaml:"debug"`
	ProjectName      string   `mapstructure:"project_name" json:"project_name" yaml:"project_name"`
	GinAddr          string   `mapstructure:"gin_addr" json:"gin_addr" yaml:"gin_addr"`
	StaticDir        string   `mapstructure:"static_dir" json:"static_dir" yaml:"static_dir"`
	GinLogPath       string   `mapstructure:"gin_log_path" json:"gin_log_path" yaml:"gin_log_path"`
	RunLogPath       string   `mapstructure:"run_log_path" json:"run_log_path" yaml:"run_log_path"`
	LogRetentionDays uint     `mapstructure:"log_retention_days" json:"log_retention_days" yaml:"log_retention_days"`
	Tz               string   `mapstructure:"tz" json:"tz" yaml:"tz"`
	Cors             []string `mapstructure:"cors" json:"cors" yaml:"cors"`
	Database         Database `mapstructure:"database" json:"database" yaml:"database"`
	Redis            Redis    `mapstructure:"redis" json:"redis" yaml:"redis"`
	Onebot           Onebot   `mapstructure:"onebot" json:"onebot" yaml:"onebot"`
	Llm              []Llm    `mapstructure:"llm" json:"llm" yaml:"llm"`
	Oss              Oss      `mapstructure:"oss" json:"oss" yaml:"oss"`
	Search           Search   `mapstructure:"search" json:"search" yaml:"search"`
}
