package bootstrap

import (
	"log"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv            string `mapstructure:"APP_ENV"`
	ServerAddress     string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout    int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBHost            string `mapstructure:"DB_HOST"`
	DBPort            string `mapstructure:"DB_PORT"`
	DBUser            string `mapstructure:"DB_USER"`
	DBPass            string `mapstructure:"DB_PASS"`
	DBName            string `mapstructure:"DB_NAME"`
	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`
	CacheDir          string `mapstructure:"CACHE_DIR"`
	CacheTTLMinutes   int    `mapstructure:"CACHE_TTL_MINUTES"`
}

func NewEnv() *Env {
	env := Env{}
	viper.SetConfigFile(".env")

	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal("找不到.env配置文件: ", err)
	}

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatal("配置文件解析失败: ", err)
	}

	if env.AppEnv == "development" {
		log.Println("应用运行在development模式")
	}

	return &env
}
