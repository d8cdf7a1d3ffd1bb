package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port         int
	Theme        string
	GanttWidth   int
	MaxProcesses int
	SampleLimit  int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads the configuration exactly once: defaults,
// overridden by an optional config.yaml in the working directory,
// overridden by FCFS_* environment variables (a .env file is honored
// when present).
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		if err := godotenv.Load(); err == nil {
			log.Println("loaded environment from .env")
		}

		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		viper.SetEnvPrefix("fcfs")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		viper.SetDefault("port", 9095)
		viper.SetDefault("render.theme", "dark")
		viper.SetDefault("render.gantt_width", 60)
		viper.SetDefault("scheduler.max_processes", 1000)
		viper.SetDefault("sample.limit", 20)

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalln(err)
			}
		}

		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.Theme = viper.GetString("render.theme")
		config.GanttWidth = viper.GetInt("render.gantt_width")
		config.MaxProcesses = viper.GetInt("scheduler.max_processes")
		config.SampleLimit = viper.GetInt("sample.limit")
	})

	return config
}
