package config

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum float64
	MaxIterations         int
	MonitorDiskPath       string
}

var once sync.Once
var config *SchedulerConfig

func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.default_time_quantum", 1.0)
		viper.SetDefault("scheduler.max_iterations", 1_000_000)
		viper.SetDefault("monitor.disk_path", "/")
		if err := viper.ReadInConfig(); err != nil {
			// Missing file falls back to defaults; anything else is fatal.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				log.Fatalln(err)
			}
		}
		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.RoundRobinTimeQuantum = viper.GetFloat64("scheduler.round_robin.default_time_quantum")
		config.MaxIterations = viper.GetInt("scheduler.max_iterations")
		config.MonitorDiskPath = viper.GetString("monitor.disk_path")
	})

	return config
}
