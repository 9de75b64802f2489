package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Errorf("config file not found: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
		return
	}
	logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())

	ConfigInfo.Server.Addr = viper.GetString("server.addr")

	ConfigInfo.Mongo.Uri = viper.GetString("mongo.uri")
	ConfigInfo.Mongo.Database = viper.GetString("mongo.database")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")

	ConfigInfo.RabbitMq.Addr = viper.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = viper.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = viper.GetString("rabbitmq.password")

	ConfigInfo.Jwt.Secret = viper.GetString("jwt.secret")

	ConfigInfo.Cors.AllowOrigins = viper.GetStringSlice("cors.allow_origins")

	logrus.Infof("Config loaded - Mongo: %s/%s, Redis: %s, RabbitMQ: %s",
		ConfigInfo.Mongo.Uri, ConfigInfo.Mongo.Database,
		ConfigInfo.Redis.Addr, ConfigInfo.RabbitMq.Addr)

	if ConfigInfo.Jwt.Secret == "" {
		logrus.Warn("No jwt secret configured!")
	}
}
