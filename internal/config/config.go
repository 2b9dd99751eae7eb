// Package config collects every environment-driven setting in one place so
// nothing reaches for os.Getenv (or a hardcoded secret) from inside the core.
package config

import "os"

type MySQL struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
}

type Config struct {
	Port        string
	MySQL       MySQL
	RedisAddr   string
	RabbitMQURL string
	Exchange    string
}

func Load() Config {
	return Config{
		Port: getenv("PORT", "8080"),
		MySQL: MySQL{
			User:     os.Getenv("MYSQL_USER"),
			Password: os.Getenv("MYSQL_PASSWORD"),
			Host:     getenv("MYSQL_HOST", "localhost"),
			Port:     getenv("MYSQL_PORT", "3306"),
			Database: os.Getenv("MYSQL_DATABASE"),
		},
		RedisAddr:   getenv("REDIS_HOST", "localhost") + ":6379",
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
		Exchange:    getenv("RABBITMQ_EXCHANGE", "order.exchange"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
