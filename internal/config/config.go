package config

import "os"

// Config holds process-level settings, all sourced from the environment.
type Config struct {
	MongoURI       string
	MongoDatabase  string
	RedisAddr      string
	HTTPPort       string
	RabbitURI      string
	RabbitExchange string
	FrontendURL    string
}

// Load reads configuration from the environment with local-dev defaults.
func Load() *Config {
	return &Config{
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "onboarding"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:       getEnv("PORT", "3001"),
		RabbitURI:      os.Getenv("RABBITMQ_URI"),
		RabbitExchange: getEnv("RABBITMQ_EXCHANGE", "onboarding.events"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:8080"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
