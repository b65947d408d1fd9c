package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name    string
		Port    string
		Version string
	}
	Database struct {
		Dsn          string
		MaxIdleConns int
		MaxOpenConns int
	}
	Redis struct {
		Addr     string
		DB       int
		Password string
	}
	RabbitMQ struct {
		Url   string
		Queue string
	}
	Gemini struct {
		APIKey         string
		ChatModel      string
		FallbackModels []string
		EmbeddingModel string
		TopK           int
	}
	Data struct {
		Dir       string
		IndexPath string
	}
	JWT struct {
		Secret string
	}
}

var AppConfig *Config

func InitConfig() {
	// .env is optional; real environment variables always win
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}

	AppConfig = &Config{}

	if err := viper.Unmarshal(AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct: %v", err)
	}

	AppConfig.Gemini.APIKey = getEnvOrDefault("GEMINI_API_KEY", AppConfig.Gemini.APIKey)
	if AppConfig.Gemini.ChatModel == "" {
		AppConfig.Gemini.ChatModel = "gemini-2.0-flash-lite"
	}
	if len(AppConfig.Gemini.FallbackModels) == 0 {
		AppConfig.Gemini.FallbackModels = []string{"gemini-1.5-flash", "gemini-pro"}
	}
	if AppConfig.Gemini.EmbeddingModel == "" {
		AppConfig.Gemini.EmbeddingModel = "text-embedding-004"
	}
	if AppConfig.Gemini.TopK <= 0 {
		AppConfig.Gemini.TopK = 3
	}
	if AppConfig.Data.Dir == "" {
		AppConfig.Data.Dir = "./data"
	}
	if AppConfig.Data.IndexPath == "" {
		AppConfig.Data.IndexPath = "./data/index.json"
	}
	AppConfig.JWT.Secret = getEnvOrDefault("JWT_SECRET", AppConfig.JWT.Secret)

	initDB()
	initRedis()
	initRabbit()
}

// getEnvOrDefault 获取环境变量，如果不存在则返回默认值
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
