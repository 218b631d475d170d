package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port              string `mapstructure:"PORT"`
	MongoURI          string `mapstructure:"MONGODB_URI"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`
	StripeSecretKey   string `mapstructure:"STRIPE_SECRET_KEY"`
	EnableCORS        bool   `mapstructure:"ENABLE_CORS"`
}

func LoadConfig() *Config {
	// A .env file is optional; deployments may set plain environment variables.
	_ = godotenv.Load()

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("MONGODB_URI", "mongodb://127.0.0.1:27017")
	viper.SetDefault("DATABASE_NAME", "campDocDB")
	viper.SetDefault("ENABLE_CORS", true)

	viper.BindEnv("MONGODB_URI")
	viper.BindEnv("DATABASE_NAME")
	viper.BindEnv("ACCESS_TOKEN_SECRET")
	viper.BindEnv("STRIPE_SECRET_KEY")
	viper.BindEnv("ENABLE_CORS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
