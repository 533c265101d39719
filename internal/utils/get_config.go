package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT keys
	JWTSecret        string `yaml:"JWT_SECRET"`
	JWTRefreshSecret string `yaml:"JWT_REFRESH_SECRET"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Object storage configuration
	S3Bucket    string `yaml:"S3_BUCKET"`
	S3Region    string `yaml:"S3_REGION"`
	S3Endpoint  string `yaml:"S3_ENDPOINT"`
	S3AccessKey string `yaml:"S3_ACCESS_KEY"`
	S3SecretKey string `yaml:"S3_SECRET_KEY"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Keys some packages read back through os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("JWT_REFRESH_SECRET", config.JWTRefreshSecret)
	os.Setenv("S3_BUCKET", config.S3Bucket)
	os.Setenv("S3_REGION", config.S3Region)
	os.Setenv("S3_ENDPOINT", config.S3Endpoint)
	os.Setenv("S3_ACCESS_KEY", config.S3AccessKey)
	os.Setenv("S3_SECRET_KEY", config.S3SecretKey)
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "JWT_REFRESH_SECRET":
		return config.JWTRefreshSecret
	case "APP_URL":
		return config.AppURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "S3_BUCKET":
		return config.S3Bucket
	case "S3_REGION":
		return config.S3Region
	case "S3_ENDPOINT":
		return config.S3Endpoint
	case "S3_ACCESS_KEY":
		return config.S3AccessKey
	case "S3_SECRET_KEY":
		return config.S3SecretKey
	default:
		return ""
	}
}
