package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging           LoggingConfig    `yaml:"logging"`
	MongoURI          string           `yaml:"mongo_uri"`
	MongoDBName       string           `yaml:"mongo_db_name"`
	InsightCollection string           `yaml:"insight_collection"`
	ProjectCollection string           `yaml:"project_collection"`
	Cloudinary        CloudinaryConfig `yaml:"cloudinary"`
	CORS              CORSConfig       `yaml:"cors"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CloudinaryConfig 는 이미지 전송 URL 재작성에 필요한 설정이다.
// 업로드/변환 자체는 외부 서비스가 담당하고, 백엔드는 URL 문자열만 다룬다.
type CloudinaryConfig struct {
	CloudName string `yaml:"cloud_name"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	// 배포 환경에서는 접속 문자열을 환경변수로만 주입한다.
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.MongoURI = v
	}
	if c.MongoDBName == "" {
		c.MongoDBName = "gaoninterior"
	}
	if c.InsightCollection == "" {
		c.InsightCollection = "insights"
	}
	if c.ProjectCollection == "" {
		c.ProjectCollection = "projects"
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
