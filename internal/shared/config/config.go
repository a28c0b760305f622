package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Env             string
	Port            string
	CORSAllowOrigin []string
	Log             LogConfig
	Content         ContentConfig
	AWSRegion       string
	Redis           RedisConfig
	RateLimit       RateLimitConfig
	Careers         CareersConfig
	Resorts         ResortsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// ContentConfig selects where the content bundle is read from at startup.
type ContentConfig struct {
	Source   string
	Dir      string
	S3Bucket string
	S3Prefix string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Rate  float64
	Burst int
}

type CareersConfig struct {
	MatchWeight  int
	DefaultCount int
}

type ResortsConfig struct {
	MapSearchTemplate      string
	DefaultOrigin          string
	AdvancedHeavyMin       int
	BeginnerFriendlyMin    int
	IntermediateCentricMin int
}

// Load reads configuration from .env files, an optional config.yaml and the environment.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return FromViper(v), nil
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		Env:             normalizeEnv(v.GetString("env")),
		Port:            v.GetString("port"),
		CORSAllowOrigin: splitAndTrim(v.GetString("cors_allow_origins")),
		Log: LogConfig{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
			Format: strings.ToLower(strings.TrimSpace(v.GetString("log.format"))),
		},
		Content: ContentConfig{
			Source:   normalizeSource(v.GetString("content.source")),
			Dir:      v.GetString("content.dir"),
			S3Bucket: v.GetString("content.s3_bucket"),
			S3Prefix: v.GetString("content.s3_prefix"),
		},
		AWSRegion: v.GetString("aws.region"),
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		RateLimit: RateLimitConfig{
			Rate:  v.GetFloat64("rate_limit.rate"),
			Burst: v.GetInt("rate_limit.burst"),
		},
		Careers: CareersConfig{
			MatchWeight:  v.GetInt("careers.match_weight"),
			DefaultCount: v.GetInt("careers.default_count"),
		},
		Resorts: ResortsConfig{
			MapSearchTemplate:      v.GetString("resorts.map_search_template"),
			DefaultOrigin:          v.GetString("resorts.default_origin"),
			AdvancedHeavyMin:       v.GetInt("resorts.buckets.advanced_heavy_min"),
			BeginnerFriendlyMin:    v.GetInt("resorts.buckets.beginner_friendly_min"),
			IntermediateCentricMin: v.GetInt("resorts.buckets.intermediate_centric_min"),
		},
	}
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	return FromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("port", "8080")
	v.SetDefault("cors_allow_origins", "http://localhost:5173")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("content.source", "embedded")
	v.SetDefault("content.dir", "./content")
	v.SetDefault("content.s3_bucket", "")
	v.SetDefault("content.s3_prefix", "content/")
	v.SetDefault("aws.region", "ap-northeast-2")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("rate_limit.rate", 5)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("careers.match_weight", 2)
	v.SetDefault("careers.default_count", 6)
	v.SetDefault("resorts.map_search_template", "https://map.naver.com/p/search/%s")
	v.SetDefault("resorts.default_origin", "서울 성동구 옥수동")
	v.SetDefault("resorts.buckets.advanced_heavy_min", 30)
	v.SetDefault("resorts.buckets.beginner_friendly_min", 40)
	v.SetDefault("resorts.buckets.intermediate_centric_min", 40)
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeSource(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dir", "local":
		return "dir"
	case "s3":
		return "s3"
	default:
		return "embedded"
	}
}
