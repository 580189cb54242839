package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
)

const (
	EnvVarsPrefix = "/simplecrm/prod/"

	BackendLocal = "local"
	BackendS3    = "s3"
)

type Config struct {
	Env                   string
	HTTPAddr              string
	DBPath                string
	CORSOrigins           []string
	BodyLimit             string
	NodeID                int64
	ArtifactBackend       string
	ArtifactDir           string
	S3Region              string
	S3Bucket              string
	StatusRefreshInterval time.Duration
	LogLevel              string
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

// ParameterStore is the part of the SSM client used to fetch production
// settings.
type ParameterStore interface {
	GetParametersByPath(ctx context.Context, params *ssm.GetParametersByPathInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GO_ENV", "development")
	v.SetDefault("HTTP_ADDR", ":7070")
	v.SetDefault("DB_PATH", "crm.db")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("BODY_LIMIT", "2M")
	v.SetDefault("NODE_ID", 1)
	v.SetDefault("ARTIFACT_BACKEND", BackendLocal)
	v.SetDefault("ARTIFACT_DIR", ".")
	v.SetDefault("AWS_S3_REGION", "us-east-2")
	v.SetDefault("S3_BUCKET_NAME", "")
	v.SetDefault("STATUS_REFRESH_INTERVAL", "1h")
	v.SetDefault("LOG_LEVEL", "info")
}

// Load fills the process environment from the right source and reads the
// settings from it. In production the source is the SSM parameter store,
// otherwise an optional .env file.
func Load(ctx context.Context) (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		if err := loadProdEnv(ctx); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// FromViper reads and checks the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	interval, err := time.ParseDuration(v.GetString("STATUS_REFRESH_INTERVAL"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATUS_REFRESH_INTERVAL: %w", err)
	}

	cfg := &Config{
		Env:                   v.GetString("GO_ENV"),
		HTTPAddr:              v.GetString("HTTP_ADDR"),
		DBPath:                v.GetString("DB_PATH"),
		CORSOrigins:           splitList(v.GetString("CORS_ORIGINS")),
		BodyLimit:             v.GetString("BODY_LIMIT"),
		NodeID:                v.GetInt64("NODE_ID"),
		ArtifactBackend:       strings.ToLower(v.GetString("ARTIFACT_BACKEND")),
		ArtifactDir:           v.GetString("ARTIFACT_DIR"),
		S3Region:              v.GetString("AWS_S3_REGION"),
		S3Bucket:              v.GetString("S3_BUCKET_NAME"),
		StatusRefreshInterval: interval,
		LogLevel:              strings.ToLower(v.GetString("LOG_LEVEL")),
	}

	switch cfg.ArtifactBackend {
	case BackendLocal:
	case BackendS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3_BUCKET_NAME is required when ARTIFACT_BACKEND=s3")
		}
	default:
		return nil, fmt.Errorf("unknown ARTIFACT_BACKEND %q", cfg.ArtifactBackend)
	}

	if cfg.NodeID < 0 || cfg.NodeID > 1023 {
		return nil, fmt.Errorf("NODE_ID must be within 0..1023, got %d", cfg.NodeID)
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ApplyLogLevel sets the gommon log level named by level.
func ApplyLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DEBUG)
	case "warn":
		log.SetLevel(log.WARN)
	case "error":
		log.SetLevel(log.ERROR)
	case "off":
		log.SetLevel(log.OFF)
	default:
		log.SetLevel(log.INFO)
	}
}

func loadProdEnv(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion("us-east-2"))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	n, err := ExportParameters(ctx, ssm.NewFromConfig(cfg), EnvVarsPrefix)
	if err != nil {
		return err
	}
	log.Debugf("loaded %d prod environment variables", n)
	return nil
}

// ExportParameters copies every parameter below path into the process
// environment, named after the part of the parameter name following path.
func ExportParameters(ctx context.Context, store ParameterStore, path string) (int, error) {
	var (
		count     int
		nextToken *string
	)
	for {
		out, err := store.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
			Path:           aws.String(path),
			WithDecryption: aws.Bool(true),
			Recursive:      aws.Bool(true),
			NextToken:      nextToken,
		})
		if err != nil {
			return count, fmt.Errorf("unable to load prod environment: %w", err)
		}

		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), path)
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return count, fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			count++
		}

		if out.NextToken == nil {
			return count, nil
		}
		nextToken = out.NextToken
	}
}
