package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultJWTSecret = "your-very-strong-access-secret"

type Config struct {
	App struct {
		Env             string        `env:"APP_ENV"          envDefault:"development"`
		Port            string        `env:"PORT"             envDefault:"5000"`
		FrontendURL     []string      `env:"FRONTEND_URL"     envDefault:"http://localhost:3000" envSeparator:","`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	}
	DB struct {
		Host         string `env:"DB_HOST"           envDefault:"localhost"`
		Port         string `env:"DB_PORT"           envDefault:"5432"`
		User         string `env:"DB_USER"           envDefault:"postgres"`
		Password     string `env:"DB_PASSWORD"       envDefault:"password"`
		Name         string `env:"DB_NAME"           envDefault:"scout_kz"`
		SSLMode      string `env:"DB_SSLMODE"        envDefault:"disable"`
		AutoMigrate  bool   `env:"DB_AUTO_MIGRATE"   envDefault:"true"`
		MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
		MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	}
	JWT struct {
		Secret      string `env:"JWT_SECRET"       envDefault:"your-very-strong-access-secret"`
		ExpiryHours int    `env:"JWT_EXPIRY_HOURS" envDefault:"168"`
	}
	Auth struct {
		BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`
	}
	Video struct {
		MaxPerPlayer  int    `env:"MAX_VIDEOS_PER_PLAYER" envDefault:"5"`
		MaxFileSizeMB int64  `env:"MAX_VIDEO_SIZE_MB"     envDefault:"500"`
		Host          string `env:"VIDEO_HOST"            envDefault:"s3"`
	}
	Storage    Storage
	Cloudinary Cloudinary
}

// Video hosts selectable with VIDEO_HOST.
const (
	HostS3         = "s3"
	HostCloudinary = "cloudinary"
)

// Storage describes the S3-compatible bucket that hosts uploaded videos.
type Storage struct {
	Endpoint        string        `env:"STORAGE_ENDPOINT"`
	Region          string        `env:"STORAGE_REGION"            envDefault:"auto"`
	Bucket          string        `env:"STORAGE_BUCKET"            envDefault:"scout-kz"`
	AccessKeyID     string        `env:"STORAGE_ACCESS_KEY_ID"`
	SecretAccessKey string        `env:"STORAGE_SECRET_ACCESS_KEY"`
	PublicBaseURL   string        `env:"STORAGE_PUBLIC_BASE_URL"`
	Folder          string        `env:"STORAGE_FOLDER"            envDefault:"scout-kz/videos"`
	UsePathStyle    bool          `env:"STORAGE_USE_PATH_STYLE"    envDefault:"false"`
	Timeout         time.Duration `env:"STORAGE_TIMEOUT"           envDefault:"10m"`
}

// Cloudinary holds the credentials of the transcoding video host.
type Cloudinary struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
	Folder    string `env:"CLOUDINARY_FOLDER"        envDefault:"scout-kz/videos"`
	// UploadPrefix replaces https://api.cloudinary.com when set.
	UploadPrefix string `env:"CLOUDINARY_UPLOAD_PREFIX"`
}

// TokenTTL is the lifetime of issued access tokens.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpiryHours) * time.Hour
}

// MaxVideoBytes is the upload size ceiling in bytes.
func (c *Config) MaxVideoBytes() int64 {
	return c.Video.MaxFileSizeMB << 20
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// LoadConfig reads an optional .env file and then parses the environment
// into a Config.
func LoadConfig() (*Config, error) {
	// It's okay if .env doesn't exist, production sets env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWT.ExpiryHours <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS: %d", cfg.JWT.ExpiryHours)
	}
	if cfg.Video.MaxPerPlayer <= 0 {
		return nil, fmt.Errorf("invalid MAX_VIDEOS_PER_PLAYER: %d", cfg.Video.MaxPerPlayer)
	}
	switch cfg.Video.Host {
	case HostS3:
	case HostCloudinary:
		if cfg.Cloudinary.CloudName == "" || cfg.Cloudinary.APIKey == "" || cfg.Cloudinary.APISecret == "" {
			return nil, fmt.Errorf("VIDEO_HOST=cloudinary needs CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET")
		}
	default:
		return nil, fmt.Errorf("invalid VIDEO_HOST: %q", cfg.Video.Host)
	}

	if cfg.JWT.Secret == defaultJWTSecret {
		log.Println("WARNING: Using default JWT secret. Please set JWT_SECRET for production.")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}
	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
	)
}

// MigrationURL is the same database expressed as a URL, which is what
// golang-migrate expects.
func (c *Config) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

// ConnectDB opens the shared connection pool.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}
	if cfg.IsDevelopment() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)

	log.Println("Successfully connected to database!")
	return db, nil
}
