package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Report   ReportConfig   `yaml:"report"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// DatabaseConfig selects the record store. Driver is "mysql" or "sqlite";
// Path is only read for sqlite.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Path     string `yaml:"path"`
}

type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
	AdminUser     string `yaml:"admin_user"`
	AdminPassword string `yaml:"admin_password"`
}

// ReportConfig controls the daily deadline-risk report.
type ReportConfig struct {
	Hour       int    `yaml:"hour"`
	Minute     int    `yaml:"minute"`
	Timezone   string `yaml:"timezone"`
	WindowDays int    `yaml:"window_days"`
}

func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: 5000},
		Log:      LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Database: DatabaseConfig{Driver: "sqlite", Port: 3306, Name: "jokipro", Path: "database.db"},
		Auth:     AuthConfig{JWTSecret: "jokipro-secret-change-me", TokenTTLHours: 7 * 24, AdminUser: "admin", AdminPassword: "admin123"},
		Report:   ReportConfig{Hour: 8, Minute: 0, Timezone: "Local", WindowDays: 7},
	}
}

func Load(configFile string) *Config {
	c := Default()

	// .env only seeds the environment; real env vars win.
	_ = godotenv.Load()

	paths := []string{"etc/config-dev.yaml", "/etc/jokipro/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Database.Driver, "DB_DRIVER")
	envOverride(&c.Database.Host, "DB_HOST")
	envOverride(&c.Database.User, "DB_USER")
	envOverride(&c.Database.Password, "DB_PASS")
	envOverride(&c.Database.Name, "DB_NAME")
	envOverride(&c.Database.Path, "DB_PATH")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverride(&c.Auth.JWTSecret, "JWT_SECRET")
	envOverride(&c.Report.Timezone, "REPORT_TZ")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Database.Port, "DB_PORT")
	envOverrideInt(&c.Report.Hour, "REPORT_HOUR")
	envOverrideInt(&c.Report.Minute, "REPORT_MINUTE")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) TokenTTL() time.Duration {
	if c.Auth.TokenTTLHours <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(c.Auth.TokenTTLHours) * time.Hour
}

// Location resolves Report.Timezone, falling back to time.Local.
func (c *Config) Location() *time.Location {
	if c.Report.Timezone == "" || c.Report.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Report.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) OpenGormDB() (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	switch c.Database.Driver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(c.Database.Path), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", c.Database.Path, err)
		}
		return db, nil
	case "mysql", "":
	default:
		return nil, fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	cfg := gomysql.NewConfig()
	cfg.User = c.Database.User
	cfg.Passwd = c.Database.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	cfg.DBName = c.Database.Name
	cfg.ParseTime = true

	connector, err := gomysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	sqlDB := sql.OpenDB(connector)
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return gorm.Open(mysql.New(mysql.Config{Conn: sqlDB}), gcfg)
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
