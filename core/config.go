package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Session drivers
const (
	SessionDriverMemory = "memory"
	SessionDriverSQLite = "sqlite"
)

type (
	Config struct {
		AppName      string        `mapstructure:"appname"`
		Build        string        `mapstructure:"build"`
		Env          string        `mapstructure:"env"`
		Debug        bool          `mapstructure:"debug"`
		TestMode     bool          `mapstructure:"testmode"`
		RollbarToken string        `mapstructure:"rollbartoken"`
		Server       ServerConfig  `mapstructure:"server"`
		Session      SessionConfig `mapstructure:"session"`
	}

	ServerConfig struct {
		Address         string        `mapstructure:"address"`
		Host            string        `mapstructure:"host"`
		DebugHost       string        `mapstructure:"debughost"`
		ShutdownTimeout time.Duration `mapstructure:"shutdowntimeout"`
		DisableReqLogs  bool          `mapstructure:"disablereqlogs"`
	}

	// SessionConfig selects where the current actor is persisted between restarts.
	SessionConfig struct {
		Driver string `mapstructure:"driver"` // memory | sqlite
		Path   string `mapstructure:"path"`
	}
)

// NewConfig loads the configuration from defaults, the optional config/.env.<env> file and the environment.
// Environment variables are prefixed with the upper-cased env name, e.g. DEV_SERVER_ADDRESS.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "Examdesk")
	v.SetDefault("build", "develop")
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("session.driver", SessionDriverSQLite)
	v.SetDefault("session.path", "examdesk.db")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
		v.SetDefault("session.driver", SessionDriverMemory)
	}
	v.SetDefault("env", env)
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("config.os.Getwd(): %v", err)
	}
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := new(Config)
	if err := v.Unmarshal(conf); err != nil {
		log.Fatalf("config.Unmarshal(): %v", err)
	}
	return conf
}
