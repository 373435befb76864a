package internal

import (
	"fmt"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// Config is loaded once at start-up and never changes afterwards.
type Config struct {
	ServerHost       string        `env:"SERVER_HOST,default=localhost" validate:"required"`
	ServerPort       int           `env:"SERVER_PORT,default=9000" validate:"min=1,max=65535"`
	ChunkSize        int           `env:"CHUNK_SIZE,default=4096" validate:"gt=0"`
	DebugMode        bool          `env:"DEBUG_MODE,default=false"`
	Colours          bool          `env:"COLOURS,default=true"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	ConnectTimeout   time.Duration `env:"CONNECT_TIMEOUT,default=5s" validate:"gt=0"`
	LoginTimeout     time.Duration `env:"LOGIN_TIMEOUT,default=10s" validate:"gt=0"`
	MaxLoginAttempts int           `env:"MAX_LOGIN_ATTEMPTS,default=3" validate:"gte=1"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,default=3s" validate:"gt=0"`
	DialTimeout      time.Duration `env:"DIAL_TIMEOUT,default=5s" validate:"gt=0"`
	RestartDelay     time.Duration `env:"RESTART_DELAY,default=200ms" validate:"gt=0"`
	LatencyThreshold time.Duration `env:"LATENCY_THRESHOLD,default=2s" validate:"gt=0"`
	MaxFrameSize     int           `env:"MAX_FRAME_SIZE,default=16777216" validate:"gt=0"`
	Nickname         string        `env:"CHAT_CLIENT_NICKNAME" validate:"omitempty,min=3,max=16"`
}

// Load reads the optional .env file then the process environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnviron(os.Environ())
}

// FromEnviron builds a Config from KEY=VALUE pairs.
func FromEnviron(environ []string) (Config, error) {
	var config Config
	es, err := env.EnvironToEnvSet(environ)
	if err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := env.Unmarshal(es, &config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}
