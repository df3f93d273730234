package config // package config loads application settings from the environment and an optional dotenv file

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file consulted when no other path is given.
const DefaultEnvFile = ".env"

// Settings holds the runtime configuration of the service.  A Settings value
// is never modified after Load returns; the process-wide instance is shared
// by reference between the dependency provider and the application.
type Settings struct {
	Env        string // deployment environment, informational only ("dev" when unset)
	GroqAPIKey string // credential for the Groq provider; empty means absent
	Port       string // HTTP port to listen on
	LogLevel   string // debug | info | warn | error

	RateLimit RateLimitConfig
	Redis     RedisConfig
}

// HasCredential reports whether a provider credential was configured.
func (s *Settings) HasCredential() bool {
	return s != nil && s.GroqAPIKey != ""
}

// Load reads settings from the process environment, falling back to the
// values found in envFile.  A missing file is not an error, and neither is a
// missing credential: the service must start without one.
func Load(envFile string) *Settings {
	src := newSource(envFile)
	return &Settings{
		Env:        src.envStr("ENV", "dev"),
		GroqAPIKey: src.envStr("GROQ_API_KEY", ""),
		Port:       src.envStr("PORT", "8000"),
		LogLevel:   src.envStr("LOG_LEVEL", "info"),
		RateLimit:  src.rateLimit(),
		Redis:      src.redis(),
	}
}

var (
	initOnce sync.Once
	current  *Settings
)

// Init loads the process-wide settings.  It is meant to be called exactly
// once at startup; later calls return the instance built by the first one.
func Init(envFile string) *Settings {
	initOnce.Do(func() {
		current = Load(envFile)
	})
	return current
}

// Get returns the process-wide settings, loading them from DefaultEnvFile if
// Init was never called.  The environment is not re-read afterwards.
func Get() *Settings {
	return Init(DefaultEnvFile)
}

// source resolves keys against the environment first and the dotenv file
// second.  Keys match case-insensitively.
type source struct {
	file map[string]string
}

func newSource(envFile string) source {
	src := source{file: map[string]string{}}
	if envFile == "" {
		return src
	}
	vals, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("ignoring unreadable env file", "path", envFile, "error", err)
		}
		return src
	}
	for k, v := range vals {
		src.file[strings.ToUpper(k)] = v
	}
	return src
}

func (s source) lookup(key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v, true
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && v != "" && strings.EqualFold(k, key) {
			return v, true
		}
	}
	if v, ok := s.file[strings.ToUpper(key)]; ok && v != "" {
		return v, true
	}
	return "", false
}
