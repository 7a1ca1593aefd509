package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	defaultAPIBaseURL  = "http://localhost:5000"
	defaultAppEnv      = "local"
	defaultAppPort     = "8420"
	defaultHTTPTimeout = "30s"
	defaultCurrency    = "₦"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"API_BASE_URL": defaultAPIBaseURL,
		"APP_ENV":      defaultAppEnv,
		"APP_PORT":     defaultAppPort,
		"HTTP_TIMEOUT": defaultHTTPTimeout,
		"CURRENCY":     defaultCurrency,
		"SESSION_FILE": "",
	}
}

// APIBaseURL is the root of the remote inventory API, without a trailing slash.
func APIBaseURL() string {
	_ = Load()
	return strings.TrimRight(get("API_BASE_URL", defaultAPIBaseURL), "/")
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// AppPort is the listen port for the local dashboard server (serve mode).
func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

// HTTPTimeout is the per-attempt timeout for outgoing API calls.
func HTTPTimeout() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("HTTP_TIMEOUT", defaultHTTPTimeout))
	if err != nil {
		d, _ = time.ParseDuration(defaultHTTPTimeout)
	}
	return d
}

// Currency is the symbol used when formatting money in tables and reports.
func Currency() string {
	_ = Load()
	return get("CURRENCY", defaultCurrency)
}

// SessionFile is where the signed-in session is persisted. Defaults to
// pharmadesk/session.json under the user config dir.
func SessionFile() string {
	_ = Load()
	if f := get("SESSION_FILE", ""); f != "" {
		return f
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "pharmadesk", "session.json")
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
