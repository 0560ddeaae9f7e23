package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultCacheVersion       = "twa-test-v1"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// App identifies the web application the worker serves
	App *AppConfig `json:"app" yaml:"app"`

	// Cache configuration for the asset cache manager
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Firebase configuration for push notifications (client identity + admin credentials)
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Platform configuration for the headless permission/token primitives
	Platform *PlatformConfig `json:"platform" yaml:"platform"`

	// PubSub configuration for telemetry event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AppConfig identifies the application origin the worker controls
type AppConfig struct {
	// Base URL attached to webpush messages as the click-through link
	URL string `json:"url" yaml:"url"`

	// Origin used to match open window clients on notification click
	Origin string `json:"origin" yaml:"origin"`
}

// CacheConfig defines the asset cache manager configuration
type CacheConfig struct {
	// Cache generation name; bumping it evicts every prior generation on activation
	Version string `json:"version" yaml:"version"`

	// Root-relative URLs precached on install, each added independently
	Manifest []string `json:"manifest" yaml:"manifest"`

	// URL substrings that bypass the cache entirely
	Exclusions []string `json:"exclusions" yaml:"exclusions"`

	// Optional TTL per cached entry; zero keeps entries until the generation is evicted
	EntryTTL time.Duration `json:"entryTtl" yaml:"entryTtl"`
}

// FirebaseConfig carries the messaging project identity and the admin
// credentials used by the dispatch gateway's provider client.
type FirebaseConfig struct {
	APIKey            string `json:"apiKey" yaml:"apiKey"`
	AuthDomain        string `json:"authDomain" yaml:"authDomain"`
	ProjectID         string `json:"projectId" yaml:"projectId"`
	StorageBucket     string `json:"storageBucket" yaml:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId" yaml:"messagingSenderId"`
	AppID             string `json:"appId" yaml:"appId"`

	// Public key scoping token requests
	VAPIDKey string `json:"vapidKey" yaml:"vapidKey"`

	// Admin credentials: either a service account file path or the inline pair
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	ClientEmail     string `json:"clientEmail" yaml:"clientEmail"`
	PrivateKey      string `json:"privateKey" yaml:"privateKey"`
}

// PlatformConfig configures the headless stand-ins for browser primitives
type PlatformConfig struct {
	// Recorded outcome of the permission prompt: default, granted or denied
	Permission string `json:"permission" yaml:"permission"`

	// Identifier of the active worker registration tokens are scoped to
	RegistrationID string `json:"registrationId" yaml:"registrationId"`
}

// PubSubConfig defines Pub/Sub configuration for telemetry publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: FIREBASE_PROJECTID -> firebase.projectId (not firebase.projectid)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyCacheDefaults(cfg)

	return cfg, nil
}

// applyCacheDefaults fills in the cache version, asset manifest and exclusion
// list when the config file leaves them out.
func applyCacheDefaults(cfg *Config) {
	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if strings.TrimSpace(cfg.Cache.Version) == "" {
		cfg.Cache.Version = defaultCacheVersion
	}
	if len(cfg.Cache.Manifest) == 0 {
		cfg.Cache.Manifest = []string{
			"/",
			"/manifest.json",
			"/icons/icon-192x192.svg",
			"/icons/icon-512x512.svg",
		}
	}
	if len(cfg.Cache.Exclusions) == 0 {
		cfg.Cache.Exclusions = []string{
			"/api/",
			"googleapis.com",
			"firebase",
		}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
