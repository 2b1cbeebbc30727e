// config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Database      DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Security      SecurityConfiguration
	Auth          AuthConfiguration
	Tokens        TokensConfiguration
	Account       AccountConfiguration
	Claims        ClaimsConfiguration
	Uploads       UploadsConfiguration
	RateLimit     RateLimitConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port           string
	PublicURL      string
	TrustedProxies []string
}

// DatabaseConfiguration stores data for database connection
type DatabaseConfiguration struct {
	Driver string
	DSN    string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr            string
	DefaultCacheTTL string
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

// SecurityConfiguration holds the key material for id obfuscation
type SecurityConfiguration struct {
	DataProtectionKey string
}

type AuthConfiguration struct {
	JWTSecret  string
	SessionTTL time.Duration
	// ExternalLoginSecret is shared with the OAuth proxy that signs external
	// login assertions. Empty disables external login.
	ExternalLoginSecret string
	ExternalLoginTTL    time.Duration
}

type TokensConfiguration struct {
	EmailConfirmationTTL time.Duration
	PasswordResetTTL     time.Duration
}

type AccountConfiguration struct {
	AllowedEmailDomain string
}

// ClaimsConfiguration is the ordered catalog of claim types an admin may grant
type ClaimsConfiguration struct {
	Catalog []string
}

type UploadsConfiguration struct {
	Dir string
}

type RateLimitConfiguration struct {
	Requests int
	Window   time.Duration
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	SetDefaults()

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// SetDefaults registers the default value of every known key
func SetDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.publicURL", "http://localhost:8080")
	viper.SetDefault("server.trustedProxies", []string{})
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "employees.db")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("elasticsearch.url", "")
	viper.SetDefault("security.dataProtectionKey", "")
	viper.SetDefault("auth.jwtSecret", "")
	viper.SetDefault("auth.sessionTTL", "12h")
	viper.SetDefault("auth.externalLoginSecret", "")
	viper.SetDefault("auth.externalLoginTTL", "5m")
	viper.SetDefault("tokens.emailConfirmationTTL", "72h")
	viper.SetDefault("tokens.passwordResetTTL", "5h")
	viper.SetDefault("account.allowedEmailDomain", "")
	viper.SetDefault("claims.catalog", []string{"Create Role", "Edit Role", "Delete Role"})
	viper.SetDefault("uploads.dir", "uploads")
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", "1m")
	viper.SetDefault("log.dir", "logging")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetStringSlice retrieves a list of strings from the configuration
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
