package server

import (
	"github.com/spf13/viper"
	"net"
	"strings"
)

// keys to access env variables
const (
	serverHostEnvKey  string = "server_host"
	serverPortEnvKey  string = "server_port"
	corsOriginsEnvKey string = "cors_origins"
	logLevelEnvKey    string = "log_level"
)

// Config - server settings
type Config struct {
	Host        string
	Port        string
	CorsOrigins []string
	LogLevel    string
}

// Address - host and port to listen on
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// LoadConfig - reads settings from env variables. Missed variables get default values
func LoadConfig() Config {
	v := viper.New()

	_ = v.BindEnv(serverHostEnvKey, "SERVER_HOST")
	_ = v.BindEnv(serverPortEnvKey, "SERVER_PORT")
	_ = v.BindEnv(corsOriginsEnvKey, "CORS_ORIGINS")
	_ = v.BindEnv(logLevelEnvKey, "LOG_LEVEL")

	v.SetDefault(serverHostEnvKey, "0.0.0.0")
	v.SetDefault(serverPortEnvKey, "3000")
	v.SetDefault(corsOriginsEnvKey, "http://localhost:5173,https://localhost:5001")
	v.SetDefault(logLevelEnvKey, "info")

	return Config{
		Host:        v.GetString(serverHostEnvKey),
		Port:        v.GetString(serverPortEnvKey),
		CorsOrigins: splitList(v.GetString(corsOriginsEnvKey)),
		LogLevel:    v.GetString(logLevelEnvKey),
	}
}

func splitList(s string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
