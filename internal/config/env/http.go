package env

import (
	"errors"
	"net"
	"os"

	"kiosk_backend/internal/config"
)

const (
	httpHostName = "HTTP_HOST"
	httpPortName = "HTTP_PORT"
)

type httpConfig struct {
	host string
	port string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	// Хост может быть пустым - тогда слушаем все интерфейсы
	host := os.Getenv(httpHostName)

	port := os.Getenv(httpPortName)
	if len(port) == 0 {
		return nil, errors.New("http port not found")
	}

	return &httpConfig{
		host: host,
		port: port,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}
