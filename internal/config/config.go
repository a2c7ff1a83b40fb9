package config

import (
	"net"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name: CHESSMOVES_HOST, CHESSMOVES_PORT, ...
const Prefix = "chessmoves"

type Configuration struct {
	Host    string `envconfig:"HOST" default:"localhost"`
	Port    string `envconfig:"PORT" default:"8080"`
	Verify  bool   `envconfig:"VERIFY" default:"false"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`
}

// Addr returns the host:port the server listens on.
func (c *Configuration) Addr() string { return net.JoinHostPort(c.Host, c.Port) }

func InitConfig() (*Configuration, error) {
	cfg := &Configuration{}
	err := envconfig.Process(Prefix, cfg)
	return cfg, err
}
