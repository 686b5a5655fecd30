package config

import (
	"os"
	"strconv"
)

const defaultStubPort = 4000

// StubConfig configures the canned backend used during local development.
type StubConfig struct {
	Port int
}

// Address returns the listen address for the stub server.
func (c StubConfig) Address() string {
	return ":" + strconv.Itoa(c.Port)
}

// LoadStub reads the stub configuration from an optional .env file and the environment.
func LoadStub() (StubConfig, error) {
	if err := loadDotEnv(); err != nil {
		return StubConfig{}, err
	}
	return loadStub(os.LookupEnv), nil
}

func loadStub(lookup envLookup) StubConfig {
	port := getInt(lookup, "PORT", defaultStubPort)
	if port <= 0 {
		port = defaultStubPort
	}
	return StubConfig{Port: port}
}
