package config

type Config interface {
	EnvConfig
	TokenConfig
	GuardConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Tokens
	Guard
}

func New() Config {
	return mainConfig{}
}
