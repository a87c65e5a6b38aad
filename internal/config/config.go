package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port     int
	MaxConns int

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	AITimeoutSeconds int
}

func Load() *Config {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		port = 8080 // fallback
	}

	maxConns, err := strconv.Atoi(os.Getenv("MAX_CONNS"))
	if err != nil || maxConns <= 0 {
		maxConns = 256
	}

	timeout, err := strconv.Atoi(os.Getenv("AI_TIMEOUT_SECONDS"))
	if err != nil || timeout <= 0 {
		timeout = 30
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini" // default model
	}

	return &Config{
		Port:     port,
		MaxConns: maxConns,

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   model,
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		AITimeoutSeconds: timeout,
	}
}
