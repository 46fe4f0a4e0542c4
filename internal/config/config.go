package config

import (
	"os"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	HTTPPort         string

	// OpenAIAPIKey is optional; insights degrade to a placeholder without it.
	OpenAIAPIKey string
	OpenAIModel  string

	// ReportingCurrency is the single currency dashboard totals are computed
	// over. Transactions in other currencies are excluded, not converted.
	ReportingCurrency string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:   "localhost",
		PostgresPort:      "5433",
		PostgresDB:        "postgres",
		PostgresUsername:  "postgres",
		PostgresPassword:  "testpassword",
		HTTPPort:          "9446",
		OpenAIModel:       "gpt-4o-mini",
		ReportingCurrency: "INR",
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envHTTPPort := os.Getenv("HTTP_PORT")
	envOpenAIAPIKey := os.Getenv("OPENAI_API_KEY")
	envOpenAIModel := os.Getenv("OPENAI_MODEL")
	envReportingCurrency := os.Getenv("REPORTING_CURRENCY")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envOpenAIAPIKey) != 0 {
		env.OpenAIAPIKey = envOpenAIAPIKey
	}

	if len(envOpenAIModel) != 0 {
		env.OpenAIModel = envOpenAIModel
	}

	if len(envReportingCurrency) != 0 {
		env.ReportingCurrency = envReportingCurrency
	}

	return &env, nil
}
