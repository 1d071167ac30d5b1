package config

const (
	// EnvPrefix is applied by envconfig when processing the environment.
	EnvPrefix = "mercadoviva"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "MERCADOVIVA_APP_ENV"
	EnvPort   = "MERCADOVIVA_APP_PORT"

	EnvRedisURL = "MERCADOVIVA_REDIS_URL"

	EnvDBDSN  = "MERCADOVIVA_DB_DSN"
	EnvDBHost = "MERCADOVIVA_DB_HOST"
	EnvDBUser = "MERCADOVIVA_DB_USER"
	EnvDBName = "MERCADOVIVA_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
