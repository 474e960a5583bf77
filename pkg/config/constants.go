package config

const (
	// EnvPrefix is passed to envconfig; tags carry the full FIRESHOP_ names.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "FIRESHOP_DB_DSN"
	EnvDBHost = "FIRESHOP_DB_HOST"
	EnvDBUser = "FIRESHOP_DB_USER"
	EnvDBName = "FIRESHOP_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
