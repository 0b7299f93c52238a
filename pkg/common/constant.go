package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyVitalsDBType string = "VITALS_DB_TYPE"
	EnvKeyVitalsDbPath string = "VITALS_DB_PATH"

	EnvKeyVitalsHttpHostPort string = "VITALS_HTTP_HOST_PORT"

	EnvKeyVitalsDefaultRate  string = "VITALS_DEFAULT_RATE"
	EnvKeyVitalsDefaultBurst string = "VITALS_DEFAULT_BURST"

	LoggerNameVitalsEngine  string = "vitals_engine"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldCategory     string = "category"
	LoggerCategoryRecorder  string = "recorder"
	LoggerCategoryAlert     string = "alert"
	LoggerCategoryAttention string = "attention"
	LoggerCategoryStats     string = "stats"
	LoggerCategoryPatient   string = "patient"
)
