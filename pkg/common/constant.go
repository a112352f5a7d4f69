package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeySOSDBType string = "SOS_DB_TYPE"
	EnvKeySOSDbPath string = "SOS_DB_PATH"
	EnvKeySOSDbDSN  string = "SOS_DB_DSN"

	EnvKeySOSHttpHostPort string = "SOS_HTTP_HOST_PORT"

	EnvKeySOSFeedType     string = "SOS_FEED_TYPE"
	EnvKeySOSKafkaBrokers string = "SOS_KAFKA_BROKERS"
	EnvKeySOSKafkaTopic   string = "SOS_KAFKA_TOPIC"
	EnvKeySOSKafkaGroupID string = "SOS_KAFKA_GROUP_ID"
	EnvKeySOSRedisAddr    string = "SOS_REDIS_ADDR"
	EnvKeySOSRedisChannel string = "SOS_REDIS_CHANNEL"

	EnvKeySOSJwtSecret   string = "SOS_JWT_SECRET"
	EnvKeySOSJwtTTLHours string = "SOS_JWT_TTL_HOURS"

	EnvKeySOSDefaultRate  string = "SOS_DEFAULT_RATE"
	EnvKeySOSDefaultBurst string = "SOS_DEFAULT_BURST"

	LoggerNameSOSCore       string = "sos_core"
	LoggerNameDashboard     string = "dashboard"
	LoggerNameFeed          string = "feed"
	LoggerNameAuth          string = "auth"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldSOSCategory       string = "category"
	LoggerCategorySOSAlert       string = "alert"
	LoggerCategorySOSProfile     string = "profile"
	LoggerCategoryDashStore      string = "store"
	LoggerCategoryDashSubscriber string = "subscriber"
	LoggerCategoryDashResolver   string = "resolver"
	LoggerCategoryDashNotifier   string = "notifier"
)
