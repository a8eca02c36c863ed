package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyRoomDBType string = "ROOM_DB_TYPE"
	EnvKeyRoomDbPath string = "ROOM_DB_PATH"

	EnvKeyRoomHttpHostPort string = "ROOM_HTTP_HOST_PORT"

	EnvKeyRoomDefaultRate  string = "ROOM_DEFAULT_RATE"
	EnvKeyRoomDefaultBurst string = "ROOM_DEFAULT_BURST"

	EnvKeyRoomOperatorTokens string = "ROOM_OPERATOR_TOKENS"

	LoggerNameTrackerCore   string = "tracker_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameSweep         string = "sweep"

	LoggerFieldCategory       string = "category"
	LoggerCategoryLiveness    string = "liveness"
	LoggerCategoryReservation string = "reservation"
	LoggerCategoryPower       string = "power"
	LoggerCategoryIngest      string = "ingest"
	LoggerCategoryRecorder    string = "recorder"
	LoggerCategoryRegistry    string = "registry"
)
