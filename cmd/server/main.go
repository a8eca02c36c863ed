package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"roomtrack.xyz/room-power-service/pkg/common"
	"roomtrack.xyz/room-power-service/pkg/config"
	"roomtrack.xyz/room-power-service/pkg/db"
	roomHttp "roomtrack.xyz/room-power-service/pkg/http"
	"roomtrack.xyz/room-power-service/pkg/tracker"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	roomDbType := os.Getenv(common.EnvKeyRoomDBType)
	switch roomDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown ROOM_DB_TYPE: " + roomDbType)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load engine config: %v", err)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyRoomHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyRoomDefaultRate), 64); err != nil {
		log.Fatal("Invalid ROOM_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyRoomDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid ROOM_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	operatorTokens := tracker.ParseOperatorTokens(os.Getenv(common.EnvKeyRoomOperatorTokens))
	if len(operatorTokens) == 0 {
		log.Fatal("No operator tokens in ROOM_OPERATOR_TOKENS, expected \"token:operator\" pairs")
	}

	logger := common.GetLogger()

	core := tracker.New(*dbInstance, cfg)
	core.WithServices(tracker.ServiceOpts{
		Liveness:    core.GetILiveness(),
		Reservation: core.GetIReservation(),
		Power:       core.GetIPower(),
		Recorder:    core.GetIRecorder(),
		Ingest:      core.GetIIngest(),
		DeviceAuth:  core.GetIDeviceAuth(),
		Registry:    core.GetIRegistry(),
	})

	scheduler := cron.New()
	_, err = scheduler.AddFunc(fmt.Sprintf("@every %ds", cfg.SweepIntervalSeconds), func() {
		core.RunMaintenanceSweep(time.Now())
	})
	if err != nil {
		log.Fatalf("failed to schedule maintenance sweep: %v", err)
	}
	scheduler.Start()
	logger.Info("Maintenance sweep scheduled",
		zap.Int("interval_seconds", cfg.SweepIntervalSeconds))

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &roomHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             core,
		OperatorAuth:     tracker.NewStaticTokenAuth(operatorTokens),
		RateLimiterStore: tracker.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
