package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"vitalsigns.dev/vitals-monitor-service/pkg/common"
	"vitalsigns.dev/vitals-monitor-service/pkg/db"
	vitalsHttp "vitalsigns.dev/vitals-monitor-service/pkg/http"
	"vitalsigns.dev/vitals-monitor-service/pkg/patients"
	"vitalsigns.dev/vitals-monitor-service/pkg/vitals"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	vitalsDbType := os.Getenv(common.EnvKeyVitalsDBType)
	switch vitalsDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown VITALS_DB_TYPE: " + vitalsDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyVitalsHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyVitalsDefaultRate), 64); err != nil {
		log.Fatal("Invalid VITALS_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyVitalsDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid VITALS_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	patientService := &patients.Service{Db: *dbInstance}

	engine := vitals.Engine{
		Db:       *dbInstance,
		Catalog:  vitals.NewDefaultCatalog(),
		Patients: patientService,
	}
	engine.WithServices(vitals.ServiceOpts{
		Recorder:  engine.GetIRecorder(),
		Query:     engine.GetIQuery(),
		Attention: engine.GetIAttention(),
		Stats:     engine.GetIStats(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &vitalsHttp.RestfulServer{
		Server:           gin.Default(),
		Engine:           &engine,
		Patients:         patientService,
		RateLimiterStore: vitals.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
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
