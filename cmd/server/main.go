package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"forestwatch.app/sos-dashboard-service/pkg/auth"
	"forestwatch.app/sos-dashboard-service/pkg/common"
	"forestwatch.app/sos-dashboard-service/pkg/dashboard"
	"forestwatch.app/sos-dashboard-service/pkg/db"
	"forestwatch.app/sos-dashboard-service/pkg/feed"
	sosHttp "forestwatch.app/sos-dashboard-service/pkg/http"
	"forestwatch.app/sos-dashboard-service/pkg/sos"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	sosDbType := os.Getenv(common.EnvKeySOSDBType)
	switch sosDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "postgres":
		dbInstance = db.GetInstance(db.UsePostgresDialector())
	default:
		log.Fatal("Unknown SOS_DB_TYPE: " + sosDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeySOSHttpHostPort))

	jwtSecret := strings.TrimSpace(os.Getenv(common.EnvKeySOSJwtSecret))
	if jwtSecret == "" {
		log.Fatal("SOS_JWT_SECRET not set in .env")
	}

	jwtTTLHours, err := strconv.ParseInt(os.Getenv(common.EnvKeySOSJwtTTLHours), 10, 64)
	if err != nil {
		log.Fatal("Invalid SOS_JWT_TTL_HOURS, or not set in .env, should be an int value")
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeySOSDefaultRate), 64); err != nil {
		log.Fatal("Invalid SOS_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeySOSDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid SOS_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan feed.Event, 256)
	var publisher feed.Publisher

	feedType := strings.TrimSpace(os.Getenv(common.EnvKeySOSFeedType))
	switch feedType {
	case "kafka":
		cfg := feed.KafkaConfig{
			Brokers: strings.Split(os.Getenv(common.EnvKeySOSKafkaBrokers), ","),
			Topic:   os.Getenv(common.EnvKeySOSKafkaTopic),
			GroupID: os.Getenv(common.EnvKeySOSKafkaGroupID),
		}
		feed.StartKafka(ctx, cfg, events)
		publisher = feed.NewKafkaPublisher(cfg)
	case "redis":
		cfg := feed.RedisConfig{
			Addr:    os.Getenv(common.EnvKeySOSRedisAddr),
			Channel: os.Getenv(common.EnvKeySOSRedisChannel),
		}
		client := redis.NewClient(&redis.Options{Addr: cfg.Addr})
		feed.StartRedis(ctx, client, cfg, events)
		publisher = feed.NewRedisPublisher(client, cfg)
	case "local", "":
		bus := feed.NewLocalBus()
		go func() {
			for ev := range bus.Events() {
				events <- ev
			}
		}()
		publisher = bus
	default:
		log.Fatal("Unknown SOS_FEED_TYPE: " + feedType)
	}

	logger.Info("Change feed configured", zap.String("feed_type", feedType))

	sosCore := sos.SOS{
		Db:   *dbInstance,
		Feed: publisher,
	}
	sosCore.WithServices(sos.ServiceOpts{
		AlertQuery:  sosCore.GetIAlertQuery(),
		AlertAction: sosCore.GetIAlertAction(),
		Profile:     sosCore.GetIProfile(),
	})

	dash := dashboard.New(sosCore.AlertQuery, sosCore.AlertAction)
	if err := dash.LoadInitial(); err != nil {
		log.Fatal("Failed to load initial alerts:", err)
	}
	logger.Info("Initial alerts loaded", zap.Int("count", dash.Store.Len()))

	go dash.Run(ctx, events)

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &sosHttp.RestfulServer{
		Server:           gin.Default(),
		Sos:              &sosCore,
		Dashboard:        dash,
		Auth:             auth.NewService(jwtSecret, time.Duration(jwtTTLHours)*time.Hour),
		RateLimiterStore: sos.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", defaultRate),
		zap.Int64("default_burst", defaultBurst))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
