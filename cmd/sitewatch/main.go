package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitewatch/internal/monitor/api/handler"
	"sitewatch/internal/monitor/api/routes"
	"sitewatch/internal/monitor/broadcast"
	"sitewatch/internal/monitor/checker"
	"sitewatch/internal/monitor/config"
	"sitewatch/internal/monitor/engine"
	"sitewatch/internal/monitor/logbuffer"
	"sitewatch/internal/monitor/notify"
	"sitewatch/internal/monitor/repository"
	"sitewatch/internal/monitor/service"
	"sitewatch/internal/monitor/sslcheck"
	"sitewatch/pkg/infra"
	"sitewatch/pkg/logger"
	"sitewatch/pkg/mail"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/sitewatch.log")
	if err != nil {
		log.Fatal(fmt.Sprintf("create log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "sitewatch"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	// set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host: appConfig.Redis.Host,
		Port: appConfig.Redis.Port,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	// set up dependencies
	siteRepo := repository.NewCachedSiteRepository(redisClient, repository.NewSiteRepository(db), appConfig.Monitor.SiteCacheTTL)
	alertRepo := repository.NewAlertRepository(db)
	logRepo := repository.NewLogRepository(esClient)

	buffer := logbuffer.NewBuffer(logRepo, appConfig.Monitor.FlushInterval, appConfig.Monitor.MaxBufferedLogs, zapLogger)
	buffer.Start()

	broadcaster := broadcast.NewBroadcaster()

	var kafkaSink *broadcast.KafkaSink
	if appConfig.Kafka.Enabled {
		kafkaSink = broadcast.NewKafkaSink(infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.StatusTopic), zapLogger)
		kafkaSink.Start(broadcaster)
		zapLogger.Info("kafka status sink started", zap.String("topic", appConfig.Kafka.StatusTopic))
	}

	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
	notifier := notify.NewMailNotifier(mailSender)

	healthChecker := checker.NewChecker(appConfig.Monitor.CheckTimeout, appConfig.Monitor.UserAgent)
	inspector := sslcheck.NewInspector(sslcheck.Config{
		Timeout:      appConfig.Monitor.SSLTimeout,
		BenignIssues: sslcheck.DefaultBenignIssues,
	})

	monitor := engine.NewMonitor(siteRepo, alertRepo, buffer, healthChecker, inspector, notifier, broadcaster, engine.Config{
		SSLExpiryWarnDays: appConfig.Monitor.SSLExpiryWarnDays,
		AlertCooldown:     appConfig.Monitor.AlertCooldown,
	}, zapLogger)

	cycleTimeout := appConfig.Monitor.CheckTimeout + appConfig.Monitor.SSLTimeout + 30*time.Second
	scheduler := engine.NewScheduler(monitor, siteRepo, cycleTimeout, zapLogger)

	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err = scheduler.StartAll(startCtx); err != nil {
		startCancel()
		zapLogger.Fatal("failed to start site schedules", zap.Error(err))
	}
	startCancel()

	siteService := service.NewSiteService(siteRepo, alertRepo, logRepo, scheduler, zapLogger)
	monitorHandler := handler.NewMonitorHandler(zapLogger, siteService, monitor, broadcaster)

	// Create cronjob for log retention
	cronJob := cron.New()
	_, err = cronJob.AddFunc("0 0 * * *", func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel2()
		cutoff := time.Now().Add(-appConfig.Monitor.LogRetention)
		zapLogger.Info("purging old check logs", zap.Time("cutoff", cutoff))
		if e := logRepo.DeleteOlderThan(ctx2, cutoff); e != nil {
			zapLogger.Error("failed to purge old check logs", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for log retention", zap.Error(err))
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddMonitorRoutes(r, monitorHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	cronJob.Stop()
	scheduler.Stop()
	buffer.Stop()
	broadcaster.Close()
	if kafkaSink != nil {
		kafkaSink.Stop()
	}
	zapLogger.Info("server exiting")
}
