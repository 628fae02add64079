package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/campusconnect/campus/internal/auth"
	"github.com/campusconnect/campus/internal/health"
	"github.com/campusconnect/campus/internal/hook"
	"github.com/campusconnect/campus/internal/janitor/stories"
	"github.com/campusconnect/campus/internal/media"
	mm "github.com/campusconnect/campus/internal/middleware"
	"github.com/campusconnect/campus/internal/payment"
	"github.com/campusconnect/campus/internal/server"
	"github.com/campusconnect/campus/internal/service/impl"
	"github.com/campusconnect/campus/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections, defaults to a random value"`
	RequestTimeout time.Duration `long:"http.request-timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	RedisAddr     string `long:"redis.addr" env:"REDIS_ADDR" description:"redis address for response cache, cache is disabled when empty"`
	RedisPassword string `long:"redis.password" env:"REDIS_PASSWORD" description:"redis password"`

	JWTSecret string        `long:"jwt.secret" env:"JWT_SECRET" required:"true" description:"secret to sign session tokens with"`
	JWTTTL    time.Duration `long:"jwt.ttl" env:"JWT_TTL" default:"168h" description:"session token lifetime"`

	CampusDomain   string `long:"campus.domain" env:"CAMPUS_DOMAIN" default:"@vitbhopal.ac.in" description:"email suffix accounts must be registered with"`
	AdminSetupCode string `long:"campus.admin-setup-code" env:"ADMIN_SETUP_CODE" description:"code granting admin rights on registration, admin registration is disabled when empty"`
	Timezone       string `long:"campus.timezone" env:"CAMPUS_TIMEZONE" default:"UTC" description:"timezone defining calendar days of the swipe quota"`

	RazorpayKeyID     string `long:"razorpay.key-id" env:"RAZORPAY_KEY_ID" description:"razorpay key id"`
	RazorpayKeySecret string `long:"razorpay.key-secret" env:"RAZORPAY_KEY_SECRET" description:"razorpay key secret"`

	S3Region    string `long:"s3.region" env:"S3_REGION" default:"ap-south-1" description:"s3 region"`
	S3Bucket    string `long:"s3.bucket" env:"S3_BUCKET" default:"campus-media" description:"s3 bucket for uploaded media"`
	S3Endpoint  string `long:"s3.endpoint" env:"S3_ENDPOINT" description:"custom s3-compatible endpoint, e.g. minio"`
	S3AccessKey string `long:"s3.access-key" env:"S3_ACCESS_KEY" description:"s3 access key, default credentials chain is used when empty"`
	S3SecretKey string `long:"s3.secret-key" env:"S3_SECRET_KEY" description:"s3 secret key"`

	StoriesSweepInterval time.Duration `long:"stories.sweep-interval" env:"STORIES_SWEEP_INTERVAL" default:"1h" description:"interval between expired stories cleanups"`
	StoriesRetryInterval time.Duration `long:"stories.retry-interval" env:"STORIES_RETRY_INTERVAL" default:"1m" description:"interval to be waited on cleanup error before retry"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Fatal("failed to load .env")
	}

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Campus"
	parser.LongDescription = "Campus social network API"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	if opts.SentryDSN != "" {
		h, err := hook.NewSentry(sentry.ClientOptions{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "campus",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(h)
		defer h.Flush(2 * time.Second)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load timezone")
	}

	db := mustGetDB()
	rdb := mustGetRedis()

	uploader, err := media.NewS3(context.Background(), media.Options{
		Region:    opts.S3Region,
		Bucket:    opts.S3Bucket,
		Endpoint:  opts.S3Endpoint,
		AccessKey: opts.S3AccessKey,
		SecretKey: opts.S3SecretKey,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create s3 uploader")
	}

	if opts.RazorpayKeyID == "" {
		logrus.Warn("empty razorpay key, subscriptions will fail")
	}

	tokens := auth.NewJWT(opts.JWTSecret, opts.JWTTTL)
	st := postgres.New(db)
	sweeper := stories.New(st, opts.StoriesSweepInterval, opts.StoriesRetryInterval)

	svc := impl.New(
		st,
		tokens,
		payment.NewRazorpay(opts.RazorpayKeyID, opts.RazorpayKeySecret),
		uploader,
		impl.Config{
			CampusDomain:   opts.CampusDomain,
			AdminSetupCode: opts.AdminSetupCode,
			Location:       loc,
		},
	)

	pingers := []health.Pinger{
		health.SubjectPinger("postgres", db.PingContext),
		sweeper,
	}

	var cache mm.Storage
	if rdb != nil {
		cache = mm.NewRedisStorage(rdb)
		pingers = append(pingers, health.SubjectPinger("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}))
	}

	r := chi.NewMux()
	r.Get("/health", health.Handler(5*time.Second, pingers...))
	server.SetupRouter(svc, tokens, cache, r, opts.RequestTimeout)

	srv := http.Server{
		Addr:              fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gr, ctx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return sweeper.Run(ctx)
	})
	gr.Go(func() error {
		logrus.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		select {
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
		case <-ctx.Done():
		}

		cancel()

		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server")
		}

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) {
		logrus.WithError(err).Error("service unexpectedly closed")
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logrus.WithError(err).Error("failed to close redis")
		}
	}
	if err := db.Close(); err != nil {
		logrus.WithError(err).Error("failed to close postgres")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}

// mustGetRedis returns nil when redis is not configured.
func mustGetRedis() *redis.Client {
	if opts.RedisAddr == "" {
		logrus.Info("empty redis address, response cache is disabled")
		return nil
	}

	c := redis.NewClient(&redis.Options{
		Addr:     opts.RedisAddr,
		Password: opts.RedisPassword,
	})

	if err := c.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("failed to ping redis")
	}

	return c
}
