package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	genericCache "github.com/ezfinancial/go-entry-engine/internal/common/cache"
	"github.com/ezfinancial/go-entry-engine/internal/common/directory"
	"github.com/ezfinancial/go-entry-engine/internal/common/graceful"
	"github.com/ezfinancial/go-entry-engine/internal/common/idgenerator"
	"github.com/ezfinancial/go-entry-engine/internal/common/log"
	"github.com/ezfinancial/go-entry-engine/internal/common/publisher"
	"github.com/ezfinancial/go-entry-engine/internal/common/suggester"
	"github.com/ezfinancial/go-entry-engine/internal/config"
	"github.com/ezfinancial/go-entry-engine/internal/repositories"
	"github.com/ezfinancial/go-entry-engine/internal/services"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"google.golang.org/genai"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

type Setup struct {
	Config    config.Config
	NewRelic  *newrelic.Application
	WriteDB   *sql.DB
	ReadDB    *sql.DB
	Cache     *redis.Client
	SQLRepo   repositories.SQLRepository
	RepoCache repositories.CacheRepository
	Service   *services.Services
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	logLevel := cfg.App.LogLevel
	if logLevel == "" {
		logLevel = "debug"
		if env := config.StringToEnvironment(cfg.App.Env); env == config.PROD_ENV || env == config.UAT_ENV {
			logLevel = "info"
		}
	}

	log.Init(cfg.App.Name,
		log.WithLevel(logLevel),
		log.WithEnv(cfg.App.Env),
		log.AddCallerSkip(1))

	stopper = append(stopper, func(ctx context.Context) error {
		log.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)

	writeDB, readDB, err := setupPostgres(cfg)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		var errs error

		if writeDB != nil {
			if err := writeDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close writeDB: %w", err))
			}
		}

		if readDB != nil {
			if err := readDB.Close(); err != nil {
				errs = errors.Join(errs, fmt.Errorf("failed to close readDB: %w", err))
			}
		}

		return errs
	})

	cache := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = cache.Ping(ctx).Result()
	if err != nil {
		err = fmt.Errorf("failed connect to redis: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return cache.Close() })

	cacheOwnerAccounts := genericCache.NewInMemoryClient[directory.ResponseGetOwnerAccounts]()
	stopper = append(stopper, func(ctx context.Context) error {
		cacheOwnerAccounts.Close()
		return nil
	})

	directoryClient := directory.New(cfg.AccountDirectory, cacheOwnerAccounts)

	sqlRepo := repositories.NewSQLRepository(writeDB, readDB, cfg, directoryClient)
	cacheRepo := repositories.NewCacheRepository(cache)

	producer, err := publisher.NewKafkaSyncProducer(cfg.MessageBroker.KafkaConsumer.Brokers)
	if err != nil {
		err = fmt.Errorf("unable to create kafka sync producer: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

	entryPostedPub := publisher.NewPublisher(producer, cfg.MessageBroker.KafkaConsumer.TopicEntryPosted)

	suggesterClient, err := setupSuggester(ctx, cfg)
	if err != nil {
		err = fmt.Errorf("unable to create suggester client: %w", err)
		return
	}

	idGenerator := idgenerator.New()

	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		entryPostedPub,
		suggesterClient,
		idGenerator,
	)

	log.Info(ctx, "[SETUP] dependencies ready", log.String("command", command))

	return &Setup{
		Config:    cfg,
		NewRelic:  newRelic,
		WriteDB:   writeDB,
		ReadDB:    readDB,
		Cache:     cache,
		SQLRepo:   sqlRepo,
		RepoCache: cacheRepo,
		Service:   srv,
	}, stopper, nil
}

// setupSuggester builds the model-backed entry suggester. Without a model
// configured the engine proposes on rules alone.
func setupSuggester(ctx context.Context, cfg config.Config) (suggester.Client, error) {
	if cfg.Proposer.SuggesterModel == "" {
		return nil, nil
	}

	genaiClient, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, err
	}

	return suggester.New(genaiClient, cfg.Proposer.SuggesterModel), nil
}

func setupPostgres(conf config.Config) (*sql.DB, *sql.DB, error) {
	writeDB, err := initDB(conf.Postgres.Write)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init write DB: %w", err)
	}

	readDB, err := initDB(conf.Postgres.Read)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init read DB: %w", err)
	}

	return writeDB, readDB, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	if pgConf.MaxOpenConnection > 0 {
		db.SetMaxOpenConns(pgConf.MaxOpenConnection)
	} else {
		db.SetMaxOpenConns(DefaultMaxOpen)
	}

	if pgConf.MaxIdleConnection > 0 {
		db.SetMaxIdleConns(pgConf.MaxIdleConnection)
	} else {
		db.SetMaxIdleConns(DefaultMaxIdle)
	}

	if pgConf.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(pgConf.ConnMaxLifetime) * time.Minute)
	} else {
		db.SetConnMaxLifetime(time.Duration(DefaultMaxLifetime) * time.Minute)
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env == config.PROD_ENV {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.App.Name),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Errorf(ctx, "setupNR.NewApplication - %v", err)
			return nil
		}
		if err = app.WaitForConnection(15 * time.Second); nil != err {
			log.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
		}
		return app
	}
	return nil
}
