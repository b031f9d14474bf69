package main

import (
	"context"
	"fmt"

	"github.com/abduss/objcopy/internal/config"
	"github.com/abduss/objcopy/internal/copier"
	"github.com/abduss/objcopy/internal/logger"
	"github.com/abduss/objcopy/internal/server"
	"github.com/abduss/objcopy/internal/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// app holds the process-wide clients, built once and injected into the service.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	service *copier.Service
	checks  []server.Check
	closers []func()

	awsCfg *aws.Config
}

func bootstrap(ctx context.Context) (*app, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logg, err := logger.Init(cfg.Log.EffectiveLevel())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &app{cfg: cfg, log: logg}
	logConfig(logg, cfg)

	objects, err := a.objectCopier(ctx)
	if err != nil {
		a.close()
		return nil, err
	}
	records, err := a.recordStore(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	a.service = copier.NewService(objects, records, cfg.Copier, logg)
	return a, nil
}

func (a *app) objectCopier(ctx context.Context) (copier.ObjectCopier, error) {
	target := a.cfg.Copier.TargetBucket

	switch a.cfg.Copier.ObjectBackend {
	case config.ObjectBackendMinIO:
		client, err := storage.NewMinIOClient(a.cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("connect minio: %w", err)
		}
		a.checks = append(a.checks, server.Check{
			Component: "minio",
			Probe:     func(ctx context.Context) error { return storage.CheckBucket(ctx, client, target) },
		})
		return copier.NewMinIOStore(client), nil
	default:
		awsCfg, err := a.aws(ctx)
		if err != nil {
			return nil, err
		}
		client := storage.NewS3Client(awsCfg, a.cfg.AWS)
		a.checks = append(a.checks, server.Check{
			Component: "s3",
			Probe:     func(ctx context.Context) error { return storage.CheckS3Bucket(ctx, client, target) },
		})
		return copier.NewS3Store(client), nil
	}
}

func (a *app) recordStore(ctx context.Context) (copier.RecordStore, error) {
	table := a.cfg.Copier.TableName

	switch a.cfg.Copier.RecordBackend {
	case config.RecordBackendPostgres:
		pool, err := storage.NewPostgresPool(ctx, a.cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		a.checks = append(a.checks, server.Check{
			Component: "postgres",
			Probe:     func(ctx context.Context) error { return storage.PingPostgres(ctx, pool) },
		})
		return copier.NewRepository(pool, table), nil
	default:
		awsCfg, err := a.aws(ctx)
		if err != nil {
			return nil, err
		}
		client := storage.NewDynamoDBClient(awsCfg, a.cfg.AWS)
		a.checks = append(a.checks, server.Check{
			Component: "dynamodb",
			Probe:     func(ctx context.Context) error { return storage.CheckDynamoTable(ctx, client, table) },
		})
		return copier.NewDynamoRepository(client, table), nil
	}
}

// aws loads the SDK configuration once for both AWS backends.
func (a *app) aws(ctx context.Context) (aws.Config, error) {
	if a.awsCfg != nil {
		return *a.awsCfg, nil
	}
	awsCfg, err := storage.LoadAWSConfig(ctx, a.cfg.AWS)
	if err != nil {
		return aws.Config{}, err
	}
	a.awsCfg = &awsCfg
	return awsCfg, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	_ = a.log.Sync()
}

func logConfig(log *zap.Logger, cfg config.Config) {
	log.Info("configuration loaded",
		zap.String("target_bucket", cfg.Copier.TargetBucket),
		zap.String("table_name", cfg.Copier.TableName),
		zap.Strings("checklist", cfg.Copier.Checklist),
		zap.String("object_backend", cfg.Copier.ObjectBackend),
		zap.String("record_backend", cfg.Copier.RecordBackend),
		zap.String("log_level", cfg.Log.EffectiveLevel()),
		zap.Bool("webhook_auth", cfg.Webhook.JWTSecret != ""),
	)
}
