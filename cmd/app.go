package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"localreach/internal/adapter/ai"
	"localreach/internal/adapter/cache"
	httpadapter "localreach/internal/adapter/http"
	"localreach/internal/adapter/postgres"
	"localreach/internal/adapter/ses"
	"localreach/internal/adapter/session"
	"localreach/internal/adapter/storage"
	"localreach/internal/adapter/usecase"
	"localreach/internal/adapter/video"
	"localreach/internal/config"
	"localreach/internal/config/configs"
	"localreach/internal/core/port"
	"localreach/internal/core/tagmerge"
	"localreach/internal/db"
)

// app owns the connections opened at startup.
type app struct {
	handler *httpadapter.Handler
	pool    *pgxpool.Pool
	rdb     *redis.Client
}

func (a *app) Close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	a.pool.Close()
}

func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	a := &app{pool: pool}

	awsCfg, err := loadAWS(ctx, cfg.AWS)
	if err != nil {
		a.Close()
		return nil, err
	}

	var roles session.RoleCache
	if cfg.Redis.Addr != "" {
		a.rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err = a.rdb.Ping(ctx).Err(); err != nil {
			a.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		roles = cache.NewRoleCache(a.rdb, cfg.Redis.RoleTTL)
	}

	generator, err := newGenerator(ctx, cfg.AI, awsCfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	var (
		zipRepo      = postgres.NewZipCodeRepository(pool)
		campaignRepo = postgres.NewCampaignRepository(pool)
		postRepo     = postgres.NewPostRepository(pool)
		profileRepo  = postgres.NewProfileRepository(pool)
		subRepo      = postgres.NewSubscriptionRepository(pool)

		sender = ses.NewSender(sesv2.NewFromConfig(awsCfg), cfg.SES.From, cfg.SES.ConfigurationSet, logger)
		media  = storage.NewS3(s3.NewPresignClient(s3.NewFromConfig(awsCfg)), cfg.S3.Bucket)
		videos = video.NewClient(cfg.Video.BaseURL, cfg.Video.TokenID, cfg.Video.TokenSecret, nil)

		sanitizer = tagmerge.NewSanitizer()
	)

	a.handler = httpadapter.NewHandler(httpadapter.Deps{
		Campaigns:     usecase.NewCampaignUseCase(campaignRepo, postRepo, sender, sanitizer, cfg.SES.SendTimeout, logger),
		ZipCodes:      usecase.NewZipCodeUseCase(zipRepo, logger),
		Posts:         usecase.NewPostUseCase(postRepo, profileRepo, generator, sanitizer, logger),
		Subscriptions: usecase.NewSubscriptionUseCase(subRepo),
		Media: usecase.NewMediaUseCase(media, videos, usecase.MediaConfig{
			PresignTTL:   cfg.S3.PresignTTL,
			PollInterval: cfg.Video.PollInterval,
			PollAttempts: cfg.Video.PollAttempts,
		}),
		Sessions: session.NewResolver(cfg.Auth.JWTSecret, cfg.Auth.Issuer, profileRepo, roles, logger),
	}, logger, httpadapter.Options{
		CORSOrigins:   cfg.HTTP.CORSOrigins,
		SessionCookie: cfg.Auth.CookieName,
	})
	return a, nil
}

// loadAWS uses the static keys when both are configured and the default
// credential chain otherwise.
func loadAWS(ctx context.Context, cfg configs.AWS) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.HasStaticCredentials() {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load AWS config: %w", err)
	}
	return awsCfg, nil
}

func newGenerator(ctx context.Context, cfg configs.AI, awsCfg aws.Config) (port.TextGenerator, error) {
	if cfg.ProviderName() == "gemini" {
		client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		return ai.NewGemini(client.Models, cfg.GeminiModel, cfg.MaxTokens), nil
	}
	return ai.NewBedrock(bedrockruntime.NewFromConfig(awsCfg), cfg.BedrockModel, cfg.MaxTokens), nil
}
