package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/majdya/classroom-backend/assignment"
	"github.com/majdya/classroom-backend/conf"
	"github.com/majdya/classroom-backend/http"
	"github.com/majdya/classroom-backend/s3blob"
	"github.com/majdya/classroom-backend/submission"
	"github.com/majdya/classroom-backend/user"
)

func main() {
	_ = godotenv.Load()

	cfg, err := conf.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(context.Background(), conf.GetPgConnStrFromEnv())
	if err != nil {
		slog.Error("failed to create pg pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	var blobs s3blob.Store
	if cfg.S3Bucket != "" {
		blobs, err = s3blob.NewS3Blob(cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			slog.Error("failed to create s3 blob store", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("no s3 bucket configured, file submissions are kept in memory")
		blobs = s3blob.NewInMemBlob()
	}

	userSrvc := user.NewUserSrvc(user.NewPgRepo(pool))

	submRepo := submission.NewPgRepo(pool)
	asgSrvc := assignment.NewAssignmentSrvc(
		assignment.NewPgRepo(pool),
		submission.NewStatusSource(submRepo),
	)
	submSrvc := submission.NewSubmissionSrvc(submRepo, asgSrvc, blobs)

	httpServer := http.NewHttpServer(userSrvc, asgSrvc, submSrvc, []byte(cfg.JwtKey), cfg.CorsOrigins)

	log.Printf("Starting server on %s", cfg.HTTPAddress)
	err = httpServer.Start(cfg.HTTPAddress)
	log.Printf("Server stopped with error: %v", err)
}
