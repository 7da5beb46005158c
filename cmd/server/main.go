package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"loan-gateway/internal/audit"
	"loan-gateway/internal/capture"
	"loan-gateway/internal/conversation"
	"loan-gateway/internal/customer"
	"loan-gateway/internal/document"
	"loan-gateway/internal/offer"
	"loan-gateway/internal/platform/config"
	"loan-gateway/internal/platform/httpserver"
	"loan-gateway/internal/platform/logger"
	"loan-gateway/internal/platform/metrics"
	"loan-gateway/internal/platform/postgres"
	platformredis "loan-gateway/internal/platform/redis"
	"loan-gateway/internal/sanction"
	httptransport "loan-gateway/internal/transport/http"
	"loan-gateway/internal/underwriting"
	"loan-gateway/internal/upload"
	"loan-gateway/internal/verification"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.PostgresURL)
	if err != nil {
		log.Error("postgres unavailable", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close()
	}

	var directory customer.Directory
	if pool != nil {
		directory = customer.NewPostgresDirectory(pool)
		log.Info("customer directory backed by postgres")
	} else {
		customers, err := customer.LoadFile(cfg.CustomersFile)
		if err != nil {
			log.Warn("customer file unavailable, starting with empty directory",
				"path", cfg.CustomersFile, "error", err)
		}
		directory = customer.NewInMemoryDirectory(customers)
	}

	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	var documents document.Store
	if redisClient != nil {
		defer redisClient.Close()
		documents = document.NewRedisStore(redisClient.Client, document.DefaultTTL)
		log.Info("document store backed by redis")
	} else {
		documents, err = document.NewFSStore(cfg.DocumentDir)
		if err != nil {
			log.Error("document dir unavailable", "error", err)
			os.Exit(1)
		}
	}

	inbox := make(chan audit.Event, 256)
	publisher := audit.NewPublisher(inbox, log)
	auditStore := audit.NewInMemoryStore()
	var sink audit.Sink
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(ctx, cfg.KafkaBrokers, cfg.AuditTopic, log)
		if err != nil {
			log.Error("kafka unavailable", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
	}
	worker := audit.NewWorker(auditStore, sink, inbox, log)

	m := metrics.New()
	offers := offer.NewTable()
	captureSvc := capture.New(directory, log)
	verifier := verification.New(directory, log)
	underwriter := underwriting.New(offers, cfg.PreApprovedLimit, log)
	sanctions := sanction.New(sanction.NewPDFRenderer(), documents, log)
	turns := conversation.New(captureSvc, verifier, underwriter, sanctions, directory, publisher, m, log)
	uploads := upload.New(documents, log)

	handler := httptransport.NewHandler(turns, uploads, documents, log)
	router := httptransport.NewRouter(handler, log)
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return worker.Run(gctx)
	})
	g.Go(func() error {
		log.Info("starting loan-gateway", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
