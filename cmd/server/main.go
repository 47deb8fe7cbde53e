package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/edu-centre-directory/internal/adapters/seed"
	"github.com/ogurasousui/edu-centre-directory/internal/core/directory"
	"github.com/ogurasousui/edu-centre-directory/internal/platform/config"
	"github.com/ogurasousui/edu-centre-directory/internal/platform/logger"
	"github.com/ogurasousui/edu-centre-directory/internal/platform/server"
)

func main() {
	cfgFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.ResolvePath(*cfgFlag))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.New(cfg.Log.Logger())
	ctx = lg.WithContext(ctx)

	directorySvc := directory.NewService(nil)
	if cfg.Seed.DemoData {
		if err := seed.Load(ctx, directorySvc, lg); err != nil {
			lg.Fatal().Err(err).Msg("failed to load demo data")
		}
	}

	grpcServer := server.New(cfg.Server.ListenAddr, directorySvc, lg)

	if err := grpcServer.Run(ctx); err != nil {
		lg.Fatal().Err(err).Msg("server stopped with error")
	}
}
