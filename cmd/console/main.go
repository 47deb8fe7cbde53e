package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/edu-centre-directory/internal/adapters/console"
	"github.com/ogurasousui/edu-centre-directory/internal/adapters/seed"
	"github.com/ogurasousui/edu-centre-directory/internal/core/directory"
	"github.com/ogurasousui/edu-centre-directory/internal/platform/config"
	"github.com/ogurasousui/edu-centre-directory/internal/platform/logger"
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

	// 標準出力はメニュー表示に使うため、ログは標準エラーへ出力します。
	lg := logger.New(cfg.Log.Logger())
	ctx = lg.WithContext(ctx)

	directorySvc := directory.NewService(nil)
	if cfg.Seed.DemoData {
		if err := seed.Load(ctx, directorySvc, lg); err != nil {
			lg.Fatal().Err(err).Msg("failed to load demo data")
		}
	}

	if err := console.New(directorySvc, os.Stdin, os.Stdout, lg).Run(ctx); err != nil {
		lg.Fatal().Err(err).Msg("console stopped with error")
	}
}
