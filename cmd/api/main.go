package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roas-api/infrastructure/database/postgres"
	"github.com/vfg2006/roas-api/infrastructure/repository"
	"github.com/vfg2006/roas-api/internal/api"
	"github.com/vfg2006/roas-api/internal/config"
	"github.com/vfg2006/roas-api/internal/scheduler"
	"github.com/vfg2006/roas-api/internal/usecases/importing"
	"github.com/vfg2006/roas-api/internal/usecases/ranking"
	"github.com/vfg2006/roas-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Setup("info")
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	upsertRepo := repository.NewUpsertRepository(conn)
	keyRepo := repository.NewKeyRepository(conn)
	searchTermRepo := repository.NewSearchTermRepository(conn)

	importService := importing.NewService(upsertRepo, keyRepo)
	rankingService := ranking.NewSearchTermRankingService(searchTermRepo)
	importSyncService := scheduler.NewImportSyncService(importService, cfg)

	server, err := api.New(cfg, conn, rankingService, importService, importSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := importSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de cargas")
			return err
		}
		logrus.Info("Agendador de cargas iniciado com sucesso")
		return nil
	})

	g.Go(func() error {
		return server.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("Aplicação finalizada com erro")
		os.Exit(1)
	}
}

// dbconn cria a conexão com o banco de dados configurado
func dbconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
