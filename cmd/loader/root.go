package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/roas-api/infrastructure/database/postgres"
	"github.com/vfg2006/roas-api/infrastructure/migration"
	"github.com/vfg2006/roas-api/infrastructure/repository"
	"github.com/vfg2006/roas-api/internal/config"
	"github.com/vfg2006/roas-api/internal/domain"
	"github.com/vfg2006/roas-api/internal/usecases/importing"
	"github.com/vfg2006/roas-api/pkg/log"
	"github.com/vfg2006/roas-api/pkg/utils"
)

// serviceFactory abre as dependências da carga. O close devolvido libera a conexão.
type serviceFactory func(ctx context.Context) (importing.ImportService, func() error, error)

// migrateFunc cria as tabelas no banco configurado
type migrateFunc func(ctx context.Context) error

func newRootCmd(factory serviceFactory, migrate migrateFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "loader",
		Short:         "Carrega exportações de campanhas, ad groups e termos de busca",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newLoadCmd("campaigns", "Carrega campanhas", domain.EntityCampaign, factory))
	cmd.AddCommand(newLoadCmd("ad-groups", "Carrega ad groups", domain.EntityAdGroup, factory))
	cmd.AddCommand(newLoadCmd("search-terms", "Carrega termos de busca", domain.EntitySearchTerm, factory))
	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Cria as tabelas que ainda não existem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate(cmd.Context())
		},
	})
	return cmd
}

func newLoadCmd(use, short string, entity domain.EntityType, factory serviceFactory) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   use + " -f <arquivo>",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(file) == "" {
				return errors.New("--file é obrigatório")
			}

			service, closeFn, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := service.LoadFile(cmd.Context(), file, entity)
			if err != nil {
				return fmt.Errorf("erro ao carregar %s: %w", file, err)
			}

			out, err := utils.PrettyJson(result)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "arquivo .csv ou .xlsx a carregar")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// connect abre o banco configurado por variáveis de ambiente
func connect(ctx context.Context) (*postgres.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	if err := log.Setup(cfg.App.LogLevel); err != nil {
		return nil, err
	}

	return postgres.NewConnection(ctx, cfg.Database)
}

func databaseFactory(ctx context.Context) (importing.ImportService, func() error, error) {
	conn, err := connect(ctx)
	if err != nil {
		return nil, nil, err
	}

	service := importing.NewService(repository.NewUpsertRepository(conn), repository.NewKeyRepository(conn))
	return service, conn.Close, nil
}

func databaseMigrate(ctx context.Context) error {
	conn, err := connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return migration.Apply(ctx, conn)
}

func Execute(ctx context.Context) {
	if err := newRootCmd(databaseFactory, databaseMigrate).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
