package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xaosao/xaosao-service/internal/app"
	"github.com/xaosao/xaosao-service/internal/domain/calls"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// CallCommandHandler encapsulates logic for operator call maintenance via
// CLI.
type CallCommandHandler struct {
	callService calls.CallService
	topUpRepo   wallet.TopUpRepository
	logger      logger.Logger
}

// NewCallCommandHandler initializes and returns a CallCommandHandler
// instance with configured logger, database and services.
func NewCallCommandHandler() (*CallCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	cfg, err := setupConfig()
	if err != nil {
		return nil, err
	}

	db, err := setupDatabase(cfg)
	if err != nil {
		return nil, err
	}

	walletRepo, err := persistence.NewGormWalletRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet repository: %w", err)
	}
	catalogRepo, err := persistence.NewGormCatalogRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog repository: %w", err)
	}
	callRepo, err := persistence.NewGormCallRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create call repository: %w", err)
	}
	topUpRepo, err := persistence.NewGormTopUpRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create top-up repository: %w", err)
	}

	callService, err := app.NewCallService(callRepo, catalogRepo, walletRepo, &cfg.Calls, setupMetrics(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create call service: %w", err)
	}

	return &CallCommandHandler{
		callService: callService,
		topUpRepo:   topUpRepo,
		logger:      loggerInstance,
	}, nil
}

// SweepCallsCmd closes ringing sessions past their deadline and releases
// their holds
func (commandHandler *CallCommandHandler) SweepCallsCmd(cmd *cobra.Command, _ []string) {
	swept, err := commandHandler.callService.SweepMissed(cmd.Context())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Swept ", swept, " missed call sessions")
}

// ExpireTopUpsCmd flips pending top-ups past their expiry to expired
func (commandHandler *CallCommandHandler) ExpireTopUpsCmd(cmd *cobra.Command, _ []string) {
	expired, err := commandHandler.topUpRepo.ExpireStale(cmd.Context())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Expired ", expired, " stale top-ups")
}

// InitCallCommands registers call and top-up maintenance commands
func InitCallCommands(rootCmd *cobra.Command) error {
	handler, err := NewCallCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create call command handler %w", err)
	}

	var sweepCallsCmd = &cobra.Command{
		Use:   "call-sweep",
		Short: "Close ringing call sessions past their ring deadline",
		Run:   handler.SweepCallsCmd,
	}
	rootCmd.AddCommand(sweepCallsCmd)

	var expireTopUpsCmd = &cobra.Command{
		Use:   "topup-expire",
		Short: "Expire pending top-ups past their expiry",
		Run:   handler.ExpireTopUpsCmd,
	}
	rootCmd.AddCommand(expireTopUpsCmd)

	return nil
}
