package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/xaosao/xaosao-service/internal/app"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// WalletCommandHandler encapsulates logic for operator wallet adjustments
// via CLI.
type WalletCommandHandler struct {
	walletRepo   wallet.WalletRepository
	fundsService wallet.FundsService
	logger       logger.Logger
}

// NewWalletCommandHandler initializes and returns a WalletCommandHandler
// instance with configured logger, database and repositories.
func NewWalletCommandHandler() (*WalletCommandHandler, error) {
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

	fundsService, err := app.NewFundsService(walletRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create funds service: %w", err)
	}

	return &WalletCommandHandler{
		walletRepo:   walletRepo,
		fundsService: fundsService,
		logger:       loggerInstance,
	}, nil
}

// CreditWalletCmd credits a customer's wallet with a manual adjustment
func (commandHandler *WalletCommandHandler) CreditWalletCmd(cmd *cobra.Command, _ []string) {
	customerID, err := cmd.Flags().GetString("customer-id")
	if err != nil {
		commandHandler.logger.Error("invalid customer-id flag ", err)
		return
	}
	amountStr, err := cmd.Flags().GetString("amount")
	if err != nil {
		commandHandler.logger.Error("invalid amount flag ", err)
		return
	}
	note, err := cmd.Flags().GetString("note")
	if err != nil {
		commandHandler.logger.Error("invalid note flag ", err)
		return
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		commandHandler.logger.Error("invalid amount ", err)
		return
	}

	entry, err := commandHandler.fundsService.Credit(cmd.Context(), customerID, amount, wallet.RefManual, "", note)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Credited ", amount, " to wallet ", entry.WalletID, ", entry ", entry.ID)
}

// InspectWalletCmd prints a customer's balance and recent ledger entries
func (commandHandler *WalletCommandHandler) InspectWalletCmd(cmd *cobra.Command, _ []string) {
	customerID, err := cmd.Flags().GetString("customer-id")
	if err != nil {
		commandHandler.logger.Error("invalid customer-id flag ", err)
		return
	}

	w, err := commandHandler.walletRepo.GetByCustomerID(cmd.Context(), customerID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Wallet ", w.ID, " balance ", w.Balance, " ", w.Currency)

	entries, err := commandHandler.walletRepo.ListEntries(cmd.Context(), w.ID, wallet.NewLedgerQuery())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, entry := range entries {
		commandHandler.logger.Info(entry.DateTimeCreated.Format("2006-01-02 15:04:05"), " ", entry.Kind, " ", entry.Amount, " ", entry.RefKind, " ", entry.Note)
	}
}

// InitWalletCommands registers wallet-related commands
func InitWalletCommands(rootCmd *cobra.Command) error {
	handler, err := NewWalletCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create wallet command handler %w", err)
	}

	var creditWalletCmd = &cobra.Command{
		Use:   "wallet-credit",
		Short: "Credit a customer's wallet manually",
		Run:   handler.CreditWalletCmd,
	}
	creditWalletCmd.Flags().StringP("customer-id", "", "", "Customer ID whose wallet to credit")
	creditWalletCmd.Flags().StringP("amount", "", "", "Amount to credit, e.g. 25.00")
	creditWalletCmd.Flags().StringP("note", "", "manual credit", "Note stored on the ledger entry")
	rootCmd.AddCommand(creditWalletCmd)

	var inspectWalletCmd = &cobra.Command{
		Use:   "wallet-inspect",
		Short: "Print a customer's wallet balance and recent ledger entries",
		Run:   handler.InspectWalletCmd,
	}
	inspectWalletCmd.Flags().StringP("customer-id", "", "", "Customer ID whose wallet to inspect")
	rootCmd.AddCommand(inspectWalletCmd)

	return nil
}
