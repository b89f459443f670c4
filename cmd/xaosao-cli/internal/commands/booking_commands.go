package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xaosao/xaosao-service/internal/app"
	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// BookingCommandHandler encapsulates operator-side booking status
// transitions via CLI.
type BookingCommandHandler struct {
	bookingService bookings.BookingService
	bookingRepo    bookings.BookingRepository
	logger         logger.Logger
}

// NewBookingCommandHandler initializes and returns a BookingCommandHandler
// instance with configured logger, database and repositories.
func NewBookingCommandHandler() (*BookingCommandHandler, error) {
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

	bookingRepo, err := persistence.NewGormBookingRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking repository: %w", err)
	}
	catalogRepo, err := persistence.NewGormCatalogRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog repository: %w", err)
	}
	walletRepo, err := persistence.NewGormWalletRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet repository: %w", err)
	}

	bookingService, err := app.NewBookingService(bookingRepo, catalogRepo, walletRepo, setupMetrics(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking service: %w", err)
	}

	return &BookingCommandHandler{
		bookingService: bookingService,
		bookingRepo:    bookingRepo,
		logger:         loggerInstance,
	}, nil
}

// ConfirmBookingCmd moves a pending booking to confirmed
func (commandHandler *BookingCommandHandler) ConfirmBookingCmd(cmd *cobra.Command, _ []string) {
	bookingID, err := cmd.Flags().GetString("booking-id")
	if err != nil {
		commandHandler.logger.Error("invalid booking-id flag ", err)
		return
	}

	booking, err := commandHandler.bookingService.Confirm(cmd.Context(), bookingID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Booking ", booking.ID, " moved to ", booking.Status)
}

// CompleteBookingCmd moves a confirmed booking to completed
func (commandHandler *BookingCommandHandler) CompleteBookingCmd(cmd *cobra.Command, _ []string) {
	bookingID, err := cmd.Flags().GetString("booking-id")
	if err != nil {
		commandHandler.logger.Error("invalid booking-id flag ", err)
		return
	}

	booking, err := commandHandler.bookingService.Complete(cmd.Context(), bookingID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Booking ", booking.ID, " moved to ", booking.Status)
}

// InspectBookingCmd prints a booking
func (commandHandler *BookingCommandHandler) InspectBookingCmd(cmd *cobra.Command, _ []string) {
	bookingID, err := cmd.Flags().GetString("booking-id")
	if err != nil {
		commandHandler.logger.Error("invalid booking-id flag ", err)
		return
	}

	booking, err := commandHandler.bookingRepo.GetByID(cmd.Context(), bookingID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Booking ", booking.ID, " status ", booking.Status,
		" service ", booking.ServiceID, " price ", booking.Price,
		" window ", booking.ScheduledStart.Format("2006-01-02 15:04"), " - ", booking.ScheduledEnd.Format("2006-01-02 15:04"))
}

// InitBookingCommands registers booking-related commands
func InitBookingCommands(rootCmd *cobra.Command) error {
	handler, err := NewBookingCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create booking command handler %w", err)
	}

	var confirmBookingCmd = &cobra.Command{
		Use:   "booking-confirm",
		Short: "Confirm a pending booking",
		Run:   handler.ConfirmBookingCmd,
	}
	confirmBookingCmd.Flags().StringP("booking-id", "", "", "Booking ID to confirm")
	rootCmd.AddCommand(confirmBookingCmd)

	var completeBookingCmd = &cobra.Command{
		Use:   "booking-complete",
		Short: "Mark a confirmed booking as completed",
		Run:   handler.CompleteBookingCmd,
	}
	completeBookingCmd.Flags().StringP("booking-id", "", "", "Booking ID to complete")
	rootCmd.AddCommand(completeBookingCmd)

	var inspectBookingCmd = &cobra.Command{
		Use:   "booking-inspect",
		Short: "Print a booking's status, price and schedule",
		Run:   handler.InspectBookingCmd,
	}
	inspectBookingCmd.Flags().StringP("booking-id", "", "", "Booking ID to inspect")
	rootCmd.AddCommand(inspectBookingCmd)

	return nil
}
