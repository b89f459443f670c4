package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/infrastructure/persistence"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

// SeedCommandHandler encapsulates logic for seeding companion-side data via
// CLI. The companion product writes this data in production; the commands
// exist for local development and demos.
type SeedCommandHandler struct {
	profileRepo     profiles.ProfileRepository
	interactionRepo profiles.InteractionRepository
	catalogRepo     bookings.CatalogRepository
	logger          logger.Logger
}

// NewSeedCommandHandler initializes and returns a SeedCommandHandler
// instance with configured logger, database and repositories.
func NewSeedCommandHandler() (*SeedCommandHandler, error) {
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

	profileRepo, err := persistence.NewGormProfileRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}
	interactionRepo, err := persistence.NewGormInteractionRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create interaction repository: %w", err)
	}
	catalogRepo, err := persistence.NewGormCatalogRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog repository: %w", err)
	}

	return &SeedCommandHandler{
		profileRepo:     profileRepo,
		interactionRepo: interactionRepo,
		catalogRepo:     catalogRepo,
		logger:          loggerInstance,
	}, nil
}

// SeedCompanionCmd creates a companion profile
func (commandHandler *SeedCommandHandler) SeedCompanionCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	city, err := cmd.Flags().GetString("city")
	if err != nil {
		commandHandler.logger.Error("invalid city flag ", err)
		return
	}
	age, err := cmd.Flags().GetInt("age")
	if err != nil {
		commandHandler.logger.Error("invalid age flag ", err)
		return
	}
	online, err := cmd.Flags().GetBool("online")
	if err != nil {
		commandHandler.logger.Error("invalid online flag ", err)
		return
	}

	companion := &profiles.CompanionProfile{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now().UTC(),
		DisplayName:     name,
		City:            city,
		Age:             age,
		Online:          online,
	}
	if err := companion.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := commandHandler.profileRepo.CreateCompanion(cmd.Context(), companion); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Created companion ", companion.ID, " (", name, ")")
}

// SeedServiceCmd creates a bookable service for a companion, optionally with
// priced variants
func (commandHandler *SeedCommandHandler) SeedServiceCmd(cmd *cobra.Command, _ []string) {
	companionID, err := cmd.Flags().GetString("companion-id")
	if err != nil {
		commandHandler.logger.Error("invalid companion-id flag ", err)
		return
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	billingType, err := cmd.Flags().GetString("billing-type")
	if err != nil {
		commandHandler.logger.Error("invalid billing-type flag ", err)
		return
	}
	rateStr, err := cmd.Flags().GetString("rate")
	if err != nil {
		commandHandler.logger.Error("invalid rate flag ", err)
		return
	}
	variants, err := cmd.Flags().GetStringToString("variants")
	if err != nil {
		commandHandler.logger.Error("invalid variants flag ", err)
		return
	}

	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		commandHandler.logger.Error("invalid rate ", err)
		return
	}

	svc := &bookings.Service{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now().UTC(),
		CompanionID:     companionID,
		Name:            name,
		BillingType:     billingType,
		Rate:            rate,
		Active:          true,
	}
	if err := svc.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := commandHandler.catalogRepo.CreateService(cmd.Context(), svc); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Created service ", svc.ID, " (", name, ", ", billingType, ")")

	for variantName, priceStr := range variants {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			commandHandler.logger.Error("invalid variant price for ", variantName, " ", err)
			return
		}

		variant := &bookings.ServiceVariant{
			ID:           uuid.New().String(),
			ServiceID:    svc.ID,
			Name:         variantName,
			SessionPrice: price,
		}
		if err := variant.Validate(); err != nil {
			commandHandler.logger.Error(err)
			return
		}

		if err := commandHandler.catalogRepo.CreateVariant(cmd.Context(), variant); err != nil {
			commandHandler.logger.Error(err)
			return
		}
		commandHandler.logger.Info("Created variant ", variant.ID, " (", variantName, ")")
	}
}

// SeedLikeCmd records a companion's like of a customer, making a mutual
// match possible
func (commandHandler *SeedCommandHandler) SeedLikeCmd(cmd *cobra.Command, _ []string) {
	companionID, err := cmd.Flags().GetString("companion-id")
	if err != nil {
		commandHandler.logger.Error("invalid companion-id flag ", err)
		return
	}
	customerID, err := cmd.Flags().GetString("customer-id")
	if err != nil {
		commandHandler.logger.Error("invalid customer-id flag ", err)
		return
	}

	if err := commandHandler.interactionRepo.UpsertCompanionLike(cmd.Context(), companionID, customerID); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Recorded like from companion ", companionID, " for customer ", customerID)
}

// InitSeedCommands registers seeding commands
func InitSeedCommands(rootCmd *cobra.Command) error {
	handler, err := NewSeedCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create seed command handler %w", err)
	}

	var seedCompanionCmd = &cobra.Command{
		Use:   "seed-companion",
		Short: "Create a companion profile",
		Run:   handler.SeedCompanionCmd,
	}
	seedCompanionCmd.Flags().StringP("name", "", "", "Display name of the companion")
	seedCompanionCmd.Flags().StringP("city", "", "", "City of the companion")
	seedCompanionCmd.Flags().IntP("age", "", 0, "Age of the companion")
	seedCompanionCmd.Flags().BoolP("online", "", false, "Whether the companion starts online")
	rootCmd.AddCommand(seedCompanionCmd)

	var seedServiceCmd = &cobra.Command{
		Use:   "seed-service",
		Short: "Create a bookable service for a companion",
		Run:   handler.SeedServiceCmd,
	}
	seedServiceCmd.Flags().StringP("companion-id", "", "", "Companion the service belongs to")
	seedServiceCmd.Flags().StringP("name", "", "", "Service name")
	seedServiceCmd.Flags().StringP("billing-type", "", "per_session", "Billing type: per_day, per_hour, per_session or per_minute")
	seedServiceCmd.Flags().StringP("rate", "", "", "Base rate per billing unit, e.g. 50.00")
	seedServiceCmd.Flags().StringToStringP("variants", "", nil, "Variant session prices, e.g. oil=60.00,thai=45.00")
	rootCmd.AddCommand(seedServiceCmd)

	var seedLikeCmd = &cobra.Command{
		Use:   "seed-like",
		Short: "Record a companion's like of a customer",
		Run:   handler.SeedLikeCmd,
	}
	seedLikeCmd.Flags().StringP("companion-id", "", "", "Companion recording the like")
	seedLikeCmd.Flags().StringP("customer-id", "", "", "Customer being liked")
	rootCmd.AddCommand(seedLikeCmd)

	return nil
}
