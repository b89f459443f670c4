package v1

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/domain/calls"
	"github.com/xaosao/xaosao-service/internal/domain/customers"
	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/domain/reviews"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
)

// ErrorResponse is the error payload of every non-2xx response.
type ErrorResponse struct {
	Message *string `json:"message,omitempty"`
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse carries the minted session token.
type SessionResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// AccountResponse mirrors the account entity without the password hash.
type AccountResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	Email           string    `json:"email"`
	Active          bool      `json:"active"`
}

// NewAccountResponse maps the account entity to its response shape.
func NewAccountResponse(account *customers.Account) AccountResponse {
	return AccountResponse{
		ID:              account.ID,
		DateTimeCreated: account.DateTimeCreated,
		Email:           account.Email,
		Active:          account.Active,
	}
}

// UpdateProfileRequest carries the editable customer profile fields.
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
	City        string `json:"city"`
}

// CustomerProfileResponse mirrors the customer profile entity.
type CustomerProfileResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	DisplayName     string    `json:"displayName"`
	Bio             string    `json:"bio"`
	City            string    `json:"city"`
	AvatarURL       string    `json:"avatarUrl,omitempty"`
}

// NewCustomerProfileResponse maps the profile entity to its response shape.
func NewCustomerProfileResponse(p *profiles.CustomerProfile) CustomerProfileResponse {
	return CustomerProfileResponse{
		ID:              p.ID,
		DateTimeCreated: p.DateTimeCreated,
		DisplayName:     p.DisplayName,
		Bio:             p.Bio,
		City:            p.City,
		AvatarURL:       p.AvatarURL,
	}
}

// CompanionProfileResponse mirrors the companion profile entity.
type CompanionProfileResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	DisplayName     string    `json:"displayName"`
	Bio             string    `json:"bio"`
	City            string    `json:"city"`
	AvatarURL       string    `json:"avatarUrl,omitempty"`
	PhotoURLs       []string  `json:"photoUrls,omitempty"`
	Online          bool      `json:"online"`
	Age             int       `json:"age,omitempty"`
	HeightCM        int       `json:"heightCm,omitempty"`
	RatingAvg       float64   `json:"ratingAvg"`
}

// NewCompanionProfileResponse maps the companion entity to its response shape.
func NewCompanionProfileResponse(p *profiles.CompanionProfile) CompanionProfileResponse {
	return CompanionProfileResponse{
		ID:              p.ID,
		DateTimeCreated: p.DateTimeCreated,
		DisplayName:     p.DisplayName,
		Bio:             p.Bio,
		City:            p.City,
		AvatarURL:       p.AvatarURL,
		PhotoURLs:       p.PhotoURLs,
		Online:          p.Online,
		Age:             p.Age,
		HeightCM:        p.HeightCM,
		RatingAvg:       p.RatingAvg,
	}
}

// NewCompanionProfileResponses maps a companion list to its response shape.
func NewCompanionProfileResponses(list []*profiles.CompanionProfile) []CompanionProfileResponse {
	responses := make([]CompanionProfileResponse, 0, len(list))
	for _, p := range list {
		responses = append(responses, NewCompanionProfileResponse(p))
	}
	return responses
}

// ReactRequest records a like, pass or friend reaction.
type ReactRequest struct {
	Kind string `json:"kind" binding:"required"`
}

// InteractionResponse mirrors the interaction entity.
type InteractionResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	CustomerID      string    `json:"customerId"`
	CompanionID     string    `json:"companionId"`
	Kind            string    `json:"kind"`
}

// NewInteractionResponse maps the interaction entity to its response shape.
func NewInteractionResponse(i *profiles.Interaction) InteractionResponse {
	return InteractionResponse{
		ID:              i.ID,
		DateTimeCreated: i.DateTimeCreated,
		CustomerID:      i.CustomerID,
		CompanionID:     i.CompanionID,
		Kind:            i.Kind,
	}
}

// ServiceResponse mirrors the catalog service entity.
type ServiceResponse struct {
	ID              string          `json:"id"`
	DateTimeCreated time.Time       `json:"dateTimeCreated"`
	CompanionID     string          `json:"companionId"`
	Name            string          `json:"name"`
	BillingType     string          `json:"billingType"`
	Rate            decimal.Decimal `json:"rate"`
	Active          bool            `json:"active"`
}

// NewServiceResponse maps the service entity to its response shape.
func NewServiceResponse(s *bookings.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		DateTimeCreated: s.DateTimeCreated,
		CompanionID:     s.CompanionID,
		Name:            s.Name,
		BillingType:     s.BillingType,
		Rate:            s.Rate,
		Active:          s.Active,
	}
}

// VariantResponse mirrors the service variant entity.
type VariantResponse struct {
	ID           string          `json:"id"`
	ServiceID    string          `json:"serviceId"`
	Name         string          `json:"name"`
	SessionPrice decimal.Decimal `json:"sessionPrice"`
}

// NewVariantResponse maps the variant entity to its response shape.
func NewVariantResponse(v *bookings.ServiceVariant) VariantResponse {
	return VariantResponse{
		ID:           v.ID,
		ServiceID:    v.ServiceID,
		Name:         v.Name,
		SessionPrice: v.SessionPrice,
	}
}

// QuoteResponse mirrors a price quote.
type QuoteResponse struct {
	ServiceID   string          `json:"serviceId"`
	VariantID   *string         `json:"variantId,omitempty"`
	BillingType string          `json:"billingType"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// CreateBookingRequest is the booking creation payload.
type CreateBookingRequest struct {
	ServiceID      string    `json:"serviceId" binding:"required"`
	VariantID      *string   `json:"variantId"`
	Quantity       int       `json:"quantity"`
	ScheduledStart time.Time `json:"scheduledStart"`
	ScheduledEnd   time.Time `json:"scheduledEnd"`
	Note           string    `json:"note"`
}

// BookingResponse mirrors the booking entity.
type BookingResponse struct {
	ID              string          `json:"id"`
	DateTimeCreated time.Time       `json:"dateTimeCreated"`
	CustomerID      string          `json:"customerId"`
	CompanionID     string          `json:"companionId"`
	ServiceID       string          `json:"serviceId"`
	VariantID       *string         `json:"variantId,omitempty"`
	BillingType     string          `json:"billingType"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Status          string          `json:"status"`
	ScheduledStart  time.Time       `json:"scheduledStart"`
	ScheduledEnd    time.Time       `json:"scheduledEnd"`
	Note            string          `json:"note,omitempty"`
}

// NewBookingResponse maps the booking entity to its response shape.
func NewBookingResponse(b *bookings.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		DateTimeCreated: b.DateTimeCreated,
		CustomerID:      b.CustomerID,
		CompanionID:     b.CompanionID,
		ServiceID:       b.ServiceID,
		VariantID:       b.VariantID,
		BillingType:     b.BillingType,
		Quantity:        b.Quantity,
		Price:           b.Price,
		Status:          b.Status,
		ScheduledStart:  b.ScheduledStart,
		ScheduledEnd:    b.ScheduledEnd,
		Note:            b.Note,
	}
}

// WalletResponse mirrors the wallet entity.
type WalletResponse struct {
	ID              string          `json:"id"`
	DateTimeCreated time.Time       `json:"dateTimeCreated"`
	CustomerID      string          `json:"customerId"`
	Currency        string          `json:"currency"`
	Balance         decimal.Decimal `json:"balance"`
}

// NewWalletResponse maps the wallet entity to its response shape.
func NewWalletResponse(w *wallet.Wallet) WalletResponse {
	return WalletResponse{
		ID:              w.ID,
		DateTimeCreated: w.DateTimeCreated,
		CustomerID:      w.CustomerID,
		Currency:        w.Currency,
		Balance:         w.Balance,
	}
}

// LedgerEntryResponse mirrors a ledger entry.
type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	DateTimeCreated time.Time       `json:"dateTimeCreated"`
	Kind            string          `json:"kind"`
	Amount          decimal.Decimal `json:"amount"`
	RefKind         string          `json:"refKind"`
	RefID           string          `json:"refId,omitempty"`
	Note            string          `json:"note,omitempty"`
}

// NewLedgerEntryResponse maps the ledger entry to its response shape.
func NewLedgerEntryResponse(e *wallet.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:              e.ID,
		DateTimeCreated: e.DateTimeCreated,
		Kind:            e.Kind,
		Amount:          e.Amount,
		RefKind:         e.RefKind,
		RefID:           e.RefID,
		Note:            e.Note,
	}
}

// TopUpRequest is the top-up creation payload.
type TopUpRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ConfirmTopUpRequest is the slip confirmation payload.
type ConfirmTopUpRequest struct {
	SlipRef string `json:"slipRef"`
}

// TopUpResponse mirrors the top-up entity. QRPngBase64 is only set on
// creation, when the slip QR is rendered.
type TopUpResponse struct {
	ID              string          `json:"id"`
	DateTimeCreated time.Time       `json:"dateTimeCreated"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	SlipRef         string          `json:"slipRef,omitempty"`
	ExpiresAt       time.Time       `json:"expiresAt"`
	QRPngBase64     string          `json:"qrPngBase64,omitempty"`
}

// NewTopUpResponse maps the top-up entity to its response shape.
func NewTopUpResponse(t *wallet.TopUp) TopUpResponse {
	return TopUpResponse{
		ID:              t.ID,
		DateTimeCreated: t.DateTimeCreated,
		Amount:          t.Amount,
		Status:          t.Status,
		SlipRef:         t.SlipRef,
		ExpiresAt:       t.ExpiresAt,
	}
}

// InitiateCallRequest is the call initiation payload.
type InitiateCallRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

// CallSessionResponse mirrors the call session entity.
type CallSessionResponse struct {
	ID              string          `json:"id"`
	DateTimeCreated time.Time       `json:"dateTimeCreated"`
	CustomerID      string          `json:"customerId"`
	CompanionID     string          `json:"companionId"`
	ServiceID       string          `json:"serviceId"`
	RatePerMinute   decimal.Decimal `json:"ratePerMinute"`
	HoldAmount      decimal.Decimal `json:"holdAmount"`
	Status          string          `json:"status"`
	RingDeadline    time.Time       `json:"ringDeadline"`
	AnsweredAt      *time.Time      `json:"answeredAt,omitempty"`
	EndedAt         *time.Time      `json:"endedAt,omitempty"`
	BilledMinutes   int             `json:"billedMinutes"`
	BilledAmount    decimal.Decimal `json:"billedAmount"`
	RefundedAmount  decimal.Decimal `json:"refundedAmount"`
}

// NewCallSessionResponse maps the call session to its response shape.
func NewCallSessionResponse(s *calls.CallSession) CallSessionResponse {
	return CallSessionResponse{
		ID:              s.ID,
		DateTimeCreated: s.DateTimeCreated,
		CustomerID:      s.CustomerID,
		CompanionID:     s.CompanionID,
		ServiceID:       s.ServiceID,
		RatePerMinute:   s.RatePerMinute,
		HoldAmount:      s.HoldAmount,
		Status:          s.Status,
		RingDeadline:    s.RingDeadline,
		AnsweredAt:      s.AnsweredAt,
		EndedAt:         s.EndedAt,
		BilledMinutes:   s.BilledMinutes,
		BilledAmount:    s.BilledAmount,
		RefundedAmount:  s.RefundedAmount,
	}
}

// CreateReviewRequest is the review creation payload.
type CreateReviewRequest struct {
	CompanionID string  `json:"companionId"`
	BookingID   *string `json:"bookingId"`
	Rating      int     `json:"rating" binding:"required"`
	Comment     string  `json:"comment"`
}

// ReviewResponse mirrors the review entity.
type ReviewResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	CustomerID      string    `json:"customerId"`
	CompanionID     string    `json:"companionId"`
	BookingID       *string   `json:"bookingId,omitempty"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment,omitempty"`
}

// NewReviewResponse maps the review entity to its response shape.
func NewReviewResponse(r *reviews.Review) ReviewResponse {
	return ReviewResponse{
		ID:              r.ID,
		DateTimeCreated: r.DateTimeCreated,
		CustomerID:      r.CustomerID,
		CompanionID:     r.CompanionID,
		BookingID:       r.BookingID,
		Rating:          r.Rating,
		Comment:         r.Comment,
	}
}

// ReviewListResponse pairs the review page with the companion's average.
type ReviewListResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	RatingAvg float64          `json:"ratingAvg"`
}
