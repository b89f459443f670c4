//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
)

func newTestBooking(status string) *bookings.Booking {
	now := time.Now().UTC()
	return &bookings.Booking{
		ID:              "88888888-8888-4888-8888-888888888888",
		DateTimeCreated: now,
		CustomerID:      "11111111-1111-4111-8111-111111111111",
		CompanionID:     "33333333-3333-4333-8333-333333333333",
		ServiceID:       "44444444-4444-4444-8444-444444444444",
		BillingType:     bookings.BillingPerHour,
		Quantity:        2,
		Price:           decimal.RequireFromString("51.00"),
		Status:          status,
		ScheduledStart:  now.Add(24 * time.Hour),
		ScheduledEnd:    now.Add(26 * time.Hour),
	}
}

func TestBookingHandler_Create_Success(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockCatalogService, mockBookingService)

	booking := newTestBooking(bookings.StatusPending)
	mockBookingService.On("Create", mock.Anything, mock.Anything).Return(booking, nil)

	body := []byte(`{"serviceId":"44444444-4444-4444-8444-444444444444","quantity":2}`)
	c, w := authedTestContext(t, "POST", "/bookings", body)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), booking.ID)
	assert.Contains(t, w.Body.String(), "pending")
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_Create_InsufficientBalance_PaymentRequired(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockCatalogService, mockBookingService)

	mockBookingService.On("Create", mock.Anything, mock.Anything).
		Return(nil, wallet.ErrInsufficientBalance)

	body := []byte(`{"serviceId":"44444444-4444-4444-8444-444444444444","quantity":2}`)
	c, w := authedTestContext(t, "POST", "/bookings", body)

	handler.Create(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestBookingHandler_Quote_Success(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockCatalogService, mockBookingService)

	quote := &bookings.PriceQuote{
		ServiceID:   "44444444-4444-4444-8444-444444444444",
		BillingType: bookings.BillingPerHour,
		Quantity:    2,
		Price:       decimal.RequireFromString("51.00"),
	}
	mockCatalogService.On("QuotePrice", mock.Anything, quote.ServiceID, (*string)(nil), 2).
		Return(quote, nil)

	c, w := authedTestContext(t, "GET", "/services/"+quote.ServiceID+"/quote?quantity=2", nil)
	c.Params = gin.Params{{Key: "id", Value: quote.ServiceID}}

	handler.Quote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "51")
	mockCatalogService.AssertExpectations(t)
}

func TestBookingHandler_Quote_UnknownService_NotFound(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockCatalogService, mockBookingService)

	mockCatalogService.On("QuotePrice", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, bookings.ErrServiceNotFound)

	c, w := authedTestContext(t, "GET", "/services/nope/quote", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	handler.Quote(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_Cancel_Success(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockCatalogService, mockBookingService)

	booking := newTestBooking(bookings.StatusCancelled)
	mockBookingService.On("Cancel", mock.Anything, booking.CustomerID, booking.ID).
		Return(booking, nil)

	c, w := authedTestContext(t, "POST", "/bookings/"+booking.ID+"/cancel", nil)
	c.Params = gin.Params{{Key: "id", Value: booking.ID}}

	handler.Cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled")
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_Cancel_Completed_Conflict(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockCatalogService, mockBookingService)

	mockBookingService.On("Cancel", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, bookings.ErrInvalidTransition)

	c, w := authedTestContext(t, "POST", "/bookings/x/cancel", nil)
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	handler.Cancel(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookingHandler_List_FiltersByStatus(t *testing.T) {
	mockCatalogService := new(MockCatalogService)
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockCatalogService, mockBookingService)

	booking := newTestBooking(bookings.StatusConfirmed)
	mockBookingService.On("List", mock.Anything, booking.CustomerID, mock.MatchedBy(func(q *bookings.BookingQuery) bool {
		return q.Status == bookings.StatusConfirmed
	})).Return([]*bookings.Booking{booking}, nil)

	c, w := authedTestContext(t, "GET", "/bookings?status=confirmed", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), booking.ID)
	mockBookingService.AssertExpectations(t)
}
