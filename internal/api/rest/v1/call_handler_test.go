//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xaosao/xaosao-service/internal/domain/calls"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
)

func newTestCallSession(status string) *calls.CallSession {
	now := time.Now().UTC()
	return &calls.CallSession{
		ID:              "22222222-2222-4222-8222-222222222222",
		DateTimeCreated: now,
		CustomerID:      "11111111-1111-4111-8111-111111111111",
		CompanionID:     "33333333-3333-4333-8333-333333333333",
		ServiceID:       "44444444-4444-4444-8444-444444444444",
		RatePerMinute:   decimal.RequireFromString("1.50"),
		HoldAmount:      decimal.RequireFromString("90.00"),
		Status:          status,
		RingDeadline:    now.Add(60 * time.Second),
	}
}

func authedTestContext(t *testing.T, method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	c.Request = req
	c.Set(customerIDKey, "11111111-1111-4111-8111-111111111111")
	return c, w
}

func TestCallHandler_Initiate_Success(t *testing.T) {
	mockCallService := new(MockCallService)
	handler := NewCallHandler(mockCallService)

	session := newTestCallSession(calls.StatusRinging)
	mockCallService.On("Initiate", mock.Anything, session.CustomerID, session.ServiceID).
		Return(session, nil)

	body := []byte(`{"serviceId":"44444444-4444-4444-8444-444444444444"}`)
	c, w := authedTestContext(t, "POST", "/calls", body)

	handler.Initiate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), session.ID)
	assert.Contains(t, w.Body.String(), "ringing")
	mockCallService.AssertExpectations(t)
}

func TestCallHandler_Initiate_InsufficientBalance_PaymentRequired(t *testing.T) {
	mockCallService := new(MockCallService)
	handler := NewCallHandler(mockCallService)

	mockCallService.On("Initiate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, wallet.ErrInsufficientBalance)

	body := []byte(`{"serviceId":"44444444-4444-4444-8444-444444444444"}`)
	c, w := authedTestContext(t, "POST", "/calls", body)

	handler.Initiate(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestCallHandler_Status_Success(t *testing.T) {
	mockCallService := new(MockCallService)
	handler := NewCallHandler(mockCallService)

	session := newTestCallSession(calls.StatusActive)
	mockCallService.On("Status", mock.Anything, session.ID).Return(session, nil)

	c, w := authedTestContext(t, "GET", "/calls/"+session.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: session.ID}}

	handler.Status(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "active")
}

func TestCallHandler_Status_Unknown_NotFound(t *testing.T) {
	mockCallService := new(MockCallService)
	handler := NewCallHandler(mockCallService)

	mockCallService.On("Status", mock.Anything, "nope").Return(nil, calls.ErrSessionNotFound)

	c, w := authedTestContext(t, "GET", "/calls/nope", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	handler.Status(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCallHandler_Accept_InvalidTransition_Conflict(t *testing.T) {
	mockCallService := new(MockCallService)
	handler := NewCallHandler(mockCallService)

	mockCallService.On("Accept", mock.Anything, mock.Anything).
		Return(nil, calls.ErrInvalidTransition)

	c, w := authedTestContext(t, "POST", "/calls/x/accept", nil)
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	handler.Accept(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCallHandler_End_ReturnsSettlement(t *testing.T) {
	mockCallService := new(MockCallService)
	handler := NewCallHandler(mockCallService)

	session := newTestCallSession(calls.StatusEnded)
	session.BilledMinutes = 3
	session.BilledAmount = decimal.RequireFromString("4.50")
	session.RefundedAmount = decimal.RequireFromString("85.50")
	mockCallService.On("End", mock.Anything, session.ID).Return(session, nil)

	c, w := authedTestContext(t, "POST", "/calls/"+session.ID+"/end", nil)
	c.Params = gin.Params{{Key: "id", Value: session.ID}}

	handler.End(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"billedMinutes":3`)
	assert.Contains(t, w.Body.String(), "4.5")
	mockCallService.AssertExpectations(t)
}
