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

	"github.com/xaosao/xaosao-service/internal/domain/wallet"
)

func newTestWallet() *wallet.Wallet {
	return &wallet.Wallet{
		ID:              "55555555-5555-4555-8555-555555555555",
		DateTimeCreated: time.Now().UTC(),
		CustomerID:      "11111111-1111-4111-8111-111111111111",
		Currency:        "USD",
		Balance:         decimal.RequireFromString("42.00"),
	}
}

func TestWalletHandler_Get_Success(t *testing.T) {
	mockWalletService := new(MockWalletService)
	handler := NewWalletHandler(mockWalletService)

	w := newTestWallet()
	mockWalletService.On("Get", mock.Anything, w.CustomerID).Return(w, nil)

	c, rec := authedTestContext(t, "GET", "/wallet", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "42")
	mockWalletService.AssertExpectations(t)
}

func TestWalletHandler_RequestTopUp_ReturnsQR(t *testing.T) {
	mockWalletService := new(MockWalletService)
	handler := NewWalletHandler(mockWalletService)

	topUp := &wallet.TopUp{
		ID:              "66666666-6666-4666-8666-666666666666",
		DateTimeCreated: time.Now().UTC(),
		WalletID:        "55555555-5555-4555-8555-555555555555",
		Amount:          decimal.RequireFromString("25.00"),
		Status:          wallet.TopUpPending,
		ExpiresAt:       time.Now().UTC().Add(15 * time.Minute),
	}
	mockWalletService.On("RequestTopUp", mock.Anything, "11111111-1111-4111-8111-111111111111", mock.Anything).
		Return(topUp, []byte("png-bytes"), nil)

	body := []byte(`{"amount":"25.00"}`)
	c, rec := authedTestContext(t, "POST", "/wallet/topups", body)

	handler.RequestTopUp(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), topUp.ID)
	assert.Contains(t, rec.Body.String(), "qrPngBase64")
	mockWalletService.AssertExpectations(t)
}

func TestWalletHandler_ConfirmTopUp_Success(t *testing.T) {
	mockWalletService := new(MockWalletService)
	handler := NewWalletHandler(mockWalletService)

	topUp := &wallet.TopUp{
		ID:              "66666666-6666-4666-8666-666666666666",
		DateTimeCreated: time.Now().UTC(),
		WalletID:        "55555555-5555-4555-8555-555555555555",
		Amount:          decimal.RequireFromString("25.00"),
		Status:          wallet.TopUpCompleted,
		SlipRef:         "slip-123",
		ExpiresAt:       time.Now().UTC().Add(15 * time.Minute),
	}
	mockWalletService.On("ConfirmTopUp", mock.Anything, topUp.ID, "slip-123").Return(topUp, nil)

	body := []byte(`{"slipRef":"slip-123"}`)
	c, rec := authedTestContext(t, "POST", "/wallet/topups/"+topUp.ID+"/confirm", body)
	c.Params = gin.Params{{Key: "id", Value: topUp.ID}}

	handler.ConfirmTopUp(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "completed")
	mockWalletService.AssertExpectations(t)
}

func TestWalletHandler_ConfirmTopUp_Expired_Conflict(t *testing.T) {
	mockWalletService := new(MockWalletService)
	handler := NewWalletHandler(mockWalletService)

	mockWalletService.On("ConfirmTopUp", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, wallet.ErrTopUpExpired)

	body := []byte(`{"slipRef":"slip-123"}`)
	c, rec := authedTestContext(t, "POST", "/wallet/topups/x/confirm", body)
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	handler.ConfirmTopUp(c)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestWalletHandler_History_Success(t *testing.T) {
	mockWalletService := new(MockWalletService)
	handler := NewWalletHandler(mockWalletService)

	entries := []*wallet.LedgerEntry{
		{
			ID:              "77777777-7777-4777-8777-777777777777",
			DateTimeCreated: time.Now().UTC(),
			WalletID:        "55555555-5555-4555-8555-555555555555",
			Kind:            wallet.EntryCredit,
			Amount:          decimal.RequireFromString("25.00"),
			RefKind:         wallet.RefTopUp,
		},
	}
	mockWalletService.On("History", mock.Anything, "11111111-1111-4111-8111-111111111111", mock.Anything).
		Return(entries, nil)

	c, rec := authedTestContext(t, "GET", "/wallet/history", nil)

	handler.History(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "credit")
	mockWalletService.AssertExpectations(t)
}
