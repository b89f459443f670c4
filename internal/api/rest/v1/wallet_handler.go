package v1

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xaosao/xaosao-service/internal/domain/wallet"
	"github.com/xaosao/xaosao-service/internal/pkg/strutil"
)

// WalletHandler defines the interface for handling wallet operations
type WalletHandler interface {
	Get(ctx *gin.Context)
	History(ctx *gin.Context)
	RequestTopUp(ctx *gin.Context)
	ConfirmTopUp(ctx *gin.Context)
}

// walletHandler struct holds the services
type walletHandler struct {
	walletService wallet.WalletService
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(walletService wallet.WalletService) WalletHandler {
	return &walletHandler{
		walletService: walletService,
	}
}

// Get fetches the caller's wallet, creating it on first access
func (handler *walletHandler) Get(ctx *gin.Context) {
	w, err := handler.walletService.Get(ctx, CustomerID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewWalletResponse(w))
}

// History lists the caller's ledger entries newest first
func (handler *walletHandler) History(ctx *gin.Context) {
	query := wallet.NewLedgerQuery()

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	entries, err := handler.walletService.History(ctx, CustomerID(ctx), query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]LedgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, NewLedgerEntryResponse(entry))
	}
	ctx.JSON(http.StatusOK, responses)
}

// RequestTopUp creates a pending top-up and returns the slip QR
func (handler *walletHandler) RequestTopUp(ctx *gin.Context) {
	var request TopUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBadRequest(ctx, "invalid request body")
		return
	}

	topUp, png, err := handler.walletService.RequestTopUp(ctx, CustomerID(ctx), request.Amount)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := NewTopUpResponse(topUp)
	response.QRPngBase64 = base64.StdEncoding.EncodeToString(png)
	ctx.JSON(http.StatusCreated, response)
}

// ConfirmTopUp marks the top-up paid and credits the wallet
func (handler *walletHandler) ConfirmTopUp(ctx *gin.Context) {
	var request ConfirmTopUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBadRequest(ctx, "invalid request body")
		return
	}

	topUp, err := handler.walletService.ConfirmTopUp(ctx, ctx.Param("id"), request.SlipRef)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewTopUpResponse(topUp))
}
