package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/domain/calls"
	"github.com/xaosao/xaosao-service/internal/domain/customers"
	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/domain/reviews"
	"github.com/xaosao/xaosao-service/internal/domain/wallet"
)

// errorStatus maps domain errors to HTTP status codes. Anything unmapped is
// treated as a bad request, matching the validation-heavy service layer.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, profiles.ErrProfileNotFound),
		errors.Is(err, bookings.ErrServiceNotFound),
		errors.Is(err, bookings.ErrVariantNotFound),
		errors.Is(err, bookings.ErrBookingNotFound),
		errors.Is(err, calls.ErrSessionNotFound),
		errors.Is(err, wallet.ErrWalletNotFound),
		errors.Is(err, wallet.ErrTopUpNotFound),
		errors.Is(err, reviews.ErrReviewNotFound),
		errors.Is(err, customers.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, wallet.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, bookings.ErrInvalidTransition),
		errors.Is(err, calls.ErrInvalidTransition),
		errors.Is(err, customers.ErrEmailTaken),
		errors.Is(err, reviews.ErrDuplicateReview),
		errors.Is(err, wallet.ErrTopUpExpired):
		return http.StatusConflict
	case errors.Is(err, customers.ErrInvalidCredentials),
		errors.Is(err, customers.ErrSessionNotFound):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// writeError writes the shared error payload with the mapped status code.
func writeError(ctx *gin.Context, err error) {
	var errorResponse ErrorResponse
	errorMessage := err.Error()
	errorResponse.Message = &errorMessage
	ctx.JSON(errorStatus(err), errorResponse)
}

// writeBadRequest writes a 400 with a fixed message.
func writeBadRequest(ctx *gin.Context, message string) {
	var errorResponse ErrorResponse
	errorResponse.Message = &message
	ctx.JSON(http.StatusBadRequest, errorResponse)
}
