package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xaosao/xaosao-service/internal/domain/reviews"
	"github.com/xaosao/xaosao-service/internal/pkg/strutil"
)

// ReviewHandler defines the interface for handling review operations
type ReviewHandler interface {
	Create(ctx *gin.Context)
	ListByCompanion(ctx *gin.Context)
}

// reviewHandler struct holds the services
type reviewHandler struct {
	reviewService reviews.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService reviews.ReviewService) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
	}
}

// Create records a review for a companion or a completed booking
func (handler *reviewHandler) Create(ctx *gin.Context) {
	var request CreateReviewRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBadRequest(ctx, "invalid request body")
		return
	}

	review, err := handler.reviewService.Create(ctx, &reviews.Review{
		CustomerID:  CustomerID(ctx),
		CompanionID: request.CompanionID,
		BookingID:   request.BookingID,
		Rating:      request.Rating,
		Comment:     request.Comment,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewReviewResponse(review))
}

// ListByCompanion lists a companion's reviews together with the average
// rating
func (handler *reviewHandler) ListByCompanion(ctx *gin.Context) {
	limit := 20
	if l := ctx.Query("limit"); len(l) > 0 {
		limit = strutil.ConvertToInt(l)
	}

	offset := 0
	if o := ctx.Query("offset"); len(o) > 0 {
		offset = strutil.ConvertToInt(o)
	}

	list, avg, err := handler.reviewService.ListByCompanion(ctx, ctx.Param("id"), limit, offset)
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]ReviewResponse, 0, len(list))
	for _, review := range list {
		responses = append(responses, NewReviewResponse(review))
	}
	ctx.JSON(http.StatusOK, ReviewListResponse{Reviews: responses, RatingAvg: avg})
}
