package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xaosao/xaosao-service/internal/domain/bookings"
	"github.com/xaosao/xaosao-service/internal/pkg/strutil"
)

// BookingHandler defines the interface for handling catalog and booking
// operations
type BookingHandler interface {
	ListServices(ctx *gin.Context)
	ListVariants(ctx *gin.Context)
	Quote(ctx *gin.Context)
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Cancel(ctx *gin.Context)
}

// bookingHandler struct holds the services
type bookingHandler struct {
	catalogService bookings.CatalogService
	bookingService bookings.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(catalogService bookings.CatalogService, bookingService bookings.BookingService) BookingHandler {
	return &bookingHandler{
		catalogService: catalogService,
		bookingService: bookingService,
	}
}

// ListServices lists the active services of a companion
func (handler *bookingHandler) ListServices(ctx *gin.Context) {
	services, err := handler.catalogService.ListServices(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		responses = append(responses, NewServiceResponse(svc))
	}
	ctx.JSON(http.StatusOK, responses)
}

// ListVariants lists the variants of a service
func (handler *bookingHandler) ListVariants(ctx *gin.Context) {
	variants, err := handler.catalogService.ListVariants(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]VariantResponse, 0, len(variants))
	for _, variant := range variants {
		responses = append(responses, NewVariantResponse(variant))
	}
	ctx.JSON(http.StatusOK, responses)
}

// Quote prices a service for the requested quantity without creating
// anything
func (handler *bookingHandler) Quote(ctx *gin.Context) {
	var variantID *string
	if v := ctx.Query("variantId"); len(v) > 0 {
		variantID = &v
	}

	quantity := 1
	if q := ctx.Query("quantity"); len(q) > 0 {
		quantity = strutil.ConvertToInt(q)
	}

	quote, err := handler.catalogService.QuotePrice(ctx, ctx.Param("id"), variantID, quantity)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, QuoteResponse{
		ServiceID:   quote.ServiceID,
		VariantID:   quote.VariantID,
		BillingType: quote.BillingType,
		Quantity:    quote.Quantity,
		Price:       quote.Price,
	})
}

// Create books a service, debiting the caller's wallet for the quoted price
func (handler *bookingHandler) Create(ctx *gin.Context) {
	var request CreateBookingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBadRequest(ctx, "invalid request body")
		return
	}

	booking, err := handler.bookingService.Create(ctx, &bookings.NewBookingParams{
		CustomerID:     CustomerID(ctx),
		ServiceID:      request.ServiceID,
		VariantID:      request.VariantID,
		Quantity:       request.Quantity,
		ScheduledStart: request.ScheduledStart,
		ScheduledEnd:   request.ScheduledEnd,
		Note:           request.Note,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewBookingResponse(booking))
}

// List lists the caller's bookings, optionally filtered by status
func (handler *bookingHandler) List(ctx *gin.Context) {
	query := bookings.NewBookingQuery()

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	list, err := handler.bookingService.List(ctx, CustomerID(ctx), query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	responses := make([]BookingResponse, 0, len(list))
	for _, booking := range list {
		responses = append(responses, NewBookingResponse(booking))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetByID fetches one of the caller's bookings
func (handler *bookingHandler) GetByID(ctx *gin.Context) {
	booking, err := handler.bookingService.GetByID(ctx, CustomerID(ctx), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewBookingResponse(booking))
}

// Cancel cancels a pending or confirmed booking and refunds the price
func (handler *bookingHandler) Cancel(ctx *gin.Context) {
	booking, err := handler.bookingService.Cancel(ctx, CustomerID(ctx), ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewBookingResponse(booking))
}
