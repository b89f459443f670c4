package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xaosao/xaosao-service/internal/domain/calls"
)

// CallHandler defines the interface for handling call signaling operations
type CallHandler interface {
	Initiate(ctx *gin.Context)
	Status(ctx *gin.Context)
	Accept(ctx *gin.Context)
	Decline(ctx *gin.Context)
	Missed(ctx *gin.Context)
	End(ctx *gin.Context)
}

// callHandler struct holds the services
type callHandler struct {
	callService calls.CallService
}

// NewCallHandler creates a new CallHandler
func NewCallHandler(callService calls.CallService) CallHandler {
	return &callHandler{
		callService: callService,
	}
}

// Initiate places the wallet hold and starts ringing the companion
func (handler *callHandler) Initiate(ctx *gin.Context) {
	var request InitiateCallRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBadRequest(ctx, "invalid request body")
		return
	}

	session, err := handler.callService.Initiate(ctx, CustomerID(ctx), request.ServiceID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewCallSessionResponse(session))
}

// Status returns the session for polling
func (handler *callHandler) Status(ctx *gin.Context) {
	session, err := handler.callService.Status(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewCallSessionResponse(session))
}

// Accept moves a ringing session to active
func (handler *callHandler) Accept(ctx *gin.Context) {
	session, err := handler.callService.Accept(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewCallSessionResponse(session))
}

// Decline moves a ringing session to declined and releases the hold
func (handler *callHandler) Decline(ctx *gin.Context) {
	session, err := handler.callService.Decline(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewCallSessionResponse(session))
}

// Missed reports a ring timeout from the caller's screen
func (handler *callHandler) Missed(ctx *gin.Context) {
	session, err := handler.callService.Missed(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewCallSessionResponse(session))
}

// End settles an active session and returns the billing outcome
func (handler *callHandler) End(ctx *gin.Context) {
	session, err := handler.callService.End(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewCallSessionResponse(session))
}
