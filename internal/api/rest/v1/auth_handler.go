package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xaosao/xaosao-service/internal/domain/customers"
)

// AuthHandler defines the interface for handling authentication operations
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

// authHandler struct holds the services
type authHandler struct {
	accountService customers.AccountService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accountService customers.AccountService) AuthHandler {
	return &authHandler{
		accountService: accountService,
	}
}

// Register creates an account together with its profile and wallet
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBadRequest(ctx, "invalid request body")
		return
	}

	account, err := handler.accountService.Register(ctx, request.Email, request.Password, request.DisplayName)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewAccountResponse(account))
}

// Login checks the credentials and returns a session token
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBadRequest(ctx, "invalid request body")
		return
	}

	token, account, err := handler.accountService.Login(ctx, request.Email, request.Password)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SessionResponse{
		Token:   token,
		Account: NewAccountResponse(account),
	})
}

// Logout deletes the caller's session token
func (handler *authHandler) Logout(ctx *gin.Context) {
	token := bearerToken(ctx)
	if token == "" {
		writeBadRequest(ctx, "missing session token")
		return
	}

	if err := handler.accountService.Logout(ctx, token); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
