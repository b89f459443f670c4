package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xaosao/xaosao-service/internal/domain/profiles"
	"github.com/xaosao/xaosao-service/internal/pkg/strutil"
)

// ProfileHandler defines the interface for handling profile and browsing
// operations
type ProfileHandler interface {
	GetMe(ctx *gin.Context)
	UpdateMe(ctx *gin.Context)
	UploadAvatar(ctx *gin.Context)
	GetCompanion(ctx *gin.Context)
	Discover(ctx *gin.Context)
	Matches(ctx *gin.Context)
	Friends(ctx *gin.Context)
	React(ctx *gin.Context)
}

// profileHandler struct holds the services
type profileHandler struct {
	profileService     profiles.ProfileService
	discoverService    profiles.DiscoverService
	interactionService profiles.InteractionService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(
	profileService profiles.ProfileService,
	discoverService profiles.DiscoverService,
	interactionService profiles.InteractionService,
) ProfileHandler {
	return &profileHandler{
		profileService:     profileService,
		discoverService:    discoverService,
		interactionService: interactionService,
	}
}

// GetMe fetches the caller's profile
func (handler *profileHandler) GetMe(ctx *gin.Context) {
	profile, err := handler.profileService.GetCustomer(ctx, CustomerID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewCustomerProfileResponse(profile))
}

// UpdateMe applies profile edits
func (handler *profileHandler) UpdateMe(ctx *gin.Context) {
	var request UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBadRequest(ctx, "invalid request body")
		return
	}

	profile := &profiles.CustomerProfile{
		ID:          CustomerID(ctx),
		DisplayName: request.DisplayName,
		Bio:         request.Bio,
		City:        request.City,
	}
	updated, err := handler.profileService.UpdateCustomer(ctx, profile)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewCustomerProfileResponse(updated))
}

// UploadAvatar stores the avatar image behind the CDN
func (handler *profileHandler) UploadAvatar(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		writeBadRequest(ctx, "invalid form data")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeBadRequest(ctx, "unreadable file")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		writeBadRequest(ctx, "unreadable file")
		return
	}

	profile, err := handler.profileService.UploadAvatar(ctx, CustomerID(ctx), fileHeader.Filename, data)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewCustomerProfileResponse(profile))
}

// GetCompanion fetches a companion profile by ID
func (handler *profileHandler) GetCompanion(ctx *gin.Context) {
	profile, err := handler.profileService.GetCompanion(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewCompanionProfileResponse(profile))
}

// Discover lists companions the caller has not reacted to, optionally with
// query parameters
func (handler *profileHandler) Discover(ctx *gin.Context) {
	query := profiles.NewCompanionQuery()

	if city := ctx.Query("city"); len(city) > 0 {
		query.City = city
	}

	if online := ctx.Query("online"); len(online) > 0 {
		query.Online = strutil.ConvertToBool(online)
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		writeError(ctx, err)
		return
	}

	companions, err := handler.discoverService.Discover(ctx, CustomerID(ctx), query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewCompanionProfileResponses(companions))
}

// Matches lists companions with a mutual like
func (handler *profileHandler) Matches(ctx *gin.Context) {
	companions, err := handler.discoverService.Matches(ctx, CustomerID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewCompanionProfileResponses(companions))
}

// Friends lists companions the caller marked as friends
func (handler *profileHandler) Friends(ctx *gin.Context) {
	companions, err := handler.discoverService.Friends(ctx, CustomerID(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, NewCompanionProfileResponses(companions))
}

// React records a like, pass or friend reaction for a companion
func (handler *profileHandler) React(ctx *gin.Context) {
	var request ReactRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeBadRequest(ctx, "invalid request body")
		return
	}

	interaction, err := handler.interactionService.React(ctx, CustomerID(ctx), ctx.Param("id"), request.Kind)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewInteractionResponse(interaction))
}
