//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xaosao/xaosao-service/internal/domain/profiles"
)

func newTestCompanion() *profiles.CompanionProfile {
	return &profiles.CompanionProfile{
		ID:              "33333333-3333-4333-8333-333333333333",
		DateTimeCreated: time.Now().UTC(),
		DisplayName:     "Nok",
		City:            "Vientiane",
		Online:          true,
		Age:             24,
		RatingAvg:       4.5,
	}
}

func TestProfileHandler_Discover_ParsesQuery(t *testing.T) {
	mockProfileService := new(MockProfileService)
	mockDiscoverService := new(MockDiscoverService)
	mockInteractionService := new(MockInteractionService)
	handler := NewProfileHandler(mockProfileService, mockDiscoverService, mockInteractionService)

	companion := newTestCompanion()
	mockDiscoverService.On("Discover", mock.Anything, "11111111-1111-4111-8111-111111111111",
		mock.MatchedBy(func(q *profiles.CompanionQuery) bool {
			return q.City == "Vientiane" && q.Online != nil && *q.Online && q.Limit == 5
		})).Return([]*profiles.CompanionProfile{companion}, nil)

	c, w := authedTestContext(t, "GET", "/companions?city=Vientiane&online=true&limit=5", nil)

	handler.Discover(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nok")
	mockDiscoverService.AssertExpectations(t)
}

func TestProfileHandler_Discover_InvalidSort_BadRequest(t *testing.T) {
	mockProfileService := new(MockProfileService)
	mockDiscoverService := new(MockDiscoverService)
	mockInteractionService := new(MockInteractionService)
	handler := NewProfileHandler(mockProfileService, mockDiscoverService, mockInteractionService)

	c, w := authedTestContext(t, "GET", "/companions?sortBy=password", nil)

	handler.Discover(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileHandler_Matches_Success(t *testing.T) {
	mockProfileService := new(MockProfileService)
	mockDiscoverService := new(MockDiscoverService)
	mockInteractionService := new(MockInteractionService)
	handler := NewProfileHandler(mockProfileService, mockDiscoverService, mockInteractionService)

	companion := newTestCompanion()
	mockDiscoverService.On("Matches", mock.Anything, "11111111-1111-4111-8111-111111111111").
		Return([]*profiles.CompanionProfile{companion}, nil)

	c, w := authedTestContext(t, "GET", "/matches", nil)

	handler.Matches(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), companion.ID)
	mockDiscoverService.AssertExpectations(t)
}

func TestProfileHandler_React_Success(t *testing.T) {
	mockProfileService := new(MockProfileService)
	mockDiscoverService := new(MockDiscoverService)
	mockInteractionService := new(MockInteractionService)
	handler := NewProfileHandler(mockProfileService, mockDiscoverService, mockInteractionService)

	companion := newTestCompanion()
	interaction := &profiles.Interaction{
		ID:              "99999999-9999-4999-8999-999999999999",
		DateTimeCreated: time.Now().UTC(),
		CustomerID:      "11111111-1111-4111-8111-111111111111",
		CompanionID:     companion.ID,
		Kind:            profiles.InteractionLike,
	}
	mockInteractionService.On("React", mock.Anything, interaction.CustomerID, companion.ID, "like").
		Return(interaction, nil)

	body := []byte(`{"kind":"like"}`)
	c, w := authedTestContext(t, "POST", "/companions/"+companion.ID+"/reactions", body)
	c.Params = gin.Params{{Key: "id", Value: companion.ID}}

	handler.React(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "like")
	mockInteractionService.AssertExpectations(t)
}

func TestProfileHandler_React_UnknownCompanion_NotFound(t *testing.T) {
	mockProfileService := new(MockProfileService)
	mockDiscoverService := new(MockDiscoverService)
	mockInteractionService := new(MockInteractionService)
	handler := NewProfileHandler(mockProfileService, mockDiscoverService, mockInteractionService)

	mockInteractionService.On("React", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, profiles.ErrProfileNotFound)

	body := []byte(`{"kind":"like"}`)
	c, w := authedTestContext(t, "POST", "/companions/nope/reactions", body)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	handler.React(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileHandler_GetMe_Success(t *testing.T) {
	mockProfileService := new(MockProfileService)
	mockDiscoverService := new(MockDiscoverService)
	mockInteractionService := new(MockInteractionService)
	handler := NewProfileHandler(mockProfileService, mockDiscoverService, mockInteractionService)

	profile := &profiles.CustomerProfile{
		ID:              "11111111-1111-4111-8111-111111111111",
		DateTimeCreated: time.Now().UTC(),
		DisplayName:     "Jo",
		City:            "Vientiane",
	}
	mockProfileService.On("GetCustomer", mock.Anything, profile.ID).Return(profile, nil)

	c, w := authedTestContext(t, "GET", "/me", nil)

	handler.GetMe(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jo")
	mockProfileService.AssertExpectations(t)
}
