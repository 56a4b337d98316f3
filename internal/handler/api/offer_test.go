//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"zerowaste-exchange/internal/domain/impact"
	"zerowaste-exchange/internal/domain/offer"
	"zerowaste-exchange/internal/handler/api"
	"zerowaste-exchange/internal/usecase/commands"
	"zerowaste-exchange/internal/usecase/queries"
	"zerowaste-exchange/tests/common/httptest"
	commandsmock "zerowaste-exchange/tests/mock/commands"
	queriesmock "zerowaste-exchange/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockOffers   *queriesmock.MockOfferQueries
	mockImpact   *queriesmock.MockImpactQueries
	mockMarkdown *commandsmock.MockMarkdownCommands
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOffers = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.mockImpact = queriesmock.NewMockImpactQueries(s.mockCtrl)
	s.mockMarkdown = commandsmock.NewMockMarkdownCommands(s.mockCtrl)

	s.router.GET("/offers", api.NewOfferHandler(s.mockOffers).ListOffers)
	s.router.GET("/impact", api.NewImpactHandler(s.mockImpact).Get)
	s.router.POST("/markdown/calculate", api.NewMarkdownHandler(s.mockMarkdown).Calculate)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

// ================================================================================
// TestListOffers
// ================================================================================

func (s *OfferHandlerTestSuite) TestListOffers() {
	views := []*queries.OfferView{
		{ID: uuid.New(), DiscountPct: 40, Audience: "public"},
	}

	s.Run("success: defaults to the public audience", func() {
		s.mockOffers.EXPECT().ListForAudience(gomock.Any(), offer.AudiencePublic).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers", nil)

		var response []*queries.OfferView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(40, response[0].DiscountPct)
	})

	s.Run("success: user_type=nonprofit selects the nonprofit audience", func() {
		s.mockOffers.EXPECT().ListForAudience(gomock.Any(), offer.AudienceNonprofit).
			Return([]*queries.OfferView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?user_type=nonprofit", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: unknown user_type falls back to public", func() {
		s.mockOffers.EXPECT().ListForAudience(gomock.Any(), offer.AudiencePublic).
			Return([]*queries.OfferView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers?user_type=wholesale", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockOffers.EXPECT().ListForAudience(gomock.Any(), offer.AudiencePublic).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offers", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestImpact
// ================================================================================

func (s *OfferHandlerTestSuite) TestImpact() {
	snapshot := impact.Snapshot{
		TotalLbsSaved:         12.5,
		TotalCO2eAvoided:      4.2,
		TotalRevenueRecovered: 31.96,
		TotalItemsRescued:     8,
	}

	s.Run("success: serves the materialized totals", func() {
		s.mockImpact.EXPECT().Snapshot(gomock.Any()).Return(snapshot, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/impact", nil)

		var response impact.Snapshot
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(snapshot, response)
	})

	s.Run("success: rebuild=true recomputes from the pickup log", func() {
		s.mockImpact.EXPECT().Rebuild(gomock.Any()).Return(snapshot, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/impact?rebuild=true", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockImpact.EXPECT().Snapshot(gomock.Any()).
			Return(impact.Snapshot{}, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/impact", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestCalculate
// ================================================================================

func (s *OfferHandlerTestSuite) TestCalculate() {
	s.Run("success: reports created and updated offers", func() {
		s.mockMarkdown.EXPECT().Recalculate(gomock.Any()).
			Return(&commands.RecalculateResult{Created: 2, Updated: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/markdown/calculate", nil)

		var result commands.RecalculateResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &result)
		s.Equal(2, result.Created)
		s.Equal(3, result.Updated)
	})

	s.Run("error: 500 on recalculation failure", func() {
		s.mockMarkdown.EXPECT().Recalculate(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/markdown/calculate", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
