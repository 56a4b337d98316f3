//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"zerowaste-exchange/internal/domain/reservation"
	"zerowaste-exchange/internal/handler/api"
	"zerowaste-exchange/internal/pkg/errs"
	"zerowaste-exchange/internal/usecase/commands"
	"zerowaste-exchange/internal/usecase/queries"
	"zerowaste-exchange/tests/common/builder"
	"zerowaste-exchange/tests/common/httptest"
	"zerowaste-exchange/tests/common/testutil"
	commandsmock "zerowaste-exchange/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PickupHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPickupCommands
	handler      *api.PickupHandler
}

func (s *PickupHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPickupCommands(s.mockCtrl)
	s.handler = api.NewPickupHandler(s.mockCommands)

	s.router.POST("/pickup/confirm", s.handler.Confirm)
	s.router.POST("/pickup/relist", s.handler.Relist)
}

func (s *PickupHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPickupHandlerSuite(t *testing.T) {
	suite.Run(t, new(PickupHandlerTestSuite))
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *PickupHandlerTestSuite) TestConfirm() {
	url := "/pickup/confirm"
	now := time.Now().UTC()
	staffID := uuid.New()

	rb := builder.NewReservationBuilder(now)
	returnView := rb.BuildView()
	returnView.Status = reservation.StatusPickedUp.String()

	reqBody := map[string]any{
		"confirmation_code": rb.Code,
		"staff_id":          staffID.String(),
	}

	s.Run("success: confirms by confirmation code", func() {
		s.mockCommands.EXPECT().ConfirmPickup(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.ConfirmPickupParams) (*queries.ReservationView, error) {
				s.Require().NotNil(params.ConfirmationCode)
				s.Equal(rb.Code, *params.ConfirmationCode)
				s.Equal(staffID, params.StaffID)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var view queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal("picked_up", view.Status)
	})

	s.Run("success: confirms by reservation ID", func() {
		reservationID := returnView.ID
		idBody := map[string]any{
			"reservation_id": reservationID.String(),
			"staff_id":       staffID.String(),
		}

		s.mockCommands.EXPECT().ConfirmPickup(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.ConfirmPickupParams) (*queries.ReservationView, error) {
				s.Require().NotNil(params.ReservationID)
				s.Equal(reservationID, *params.ReservationID)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, idBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for missing staff_id", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("staff_id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "neither identifier supplied",
				commandsError:  errs.Mark(errors.New("confirmation_code or reservation_id required"), errs.ErrDomainValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "confirmation_code or reservation_id",
			},
			{
				name:           "reservation not found",
				commandsError:  errs.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "already finalized",
				commandsError:  errs.ErrAlreadyFinalized,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already finalized",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ConfirmPickup(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRelist
// ================================================================================

func (s *PickupHandlerTestSuite) TestRelist() {
	url := "/pickup/relist"

	s.Run("success: returns sweep counters", func() {
		s.mockCommands.EXPECT().SweepNoShows(gomock.Any()).
			Return(&commands.SweepResult{Swept: 3, Relisted: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var result commands.SweepResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &result)
		s.Equal(3, result.Swept)
		s.Equal(2, result.Relisted)
	})

	s.Run("success: nothing to sweep", func() {
		s.mockCommands.EXPECT().SweepNoShows(gomock.Any()).
			Return(&commands.SweepResult{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var result commands.SweepResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &result)
		s.Zero(result.Swept)
		s.Zero(result.Relisted)
	})

	s.Run("error: 500 Internal Server Error on sweep failure", func() {
		s.mockCommands.EXPECT().SweepNoShows(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
