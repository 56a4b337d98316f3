//go:build e2e

package rescue_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"zerowaste-exchange/internal/domain/impact"
	"zerowaste-exchange/internal/handler/dto/request"
	"zerowaste-exchange/internal/usecase/commands"
	"zerowaste-exchange/internal/usecase/queries"
	"zerowaste-exchange/tests/common/builder"
	"zerowaste-exchange/tests/common/httptest"
	"zerowaste-exchange/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	productsURL      = "/products"
	batchesURL       = "/batches"
	offersURL        = "/offers"
	reserveURL       = "/reserve"
	reservationsURL  = "/reservations"
	confirmURL       = "/pickup/confirm"
	relistURL        = "/pickup/relist"
	recalcURL        = "/markdown/calculate"
	impactURL        = "/impact"
	importProductURL = "/import/products"
)

type RescueSuite struct {
	e2e.SharedSuite
}

func TestRescueSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RescueSuite))
}

// createListing drives the write API to produce a product, a batch with
// qty units expiring expiryIn from now, and markdown-engine offers for it.
func (s *RescueSuite) createListing(qty int, expiryIn time.Duration) (queries.ProductView, queries.BatchView) {
	t := s.T()

	reqBody := builder.NewProductBuilder().
		With(func(b *builder.ProductBuilder) { b.SKU = "SKU-" + uuid.NewString()[:8] }).
		BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, reqBody)
	var prod queries.ProductView
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &prod)

	batchReq := request.CreateBatchRequest{
		ProductID: prod.ID,
		StoreID:   uuid.New(),
		QtyTotal:  qty,
		ExpiryTS:  time.Now().UTC().Add(expiryIn),
	}
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, batchesURL, batchReq)
	var batch queries.BatchView
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &batch)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, recalcURL, nil)
	var recalc commands.RecalculateResult
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &recalc)
	require.Equal(t, 2, recalc.Created, "expected a nonprofit and a public offer")

	return prod, batch
}

func (s *RescueSuite) listOffers(userType string) []queries.OfferView {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, offersURL+"?user_type="+userType, nil)
	var offers []queries.OfferView
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &offers)
	return offers
}

func (s *RescueSuite) reserveUnits(offerID, userID uuid.UUID, qty int) queries.ReservationView {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, map[string]any{
		"offer_id": offerID.String(),
		"user_id":  userID.String(),
		"qty":      qty,
	})
	var view queries.ReservationView
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &view)
	return view
}

func (s *RescueSuite) fetchImpact(rebuild bool) impact.Snapshot {
	t := s.T()
	url := impactURL
	if rebuild {
		url += "?rebuild=true"
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
	var snapshot impact.Snapshot
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &snapshot)
	return snapshot
}

func (s *RescueSuite) TestRescueFlow() {
	s.Run("full cycle: list, reserve, pick up, measure impact", func() {
		t := s.T()

		_, _ = s.createListing(10, 10*time.Hour)

		// Within 12h of expiry the tier is 40; nonprofit partners see it
		// immediately, the public only after the early-access window.
		nonprofitOffers := s.listOffers("nonprofit")
		require.Len(t, nonprofitOffers, 1)
		require.Equal(t, 40, nonprofitOffers[0].DiscountPct)
		require.Empty(t, s.listOffers("public"), "public listing should still be in early access")

		userID := uuid.New()
		reservation := s.reserveUnits(nonprofitOffers[0].ID, userID, 2)
		require.Equal(t, "reserved", reservation.Status)
		require.Len(t, reservation.ConfirmationCode, 6)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?user_id="+userID.String(), nil)
		var mine []queries.ReservationView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, batchesURL, nil)
		var batches []queries.BatchView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &batches)
		require.Len(t, batches, 1)
		require.Equal(t, 8, batches[0].QtyAvailable, "reserved units must leave the available pool")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, map[string]any{
			"confirmation_code": reservation.ConfirmationCode,
			"staff_id":          uuid.New().String(),
		})
		var confirmed queries.ReservationView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		require.Equal(t, "picked_up", confirmed.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, batchesURL, nil)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &batches)
		require.Equal(t, 8, batches[0].QtyTotal, "picked-up units leave the batch for good")

		snapshot := s.fetchImpact(false)
		require.Equal(t, int64(2), snapshot.TotalItemsRescued)
		require.Greater(t, snapshot.TotalRevenueRecovered, 0.0)
		require.Greater(t, snapshot.TotalLbsSaved, 0.0)

		if diff := cmp.Diff(snapshot, s.fetchImpact(true)); diff != "" {
			t.Fatalf("rebuilt impact diverged from the incremental snapshot (-snapshot +rebuilt):\n%s", diff)
		}

		// A finalized reservation can be neither re-confirmed nor canceled.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, map[string]any{
			"confirmation_code": reservation.ConfirmationCode,
			"staff_id":          uuid.New().String(),
		})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already finalized")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+reservation.ID.String()+"/cancel",
			map[string]any{"user_id": userID.String()})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already finalized")
	})

	s.Run("cancel returns the held units", func() {
		t := s.T()

		_, _ = s.createListing(5, 10*time.Hour)
		offers := s.listOffers("nonprofit")
		require.Len(t, offers, 1)

		userID := uuid.New()
		reservation := s.reserveUnits(offers[0].ID, userID, 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+reservation.ID.String()+"/cancel",
			map[string]any{"user_id": userID.String()})
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, batchesURL, nil)
		var batches []queries.BatchView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &batches)
		require.Equal(t, 5, batches[0].QtyAvailable)

		// A canceled pickup leaves no trace in the impact ledger.
		require.Zero(t, s.fetchImpact(false).TotalItemsRescued)
	})

	s.Run("overbooking is rejected with the inventory intact", func() {
		t := s.T()

		s.createListing(1, 10*time.Hour)
		offers := s.listOffers("nonprofit")
		require.Len(t, offers, 1)

		s.reserveUnits(offers[0].ID, uuid.New(), 1)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, map[string]any{
			"offer_id": offers[0].ID.String(),
			"user_id":  uuid.New().String(),
			"qty":      1,
		})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Not enough units")
	})

	s.Run("confirmation code survives a round trip through the register", func() {
		t := s.T()

		s.createListing(4, 10*time.Hour)
		offers := s.listOffers("nonprofit")
		require.Len(t, offers, 1)

		reservation := s.reserveUnits(offers[0].ID, uuid.New(), 1)

		// Staff type codes by hand; case and stray whitespace must not matter.
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, map[string]any{
			"confirmation_code": "  " + strings.ToLower(reservation.ConfirmationCode) + " ",
			"staff_id":          uuid.New().String(),
		})
		var confirmed queries.ReservationView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		require.Equal(t, reservation.ID, confirmed.ID)
	})
}

func (s *RescueSuite) TestCSVImport() {
	s.Run("imports products, skipping bad rows", func() {
		t := s.T()

		csv := "sku,name,category,size,base_price,weight_grams,co2e_per_kg\n" +
			"MILK-1GAL,Whole Milk,dairy,1 gal,4.99,3785,1.9\n" +
			"BAD-ROW,No Price,dairy,1 qt,,950,1.9\n" +
			"BREAD-LOAF,Sourdough Loaf,bakery,800 g,6.50,800,0.9\n"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, importProductURL, request.ImportRequest{CSV: csv})
		var result commands.ImportResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.Equal(t, 2, result.Imported)
		require.Equal(t, 1, result.Skipped)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL, nil)
		var products []queries.ProductView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &products)
		require.Len(t, products, 2)
	})

	s.Run("duplicate SKUs are rejected", func() {
		t := s.T()

		reqBody := builder.NewProductBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, reqBody)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, productsURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})
}

func (s *RescueSuite) TestNoShowSweep() {
	s.Run("lapsed reservations are swept and relisted at a penalty", func() {
		t := s.T()

		_, batch := s.createListing(6, 10*time.Hour)
		offers := s.listOffers("nonprofit")
		require.Len(t, offers, 1)

		userID := uuid.New()
		start := time.Now().UTC().Add(-2 * time.Hour)
		end := time.Now().UTC().Add(-1 * time.Hour)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reserveURL, map[string]any{
			"offer_id":        offers[0].ID.String(),
			"user_id":         userID.String(),
			"qty":             2,
			"pickup_start_ts": start.Format(time.RFC3339),
			"pickup_end_ts":   end.Format(time.RFC3339),
		})
		var reservation queries.ReservationView
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &reservation)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, relistURL, nil)
		var result commands.SweepResult
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.Equal(t, 1, result.Swept)
		require.Equal(t, 1, result.Relisted)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, batchesURL, nil)
		var batches []queries.BatchView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &batches)
		require.Equal(t, batch.QtyTotal, batches[0].QtyAvailable, "swept units must return to the pool")

		// The nonprofit offer the no-show reserved from was at 40; the public
		// relist carries the penalty bump on top. The public listing may
		// still be inside its early-access hold, so read the store directly.
		var publicPct int
		err := s.DB.QueryRow(context.Background(),
			"SELECT discount_pct FROM offers WHERE batch_id = $1 AND audience = 'public'",
			batch.ID).Scan(&publicPct)
		require.NoError(t, err)
		require.Equal(t, 50, publicPct)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+reservation.ID.String(), nil)
		var swept queries.ReservationView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &swept)
		require.Equal(t, "no_show", swept.Status)
	})
}
