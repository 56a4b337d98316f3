//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"zerowaste-exchange/internal/domain/inventory"
	"zerowaste-exchange/internal/domain/offer"
	"zerowaste-exchange/internal/infra/memory"
	"zerowaste-exchange/internal/pkg/clock"
	"zerowaste-exchange/internal/pkg/config"
	"zerowaste-exchange/internal/usecase/commands"
	"zerowaste-exchange/internal/usecase/shared"
	"zerowaste-exchange/tests/common/builder"

	"github.com/stretchr/testify/suite"
)

type MarkdownUseCaseTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.MockClock
	batches  shared.BatchRepository
	offers   shared.OfferRepository
	useCase  commands.MarkdownCommands
	baseTime time.Time
}

func (s *MarkdownUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.baseTime = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.baseTime)

	store := memory.NewStore()
	s.batches = memory.NewBatchRepository(store)
	s.offers = memory.NewOfferRepository(store)

	cfg := config.NewTestConfig().Markdown
	s.useCase = commands.NewMarkdownUseCase(s.batches, s.offers, s.clock, cfg)
}

func TestMarkdownUseCaseSuite(t *testing.T) {
	suite.Run(t, new(MarkdownUseCaseTestSuite))
}

func (s *MarkdownUseCaseTestSuite) seedBatch(hoursToExpiry float64) *inventory.Batch {
	b, err := builder.NewBatchBuilder(s.baseTime).
		With(func(b *builder.BatchBuilder) {
			b.ExpiryTS = s.baseTime.Add(time.Duration(hoursToExpiry * float64(time.Hour)))
		}).
		BuildEntity()
	s.Require().NoError(err)
	s.Require().NoError(s.batches.Create(s.ctx, b))
	return b
}

func (s *MarkdownUseCaseTestSuite) activeOffer(b *inventory.Batch, audience offer.Audience) *offer.Offer {
	// The nonprofit listing opens immediately; the public one may still be
	// inside its early-access hold, so look far enough ahead to see it.
	o, err := s.offers.FindActive(s.ctx, b.ID(), audience, s.clock.Now().Add(3*time.Hour))
	s.Require().NoError(err)
	return o
}

func (s *MarkdownUseCaseTestSuite) TestRecalculate_CreatesOffersAtCurrentTier() {
	b := s.seedBatch(10) // inside the under-12h tier

	result, err := s.useCase.Recalculate(s.ctx)

	s.NoError(err)
	s.Equal(2, result.Created)
	s.Equal(0, result.Updated)

	nonprofit := s.activeOffer(b, offer.AudienceNonprofit)
	s.Equal(offer.TierLate, nonprofit.DiscountPct())
	s.True(nonprofit.IsVisibleAt(s.baseTime))

	public := s.activeOffer(b, offer.AudiencePublic)
	s.Equal(offer.TierLate, public.DiscountPct())
	// Early access: the public listing only opens after the nonprofit head start.
	s.False(public.IsVisibleAt(s.baseTime))
	s.True(public.IsVisibleAt(s.baseTime.Add(2 * time.Hour)))
}

func (s *MarkdownUseCaseTestSuite) TestRecalculate_IdempotentForUnchangedInventory() {
	s.seedBatch(10)

	first, err := s.useCase.Recalculate(s.ctx)
	s.NoError(err)
	s.Equal(2, first.Created)

	second, err := s.useCase.Recalculate(s.ctx)
	s.NoError(err)
	s.Equal(0, second.Created)
	s.Equal(0, second.Updated)
}

func (s *MarkdownUseCaseTestSuite) TestRecalculate_DeepensAsExpiryApproaches() {
	b := s.seedBatch(20) // starts in the shallowest tier

	_, err := s.useCase.Recalculate(s.ctx)
	s.NoError(err)
	original := s.activeOffer(b, offer.AudienceNonprofit)
	s.Equal(offer.TierEarly, original.DiscountPct())

	s.clock.Add(15 * time.Hour) // 5h to expiry now
	result, err := s.useCase.Recalculate(s.ctx)
	s.NoError(err)
	s.Equal(0, result.Created)
	s.Equal(2, result.Updated)

	deepened := s.activeOffer(b, offer.AudienceNonprofit)
	s.Equal(original.ID(), deepened.ID())
	s.Equal(offer.TierFinal, deepened.DiscountPct())
}

func (s *MarkdownUseCaseTestSuite) TestRecalculate_NeverLowersDiscount() {
	b := s.seedBatch(10)

	_, err := s.useCase.Recalculate(s.ctx)
	s.NoError(err)

	// Simulate a no-show penalty that pushed the discount past the tier.
	bumped := s.activeOffer(b, offer.AudiencePublic)
	s.Require().NoError(s.offers.RaiseDiscount(s.ctx, bumped.ID(), 80))

	s.clock.Add(5 * time.Hour) // tier would now say 60
	result, err := s.useCase.Recalculate(s.ctx)
	s.NoError(err)

	after := s.activeOffer(b, offer.AudiencePublic)
	s.Equal(80, after.DiscountPct())
	s.Equal(1, result.Updated) // only the nonprofit offer moved
}

func (s *MarkdownUseCaseTestSuite) TestRecalculate_SkipsExpiredBatches() {
	s.seedBatch(1)
	s.clock.Add(2 * time.Hour)

	result, err := s.useCase.Recalculate(s.ctx)

	s.NoError(err)
	s.Equal(0, result.Created)
	s.Equal(0, result.Updated)
}

func (s *MarkdownUseCaseTestSuite) TestRecalculate_ConcurrentRunsCreateOnePairOnly() {
	s.seedBatch(20)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.useCase.Recalculate(s.ctx)
		}()
	}
	wg.Wait()

	nonprofit, err := s.offers.ListVisible(s.ctx, offer.AudienceNonprofit, s.baseTime)
	s.Require().NoError(err)
	s.Len(nonprofit, 1)

	public, err := s.offers.ListVisible(s.ctx, offer.AudiencePublic, s.baseTime.Add(3*time.Hour))
	s.Require().NoError(err)
	s.Len(public, 1)
}
