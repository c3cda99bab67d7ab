package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/paylink/internal/domain"
	"github.com/fsdevblog/paylink/internal/repository/repoargs"
	"github.com/fsdevblog/paylink/internal/service/mocks"
	"github.com/fsdevblog/paylink/pkg/uow"
	uowmocks "github.com/fsdevblog/paylink/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PayoutServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockUserRepo   *mocks.MockUserRepository
	mockTxRepo     *mocks.MockTransactionRepository
	mockPayoutRepo *mocks.MockPayoutRepository
	service        *PayoutService
	now            time.Time
	rule           *domain.PayoutRule
}

func TestPayoutServiceSuite(t *testing.T) {
	suite.Run(t, new(PayoutServiceTestSuite))
}

func (s *PayoutServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockTxRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockPayoutRepo = mocks.NewMockPayoutRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTxRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PayoutRepoName)).
		Return(s.mockPayoutRepo, nil).AnyTimes()

	service, err := NewPayoutService(s.mockUOW, discardLogger())
	s.Require().NoError(err)

	s.now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return s.now }
	s.service = service

	s.rule = &domain.PayoutRule{
		FirstPayoutDelay: 7 * 24 * time.Hour,
		MinPayoutDelay:   3 * 24 * time.Hour,
		MaxPayoutDelay:   5 * 24 * time.Hour,
		MinimumAmount:    decimal.NewFromInt(10),
	}
}

func (s *PayoutServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PayoutServiceTestSuite) merchant(memberFor time.Duration) domain.User {
	user := *fakeMerchant()
	user.MemberSince = s.now.Add(-memberFor)
	user.OnboardingCompleted = true
	return user
}

func (s *PayoutServiceTestSuite) expectBalance(userID string, completed int64, paid decimal.Decimal) {
	s.mockTxRepo.EXPECT().SumCompletedByUser(gomock.Any(), userID).
		Return([]repoargs.CurrencyAmount{{Currency: domain.CurrencyUSD, Amount: completed}}, nil)
	var sums []repoargs.CurrencyDecimal
	if !paid.IsZero() {
		sums = append(sums, repoargs.CurrencyDecimal{Currency: domain.CurrencyUSD, Amount: paid})
	}
	s.mockPayoutRepo.EXPECT().SumByUser(gomock.Any(), userID).Return(sums, nil)
}

func (s *PayoutServiceTestSuite) expectPayout(userID string, amount decimal.Decimal) {
	s.mockPayoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreatePayout) (*domain.Payout, error) {
			s.Equal(userID, args.UserID)
			s.True(amount.Equal(args.Amount), "payout amount %s", args.Amount)
			s.Equal(domain.CurrencyUSD, args.Currency)
			s.Equal(autoPayoutDescription, args.Description)
			s.NotEmpty(args.ID)
			return &domain.Payout{
				ID:       args.ID,
				UserID:   args.UserID,
				Amount:   args.Amount,
				Currency: args.Currency,
				Status:   domain.PayoutStatusPending,
			}, nil
		})
	s.mockPayoutRepo.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), s.now, gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, completedAt, next time.Time) (*domain.Payout, error) {
			s.False(next.Before(s.now.Add(s.rule.MinPayoutDelay)))
			s.False(next.After(s.now.Add(s.rule.MaxPayoutDelay)))
			return &domain.Payout{ID: id, Status: domain.PayoutStatusCompleted, CompletedAt: &completedAt}, nil
		})
}

func (s *PayoutServiceTestSuite) TestRunAutoPayouts() {
	future := s.now.Add(24 * time.Hour)
	past := s.now.Add(-time.Hour)

	cases := []struct {
		name       string
		memberFor  time.Duration
		completed  int64
		paid       decimal.Decimal
		last       *domain.Payout
		checkLast  bool
		wantAmount decimal.Decimal
		wantCount  int
	}{
		{
			name:       "first payout after delay",
			memberFor:  30 * 24 * time.Hour,
			completed:  2500,
			checkLast:  true,
			wantAmount: decimal.RequireFromString("25"),
			wantCount:  1,
		},
		{
			name:      "first payout too early",
			memberFor: 2 * 24 * time.Hour,
			completed: 2500,
			checkLast: true,
		},
		{
			name:      "below minimum",
			memberFor: 30 * 24 * time.Hour,
			completed: 999,
		},
		{
			name:      "already paid out",
			memberFor: 30 * 24 * time.Hour,
			completed: 2500,
			paid:      decimal.RequireFromString("25"),
		},
		{
			name:      "next payout in future",
			memberFor: 30 * 24 * time.Hour,
			completed: 5000,
			paid:      decimal.RequireFromString("20"),
			last:      &domain.Payout{NextPayoutAt: &future},
			checkLast: true,
		},
		{
			name:       "next payout reached",
			memberFor:  30 * 24 * time.Hour,
			completed:  5000,
			paid:       decimal.RequireFromString("20"),
			last:       &domain.Payout{NextPayoutAt: &past},
			checkLast:  true,
			wantAmount: decimal.RequireFromString("30"),
			wantCount:  1,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user := s.merchant(t.memberFor)
			s.mockPayoutRepo.EXPECT().GetRule(gomock.Any()).Return(s.rule, nil)
			s.mockUserRepo.EXPECT().ListPayoutEligible(gomock.Any()).Return([]domain.User{user}, nil)
			s.expectBalance(user.ID, t.completed, t.paid)
			if t.checkLast {
				if t.last != nil {
					s.mockPayoutRepo.EXPECT().LastCompleted(gomock.Any(), user.ID, domain.CurrencyUSD).Return(t.last, nil)
				} else {
					s.mockPayoutRepo.EXPECT().LastCompleted(gomock.Any(), user.ID, domain.CurrencyUSD).
						Return(nil, domain.ErrRecordNotFound)
				}
			}
			if t.wantCount > 0 {
				s.expectPayout(user.ID, t.wantAmount)
			}

			count, err := s.service.RunAutoPayouts(s.T().Context())
			s.Require().NoError(err)
			s.Equal(t.wantCount, count)
		})
	}
}

func (s *PayoutServiceTestSuite) TestRunAutoPayoutsContinuesAfterUserError() {
	broken := s.merchant(30 * 24 * time.Hour)
	healthy := s.merchant(30 * 24 * time.Hour)

	s.mockPayoutRepo.EXPECT().GetRule(gomock.Any()).Return(s.rule, nil)
	s.mockUserRepo.EXPECT().ListPayoutEligible(gomock.Any()).Return([]domain.User{broken, healthy}, nil)
	s.mockTxRepo.EXPECT().SumCompletedByUser(gomock.Any(), broken.ID).Return(nil, domain.ErrUnknown)
	s.expectBalance(healthy.ID, 1500, decimal.Zero)
	s.mockPayoutRepo.EXPECT().LastCompleted(gomock.Any(), healthy.ID, domain.CurrencyUSD).
		Return(nil, domain.ErrRecordNotFound)
	s.expectPayout(healthy.ID, decimal.RequireFromString("15"))

	count, err := s.service.RunAutoPayouts(s.T().Context())
	s.Require().ErrorIs(err, domain.ErrUnknown)
	s.Contains(err.Error(), broken.ID)
	s.Equal(1, count)
}

func (s *PayoutServiceTestSuite) TestRunAutoPayoutsRuleError() {
	s.mockPayoutRepo.EXPECT().GetRule(gomock.Any()).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.RunAutoPayouts(s.T().Context())
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *PayoutServiceTestSuite) TestRandomDelayBounds() {
	for range 100 {
		d := randomDelay(time.Hour, 2*time.Hour)
		s.GreaterOrEqual(d, time.Hour)
		s.LessOrEqual(d, 2*time.Hour)
	}
	s.Equal(time.Hour, randomDelay(time.Hour, time.Minute))
}
