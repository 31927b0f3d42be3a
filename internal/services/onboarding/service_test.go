package onboarding

import (
	"context"
	"errors"
	"testing"

	"moneybag/internal/models"
	"moneybag/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockApplications struct {
	mock.Mock
}

func (m *MockApplications) Create(ctx context.Context, application *models.MerchantApplication) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplications) GetByApplicationID(ctx context.Context, applicationID string) (*models.MerchantApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MerchantApplication), args.Error(1)
}

func (m *MockApplications) HasPending(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplications) List(ctx context.Context, status string, offset, limit int) ([]models.MerchantApplication, int64, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.MerchantApplication), args.Get(1).(int64), args.Error(2)
}

type MockQuoter struct {
	mock.Mock
}

func (m *MockQuoter) Quote(ctx context.Context, criteria models.Criteria) (*models.QuoteResponse, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuoteResponse), args.Error(1)
}

func validInput() RegisterInput {
	return RegisterInput{
		BusinessName:     "  Dhaka Crafts  ",
		LegalIdentity:    "sole_proprietorship",
		BusinessCategory: "ecommerce",
		MonthlyVolume:    "500000",
		ContactName:      "Rahim Uddin",
		Email:            "Owner@DhakaCrafts.com.bd",
		Phone:            "+880 1712-345678",
	}
}

func testQuote() *models.QuoteResponse {
	return &models.QuoteResponse{
		QuoteID: uuid.NewString(),
		Quote: models.QuoteResult{
			PricingKey: "starter",
			Documents:  []string{"Trade license", "National ID of the proprietor"},
			EstimatedMonthlyCost: models.CostEstimate{
				Total:     11100,
				Formatted: "11,100 BDT",
			},
		},
	}
}

func TestService_Register(t *testing.T) {
	apps := new(MockApplications)
	quoter := new(MockQuoter)
	s := NewService(apps, quoter)
	quote := testQuote()

	apps.On("HasPending", mock.Anything, "owner@dhakacrafts.com.bd").Return(false, nil)
	quoter.On("Quote", mock.Anything, models.Criteria{
		"legalIdentity":    "sole_proprietorship",
		"businessCategory": "ecommerce",
		"monthlyVolume":    "500000",
	}).Return(quote, nil)
	apps.On("Create", mock.Anything, mock.AnythingOfType("*models.MerchantApplication")).Return(nil)

	application, err := s.Register(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "Dhaka Crafts", application.BusinessName)
	assert.Equal(t, "owner@dhakacrafts.com.bd", application.Email)
	assert.Equal(t, "+8801712345678", application.Phone)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)
	assert.Equal(t, quote.QuoteID, application.QuoteID)
	assert.Equal(t, "starter", application.PricingKey)
	assert.Equal(t, int64(11100), application.EstimatedTotal)
	assert.Len(t, application.RequiredDocuments, 2)
	_, err = uuid.Parse(application.ApplicationID)
	assert.NoError(t, err)

	apps.AssertExpectations(t)
	quoter.AssertExpectations(t)
}

func TestService_RegisterRejects(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RegisterInput)
		setupMock func(*MockApplications, *MockQuoter)
		wantErr   error
		wantField string
	}{
		{
			name:      "missing business name",
			mutate:    func(in *RegisterInput) { in.BusinessName = "  " },
			wantErr:   ErrInvalidApplication,
			wantField: "business_name",
		},
		{
			name:      "unknown legal identity",
			mutate:    func(in *RegisterInput) { in.LegalIdentity = "cooperative" },
			wantErr:   ErrInvalidApplication,
			wantField: "legal_identity",
		},
		{
			name:      "bad phone",
			mutate:    func(in *RegisterInput) { in.Phone = "12345" },
			wantErr:   ErrInvalidApplication,
			wantField: "phone",
		},
		{
			name:      "bad email",
			mutate:    func(in *RegisterInput) { in.Email = "owner-at-shop" },
			wantErr:   ErrInvalidApplication,
			wantField: "email",
		},
		{
			name:   "pending application exists",
			mutate: func(in *RegisterInput) {},
			setupMock: func(apps *MockApplications, quoter *MockQuoter) {
				apps.On("HasPending", mock.Anything, "owner@dhakacrafts.com.bd").Return(true, nil)
			},
			wantErr: ErrDuplicateApplication,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apps := new(MockApplications)
			quoter := new(MockQuoter)
			if tt.setupMock != nil {
				tt.setupMock(apps, quoter)
			}
			s := NewService(apps, quoter)

			input := validInput()
			tt.mutate(&input)
			_, err := s.Register(context.Background(), input)

			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantField != "" {
				var verr *validation.Error
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, tt.wantField)
			}

			apps.AssertExpectations(t)
			quoter.AssertExpectations(t)
		})
	}
}

func TestService_RegisterQuoteFailure(t *testing.T) {
	apps := new(MockApplications)
	quoter := new(MockQuoter)
	s := NewService(apps, quoter)

	apps.On("HasPending", mock.Anything, mock.Anything).Return(false, nil)
	quoter.On("Quote", mock.Anything, mock.Anything).Return(nil, errors.New("pricing configuration unavailable"))

	_, err := s.Register(context.Background(), validInput())
	assert.Error(t, err)
	apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_GetApplication(t *testing.T) {
	id := uuid.NewString()

	t.Run("found", func(t *testing.T) {
		apps := new(MockApplications)
		apps.On("GetByApplicationID", mock.Anything, id).
			Return(&models.MerchantApplication{ApplicationID: id, BusinessName: "Dhaka Crafts"}, nil)

		application, err := NewService(apps, nil).GetApplication(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Dhaka Crafts", application.BusinessName)
	})

	t.Run("not found", func(t *testing.T) {
		apps := new(MockApplications)
		apps.On("GetByApplicationID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewService(apps, nil).GetApplication(context.Background(), id)
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := NewService(new(MockApplications), nil).GetApplication(context.Background(), "42")
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})
}

func TestService_ListApplications(t *testing.T) {
	apps := new(MockApplications)
	apps.On("List", mock.Anything, models.ApplicationStatusPending, 0, 20).
		Return([]models.MerchantApplication{{ApplicationID: "a"}, {ApplicationID: "b"}}, int64(2), nil)
	s := NewService(apps, nil)

	applications, total, err := s.ListApplications(context.Background(), models.ApplicationStatusPending, 0, 20)
	require.NoError(t, err)
	assert.Len(t, applications, 2)
	assert.EqualValues(t, 2, total)

	_, _, err = s.ListApplications(context.Background(), "archived", 0, 20)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	apps.AssertNumberOfCalls(t, "List", 1)
}

func TestCriteria(t *testing.T) {
	input := validInput()
	input.ServiceType = "donation"

	criteria := Criteria(input)

	assert.Equal(t, "donation", criteria["serviceType"])
	assert.Equal(t, "500000", criteria["monthlyVolume"])
}
