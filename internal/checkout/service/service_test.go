package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetrovegor/storefront/internal/apperror"
	"github.com/vetrovegor/storefront/internal/cart"
	"github.com/vetrovegor/storefront/internal/catalog"
	"github.com/vetrovegor/storefront/internal/checkout"
	mockcheckoutbackend "github.com/vetrovegor/storefront/internal/checkout/service/mocks"
	"github.com/vetrovegor/storefront/internal/customer"
	"github.com/vetrovegor/storefront/internal/session"
	"github.com/vetrovegor/storefront/pkg/metrics"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const Slug = "acme"

var ErrUnexpected = errors.New("unexpected error")

func validForm() checkout.Form {
	return checkout.Form{
		Name:          " Ana Gomez ",
		Email:         "ana@example.com",
		Phone:         "3001234567",
		NIT:           "900123",
		SalespersonID: "c1",
	}
}

// newSession returns a session holding 2 x 30000 + 1 x 40000.
func newSession(t *testing.T) *session.Session {
	t.Helper()

	sess := session.New(context.Background(), "s1", Slug, time.Now())
	sess.Catalog.Apply(catalog.New("w1", nil))

	_, err := sess.Cart.AddItem(cart.Item{ProductID: "p1", Name: "Cafe"}, 2, decimal.NewFromInt(30000))
	require.NoError(t, err)
	_, err = sess.Cart.AddItem(cart.Item{ProductID: "p2", Name: "Pan"}, 1, decimal.NewFromInt(40000))
	require.NoError(t, err)

	return sess
}

func newTestService(backend Backend) (*service, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	s := NewService(backend, metrics.NewStorefrontMetrics(reg), zap.NewNop())
	s.newKey = func() string { return "key-1" }
	return s, reg
}

func checkoutCount(t *testing.T, reg *prometheus.Registry, outcome string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "storefront_checkouts_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "outcome" && label.GetValue() == outcome {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestPrepare(t *testing.T) {
	type mockBehavior func(backend *mockcheckoutbackend.MockBackend)

	tests := []struct {
		name              string
		mockBehavior      mockBehavior
		expectedAvailable bool
		expectedLen       int
	}{
		{
			name: "OK",
			mockBehavior: func(backend *mockcheckoutbackend.MockBackend) {
				backend.EXPECT().GetSalespeople(gomock.Any(), Slug).Return([]string{"c1", " c2 ", ""}, nil)
			},
			expectedAvailable: true,
			expectedLen:       2,
		},
		{
			name: "failure makes the roster unavailable",
			mockBehavior: func(backend *mockcheckoutbackend.MockBackend) {
				backend.EXPECT().GetSalespeople(gomock.Any(), Slug).Return(nil, ErrUnexpected)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			backend := mockcheckoutbackend.NewMockBackend(ctrl)
			tt.mockBehavior(backend)

			svc, _ := newTestService(backend)
			sess := newSession(t)

			got, err := svc.Prepare(context.Background(), sess)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedAvailable, got.Available())
			assert.Equal(t, tt.expectedLen, got.Len())
			assert.Equal(t, tt.expectedAvailable, sess.Checkout.Roster().Available())
		})
	}
}

func TestSubmit(t *testing.T) {
	type mockBehavior func(backend *mockcheckoutbackend.MockBackend)

	tests := []struct {
		name             string
		form             checkout.Form
		roster           checkout.Roster
		discount         decimal.Decimal
		mockBehavior     mockBehavior
		expectedError    error
		expectedCode     string
		expectedFields   []string
		expectedState    checkout.State
		expectedTotal    decimal.Decimal
		expectedCartSize int
		expectedOutcome  string
	}{
		{
			name:   "OK",
			form:   validForm(),
			roster: checkout.NewRoster([]string{"c1"}),
			mockBehavior: func(backend *mockcheckoutbackend.MockBackend) {
				backend.EXPECT().SubmitOrder(gomock.Any(), Slug, gomock.Any(), "key-1").
					DoAndReturn(func(ctx context.Context, slug string, draft checkout.OrderDraft, key string) error {
						if draft.CustomerName != "Ana Gomez" || draft.WarehouseID != "w1" || len(draft.Lines) != 2 {
							return ErrUnexpected
						}
						return nil
					})
			},
			expectedState:   checkout.StateConfirmed,
			expectedTotal:   decimal.NewFromInt(100000),
			expectedOutcome: metrics.OutcomeConfirmed,
		},
		{
			name:     "customer discount applied",
			form:     validForm(),
			roster:   checkout.NewRoster([]string{"c1"}),
			discount: decimal.NewFromInt(10),
			mockBehavior: func(backend *mockcheckoutbackend.MockBackend) {
				backend.EXPECT().SubmitOrder(gomock.Any(), Slug, gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, slug string, draft checkout.OrderDraft, key string) error {
						if !draft.Lines[0].FinalUnitPrice.Equal(decimal.NewFromInt(27000)) {
							return ErrUnexpected
						}
						return nil
					})
			},
			expectedState:   checkout.StateConfirmed,
			expectedTotal:   decimal.NewFromInt(90000),
			expectedOutcome: metrics.OutcomeConfirmed,
		},
		{
			name:   "unavailable roster only checks presence",
			form:   validForm(),
			roster: checkout.UnavailableRoster(),
			mockBehavior: func(backend *mockcheckoutbackend.MockBackend) {
				backend.EXPECT().SubmitOrder(gomock.Any(), Slug, gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedState:   checkout.StateConfirmed,
			expectedTotal:   decimal.NewFromInt(100000),
			expectedOutcome: metrics.OutcomeConfirmed,
		},
		{
			name: "all violations reported",
			form: checkout.Form{
				Name:          "Ana",
				Email:         "a@b",
				Phone:         "12345",
				SalespersonID: "c1",
			},
			roster:           checkout.NewRoster([]string{"c1"}),
			mockBehavior:     func(backend *mockcheckoutbackend.MockBackend) {},
			expectedCode:     apperror.CodeValidation,
			expectedFields:   []string{"email", "phone"},
			expectedState:    checkout.StateEditing,
			expectedCartSize: 3,
			expectedOutcome:  metrics.OutcomeRejected,
		},
		{
			name: "unknown salesperson",
			form: func() checkout.Form {
				f := validForm()
				f.SalespersonID = "c9"
				return f
			}(),
			roster:           checkout.NewRoster([]string{"c1"}),
			mockBehavior:     func(backend *mockcheckoutbackend.MockBackend) {},
			expectedCode:     apperror.CodeInvalidSalesperson,
			expectedState:    checkout.StateEditing,
			expectedCartSize: 3,
			expectedOutcome:  metrics.OutcomeRejected,
		},
		{
			name:   "backend failure",
			form:   validForm(),
			roster: checkout.NewRoster([]string{"c1"}),
			mockBehavior: func(backend *mockcheckoutbackend.MockBackend) {
				backend.EXPECT().SubmitOrder(gomock.Any(), Slug, gomock.Any(), gomock.Any()).Return(ErrUnexpected)
			},
			expectedError:    apperror.ErrBackendUnavailable,
			expectedState:    checkout.StateFailed,
			expectedCartSize: 3,
			expectedOutcome:  metrics.OutcomeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			backend := mockcheckoutbackend.NewMockBackend(ctrl)
			tt.mockBehavior(backend)

			svc, reg := newTestService(backend)
			sess := newSession(t)
			sess.Checkout.SetRoster(tt.roster)
			if !tt.discount.IsZero() {
				sess.Customers.SetCandidates(customer.Query{Name: "ana"}, []customer.Customer{{Name: "Ana Gomez"}})
				sess.Customers.Select(customer.Customer{Name: "Ana Gomez"})
				sess.Customers.SetDiscount(tt.discount)
			}

			got, err := svc.Submit(sess, tt.form)

			assert.Equal(t, tt.expectedState, sess.Checkout.State())
			assert.Equal(t, tt.expectedCartSize, sess.Cart.TotalItems())
			assert.Equal(t, float64(1), checkoutCount(t, reg, tt.expectedOutcome))

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.NotEmpty(t, sess.Checkout.LastError())
				return
			case tt.expectedCode != "":
				var appErr *apperror.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.expectedCode, appErr.Code)
				for _, f := range tt.expectedFields {
					assert.Contains(t, appErr.Fields, f)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Ana Gomez", got.CustomerName)
			assert.Equal(t, 3, got.Items)
			assert.True(t, got.Total.Equal(tt.expectedTotal), "got %s", got.Total)
			assert.True(t, sess.Customers.Discount().IsZero())

			confirmation, ok := sess.Checkout.Confirmation()
			require.True(t, ok)
			assert.Equal(t, got, confirmation)
		})
	}
}

func TestSubmit_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestService(mockcheckoutbackend.NewMockBackend(ctrl))
	sess := session.New(context.Background(), "s1", Slug, time.Now())

	_, err := svc.Submit(sess, validForm())
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
	assert.Equal(t, checkout.StateEditing, sess.Checkout.State())
}

func TestSubmit_DoubleSubmitIsRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	backend := mockcheckoutbackend.NewMockBackend(ctrl)
	backend.EXPECT().SubmitOrder(gomock.Any(), Slug, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, slug string, draft checkout.OrderDraft, key string) error {
			close(started)
			<-release
			return nil
		}).Times(1)

	svc, _ := newTestService(backend)
	sess := newSession(t)
	sess.Checkout.SetRoster(checkout.NewRoster([]string{"c1"}))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Submit(sess, validForm())
		assert.NoError(t, err)
	}()

	<-started

	_, err := svc.Submit(sess, validForm())
	assert.ErrorIs(t, err, apperror.ErrSubmitInProgress)

	close(release)
	wg.Wait()

	assert.Equal(t, checkout.StateConfirmed, sess.Checkout.State())
	assert.True(t, sess.Cart.Snapshot().IsEmpty())
}

func TestSubmit_LoadsRosterWhenCheckoutWasSkipped(t *testing.T) {
	type mockBehavior func(backend *mockcheckoutbackend.MockBackend)

	tests := []struct {
		name             string
		salespersonID    string
		mockBehavior     mockBehavior
		expectedCode     string
		expectedState    checkout.State
		expectedCartSize int
		expectedOutcome  string
	}{
		{
			name:          "id off the roster is refused",
			salespersonID: "not-on-roster",
			mockBehavior: func(backend *mockcheckoutbackend.MockBackend) {
				backend.EXPECT().GetSalespeople(gomock.Any(), Slug).Return([]string{"c1"}, nil)
			},
			expectedCode:     apperror.CodeInvalidSalesperson,
			expectedState:    checkout.StateEditing,
			expectedCartSize: 3,
			expectedOutcome:  metrics.OutcomeRejected,
		},
		{
			name:          "id on the roster is accepted",
			salespersonID: "c1",
			mockBehavior: func(backend *mockcheckoutbackend.MockBackend) {
				gomock.InOrder(
					backend.EXPECT().GetSalespeople(gomock.Any(), Slug).Return([]string{"c1"}, nil),
					backend.EXPECT().SubmitOrder(gomock.Any(), Slug, gomock.Any(), "key-1").Return(nil),
				)
			},
			expectedState:   checkout.StateConfirmed,
			expectedOutcome: metrics.OutcomeConfirmed,
		},
		{
			name:          "failed roster fetch only checks presence",
			salespersonID: "anyone",
			mockBehavior: func(backend *mockcheckoutbackend.MockBackend) {
				gomock.InOrder(
					backend.EXPECT().GetSalespeople(gomock.Any(), Slug).Return(nil, ErrUnexpected),
					backend.EXPECT().SubmitOrder(gomock.Any(), Slug, gomock.Any(), "key-1").Return(nil),
				)
			},
			expectedState:   checkout.StateConfirmed,
			expectedOutcome: metrics.OutcomeConfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			backend := mockcheckoutbackend.NewMockBackend(ctrl)
			tt.mockBehavior(backend)

			svc, reg := newTestService(backend)
			sess := newSession(t)

			form := validForm()
			form.SalespersonID = tt.salespersonID

			_, err := svc.Submit(sess, form)

			assert.True(t, sess.Checkout.Roster().Loaded())
			assert.Equal(t, tt.expectedState, sess.Checkout.State())
			assert.Equal(t, tt.expectedCartSize, sess.Cart.TotalItems())
			assert.Equal(t, float64(1), checkoutCount(t, reg, tt.expectedOutcome))

			if tt.expectedCode != "" {
				var appErr *apperror.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.expectedCode, appErr.Code)
				return
			}

			require.NoError(t, err)
		})
	}
}
