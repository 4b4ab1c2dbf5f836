package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vetrovegor/storefront/internal/apperror"
	"github.com/vetrovegor/storefront/internal/checkout"
	"github.com/vetrovegor/storefront/internal/session"
	"github.com/vetrovegor/storefront/pkg/metrics"
	"go.uber.org/zap"
)

const salespeopleKey = "salespeople"

//go:generate mockgen -destination=mocks/mock.go -package=mockcheckoutbackend . Backend
type Backend interface {
	GetSalespeople(ctx context.Context, slug string) ([]string, error)
	SubmitOrder(ctx context.Context, slug string, draft checkout.OrderDraft, idempotencyKey string) error
}

type service struct {
	backend   Backend
	validator *checkout.Validator
	metrics   *metrics.StorefrontMetrics
	logger    *zap.Logger
	newKey    func() string
}

func NewService(backend Backend, m *metrics.StorefrontMetrics, logger *zap.Logger) *service {
	return &service{
		backend:   backend,
		validator: checkout.NewValidator(),
		metrics:   m,
		logger:    logger,
		newKey:    uuid.NewString,
	}
}

// Prepare loads the tenant's salesperson roster for the checkout screen. When
// the roster cannot be fetched it is marked unavailable and submission only
// checks that a salesperson id is present.
func (s *service) Prepare(ctx context.Context, sess *session.Session) (checkout.Roster, error) {
	reqCtx, ticket := sess.Requests.Begin(ctx, salespeopleKey)

	roster := checkout.UnavailableRoster()

	ids, err := s.backend.GetSalespeople(reqCtx, sess.Tenant)
	if err != nil {
		if !sess.Requests.IsLatest(ticket) || errors.Is(err, context.Canceled) {
			sess.Requests.Release(ticket)
			return checkout.Roster{}, apperror.ErrSuperseded
		}

		s.logger.Error("unexpected error when loading salespeople",
			zap.String("tenant", sess.Tenant),
			zap.Error(err),
		)
	} else {
		roster = checkout.NewRoster(ids)
		s.logger.Debug("salespeople loaded",
			zap.String("tenant", sess.Tenant),
			zap.Int("count", roster.Len()),
		)
	}

	if !sess.Requests.Commit(ticket, func() { sess.Checkout.SetRoster(roster) }) {
		return checkout.Roster{}, apperror.ErrSuperseded
	}

	return roster, nil
}

// Submit validates the form, prices the cart with the selected customer's
// discount and posts the order. The roster is fetched first when the checkout
// screen never loaded it. The order is bound to the session context, so it
// survives the shopper's request going away but not the session closing.
func (s *service) Submit(sess *session.Session, form checkout.Form) (checkout.Confirmation, error) {
	snapshot := sess.Cart.Snapshot()
	if snapshot.IsEmpty() {
		return checkout.Confirmation{}, apperror.ErrEmptyCart
	}

	if !sess.Checkout.Roster().Loaded() {
		if _, err := s.Prepare(sess.Context(), sess); err != nil {
			return checkout.Confirmation{}, err
		}
	}

	if err := sess.Checkout.BeginValidation(); err != nil {
		return checkout.Confirmation{}, err
	}

	form = form.Normalize()

	if err := s.validator.Validate(form, sess.Checkout.Roster()); err != nil {
		sess.Checkout.Reject()
		s.metrics.IncCheckout(sess.Tenant, metrics.OutcomeRejected)
		return checkout.Confirmation{}, err
	}

	if !sess.Checkout.BeginSubmit() {
		return checkout.Confirmation{}, apperror.ErrSubmitInProgress
	}

	draft := checkout.BuildDraft(form, snapshot, sess.Customers.Discount(), sess.Catalog.Selected())

	if err := s.backend.SubmitOrder(sess.Context(), sess.Tenant, draft, s.newKey()); err != nil {
		s.logger.Error("unexpected error when submitting order",
			zap.String("tenant", sess.Tenant),
			zap.Int("lines", len(draft.Lines)),
			zap.Error(err),
		)

		sess.Checkout.Fail(apperror.ErrBackendUnavailable)
		s.metrics.IncCheckout(sess.Tenant, metrics.OutcomeFailed)

		if !errors.Is(err, apperror.ErrBackendUnavailable) {
			err = fmt.Errorf("%w: %w", apperror.ErrBackendUnavailable, err)
		}
		return checkout.Confirmation{}, err
	}

	confirmation := checkout.Confirmation{
		CustomerName: draft.CustomerName,
		Total:        draft.Total(),
		Items:        snapshot.TotalItems(),
	}

	sess.Cart.Clear()
	sess.Customers.Reset()
	sess.Checkout.Confirm(confirmation)

	s.metrics.IncCheckout(sess.Tenant, metrics.OutcomeConfirmed)
	s.logger.Info("order submitted",
		zap.String("tenant", sess.Tenant),
		zap.String("salesperson", draft.SalespersonID),
		zap.String("total", draft.Total().String()),
	)

	confirmation, _ = sess.Checkout.Confirmation()

	return confirmation, nil
}
