package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vetrovegor/storefront/internal/apperror"
	"github.com/vetrovegor/storefront/internal/catalog"
	"github.com/vetrovegor/storefront/internal/customer"
	"github.com/vetrovegor/storefront/internal/session"
	"github.com/vetrovegor/storefront/pkg/latest"
	"go.uber.org/zap"
)

const (
	searchKey  = "customers"
	detailsKey = "customer-details"
)

//go:generate mockgen -destination=mocks/mock.go -package=mockcustomerbackend . Backend
type Backend interface {
	SearchCustomers(ctx context.Context, slug string, query customer.Query) ([]customer.Customer, error)
	GetCustomerDetails(ctx context.Context, slug string, query customer.Query) (decimal.Decimal, error)
}

type service struct {
	backend Backend
	logger  *zap.Logger
}

func NewService(backend Backend, logger *zap.Logger) *service {
	return &service{
		backend: backend,
		logger:  logger,
	}
}

// Search looks up directory candidates for the query. A query too short to be
// searchable clears the candidates without a backend call. Failures are
// logged and leave an empty candidate list.
func (s *service) Search(ctx context.Context, sess *session.Session, query customer.Query) ([]customer.Customer, error) {
	query = query.Normalize()

	reqCtx, ticket := sess.Requests.Begin(ctx, searchKey)

	if !query.Searchable() {
		sess.Requests.Commit(ticket, func() { sess.Customers.SetCandidates(query, nil) })
		return []customer.Customer{}, nil
	}

	candidates, err := s.backend.SearchCustomers(reqCtx, sess.Tenant, query)
	if err != nil {
		if stale(sess, ticket, err) {
			sess.Requests.Release(ticket)
			return nil, apperror.ErrSuperseded
		}

		s.logger.Error("unexpected error when searching customers",
			zap.String("tenant", sess.Tenant),
			zap.Error(err),
		)
		candidates = nil
	}

	if candidates == nil {
		candidates = []customer.Customer{}
	}

	if !sess.Requests.Commit(ticket, func() { sess.Customers.SetCandidates(query, candidates) }) {
		return nil, apperror.ErrSuperseded
	}

	return candidates, nil
}

// Select picks one of the current candidates, identified by tax id or, when
// it has none, by name, and resolves its price-list discount. A failed
// resolution keeps the previously resolved discount.
func (s *service) Select(ctx context.Context, sess *session.Session, choice customer.Query) (customer.Customer, error) {
	choice = choice.Normalize()

	selected, ok := findCandidate(sess.Customers.Candidates(), choice)
	if !ok {
		return customer.Customer{}, fmt.Errorf("customer %q: %w", choice.Name+choice.NIT, apperror.ErrNotFound)
	}

	sess.Customers.Select(selected)

	reqCtx, ticket := sess.Requests.Begin(ctx, detailsKey)

	discount, err := s.backend.GetCustomerDetails(reqCtx, sess.Tenant, customer.Query{Name: selected.Name, NIT: selected.NIT})
	if err != nil {
		superseded := stale(sess, ticket, err)
		sess.Requests.Release(ticket)
		if superseded {
			return customer.Customer{}, apperror.ErrSuperseded
		}

		s.logger.Error("unexpected error when resolving customer discount",
			zap.String("tenant", sess.Tenant),
			zap.String("nit", selected.NIT),
			zap.Error(err),
		)

		current, _ := sess.Customers.Selected()
		return current, nil
	}

	discount = catalog.ClampPercent(discount)
	if !sess.Requests.Commit(ticket, func() { sess.Customers.SetDiscount(discount) }) {
		return customer.Customer{}, apperror.ErrSuperseded
	}

	current, _ := sess.Customers.Selected()

	return current, nil
}

// stale reports whether a failed request failed because a newer request for
// the same key replaced it or the session went away.
func stale(sess *session.Session, ticket latest.Ticket, err error) bool {
	return !sess.Requests.IsLatest(ticket) || errors.Is(err, context.Canceled)
}

func findCandidate(candidates []customer.Customer, choice customer.Query) (customer.Customer, bool) {
	for _, c := range candidates {
		if choice.NIT != "" && c.NIT == choice.NIT {
			return c, true
		}
		if choice.NIT == "" && strings.EqualFold(strings.TrimSpace(c.Name), choice.Name) {
			return c, true
		}
	}
	return customer.Customer{}, false
}
