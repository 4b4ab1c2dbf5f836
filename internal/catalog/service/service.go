package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vetrovegor/storefront/internal/apperror"
	"github.com/vetrovegor/storefront/internal/catalog"
	"github.com/vetrovegor/storefront/internal/session"
	"go.uber.org/zap"
)

const catalogKey = "catalog"

//go:generate mockgen -destination=mocks/mock.go -package=mockcatalogbackend . Backend
type Backend interface {
	GetWarehouses(ctx context.Context, slug string) ([]catalog.Warehouse, error)
	GetProducts(ctx context.Context, slug, warehouseID string) ([]catalog.Product, error)
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

// Browse returns the catalog of warehouseID, or of the selected warehouse
// when warehouseID is empty. Only the latest catalog request of a session is
// applied; an older one that finishes later gets apperror.ErrSuperseded.
// Backend failures are logged and degrade to the last known catalog, or to an
// empty catalog of the target warehouse when none was loaded yet.
func (s *service) Browse(ctx context.Context, sess *session.Session, warehouseID string) (catalog.Catalog, error) {
	if err := s.ensureWarehouses(ctx, sess); err != nil {
		return catalog.Catalog{}, err
	}

	if warehouseID != "" && !sess.Catalog.HasWarehouse(warehouseID) {
		return catalog.Catalog{}, fmt.Errorf("warehouse %s: %w", warehouseID, apperror.ErrNotFound)
	}

	target := warehouseID
	if target == "" {
		target = sess.Catalog.Selected()
	}
	if target == "" {
		return catalog.New("", nil), nil
	}

	reqCtx, ticket := sess.Requests.Begin(ctx, catalogKey)

	products, err := s.backend.GetProducts(reqCtx, sess.Tenant, target)
	if err != nil {
		if !sess.Requests.IsLatest(ticket) || errors.Is(err, context.Canceled) {
			sess.Requests.Release(ticket)
			return catalog.Catalog{}, apperror.ErrSuperseded
		}

		s.logger.Error("unexpected error when loading catalog",
			zap.String("tenant", sess.Tenant),
			zap.String("warehouse", target),
			zap.Error(err),
		)

		// the selection only moves together with a catalog applied for it
		if current, ok := sess.Catalog.Current(); ok {
			sess.Requests.Release(ticket)
			return current, nil
		}
		products = nil
	}

	next := catalog.New(target, products)
	if !sess.Requests.Commit(ticket, func() { sess.Catalog.Apply(next) }) {
		return catalog.Catalog{}, apperror.ErrSuperseded
	}

	return next, nil
}

func (s *service) ensureWarehouses(ctx context.Context, sess *session.Session) error {
	if _, loaded := sess.Catalog.Warehouses(); loaded {
		return nil
	}

	warehouses, err := s.backend.GetWarehouses(ctx, sess.Tenant)
	if err != nil {
		if ctx.Err() != nil {
			return apperror.ErrSuperseded
		}

		// the selector stays empty and the next request retries
		s.logger.Error("unexpected error when loading warehouses",
			zap.String("tenant", sess.Tenant),
			zap.Error(err),
		)
		return nil
	}

	sess.Catalog.SetWarehouses(warehouses)

	return nil
}
