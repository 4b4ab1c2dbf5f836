package service

import (
	"errors"
	"fmt"

	"github.com/vetrovegor/storefront/internal/apperror"
	"github.com/vetrovegor/storefront/internal/cart"
	"github.com/vetrovegor/storefront/internal/session"
	"go.uber.org/zap"
)

type service struct {
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *service {
	return &service{
		logger: logger,
	}
}

// AddItem resolves the product from the session's current catalog and adds it
// at its discounted price, which stays frozen on the line from then on.
func (s *service) AddItem(sess *session.Session, productID string, quantity int) (cart.Cart, error) {
	current, ok := sess.Catalog.Current()
	if !ok {
		return sess.Cart.Snapshot(), fmt.Errorf("product %s: %w", productID, apperror.ErrNotFound)
	}

	product, ok := current.Find(productID)
	if !ok {
		return sess.Cart.Snapshot(), fmt.Errorf("product %s: %w", productID, apperror.ErrNotFound)
	}

	item := cart.Item{
		ProductID: product.ID,
		Name:      product.Name,
		ImageRef:  product.ImageRef,
	}

	next, err := sess.Cart.AddItem(item, quantity, product.FinalPrice())
	if err != nil {
		return next, mapError(err)
	}

	s.logger.Debug("item added to cart",
		zap.String("tenant", sess.Tenant),
		zap.String("product", product.ID),
		zap.Int("quantity", quantity),
	)

	return next, nil
}

func (s *service) UpdateQuantity(sess *session.Session, productID string, quantity int) (cart.Cart, error) {
	next, err := sess.Cart.UpdateQuantity(productID, quantity)
	if err != nil {
		return next, mapError(err)
	}
	return next, nil
}

func (s *service) RemoveItem(sess *session.Session, productID string) cart.Cart {
	return sess.Cart.RemoveItem(productID)
}

func (s *service) Clear(sess *session.Session) cart.Cart {
	return sess.Cart.Clear()
}

func mapError(err error) error {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		return apperror.ErrInvalidQuantity
	case errors.Is(err, cart.ErrLineNotFound), errors.Is(err, cart.ErrMissingProduct):
		return fmt.Errorf("%w: %w", apperror.ErrNotFound, err)
	default:
		return err
	}
}
