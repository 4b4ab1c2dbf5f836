package carthandler

import (
	"github.com/shopspring/decimal"
	"github.com/vetrovegor/storefront/internal/cart"
	"github.com/vetrovegor/storefront/internal/tenant"
	"github.com/vetrovegor/storefront/pkg/types"
)

type AddItemRequest struct {
	ProductID string             `json:"productId" validate:"required"`
	Quantity  *types.IntOrString `json:"quantity"`
}

// QuantityOrDefault is 1 when the request leaves quantity out.
func (r AddItemRequest) QuantityOrDefault() int {
	if r.Quantity == nil {
		return 1
	}
	return r.Quantity.Int()
}

type UpdateQuantityRequest struct {
	Quantity *types.IntOrString `json:"quantity" validate:"required"`
}

type CartResponse struct {
	View          string               `json:"view"`
	Establishment tenant.Establishment `json:"establishment"`
	Lines         []LineResponse       `json:"lines"`
	Summary       string               `json:"summary"`
	TotalItems    int                  `json:"totalItems"`
	TotalPrice    decimal.Decimal      `json:"totalPrice"`
	// Next is set when the cart became empty and the front end should leave
	// the cart screen.
	Next string `json:"next,omitempty"`
}

type LineResponse struct {
	cart.Line
	Subtotal decimal.Decimal `json:"subtotal"`
}

func NewCartResponse(view string, est tenant.Establishment, c cart.Cart) CartResponse {
	lines := c.Lines()
	resp := make([]LineResponse, len(lines))
	for i, l := range lines {
		resp[i] = LineResponse{Line: l, Subtotal: l.Subtotal()}
	}

	return CartResponse{
		View:          view,
		Establishment: est,
		Lines:         resp,
		Summary:       c.Summary(),
		TotalItems:    c.TotalItems(),
		TotalPrice:    c.TotalPrice(),
	}
}
