package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vetrovegor/storefront/internal/cart"
	"github.com/vetrovegor/storefront/internal/catalog"
)

// DefaultCustomerName is shown on the confirmation when no name is known.
const DefaultCustomerName = "Cliente"

// Form is what the shopper submits on the checkout screen.
type Form struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,mailshape"`
	Phone         string `json:"phone" validate:"required,len=10,number"`
	NIT           string `json:"nit"`
	SalespersonID string `json:"salespersonId" validate:"required"`
}

func (f Form) Normalize() Form {
	return Form{
		Name:          strings.TrimSpace(f.Name),
		Email:         strings.TrimSpace(f.Email),
		Phone:         strings.TrimSpace(f.Phone),
		NIT:           strings.TrimSpace(f.NIT),
		SalespersonID: strings.TrimSpace(f.SalespersonID),
	}
}

type OrderLine struct {
	ProductID      string          `json:"productId"`
	Name           string          `json:"name"`
	FinalUnitPrice decimal.Decimal `json:"finalUnitPrice"`
	Quantity       int             `json:"quantity"`
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.FinalUnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderDraft is built at submission time only and lives for one request.
type OrderDraft struct {
	CustomerName  string      `json:"customerName"`
	Phone         string      `json:"phone"`
	Email         string      `json:"email"`
	NIT           string      `json:"nit"`
	SalespersonID string      `json:"salespersonId"`
	WarehouseID   string      `json:"warehouseId,omitempty"`
	Lines         []OrderLine `json:"lines"`
}

func (d OrderDraft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range d.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// PriceLines applies the customer discount to every frozen cart price.
func PriceLines(lines []cart.Line, discountPercent decimal.Decimal) []OrderLine {
	priced := make([]OrderLine, len(lines))
	for i, l := range lines {
		priced[i] = OrderLine{
			ProductID:      l.ProductID,
			Name:           l.Name,
			FinalUnitPrice: catalog.ApplyDiscount(l.UnitPrice, discountPercent),
			Quantity:       l.Quantity,
		}
	}
	return priced
}

func BuildDraft(form Form, snapshot cart.Cart, discountPercent decimal.Decimal, warehouseID string) OrderDraft {
	return OrderDraft{
		CustomerName:  form.Name,
		Phone:         form.Phone,
		Email:         form.Email,
		NIT:           form.NIT,
		SalespersonID: form.SalespersonID,
		WarehouseID:   warehouseID,
		Lines:         PriceLines(snapshot.Lines(), discountPercent),
	}
}

// Summary is the priced view of the cart shown on the checkout screen.
type Summary struct {
	Lines           []OrderLine     `json:"lines"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Total           decimal.Decimal `json:"total"`
}

func Summarize(snapshot cart.Cart, discountPercent decimal.Decimal) Summary {
	discountPercent = catalog.ClampPercent(discountPercent)
	draft := OrderDraft{Lines: PriceLines(snapshot.Lines(), discountPercent)}

	return Summary{
		Lines:           draft.Lines,
		Subtotal:        snapshot.TotalPrice(),
		DiscountPercent: discountPercent,
		Total:           draft.Total(),
	}
}

type Confirmation struct {
	CustomerName string          `json:"customerName"`
	Total        decimal.Decimal `json:"total"`
	Items        int             `json:"items"`
}
