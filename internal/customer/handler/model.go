package customerhandler

import (
	"github.com/shopspring/decimal"
	"github.com/vetrovegor/storefront/internal/customer"
)

type CandidatesResponse struct {
	Query      customer.Query      `json:"query"`
	Candidates []customer.Customer `json:"candidates"`
}

// SelectRequest identifies a candidate of the last search by tax id, or by
// name when the candidate has none.
type SelectRequest struct {
	Name string `json:"name"`
	NIT  string `json:"nit"`
}

func (r SelectRequest) Query() customer.Query {
	return customer.Query{Name: r.Name, NIT: r.NIT}.Normalize()
}

// SelectedResponse prefills the checkout form. The fields stay editable and
// editing them keeps DiscountPercent.
type SelectedResponse struct {
	Customer        customer.Customer `json:"customer"`
	DiscountPercent decimal.Decimal   `json:"discountPercent"`
}
