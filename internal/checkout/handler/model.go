package checkouthandler

import (
	"net/url"
	"strings"

	"github.com/vetrovegor/storefront/internal/checkout"
	"github.com/vetrovegor/storefront/internal/customer"
	"github.com/vetrovegor/storefront/internal/tenant"
)

type CheckoutResponse struct {
	View                 string               `json:"view"`
	Establishment        tenant.Establishment `json:"establishment"`
	Summary              checkout.Summary     `json:"summary"`
	State                checkout.State       `json:"state"`
	LastError            string               `json:"lastError,omitempty"`
	SalespeopleAvailable bool                 `json:"salespeopleAvailable"`
	Query                customer.Query       `json:"query"`
	Candidates           []customer.Customer  `json:"candidates"`
	Customer             *customer.Customer   `json:"customer,omitempty"`
}

type SuccessResponse struct {
	View          string                `json:"view"`
	Establishment tenant.Establishment  `json:"establishment"`
	Confirmation  checkout.Confirmation `json:"confirmation"`
	SupportLink   string                `json:"supportLink,omitempty"`
}

// SupportLink prefills a WhatsApp chat with message. It is empty when the
// tenant has no WhatsApp link.
func SupportLink(whatsapp, message string) string {
	whatsapp = strings.TrimSpace(whatsapp)
	if whatsapp == "" {
		return ""
	}

	sep := "?"
	if strings.Contains(whatsapp, "?") {
		sep = "&"
	}

	return whatsapp + sep + "text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
