package backend

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vetrovegor/storefront/internal/catalog"
	"github.com/vetrovegor/storefront/internal/checkout"
	"github.com/vetrovegor/storefront/internal/customer"
	"github.com/vetrovegor/storefront/internal/schedule"
	"github.com/vetrovegor/storefront/internal/tenant"
	"github.com/vetrovegor/storefront/pkg/types"
)

type brandingDTO struct {
	Establishment  string `json:"establecimiento"`
	LogoURL        string `json:"logo_url"`
	Banner1URL     string `json:"banner1_url"`
	Banner2URL     string `json:"banner2_url"`
	Banner3URL     string `json:"banner3_url"`
	InstagramURL   string `json:"instagram_url"`
	TikTokURL      string `json:"tiktok_url"`
	WhatsAppURL    string `json:"whatsapp_url"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	LightColor     string `json:"custom_light_color"`
	DarkColor      string `json:"custom_dark_color"`
	// the backend spells it "hoover"; both spellings are accepted
	HooverColor string `json:"custom_hoover_color"`
	HoverColor  string `json:"custom_hover_color"`
}

func (d brandingDTO) toDomain() tenant.Branding {
	hover := d.HoverColor
	if hover == "" {
		hover = d.HooverColor
	}

	return tenant.Branding{
		Name:       d.Establishment,
		LogoURL:    d.LogoURL,
		BannerURLs: []string{d.Banner1URL, d.Banner2URL, d.Banner3URL},
		Socials: tenant.SocialLinks{
			Instagram: d.InstagramURL,
			TikTok:    d.TikTokURL,
			WhatsApp:  d.WhatsAppURL,
		},
		Colors: tenant.ThemeColors{
			Primary:     d.PrimaryColor,
			Secondary:   d.SecondaryColor,
			CustomLight: d.LightColor,
			CustomDark:  d.DarkColor,
			CustomHover: hover,
		},
	}
}

type scheduleDTO struct {
	Day   string `json:"dia"`
	Open  string `json:"apertura"`
	Close string `json:"cierre"`
}

func (d scheduleDTO) toDomain() schedule.Entry {
	return schedule.Entry{Day: d.Day, Open: d.Open, Close: d.Close}
}

type warehouseDTO struct {
	ID   types.StringOrNumber `json:"id"`
	Name string               `json:"nombre"`
}

func (d warehouseDTO) toDomain() catalog.Warehouse {
	return catalog.Warehouse{ID: d.ID.String(), Name: d.Name}
}

type productDTO struct {
	ID          types.StringOrNumber       `json:"id"`
	Name        string                     `json:"nombre"`
	Price       decimal.Decimal            `json:"precio"`
	Discount    decimal.Decimal            `json:"descuento"`
	Category    string                     `json:"categoria"`
	ImageURL    string                     `json:"imagen_url"`
	Description string                     `json:"descripcion"`
	Stocks      map[string]decimal.Decimal `json:"stocks"`
}

func (d productDTO) toDomain() catalog.Product {
	stocks := make(map[string]int, len(d.Stocks))
	for warehouseID, qty := range d.Stocks {
		if n := qty.IntPart(); n > 0 {
			stocks[warehouseID] = int(n)
		} else {
			stocks[warehouseID] = 0
		}
	}

	price := d.Price
	if price.IsNegative() {
		price = decimal.Zero
	}

	return catalog.Product{
		ID:               d.ID.String(),
		Name:             d.Name,
		UnitPrice:        price,
		DiscountPercent:  catalog.ClampPercent(d.Discount),
		Category:         strings.TrimSpace(d.Category),
		ImageRef:         d.ImageURL,
		Description:      d.Description,
		StockByWarehouse: stocks,
	}
}

type customerDTO struct {
	Name  string               `json:"nombre"`
	NIT   types.StringOrNumber `json:"nit"`
	Phone types.StringOrNumber `json:"telefono"`
	Email string               `json:"correo"`
}

func (d customerDTO) toDomain() customer.Customer {
	return customer.Customer{
		Name:  d.Name,
		NIT:   d.NIT.String(),
		Phone: d.Phone.String(),
		Email: d.Email,
	}
}

type customerDetailsDTO struct {
	PriceList *struct {
		Discount decimal.Decimal `json:"descuento"`
	} `json:"lista_precios"`
}

func (d customerDetailsDTO) discount() decimal.Decimal {
	if d.PriceList == nil {
		return decimal.Zero
	}
	return catalog.ClampPercent(d.PriceList.Discount)
}

type salespersonDTO struct {
	ID types.StringOrNumber `json:"idComercial"`
}

// orderLineDTO is the element of the "productos" list. The backend expects the
// list itself as a JSON-encoded string.
type orderLineDTO struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Quantity int         `json:"quantity"`
}

type orderDTO struct {
	FullName      string `json:"nombre_completo"`
	Phone         string `json:"numero_telefono"`
	Email         string `json:"correo_electronico"`
	Products      string `json:"productos"`
	SalespersonID string `json:"comercial_id"`
	NIT           string `json:"nit"`
	WarehouseID   string `json:"bodega_id,omitempty"`
}

func newOrderDTO(d checkout.OrderDraft) (orderDTO, error) {
	lines := make([]orderLineDTO, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = orderLineDTO{
			ID:       l.ProductID,
			Name:     l.Name,
			Price:    json.Number(l.FinalUnitPrice.String()),
			Quantity: l.Quantity,
		}
	}

	products, err := json.Marshal(lines)
	if err != nil {
		return orderDTO{}, err
	}

	return orderDTO{
		FullName:      d.CustomerName,
		Phone:         d.Phone,
		Email:         d.Email,
		Products:      string(products),
		SalespersonID: d.SalespersonID,
		NIT:           d.NIT,
		WarehouseID:   d.WarehouseID,
	}, nil
}
