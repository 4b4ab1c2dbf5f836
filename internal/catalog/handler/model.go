package cataloghandler

import (
	"github.com/shopspring/decimal"
	"github.com/vetrovegor/storefront/internal/catalog"
	"github.com/vetrovegor/storefront/internal/tenant"
)

type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	FinalPrice      decimal.Decimal `json:"finalPrice"`
	HasDiscount     bool            `json:"hasDiscount"`
	Category        string          `json:"category"`
	ImageRef        string          `json:"imageRef"`
	Description     string          `json:"description"`
	Stock           int             `json:"stock"`
}

func NewProductResponse(p catalog.Product, warehouseID string) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		UnitPrice:       p.UnitPrice,
		DiscountPercent: p.DiscountPercent,
		FinalPrice:      p.FinalPrice(),
		HasDiscount:     p.HasDiscount(),
		Category:        p.Category,
		ImageRef:        p.ImageRef,
		Description:     p.Description,
		Stock:           p.Stock(warehouseID),
	}
}

type CartBadge struct {
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type CatalogResponse struct {
	View              string               `json:"view"`
	Establishment     tenant.Establishment `json:"establishment"`
	Warehouses        []catalog.Warehouse  `json:"warehouses"`
	SelectedWarehouse string               `json:"selectedWarehouse"`
	Categories        []string             `json:"categories"`
	Category          string               `json:"category"`
	Search            string               `json:"search"`
	Products          []ProductResponse    `json:"products"`
	Cart              CartBadge            `json:"cart"`
	Copyright         string               `json:"copyright"`
}
