package catalog

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/vetrovegor/storefront/pkg/utils"
)

// AllCategories is the pseudo-category that lists every product.
const AllCategories = "Todos"

var hundred = decimal.NewFromInt(100)

type Warehouse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	DiscountPercent  decimal.Decimal `json:"discountPercent"`
	Category         string          `json:"category"`
	ImageRef         string          `json:"imageRef"`
	Description      string          `json:"description"`
	StockByWarehouse map[string]int  `json:"stockByWarehouse"`
}

// ClampPercent bounds a percentage to [0, 100].
func ClampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// ApplyDiscount returns price × (1 − percent/100).
func ApplyDiscount(price, percent decimal.Decimal) decimal.Decimal {
	percent = ClampPercent(percent)
	if percent.IsZero() {
		return price
	}
	return price.Mul(decimal.NewFromInt(1).Sub(percent.Div(hundred)))
}

// FinalPrice is the price frozen into the cart when the product is added.
func (p Product) FinalPrice() decimal.Decimal {
	return ApplyDiscount(p.UnitPrice, p.DiscountPercent)
}

func (p Product) HasDiscount() bool {
	return ClampPercent(p.DiscountPercent).IsPositive()
}

func (p Product) Stock(warehouseID string) int {
	return p.StockByWarehouse[warehouseID]
}

// Catalog is the product list of one warehouse.
type Catalog struct {
	WarehouseID string    `json:"warehouseId"`
	Products    []Product `json:"products"`
	Categories  []string  `json:"categories"`
}

func New(warehouseID string, products []Product) Catalog {
	if products == nil {
		products = []Product{}
	}

	categories := utils.RemoveDuplicates(utils.Map(products, func(p Product) string {
		return p.Category
	}))

	return Catalog{
		WarehouseID: warehouseID,
		Products:    products,
		Categories:  append([]string{AllCategories}, categories...),
	}
}

func (c Catalog) Find(productID string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == productID {
			return p, true
		}
	}
	return Product{}, false
}

// Filter keeps products of category (AllCategories or "" for any) whose name
// contains search, case-insensitively.
func (c Catalog) Filter(category, search string) []Product {
	search = strings.ToLower(strings.TrimSpace(search))

	return utils.Filter(c.Products, func(p Product) bool {
		if category != "" && category != AllCategories && p.Category != category {
			return false
		}
		return search == "" || strings.Contains(strings.ToLower(p.Name), search)
	})
}

// Selection is the per-session catalog state: known warehouses, the selected
// one and the latest catalog applied for it.
type Selection struct {
	mu         sync.RWMutex
	warehouses []Warehouse
	loaded     bool
	selected   string
	current    *Catalog
}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) SetWarehouses(ws []Warehouse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.warehouses = append([]Warehouse(nil), ws...)
	s.loaded = true

	if s.selected == "" && len(ws) > 0 {
		s.selected = ws[0].ID
	}
}

func (s *Selection) Warehouses() ([]Warehouse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Warehouse{}, s.warehouses...), s.loaded
}

func (s *Selection) HasWarehouse(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.warehouses {
		if w.ID == id {
			return true
		}
	}
	return false
}

func (s *Selection) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selected
}

// Apply makes c the current catalog and selects its warehouse.
func (s *Selection) Apply(c Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = c.WarehouseID
	s.current = &c
}

func (s *Selection) Current() (Catalog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Catalog{}, false
	}
	return *s.current, true
}
