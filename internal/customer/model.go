package customer

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MinSearchLength is the shortest search term that reaches the directory.
const MinSearchLength = 2

// Customer is a directory record. PriceListDiscountPercent is only known after
// the record has been selected and its details resolved.
type Customer struct {
	Name                     string          `json:"name"`
	NIT                      string          `json:"nit"`
	Phone                    string          `json:"phone"`
	Email                    string          `json:"email"`
	PriceListDiscountPercent decimal.Decimal `json:"priceListDiscountPercent"`
}

type Query struct {
	Name string `json:"name"`
	NIT  string `json:"nit"`
}

func (q Query) Normalize() Query {
	return Query{
		Name: strings.TrimSpace(q.Name),
		NIT:  strings.TrimSpace(q.NIT),
	}
}

// Searchable reports whether either term is long enough to issue a request.
func (q Query) Searchable() bool {
	q = q.Normalize()
	return utf8.RuneCountInString(q.Name) >= MinSearchLength ||
		utf8.RuneCountInString(q.NIT) >= MinSearchLength
}

// Lookup is the per-session customer search state.
type Lookup struct {
	mu         sync.RWMutex
	query      Query
	candidates []Customer
	selected   *Customer
	discount   decimal.Decimal
}

func NewLookup() *Lookup {
	return &Lookup{}
}

func (l *Lookup) SetCandidates(q Query, candidates []Customer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.query = q
	l.candidates = append([]Customer(nil), candidates...)
}

func (l *Lookup) Candidates() []Customer {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]Customer{}, l.candidates...)
}

func (l *Lookup) Query() Query {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.query
}

// Select records the chosen candidate. The previously resolved discount is
// kept until SetDiscount replaces it.
func (l *Lookup) Select(c Customer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c.PriceListDiscountPercent = l.discount
	l.selected = &c
}

func (l *Lookup) SetDiscount(percent decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.discount = percent
	if l.selected != nil {
		l.selected.PriceListDiscountPercent = percent
	}
}

// Discount is the price-list discount to apply at checkout; zero when no
// customer has been selected.
func (l *Lookup) Discount() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.discount
}

func (l *Lookup) Selected() (Customer, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.selected == nil {
		return Customer{}, false
	}
	return *l.selected, true
}

// Reset forgets the search and the selection; used once an order is placed.
func (l *Lookup) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.query = Query{}
	l.candidates = nil
	l.selected = nil
	l.discount = decimal.Zero
}
