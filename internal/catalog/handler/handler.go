package cataloghandler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/vetrovegor/storefront/internal/apperror"
	"github.com/vetrovegor/storefront/internal/catalog"
	"github.com/vetrovegor/storefront/internal/handlers"
	"github.com/vetrovegor/storefront/internal/lib/api/response"
	"github.com/vetrovegor/storefront/internal/session"
	"github.com/vetrovegor/storefront/internal/tenant"
	"github.com/vetrovegor/storefront/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock.go -package=mockcatalogservice . Service
type Service interface {
	Browse(ctx context.Context, sess *session.Session, warehouseID string) (catalog.Catalog, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/", apperror.Middleware(h.catalogHandler))
}

// @Tags		catalog
// @Produce	json
// @Param		tenant		path		string	true	"tenant slug"
// @Param		bodega_id	query		string	false	"warehouse id"
// @Param		categoria	query		string	false	"category, Todos for all"
// @Param		q			query		string	false	"product name search"
// @Success	200			{object}	CatalogResponse
// @Failure	404,409,500	{object}	apperror.AppError
// @Router		/{tenant} [get]
func (h *handler) catalogHandler(w http.ResponseWriter, r *http.Request) error {
	sess, err := session.Require(r.Context())
	if err != nil {
		return err
	}

	query := r.URL.Query()
	category := strings.TrimSpace(query.Get("categoria"))
	if category == "" {
		category = catalog.AllCategories
	}
	search := strings.TrimSpace(query.Get("q"))

	current, err := h.service.Browse(r.Context(), sess, strings.TrimSpace(query.Get("bodega_id")))
	if err != nil {
		return err
	}

	warehouses, _ := sess.Catalog.Warehouses()
	est, _ := tenant.FromContext(r.Context())

	render.JSON(w, r, CatalogResponse{
		View:              response.ViewCatalog,
		Establishment:     est,
		Warehouses:        warehouses,
		SelectedWarehouse: current.WarehouseID,
		Categories:        current.Categories,
		Category:          category,
		Search:            search,
		Products: utils.Map(current.Filter(category, search), func(p catalog.Product) ProductResponse {
			return NewProductResponse(p, current.WarehouseID)
		}),
		Cart: CartBadge{
			TotalItems: sess.Cart.TotalItems(),
			TotalPrice: sess.Cart.TotalPrice(),
		},
		Copyright: est.Copyright(time.Now().Year()),
	})

	return nil
}
