package customerhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/vetrovegor/storefront/internal/apperror"
	"github.com/vetrovegor/storefront/internal/customer"
	"github.com/vetrovegor/storefront/internal/handlers"
	"github.com/vetrovegor/storefront/internal/session"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock.go -package=mockcustomerservice . Service
type Service interface {
	Search(ctx context.Context, sess *session.Session, query customer.Query) ([]customer.Customer, error)
	Select(ctx context.Context, sess *session.Session, choice customer.Query) (customer.Customer, error)
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
	router.Get("/checkout/customers", apperror.Middleware(h.searchHandler))
	router.Post("/checkout/customer", apperror.Middleware(h.selectHandler))
}

// @Tags		customers
// @Produce	json
// @Param		tenant	path		string	true	"tenant slug"
// @Param		nombre	query		string	false	"customer name"
// @Param		nit		query		string	false	"customer tax id"
// @Success	200		{object}	CandidatesResponse
// @Failure	409		{object}	apperror.AppError	"superseded by a newer search"
// @Router		/{tenant}/checkout/customers [get]
func (h *handler) searchHandler(w http.ResponseWriter, r *http.Request) error {
	sess, err := session.Require(r.Context())
	if err != nil {
		return err
	}

	query := customer.Query{
		Name: r.URL.Query().Get("nombre"),
		NIT:  r.URL.Query().Get("nit"),
	}.Normalize()

	candidates, err := h.service.Search(r.Context(), sess, query)
	if err != nil {
		return err
	}

	render.JSON(w, r, CandidatesResponse{
		Query:      query,
		Candidates: candidates,
	})

	return nil
}

// @Tags		customers
// @Accept		json
// @Produce	json
// @Param		tenant	path		string			true	"tenant slug"
// @Param		request	body		SelectRequest	true	"candidate to select"
// @Success	200		{object}	SelectedResponse
// @Failure	400,404	{object}	apperror.AppError
// @Router		/{tenant}/checkout/customer [post]
func (h *handler) selectHandler(w http.ResponseWriter, r *http.Request) error {
	sess, err := session.Require(r.Context())
	if err != nil {
		return err
	}

	var dto SelectRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		h.logger.Warn(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	choice := dto.Query()
	if choice.Name == "" && choice.NIT == "" {
		return apperror.ErrNotFound
	}

	selected, err := h.service.Select(r.Context(), sess, choice)
	if err != nil {
		return err
	}

	render.JSON(w, r, SelectedResponse{
		Customer:        selected,
		DiscountPercent: selected.PriceListDiscountPercent,
	})

	return nil
}
