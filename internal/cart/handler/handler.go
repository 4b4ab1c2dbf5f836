package carthandler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vetrovegor/storefront/internal/apperror"
	"github.com/vetrovegor/storefront/internal/cart"
	"github.com/vetrovegor/storefront/internal/handlers"
	"github.com/vetrovegor/storefront/internal/lib/api/response"
	"github.com/vetrovegor/storefront/internal/session"
	"github.com/vetrovegor/storefront/internal/tenant"
	"github.com/vetrovegor/storefront/pkg/types"
	"go.uber.org/zap"
)

var validate = apperror.NewValidator()

type Service interface {
	AddItem(sess *session.Session, productID string, quantity int) (cart.Cart, error)
	UpdateQuantity(sess *session.Session, productID string, quantity int) (cart.Cart, error)
	RemoveItem(sess *session.Session, productID string) cart.Cart
	Clear(sess *session.Session) cart.Cart
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
	router.Route("/cart", func(cartRouter chi.Router) {
		cartRouter.Get("/", apperror.Middleware(h.getCartHandler))
		cartRouter.Delete("/", apperror.Middleware(h.clearCartHandler))
		cartRouter.Post("/items", apperror.Middleware(h.addItemHandler))
		cartRouter.Patch("/items/{productId}", apperror.Middleware(h.updateQuantityHandler))
		cartRouter.Delete("/items/{productId}", apperror.Middleware(h.removeItemHandler))
	})
}

// @Tags		cart
// @Produce	json
// @Param		tenant	path		string	true	"tenant slug"
// @Success	200		{object}	CartResponse
// @Success	303		{object}	response.Redirect	"empty cart"
// @Router		/{tenant}/cart [get]
func (h *handler) getCartHandler(w http.ResponseWriter, r *http.Request) error {
	sess, err := session.Require(r.Context())
	if err != nil {
		return err
	}

	snapshot := sess.Cart.Snapshot()
	if snapshot.IsEmpty() {
		response.SeeOther(w, r, backLocation(r, sess.Tenant))
		return nil
	}

	render.JSON(w, r, h.cartResponse(r, sess, snapshot))

	return nil
}

// @Tags		cart
// @Accept		json
// @Produce	json
// @Param		tenant	path		string			true	"tenant slug"
// @Param		request	body		AddItemRequest	true	"product and quantity (defaults to 1)"
// @Success	200		{object}	CartResponse
// @Failure	400,404	{object}	apperror.AppError
// @Router		/{tenant}/cart/items [post]
func (h *handler) addItemHandler(w http.ResponseWriter, r *http.Request) error {
	sess, err := session.Require(r.Context())
	if err != nil {
		return err
	}

	var dto AddItemRequest
	if err := decode(r, &dto); err != nil {
		h.logger.Warn(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return err
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	next, err := h.service.AddItem(sess, strings.TrimSpace(dto.ProductID), dto.QuantityOrDefault())
	if err != nil {
		return err
	}

	render.JSON(w, r, h.cartResponse(r, sess, next))

	return nil
}

// @Tags		cart
// @Accept		json
// @Produce	json
// @Param		tenant		path		string					true	"tenant slug"
// @Param		productId	path		string					true	"product id"
// @Param		request		body		UpdateQuantityRequest	true	"new quantity, at least 1"
// @Success	200			{object}	CartResponse
// @Failure	400,404		{object}	apperror.AppError
// @Router		/{tenant}/cart/items/{productId} [patch]
func (h *handler) updateQuantityHandler(w http.ResponseWriter, r *http.Request) error {
	sess, err := session.Require(r.Context())
	if err != nil {
		return err
	}

	var dto UpdateQuantityRequest
	if err := decode(r, &dto); err != nil {
		h.logger.Warn(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return err
	}

	if dto.Quantity == nil {
		return apperror.ErrInvalidQuantity
	}

	next, err := h.service.UpdateQuantity(sess, chi.URLParam(r, "productId"), dto.Quantity.Int())
	if err != nil {
		return err
	}

	render.JSON(w, r, h.cartResponse(r, sess, next))

	return nil
}

// @Tags		cart
// @Produce	json
// @Param		tenant		path		string	true	"tenant slug"
// @Param		productId	path		string	true	"product id"
// @Success	200			{object}	CartResponse
// @Router		/{tenant}/cart/items/{productId} [delete]
func (h *handler) removeItemHandler(w http.ResponseWriter, r *http.Request) error {
	sess, err := session.Require(r.Context())
	if err != nil {
		return err
	}

	next := h.service.RemoveItem(sess, chi.URLParam(r, "productId"))

	render.JSON(w, r, h.cartResponse(r, sess, next))

	return nil
}

// @Tags		cart
// @Produce	json
// @Param		tenant	path		string	true	"tenant slug"
// @Success	200		{object}	CartResponse
// @Router		/{tenant}/cart [delete]
func (h *handler) clearCartHandler(w http.ResponseWriter, r *http.Request) error {
	sess, err := session.Require(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, h.cartResponse(r, sess, h.service.Clear(sess)))

	return nil
}

func (h *handler) cartResponse(r *http.Request, sess *session.Session, c cart.Cart) CartResponse {
	est, _ := tenant.FromContext(r.Context())

	resp := NewCartResponse(response.ViewCart, est, c)
	if c.IsEmpty() {
		resp.Next = backLocation(r, sess.Tenant)
	}

	return resp
}

func decode(r *http.Request, dst any) error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		if errors.Is(err, types.ErrNotInteger) {
			return apperror.ErrInvalidQuantity
		}
		return apperror.ErrDecodeBody
	}
	return nil
}

// backLocation is where an empty cart sends the shopper: the previous page
// when it belongs to the same tenant, the tenant catalog otherwise.
func backLocation(r *http.Request, slug string) string {
	home := tenant.Path(slug)
	cartPath := tenant.Path(slug, "cart")

	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" {
		return home
	}
	if ref.Host != "" && ref.Host != r.Host {
		return home
	}

	path := ref.EscapedPath()
	if path == cartPath || (path != home && !strings.HasPrefix(path, home+"/")) {
		return home
	}

	if ref.RawQuery != "" {
		path += "?" + ref.RawQuery
	}
	return path
}
