package checkouthandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/vetrovegor/storefront/internal/apperror"
	"github.com/vetrovegor/storefront/internal/checkout"
	"github.com/vetrovegor/storefront/internal/handlers"
	"github.com/vetrovegor/storefront/internal/lib/api/response"
	"github.com/vetrovegor/storefront/internal/session"
	"github.com/vetrovegor/storefront/internal/tenant"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock.go -package=mockcheckoutservice . Service
type Service interface {
	Prepare(ctx context.Context, sess *session.Session) (checkout.Roster, error)
	Submit(sess *session.Session, form checkout.Form) (checkout.Confirmation, error)
}

type handler struct {
	service        Service
	supportMessage string
	logger         *zap.Logger
}

func New(service Service, supportMessage string, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:        service,
		supportMessage: supportMessage,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/checkout", apperror.Middleware(h.checkoutHandler))
	router.Post("/checkout", apperror.Middleware(h.submitHandler))
	router.Get("/success", apperror.Middleware(h.successHandler))
}

// @Tags		checkout
// @Produce	json
// @Param		tenant	path		string	true	"tenant slug"
// @Success	200		{object}	CheckoutResponse
// @Success	303		{object}	response.Redirect	"empty cart"
// @Failure	409		{object}	apperror.AppError
// @Router		/{tenant}/checkout [get]
func (h *handler) checkoutHandler(w http.ResponseWriter, r *http.Request) error {
	sess, err := session.Require(r.Context())
	if err != nil {
		return err
	}

	if sess.Cart.Snapshot().IsEmpty() {
		response.SeeOther(w, r, tenant.Path(sess.Tenant))
		return nil
	}

	sess.Checkout.Resume()

	roster, err := h.service.Prepare(r.Context(), sess)
	if err != nil {
		return err
	}

	est, _ := tenant.FromContext(r.Context())

	resp := CheckoutResponse{
		View:                 response.ViewCheckout,
		Establishment:        est,
		Summary:              checkout.Summarize(sess.Cart.Snapshot(), sess.Customers.Discount()),
		State:                sess.Checkout.State(),
		LastError:            sess.Checkout.LastError(),
		SalespeopleAvailable: roster.Available(),
		Query:                sess.Customers.Query(),
		Candidates:           sess.Customers.Candidates(),
	}
	if selected, ok := sess.Customers.Selected(); ok {
		resp.Customer = &selected
	}

	render.JSON(w, r, resp)

	return nil
}

// @Tags		checkout
// @Accept		json
// @Produce	json
// @Param		tenant		path		string			true	"tenant slug"
// @Param		request		body		checkout.Form	true	"customer and salesperson"
// @Success	201			{object}	SuccessResponse
// @Failure	400,409		{object}	apperror.AppError
// @Failure	422			{object}	apperror.AppError	"validation_failed or invalid_salesperson"
// @Failure	502			{object}	apperror.AppError
// @Router		/{tenant}/checkout [post]
func (h *handler) submitHandler(w http.ResponseWriter, r *http.Request) error {
	sess, err := session.Require(r.Context())
	if err != nil {
		return err
	}

	var form checkout.Form
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		h.logger.Warn(apperror.ErrDecodeBody.Error(), zap.Error(err))
		return apperror.ErrDecodeBody
	}

	confirmation, err := h.service.Submit(sess, form)
	if err != nil {
		return err
	}

	response.Created(w, r, tenant.Path(sess.Tenant, "success"), h.successResponse(r, confirmation))

	return nil
}

// @Tags		checkout
// @Produce	json
// @Param		tenant	path		string	true	"tenant slug"
// @Success	200		{object}	SuccessResponse
// @Success	303		{object}	response.Redirect	"no confirmed order"
// @Router		/{tenant}/success [get]
func (h *handler) successHandler(w http.ResponseWriter, r *http.Request) error {
	sess, err := session.Require(r.Context())
	if err != nil {
		return err
	}

	confirmation, ok := sess.Checkout.Confirmation()
	if !ok || sess.Checkout.State() != checkout.StateConfirmed {
		response.SeeOther(w, r, tenant.Path(sess.Tenant))
		return nil
	}

	render.JSON(w, r, h.successResponse(r, confirmation))

	return nil
}

func (h *handler) successResponse(r *http.Request, c checkout.Confirmation) SuccessResponse {
	est, _ := tenant.FromContext(r.Context())

	return SuccessResponse{
		View:          response.ViewSuccess,
		Establishment: est,
		Confirmation:  c,
		SupportLink:   SupportLink(est.Socials.WhatsApp, h.supportMessage),
	}
}
