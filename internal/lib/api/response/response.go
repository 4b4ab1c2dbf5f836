package response

import (
	"net/http"

	"github.com/go-chi/render"
)

const (
	ViewRoot     = "root"
	ViewCatalog  = "catalog"
	ViewCart     = "cart"
	ViewCheckout = "checkout"
	ViewSuccess  = "success"
	ViewAbout    = "about"
	ViewClosed   = "closed"
)

// Redirect tells the front end where to navigate next.
type Redirect struct {
	Location string `json:"location"`
}

func SeeOther(w http.ResponseWriter, r *http.Request, location string) {
	w.Header().Set("Location", location)
	render.Status(r, http.StatusSeeOther)
	render.JSON(w, r, Redirect{Location: location})
}

func Created(w http.ResponseWriter, r *http.Request, location string, v any) {
	w.Header().Set("Location", location)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, v)
}
