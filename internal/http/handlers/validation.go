package handlers

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/inventory-manager/internal/forms"
)

func isFormRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}

// decodeProduct reads a product from a JSON body or from an urlencoded form.
// When pathID is non-nil it overrides any ID in the body. Form values are
// parsed with the same rules as the console, so "abc" as a quantity yields
// "Quantity must be a non-negative integer."
func decodeProduct(w http.ResponseWriter, r *http.Request, pathID *int) (forms.ProductInput, error) {
	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			return forms.ProductInput{}, err
		}
		id := r.PostForm.Get("id")
		if pathID != nil {
			id = strconv.Itoa(*pathID)
		}
		return forms.ParseProduct(id, r.PostForm.Get("name"), r.PostForm.Get("quantity"), r.PostForm.Get("price"))
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		return forms.ProductInput{}, err
	}
	if pathID != nil {
		req.ID = *pathID
	}
	return forms.ProductInput{ID: req.ID, Name: req.Name, Quantity: req.Quantity, Price: req.Price}, nil
}
