package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/matthewbaird/showcase/internal/event"
	"github.com/matthewbaird/showcase/internal/listing"
	"github.com/matthewbaird/showcase/internal/types"
)

// PropertyHandler implements HTTP handlers for the listing dashboard.
type PropertyHandler struct {
	catalog  *listing.Catalog
	recorder event.Recorder
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(catalog *listing.Catalog, recorder event.Recorder) *PropertyHandler {
	return &PropertyHandler{catalog: catalog, recorder: recorder}
}

// formValue is a form field that accepts either a JSON string or a JSON
// number, keeping the raw text for the validator.
type formValue string

func (v *formValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = formValue(n.String())
	return nil
}

type createPropertyRequest struct {
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Price            formValue `json:"price"`
	Location         string    `json:"location"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	Image            string    `json:"image"`
	Bedrooms         formValue `json:"bedrooms"`
	Bathrooms        formValue `json:"bathrooms"`
	Sqft             formValue `json:"sqft"`
	Latitude         formValue `json:"latitude"`
	Longitude        formValue `json:"longitude"`
	Featured         bool      `json:"featured"`
}

func (req createPropertyRequest) submission() listing.Submission {
	return listing.Submission{
		Name:             req.Name,
		Type:             req.Type,
		Price:            string(req.Price),
		Location:         req.Location,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Image:            req.Image,
		Bedrooms:         string(req.Bedrooms),
		Bathrooms:        string(req.Bathrooms),
		Sqft:             string(req.Sqft),
		Latitude:         string(req.Latitude),
		Longitude:        string(req.Longitude),
		Featured:         req.Featured,
	}
}

type propertyListResponse struct {
	Properties []types.Property `json:"properties"`
	Total      int              `json:"total"`
	Criteria   listing.Criteria `json:"criteria"`
}

func (h *PropertyHandler) ListPropertyTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, types.PropertyTypes())
}

func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	criteria, errs := listing.ParseCriteria(r.URL.Query())
	if !errs.Empty() {
		writeValidation(w, errs)
		return
	}
	props, err := h.catalog.Browse(r.Context(), criteria)
	if err != nil {
		errorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, propertyListResponse{
		Properties: props,
		Total:      len(props),
		Criteria:   criteria,
	})
}

func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	p, errs, err := h.catalog.Submit(r.Context(), req.submission())
	if err != nil {
		errorToHTTP(w, err)
		return
	}
	if !errs.Empty() {
		writeValidation(w, errs)
		return
	}

	recordEvent(r.Context(), h.recorder, event.NewPropertyListed(p))
	writeJSON(w, http.StatusCreated, p)
}
