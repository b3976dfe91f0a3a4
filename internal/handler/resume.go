package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/matthewbaird/showcase/internal/resume"
	"github.com/matthewbaird/showcase/internal/types"
)

// ResumeHandler implements HTTP handlers for the resume builder.
type ResumeHandler struct {
	store resume.Store
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(store resume.Store) *ResumeHandler {
	return &ResumeHandler{store: store}
}

type createResumeRequest struct {
	Template *types.ResumeTemplate `json:"template"`
	Sample   bool                  `json:"sample"`
}

type updateResumeRequest struct {
	Op   string          `json:"op"`
	Data json.RawMessage `json:"data"`
}

func (h *ResumeHandler) ListTemplates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, resume.Templates())
}

// CreateResume starts an empty resume, or the filled-in sample when
// sample is set.
func (h *ResumeHandler) CreateResume(w http.ResponseWriter, r *http.Request) {
	var req createResumeRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	template := types.ResumeTemplateModern
	if req.Template != nil {
		template = *req.Template
	}
	if _, ok := resume.LookupTemplate(template); !ok {
		writeValidation(w, map[string]string{"template": "Template is not available"})
		return
	}

	doc := resume.Blank(template)
	if req.Sample {
		doc = resume.Sample(template)
	}
	created, err := h.store.Create(r.Context(), doc)
	if err != nil {
		errorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ResumeHandler) GetResume(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *ResumeHandler) UpdateResume(w http.ResponseWriter, r *http.Request) {
	var req updateResumeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	u, err := resume.DecodeUpdate(req.Op, req.Data)
	if err != nil {
		var invalid *resume.InvalidUpdateError
		switch {
		case errors.As(err, &invalid):
			writeValidation(w, invalid.Errors)
		case errors.Is(err, resume.ErrUnknownUpdate):
			errorToHTTP(w, err)
		default:
			writeError(w, http.StatusBadRequest, "INVALID_UPDATE", err.Error())
		}
		return
	}

	doc, err := h.store.Update(r.Context(), chi.URLParam(r, "id"), func(cur types.Resume) types.Resume {
		return resume.Apply(cur, u)
	})
	if err != nil {
		errorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *ResumeHandler) PreviewResume(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resume.NewPreview(doc))
}

func (h *ResumeHandler) DeleteResume(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errorToHTTP(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
