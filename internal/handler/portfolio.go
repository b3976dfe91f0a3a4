package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/matthewbaird/showcase/internal/event"
	"github.com/matthewbaird/showcase/internal/portfolio"
	"github.com/matthewbaird/showcase/internal/session"
	"github.com/matthewbaird/showcase/internal/types"
)

// PortfolioHandler implements HTTP handlers for the portfolio wizard and
// the published portfolios.
type PortfolioHandler struct {
	sessions *session.Manager
	store    portfolio.Store
	recorder event.Recorder
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(sessions *session.Manager, store portfolio.Store, recorder event.Recorder) *PortfolioHandler {
	return &PortfolioHandler{sessions: sessions, store: store, recorder: recorder}
}

// ---------------------------------------------------------------------------
// Drafts
// ---------------------------------------------------------------------------

type createDraftRequest struct {
	Template *types.Template `json:"template"`
}

type updateDraftRequest struct {
	Op   string          `json:"op"`
	Data json.RawMessage `json:"data"`
}

var errUnknownDraft = errors.New("draft not found or expired")

func (h *PortfolioHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req createDraftRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	template := types.TemplateSpotlight
	if req.Template != nil {
		template = *req.Template
	}
	if !template.Valid() {
		writeValidation(w, map[string]string{"template": "Template must be template1 or template2"})
		return
	}

	s := h.sessions.Create(template)
	snap, _ := s.Do(h.sessions.Now(), nil)
	writeJSON(w, http.StatusCreated, snap)
}

// withDraft resolves the {id} session and runs fn against its wizard.
func (h *PortfolioHandler) withDraft(w http.ResponseWriter, r *http.Request, fn func(*portfolio.Wizard) error) (session.Snapshot, bool) {
	s := h.sessions.Get(chi.URLParam(r, "id"))
	if s == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", errUnknownDraft.Error())
		return session.Snapshot{}, false
	}
	snap, err := s.Do(h.sessions.Now(), fn)
	if err != nil {
		errorToHTTP(w, err)
		return session.Snapshot{}, false
	}
	return snap, true
}

func (h *PortfolioHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	if snap, ok := h.withDraft(w, r, nil); ok {
		writeJSON(w, http.StatusOK, snap)
	}
}

func (h *PortfolioHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req updateDraftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	u, err := portfolio.DecodeUpdate(req.Op, req.Data)
	if err != nil {
		if errors.Is(err, portfolio.ErrUnknownUpdate) {
			errorToHTTP(w, err)
			return
		}
		writeError(w, http.StatusBadRequest, "INVALID_UPDATE", err.Error())
		return
	}

	snap, ok := h.withDraft(w, r, func(wz *portfolio.Wizard) error {
		wz.Apply(u)
		return nil
	})
	if ok {
		writeJSON(w, http.StatusOK, snap)
	}
}

func (h *PortfolioHandler) NextStep(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.withDraft(w, r, func(wz *portfolio.Wizard) error {
		wz.Next()
		return nil
	})
	if ok {
		writeJSON(w, http.StatusOK, snap)
	}
}

func (h *PortfolioHandler) PreviousStep(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.withDraft(w, r, func(wz *portfolio.Wizard) error {
		wz.Previous()
		return nil
	})
	if ok {
		writeJSON(w, http.StatusOK, snap)
	}
}

func (h *PortfolioHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s := h.sessions.Get(id)
	if s == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", errUnknownDraft.Error())
		return
	}
	pruned, err := s.BeginSubmit(h.sessions.Now())
	if err != nil {
		errorToHTTP(w, err)
		return
	}

	p, err := h.store.Add(r.Context(), portfolio.Publish(pruned, "", h.sessions.Now()))
	if err != nil {
		// The draft stays open so the client can retry.
		s.EndSubmit()
		errorToHTTP(w, err)
		return
	}
	h.sessions.Remove(id)

	recordEvent(r.Context(), h.recorder, event.NewPortfolioPublished(p))
	writeJSON(w, http.StatusCreated, p)
}

func (h *PortfolioHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Remove(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", errUnknownDraft.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Published portfolios
// ---------------------------------------------------------------------------

type portfolioListResponse struct {
	Portfolios []types.Portfolio `json:"portfolios"`
	Total      int               `json:"total"`
}

func (h *PortfolioHandler) ListPortfolios(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.List(r.Context())
	if err != nil {
		errorToHTTP(w, err)
		return
	}
	q := r.URL.Query()
	ps := portfolio.Filter(all, portfolio.Criteria{Search: q.Get("search"), Skill: q.Get("skill")})
	writeJSON(w, http.StatusOK, portfolioListResponse{Portfolios: ps, Total: len(ps)})
}

func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PortfolioHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.List(r.Context())
	if err != nil {
		errorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, portfolio.Skills(all))
}
