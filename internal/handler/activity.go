// Activity feed handlers. These don't touch the entity stores; they read
// the separate activity store written by the event recorder.
package handler

import (
	"net/http"
	"time"

	"github.com/matthewbaird/showcase/internal/activity"
	"github.com/matthewbaird/showcase/internal/types"
)

// ActivityHandler implements HTTP handlers for the activity feed.
type ActivityHandler struct {
	store activity.Store
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(store activity.Store) *ActivityHandler {
	return &ActivityHandler{store: store}
}

// GetActivity returns the feed for one entity when entity_type and
// entity_id are given, and the global feed otherwise.
// GET /v1/activity?entity_type=&entity_id=&since=&limit=
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entityType, entityID := q.Get("entity_type"), q.Get("entity_id")
	if (entityType == "") != (entityID == "") {
		writeError(w, http.StatusBadRequest, "MISSING_PARAMS", "entity_type and entity_id must be given together")
		return
	}

	opts := activity.QueryOptions{Limit: parseLimit(r, activity.DefaultLimit, activity.MaxLimit)}
	if s := q.Get("since"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_SINCE", "since must be an RFC 3339 timestamp")
			return
		}
		opts.Since = &t
	}

	var (
		entries []types.ActivityEntry
		total   int
		err     error
	)
	if entityType != "" {
		entries, total, err = h.store.QueryByEntity(r.Context(), entityType, entityID, opts)
	} else {
		entries, total, err = h.store.Recent(r.Context(), opts)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "QUERY_FAILED", err.Error())
		return
	}
	if entries == nil {
		entries = []types.ActivityEntry{}
	}

	writeJSON(w, http.StatusOK, struct {
		Activities []types.ActivityEntry `json:"activities"`
		TotalCount int                   `json:"total_count"`
	}{entries, total})
}
