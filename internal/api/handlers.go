package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/osdetect/pkg/cache"
	"github.com/dmitrymomot/osdetect/pkg/logger"
	"github.com/dmitrymomot/osdetect/pkg/osinfo"
	"github.com/dmitrymomot/osdetect/pkg/useragent"
)

const (
	// MaxBatchItems bounds POST /v1/os/classify.
	MaxBatchItems = 100

	maxBodyBytes = 1 << 20
)

// Detector reports the classification of the host.
// *platform.Detector satisfies it.
type Detector interface {
	Current(ctx context.Context) (osinfo.OperatingSystem, error)
}

// UserAgentResult is the data of GET /v1/os/useragent.
type UserAgentResult struct {
	Identity osinfo.Identity `json:"identity"`
	OS       osinfo.Summary  `json:"os"`
}

// ClassifyRequest is the body of POST /v1/os/classify.
type ClassifyRequest struct {
	Items []osinfo.Identity `json:"items"`
}

type handlers struct {
	detector Detector
	results  *cache.LRU[osinfo.Identity, osinfo.OperatingSystem]
	log      *slog.Logger
}

func (h *handlers) classify(id osinfo.Identity) osinfo.OperatingSystem {
	info, _ := h.results.GetOrAdd(id, func() osinfo.OperatingSystem {
		return osinfo.ClassifyIdentity(id)
	})
	return info
}

func (h *handlers) current(w http.ResponseWriter, r *http.Request) {
	info, err := h.detector.Current(r.Context())
	if err != nil {
		h.log.WarnContext(r.Context(), "current os unavailable", logger.Error(err))
		respondError(w, r, h.log, ErrDetectionFailed)
		return
	}
	respond(w, r, info.Summary())
}

func (h *handlers) classifyQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id := osinfo.Identity{
		Name:         q.Get("name"),
		Version:      q.Get("version"),
		Architecture: q.Get("arch"),
	}
	if id.Name == "" {
		respondError(w, r, h.log, ErrMissingName)
		return
	}
	respond(w, r, h.classify(id).Summary())
}

func (h *handlers) classifyBatch(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			respondError(w, r, h.log, ErrInvalidJSON.WithMessage("request body is empty"))
			return
		}
		respondError(w, r, h.log, ErrInvalidJSON)
		return
	}

	switch n := len(req.Items); {
	case n == 0:
		respondError(w, r, h.log, ErrInvalidBatch.WithMessage("items must not be empty"))
		return
	case n > MaxBatchItems:
		respondError(w, r, h.log, ErrInvalidBatch.WithMessage(fmt.Sprintf("at most %d items are allowed, got %d", MaxBatchItems, n)))
		return
	}

	out := make([]osinfo.Summary, 0, len(req.Items))
	for i, id := range req.Items {
		if id.Name == "" {
			respondError(w, r, h.log, ErrInvalidBatch.WithMessage(fmt.Sprintf("items[%d].name is required", i)))
			return
		}
		out = append(out, h.classify(id).Summary())
	}
	respond(w, r, out)
}

func (h *handlers) classifyUserAgent(w http.ResponseWriter, r *http.Request) {
	ua := r.URL.Query().Get("ua")
	if ua == "" {
		ua = r.UserAgent()
	}
	id, err := useragent.Parse(ua)
	switch {
	case errors.Is(err, useragent.ErrEmptyUserAgent):
		respondError(w, r, h.log, ErrMissingUserAgent)
		return
	case errors.Is(err, useragent.ErrUnsupportedOS):
		respondError(w, r, h.log, ErrUnrecognizedUA)
		return
	case err != nil:
		respondError(w, r, h.log, err)
		return
	}
	respond(w, r, UserAgentResult{Identity: id, OS: h.classify(id).Summary()})
}

func (h *handlers) allRules(w http.ResponseWriter, r *http.Request) {
	respond(w, r, osinfo.AllRules())
}

func (h *handlers) familyRules(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "family")
	family, err := osinfo.ParseFamily(name)
	if err != nil {
		respondError(w, r, h.log, ErrUnknownFamily.WithMessage(fmt.Sprintf("unknown family %q", strings.TrimSpace(name))))
		return
	}
	rules := osinfo.Rules(family)
	if rules == nil {
		rules = []osinfo.Rule{}
	}
	respond(w, r, rules)
}
