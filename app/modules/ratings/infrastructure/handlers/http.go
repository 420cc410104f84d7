package ratingshandlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	ratingsdomain "github.com/XdrBOBX/rating-widget/app/modules/ratings/domain"
	"github.com/XdrBOBX/rating-widget/app/shared/httpx"
)

const (
	errInternal    = "internal_error"
	errInvalidBody = "invalid json body"
)

// HandleSummary serves GET /api/ratings/summary?guildId=.
func (h *RatingHandlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetSummary(r.Context(), r.URL.Query().Get("guildId"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

// HandleRecent serves GET /api/ratings/recent?guildId=&limit=.
func (h *RatingHandlers) HandleRecent(w http.ResponseWriter, r *http.Request) {
	limit := httpx.QueryInt(r, "limit", ratingsdomain.DefaultFeedLimit)

	items, err := h.service.GetRecent(r.Context(), r.URL.Query().Get("guildId"), limit)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

// submitRequest keeps every field raw so that numbers and strings are both
// accepted and coerced by the validator rather than by the decoder.
type submitRequest struct {
	GuildID  json.RawMessage `json:"guildId"`
	UserID   json.RawMessage `json:"userId"`
	Category json.RawMessage `json:"category"`
	Score    json.RawMessage `json:"score"`
	Comment  json.RawMessage `json:"comment"`
}

// HandleSubmit serves POST /api/ratings.
func (h *RatingHandlers) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	// An empty body decodes as an empty object.
	var req submitRequest
	if err := httpx.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		httpx.Error(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	_, err := h.service.SubmitRating(r.Context(), ratingsdomain.Candidate{
		GuildID:  text(req.GuildID),
		UserID:   text(req.UserID),
		Category: text(req.Category),
		Score:    text(req.Score),
		Comment:  text(req.Comment),
	})
	if err != nil {
		var ve *ratingsdomain.ValidationError
		if errors.As(err, &ve) {
			httpx.Error(w, http.StatusBadRequest, ve.Reason())
			return
		}
		h.internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

func (h *RatingHandlers) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "Request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	httpx.Error(w, http.StatusInternalServerError, errInternal)
}

// text renders a raw JSON scalar as text. Strings are unquoted, numbers
// keep their literal form, and everything else becomes empty.
func text(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	switch s[0] {
	case '"':
		var out string
		if err := json.Unmarshal(raw, &out); err != nil {
			return ""
		}
		return out
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return s
	}
	return ""
}
