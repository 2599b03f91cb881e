package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/heartmarshall/transkana/internal/config"
	"github.com/heartmarshall/transkana/internal/domain"
	"github.com/heartmarshall/transkana/internal/service/transkana"
)

// converter defines the minimal interface needed by ConvertHandler.
type converter interface {
	Exec(text string, opts transkana.Options) string
	Ready() bool
}

// ConvertHandler serves the conversion endpoint.
type ConvertHandler struct {
	svc      converter
	defaults config.EngineConfig
	maxBody  int64
	log      *slog.Logger
}

// NewConvertHandler creates a ConvertHandler. defaults supply the options a
// request leaves unset and the input size limit.
func NewConvertHandler(svc converter, defaults config.EngineConfig, maxBody int64, logger *slog.Logger) *ConvertHandler {
	return &ConvertHandler{
		svc:      svc,
		defaults: defaults,
		maxBody:  maxBody,
		log:      logger.With("handler", "convert"),
	}
}

type convertRequest struct {
	Text             *string `json:"text"`
	Compact          *bool   `json:"compact,omitempty"`
	JapaneseReadings *bool   `json:"japanese_readings,omitempty"`
}

type convertResponse struct {
	Kana         string `json:"kana"`
	LexiconReady bool   `json:"lexicon_ready"`
}

// Convert handles POST /api/v1/convert.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	var req convertRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, opts, err := h.parse(req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, convertResponse{
		Kana:         h.svc.Exec(text, opts),
		LexiconReady: h.svc.Ready(),
	})
}

func (h *ConvertHandler) parse(req convertRequest) (string, transkana.Options, error) {
	opts := transkana.Options{
		Compact:          h.defaults.Compact,
		JapaneseReadings: h.defaults.JapaneseReadings,
	}

	var errs []domain.FieldError
	if req.Text == nil {
		errs = append(errs, domain.FieldError{Field: "text", Message: "is required"})
	} else {
		if !utf8.ValidString(*req.Text) {
			errs = append(errs, domain.FieldError{Field: "text", Message: "must be valid UTF-8"})
		}
		if h.defaults.MaxInputRunes > 0 && utf8.RuneCountInString(*req.Text) > h.defaults.MaxInputRunes {
			errs = append(errs, domain.FieldError{Field: "text", Message: "is too long"})
		}
	}
	if len(errs) > 0 {
		return "", opts, domain.NewValidationErrors(errs)
	}

	if req.Compact != nil {
		opts.Compact = *req.Compact
	}
	if req.JapaneseReadings != nil {
		opts.JapaneseReadings = *req.JapaneseReadings
	}
	return *req.Text, opts, nil
}
