package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jask/cardcheck/internal/card"
)

// EditRequest applies one field edit to the carried state.
type EditRequest struct {
	State card.FormState `json:"state"`
	Field string         `json:"field"`
	Value string         `json:"value"`
}

// EditResponse is the state after the edit.
type EditResponse struct {
	State    card.FormState `json:"state"`
	Accepted bool           `json:"accepted"`
	Preview  card.Preview   `json:"preview"`
}

// CheckRequest asks for the form to be validated.
type CheckRequest struct {
	State card.FormState `json:"state"`
}

// CheckResponse reports the validation outcome.
type CheckResponse struct {
	Valid    bool         `json:"valid"`
	Kind     card.Kind    `json:"kind,omitempty"`
	Message  string       `json:"message,omitempty"`
	Protocol string       `json:"protocol,omitempty"`
	Flags    card.Flags   `json:"flags"`
	Preview  card.Preview `json:"preview"`
}

// HealthResponse is returned by /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) widget(state card.FormState) *card.Widget {
	opts := []card.Option{card.WithState(state)}
	if s.newID != nil {
		opts = append(opts, card.WithIDFunc(s.newID))
	}
	return card.NewWidget(opts...)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: s.version})
}

func (s *Server) edit(w http.ResponseWriter, r *http.Request) {
	var req EditRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	f, err := card.ParseField(req.Field)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	wg := s.widget(req.State)
	accepted := wg.Edit(f, req.Value)
	if !accepted {
		s.logger.Debug("edit rejected", "field", string(f))
	}
	writeJSON(w, http.StatusOK, EditResponse{
		State:    wg.State(),
		Accepted: accepted,
		Preview:  wg.Preview(),
	})
}

func (s *Server) check(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	wg := s.widget(req.State)
	resp := CheckResponse{Valid: true}
	if err := wg.Submit(); err != nil {
		resp = CheckResponse{Kind: card.KindOf(err), Message: err.Error()}
		s.logger.Info("check failed", "kind", string(resp.Kind))
	} else {
		resp.Protocol = wg.Protocol()
		s.logger.Info("check passed", "protocol", resp.Protocol)
	}
	resp.Flags = wg.Flags()
	resp.Preview = wg.Preview()
	writeJSON(w, http.StatusOK, resp)
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
