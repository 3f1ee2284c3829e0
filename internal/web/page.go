package web

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/jask/cardcheck/internal/card"
)

type pageField struct {
	Name        string
	Label       string
	Placeholder string
	Value       string
	MaxLen      int
	Numeric     bool
}

type pageData struct {
	Title        string
	SubmitLabel  string
	DismissLabel string
	ModalTitle   string
	ModalBody    string
	Disclaimer   string

	Fields   []pageField
	Preview  card.Preview
	Notice   string
	Modal    bool
	Protocol string
}

func (s *Server) newPage(wg *card.Widget) pageData {
	st := wg.State()
	fields := make([]pageField, 0, len(card.Fields()))
	for _, f := range card.Fields() {
		fields = append(fields, pageField{
			Name:        string(f),
			Label:       f.Label(),
			Placeholder: f.Placeholder(),
			Value:       st.Get(f),
			MaxLen:      f.MaxLen(),
			Numeric:     f.Numeric(),
		})
	}
	return pageData{
		Title:        card.FormTitle,
		SubmitLabel:  card.SubmitLabel,
		DismissLabel: card.DismissLabel,
		ModalTitle:   card.ModalTitle,
		ModalBody:    card.ModalBody,
		Disclaimer:   card.Disclaimer,
		Fields:       fields,
		Preview:      wg.Preview(),
		Modal:        wg.Flags().ModalOpen,
		Protocol:     wg.Protocol(),
	}
}

func (s *Server) showPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, s.newPage(s.widget(card.FormState{})))
}

// submitPage is the no-script path: each posted value is applied as a
// whole-field paste onto an empty form, then the form is checked unless
// the modal is being closed.
func (s *Server) submitPage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDecodeError(w, err)
		return
	}

	wg := s.widget(card.FormState{})
	for _, f := range card.Fields() {
		if v, ok := formValue(r.PostForm, f); ok {
			wg.Edit(f, v)
		}
	}

	var notice string
	if r.PostForm.Get("action") != "close" {
		if err := wg.Submit(); err != nil {
			notice = err.Error()
			s.logger.Info("check failed", "kind", string(card.KindOf(err)))
		} else {
			s.logger.Info("check passed", "protocol", wg.Protocol())
		}
	}

	data := s.newPage(wg)
	data.Notice = notice
	s.renderPage(w, http.StatusOK, data)
}

// formValue returns the posted value for f. The field's own name wins over
// its legacy alias.
func formValue(form url.Values, f card.Field) (string, bool) {
	for _, key := range []string{string(f), f.Alias()} {
		if vals, ok := form[key]; ok && len(vals) > 0 {
			return vals[0], true
		}
	}
	return "", false
}

func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Error("render page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
