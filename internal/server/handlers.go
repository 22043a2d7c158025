package server

import (
	"embed"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amansinghal116/polyglotlab/internal/language"
	"github.com/amansinghal116/polyglotlab/internal/studio"
)

//go:embed index.html
var uiFS embed.FS

// Inline messages for capability failures. The UI always renders something;
// details go to the log.
const (
	translateFailedMessage = "Translation failed. Please try again."
	explainFailedMessage   = "Explanation is unavailable right now."
	feedbackFailedMessage  = "Feedback is unavailable right now."
)

type translateRequest struct {
	Text    string `json:"text"`
	Source  string `json:"source"`
	Target  string `json:"target"`
	Tone    string `json:"tone"`
	Domain  string `json:"domain"`
	Explain bool   `json:"explain"`
}

type translateResponse struct {
	Translation string `json:"translation"`
	Explanation string `json:"explanation,omitempty"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	applyHintDefaults(&req.Tone, &req.Domain)

	out, err := s.svc.Translate(r.Context(), req.Text, req.Source, req.Target, req.Tone, req.Domain)
	if err != nil {
		s.logger.Printf("translate: %v", err)
		writeJSON(w, translateResponse{Translation: inlineMessage(err, translateFailedMessage)})
		return
	}

	resp := translateResponse{Translation: out.Display()}

	if req.Explain && out.Kind == studio.OutcomeOK {
		explanation, err := s.svc.Explain(r.Context(), req.Text, out.Text, req.Source, req.Target)
		if err != nil {
			s.logger.Printf("explain: %v", err)
			explanation = explainFailedMessage
		}
		resp.Explanation = explanation
	}

	writeJSON(w, resp)
}

type backTranslateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
	Tone   string `json:"tone"`
	Domain string `json:"domain"`
}

type backTranslateResponse struct {
	Forward  string `json:"forward"`
	Backward string `json:"backward"`
}

func (s *Server) handleBackTranslate(w http.ResponseWriter, r *http.Request) {
	var req backTranslateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	applyHintDefaults(&req.Tone, &req.Domain)

	forward, backward, err := s.svc.BackTranslate(r.Context(), req.Text, req.Source, req.Target, req.Tone, req.Domain)
	if err != nil {
		s.logger.Printf("backtranslate: %v", err)
		msg := inlineMessage(err, translateFailedMessage)
		writeJSON(w, backTranslateResponse{Forward: msg, Backward: msg})
		return
	}

	writeJSON(w, backTranslateResponse{
		Forward:  forward.Display(),
		Backward: backward.Display(),
	})
}

type feedbackRequest struct {
	Text            string `json:"text"`
	UserTranslation string `json:"userTranslation"`
	Source          string `json:"source"`
	Target          string `json:"target"`
}

type feedbackResponse struct {
	Feedback string `json:"feedback"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := s.svc.Feedback(r.Context(), req.Text, req.UserTranslation, req.Source, req.Target)
	if err != nil {
		s.logger.Printf("feedback: %v", err)
		out = inlineMessage(err, feedbackFailedMessage)
	}
	writeJSON(w, feedbackResponse{Feedback: out})
}

type languagesResponse struct {
	Languages  []languageEntry `json:"languages"`
	Tones      []string        `json:"tones"`
	Domains    []string        `json:"domains"`
	AutoDetect string          `json:"autoDetect"`
}

type languageEntry struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names := s.registry.Names()
	codes := s.registry.Codes()
	entries := make([]languageEntry, len(names))
	for i := range names {
		entries[i] = languageEntry{Name: names[i], Code: codes[i]}
	}

	writeJSON(w, languagesResponse{
		Languages:  entries,
		Tones:      language.Tones,
		Domains:    language.Domains,
		AutoDetect: language.AutoDetect,
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := struct {
		Languages []string
		Tones     []string
		Domains   []string
	}{
		Languages: s.registry.Names(),
		Tones:     language.Tones,
		Domains:   language.Domains,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, data); err != nil {
		s.logger.Printf("failed to render index: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// decodeJSON rejects non-POST methods and malformed bodies. It reports
// whether the request is usable.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// applyHintDefaults fills absent hint fields so the UI can omit them.
func applyHintDefaults(tone, domain *string) {
	if *tone == "" {
		*tone = language.DefaultTone
	}
	if *domain == "" {
		*domain = language.DefaultDomain
	}
}

// inlineMessage maps a service error to the string shown in place of a
// result. Unknown-language errors name the problem; anything else gets the
// generic message.
func inlineMessage(err error, generic string) string {
	if errors.Is(err, language.ErrUnknownLanguage) {
		return err.Error()
	}
	return generic
}
