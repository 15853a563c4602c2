package handlers

import (
	"log"
	"net/http"

	"github.com/themizzi/sauceshop/internal/models"
	"github.com/themizzi/sauceshop/internal/store"
)

// LoginHandler opens a session for valid credentials
type LoginHandler struct {
	sessions *Sessions
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(sessions *Sessions) *LoginHandler {
	return &LoginHandler{
		sessions: sessions,
	}
}

// ServeHTTP handles POST /login
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var creds models.Credentials
	if !decodeBody(w, r, &creds) {
		return
	}

	st := h.sessions.NewStore()
	resp := st.Login(creds.Username, creds.Password)

	if body, ok := resp.Body.(store.TokenBody); ok && resp.OK() {
		st.SetToken(body.Token)
		h.sessions.Open(st)
		log.Printf("Login succeeded for user %s", creds.Username)
	} else {
		log.Printf("Login rejected for user %q with status %d", creds.Username, resp.Status)
	}

	writeResponse(w, resp)
}
