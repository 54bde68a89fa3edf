package login

import (
	"crypto/subtle"
	"net/http"

	"github.com/igextreme/agenda-service/internal/api/handlers"
)

const msgInvalidCredentials = "credenciais inválidas"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler checks the admin credentials and hands out the API token used by
// the admin middleware. Single operator, deployment-configured secrets.
type Handler struct {
	username string
	password string
	token    string
	logger   Logger
}

func NewHandler(username, password, token string, logger Logger) *Handler {
	return &Handler{
		username: username,
		password: password,
		token:    token,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCredentials)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1
	if req.Username == "" || req.Password == "" || !userOK || !passOK {
		h.logger.Warn("POST /admin/login - Failed login attempt for user %q", req.Username)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)
		return
	}

	h.logger.Info("POST /admin/login - Admin authenticated")
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{Token: h.token})
}
