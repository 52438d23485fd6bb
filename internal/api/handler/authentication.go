package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/exterior-marketing/internal/usecases/authenticating"
	"github.com/vfg2006/exterior-marketing/pkg/apiErrors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// OperatorLogin é a parte do autenticador usada pelo handler de login
type OperatorLogin interface {
	LoginOperator(email, password string) (string, error)
}

func Login(service OperatorLogin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginOperator(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		// a mensagem detalhada fica só no log para não revelar qual campo falhou
		message := "Credenciais inválidas"
		if errors.Is(err, authenticating.ErrMissingRequiredData) {
			message = authErr.Error()
		}
		apiErrors.WriteError(w, authErr.Code, message, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
}
