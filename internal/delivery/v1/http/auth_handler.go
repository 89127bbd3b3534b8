package http

import (
	"net/http"

	"github.com/doodle-alley/go-backend/internal/usecase"
	"github.com/doodle-alley/go-backend/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

// login
//
//	@Summary	Вход администратора, выдаёт сессионный токен
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	StatusResponse
//	@Failure	401	{object}	StatusResponse
//	@Router		/admin/login [post]
func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		a.logger.Warnf("%d invalid login body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	token, err := a.authUsecase.Login(r.Context(), usecase.NewLoginReq(req.Username, req.Password))
	if err != nil {
		code, _ := ToHTTPResponse(err)
		if code == http.StatusUnauthorized {
			a.logger.Warnf("failed login attempt for user %q", req.Username)
			WriteSuccess(w, http.StatusUnauthorized, StatusResponse{
				Success: false,
				Message: "Invalid credentials",
			})
			return
		}

		a.logger.Errorf(err, "login error")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, StatusResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
	})
}
