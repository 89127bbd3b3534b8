package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/doodle-alley/go-backend/internal/cfg"
	"github.com/doodle-alley/go-backend/internal/domain"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/doodle-alley/go-backend/pkg/logger"
	"github.com/golang-jwt/jwt/v4"
)

// AuthUseCase проверяет учётные данные администратора и выдаёт
// подписанные сессионные токены вместо клиентского флага «залогинен».
type AuthUseCase struct {
	credsRepo CredentialsRepository
	cfg       *cfg.AuthCfg
	logger    logger.Logger
}

func NewAuthUC(credsRepo CredentialsRepository, cfg *cfg.AuthCfg, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		credsRepo: credsRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// Login сверяет пару логин/пароль с записью admin:credentials и при успехе
// возвращает подписанный JWT. Если записи ещё нет, она лениво заполняется
// парой по умолчанию из конфигурации; текущая попытка сверяется уже с ней.
// Seed атомарен (SetNX), конкурентные первые входы сеют запись ровно один раз.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (string, error) {
	const op = "AuthUseCase.Login"

	creds, err := a.credsRepo.Get(ctx)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	if creds == nil {
		defaults := domain.NewAdminCredentials(a.cfg.DefaultUsername, a.cfg.DefaultPassword)

		created, err := a.credsRepo.Seed(ctx, defaults)
		if err != nil {
			return "", e.Wrap(op, err)
		}
		if created {
			a.logger.Infof("admin credentials seeded with default pair")
		}

		// Проигравший гонку сверяется с той же только что посеянной парой.
		creds = defaults
	}

	if !credentialsMatch(creds, req) {
		return "", e.Wrap(op, e.ErrInvalidCredentials)
	}

	return a.issueToken()
}

// VerifyToken проверяет подпись и срок действия сессионного токена.
func (a *AuthUseCase) VerifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, e.ErrInvalidToken
		}
		return a.cfg.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return e.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return e.ErrInvalidToken
	}

	return nil
}

func (a *AuthUseCase) issueToken() (string, error) {
	const op = "AuthUseCase.issueToken"

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(a.cfg.TokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	})

	signed, err := token.SignedString(a.cfg.JWTSecret)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	return signed, nil
}

// credentialsMatch сверяет пары за константное время.
func credentialsMatch(creds *domain.AdminCredentials, req *LoginReq) bool {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(req.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(req.Password)) == 1
	return userOK && passOK
}
