package service

import (
	"context"
	"strings"
	"time"

	"restaurante/internal/config"
	"restaurante/internal/dto"
	"restaurante/internal/model"
	"restaurante/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues the JWTs that gate the /admin routes.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.EmpleadoRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.EmpleadoRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func credencialesInvalidas() error {
	return &Error{Kind: ErrCredenciales, Message: "Credenciales inválidas"}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	emp, err := s.repo.ObtenerPorEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, credencialesInvalidas()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return nil, credencialesInvalidas()
	}
	return s.emitir(emp)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, &Error{Kind: ErrCredenciales, Message: "Refresh token inválido o expirado"}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, credencialesInvalidas()
	}
	// JSON numbers decode as float64
	rawID, ok := claims["empleado_id"].(float64)
	if !ok || rawID <= 0 {
		return nil, &Error{Kind: ErrCredenciales, Message: "Token mal formado"}
	}

	emp, err := s.repo.ObtenerPorID(ctx, uint(rawID))
	if err != nil {
		return nil, &Error{Kind: ErrCredenciales, Message: "Empleado no encontrado"}
	}
	return s.emitir(emp)
}

func (s *authService) emitir(emp *model.Empleado) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(emp, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(emp, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		Empleado:     mapEmpleado(*emp),
	}, nil
}

func (s *authService) generateToken(emp *model.Empleado, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"empleado_id": emp.ID,
		"email":       emp.Email,
		"rol":         emp.Rol,
		"exp":         time.Now().Add(duration).Unix(),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
