package authservice

import (
	"context"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"controlemat/internal/domain"
	apperror "controlemat/internal/errors"
	"controlemat/internal/pkg/logger"
)

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(subject string, role string) (string, error)
}

// Credentials é a credencial administrativa única, vinda da configuração.
// PasswordHash vazio desativa o login.
type Credentials struct {
	Username     string
	PasswordHash string
}

// Service autentica o administrador das listas.
type Service struct {
	creds    Credentials
	tokenSvc TokenService
	logger   logger.Logger
}

// NewService cria o serviço de login administrativo.
func NewService(creds Credentials, tokenSvc TokenService, logger logger.Logger) *Service {
	return &Service{creds: creds, tokenSvc: tokenSvc, logger: logger}
}

// Enabled informa se há credencial configurada.
func (s *Service) Enabled() bool {
	return s.creds.PasswordHash != ""
}

// Login confere usuário e senha (bcrypt) e emite um JWT com o papel admin.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if !s.Enabled() {
		s.logger.Warn("Tentativa de login com a área administrativa desativada.", nil)
		return domain.LoginResponse{}, apperror.NewUnauthorizedError("Login administrativo desativado.")
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return domain.LoginResponse{}, apperror.NewUnauthorizedError("Usuário e senha são obrigatórios.")
	}

	// A senha é sempre comparada, mesmo com usuário errado, para não revelar qual campo falhou.
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.creds.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		s.logger.Info("Credenciais administrativas inválidas.", map[string]interface{}{"username": req.Username})
		return domain.LoginResponse{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	tokenString, err := s.tokenSvc.GenerateToken(s.creds.Username, string(domain.RoleAdmin))
	if err != nil {
		s.logger.Error("Falha ao gerar token de autenticação.", err)
		return domain.LoginResponse{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login administrativo realizado.", map[string]interface{}{"username": req.Username})
	return domain.LoginResponse{Token: tokenString}, nil
}
