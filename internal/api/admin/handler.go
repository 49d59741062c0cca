package admin

import (
	"context"
	"net/http"

	"controlemat/internal/domain"
	"controlemat/internal/pkg/logger"
	"controlemat/internal/pkg/response"
)

// ListsService define o acesso às listas administrativas.
type ListsService interface {
	GetAdminLists(ctx context.Context) (domain.AdminLists, error)
	SaveAdminLists(ctx context.Context, lists domain.AdminLists) (domain.AdminLists, error)
}

// AuthService define o login administrativo.
type AuthService interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
}

// Handler agrupa os handlers da área administrativa.
type Handler struct {
	Lists  ListsService
	Auth   AuthService
	Logger logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(lists ListsService, auth AuthService, log logger.Logger) *Handler {
	return &Handler{
		Lists:  lists,
		Auth:   auth,
		Logger: log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	response.Write(w, r, h.Logger, data, err, successStatus)
}

// GetListsHandler lida com a requisição GET /v1/admin/lists.
// @Summary Retorna as listas administrativas
// @Description Operadores, ruas e locais de entrega usados nos formulários. Na primeira leitura as listas padrão são gravadas.
// @Tags admin
// @Produce json
// @Success 200 {object} domain.AdminLists
// @Failure 503 {object} domain.ErrorResponse "Armazenamento indisponível"
// @Router /admin/lists [get]
func (h *Handler) GetListsHandler(w http.ResponseWriter, r *http.Request) {
	lists, err := h.Lists.GetAdminLists(r.Context())
	h.handleServiceResponse(w, r, lists, err, http.StatusOK)
}

// SaveListsHandler lida com a requisição PUT /v1/admin/lists.
// @Summary Substitui as listas administrativas
// @Description O registro é substituído por inteiro; listas omitidas ficam vazias.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lists body domain.AdminLists true "Listas completas"
// @Success 200 {object} domain.AdminLists
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Router /admin/lists [put]
func (h *Handler) SaveListsHandler(w http.ResponseWriter, r *http.Request) {
	var lists domain.AdminLists
	if err := response.DecodeJSON(w, r, &lists); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	saved, err := h.Lists.SaveAdminLists(r.Context(), lists)
	h.handleServiceResponse(w, r, saved, err, http.StatusOK)
}

// LoginHandler lida com a requisição POST /v1/admin/login.
// @Summary Autentica o administrador e retorna um JWT
// @Tags admin
// @Accept json
// @Produce json
// @Param login body domain.LoginRequest true "Credenciais administrativas"
// @Success 200 {object} domain.LoginResponse "Token JWT emitido"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /admin/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	resp, err := h.Auth.Login(r.Context(), req)
	h.handleServiceResponse(w, r, resp, err, http.StatusOK)
}
