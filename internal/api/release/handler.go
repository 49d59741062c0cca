package release

import (
	"context"
	"net/http"

	"controlemat/internal/domain"
	"controlemat/internal/pkg/logger"
	"controlemat/internal/pkg/response"
)

// ReleaseService define o contrato que o Handler espera da fachada de registros.
type ReleaseService interface {
	SearchReleases(ctx context.Context, q string) ([]domain.Release, error)
	CreateRelease(ctx context.Context, in domain.ReleaseInput) (domain.Release, error)
	UpdateRelease(ctx context.Context, r domain.Release) (domain.Release, error)
	DeleteRelease(ctx context.Context, id string) error
}

// Handler agrupa os handlers de liberações de material.
type Handler struct {
	Service ReleaseService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ReleaseService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	response.Write(w, r, h.Logger, data, err, successStatus)
}

// ListReleasesHandler lida com a requisição GET /v1/releases.
// @Summary Lista as liberações de material
// @Description Retorna as liberações das mais novas para as mais antigas. O parâmetro q filtra por texto em qualquer campo exibido.
// @Tags releases
// @Produce json
// @Param q query string false "Texto de busca (sem diferenciar maiúsculas)"
// @Success 200 {array} domain.Release
// @Failure 503 {object} domain.ErrorResponse "Armazenamento indisponível"
// @Router /releases [get]
func (h *Handler) ListReleasesHandler(w http.ResponseWriter, r *http.Request) {
	releases, err := h.Service.SearchReleases(r.Context(), r.URL.Query().Get("q"))
	h.handleServiceResponse(w, r, releases, err, http.StatusOK)
}

// CreateReleaseHandler lida com a requisição POST /v1/releases.
// @Summary Cria uma liberação de material
// @Description Aloca o ID de exibição no mês da data da liberação e grava o registro.
// @Tags releases
// @Accept json
// @Produce json
// @Param release body domain.ReleaseInput true "Dados da liberação"
// @Success 201 {object} domain.Release
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 503 {object} domain.ErrorResponse "Falha ao consultar a sequência do mês"
// @Failure 500 {object} domain.ErrorResponse "Falha de escrita"
// @Router /releases [post]
func (h *Handler) CreateReleaseHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.ReleaseInput
	if err := response.DecodeJSON(w, r, &in); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	created, err := h.Service.CreateRelease(r.Context(), in)
	h.handleServiceResponse(w, r, created, err, http.StatusCreated)
}

// UpdateReleaseHandler lida com a requisição PUT /v1/releases/{id}.
// @Summary Atualiza uma liberação
// @Description Sobrescreve os campos editáveis. id e displayId nunca mudam; o id do caminho prevalece sobre o do corpo.
// @Tags releases
// @Accept json
// @Produce json
// @Param id path string true "ID da liberação"
// @Param release body domain.Release true "Dados da liberação"
// @Success 200 {object} domain.Release
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Liberação não encontrada"
// @Router /releases/{id} [put]
func (h *Handler) UpdateReleaseHandler(w http.ResponseWriter, r *http.Request) {
	var rel domain.Release
	if err := response.DecodeJSON(w, r, &rel); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	rel.ID = r.PathValue("id")

	updated, err := h.Service.UpdateRelease(r.Context(), rel)
	h.handleServiceResponse(w, r, updated, err, http.StatusOK)
}

// DeleteReleaseHandler lida com a requisição DELETE /v1/releases/{id}.
// @Summary Exclui uma liberação
// @Tags releases
// @Param id path string true "ID da liberação"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse "Liberação não encontrada"
// @Router /releases/{id} [delete]
func (h *Handler) DeleteReleaseHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteRelease(r.Context(), r.PathValue("id"))
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
