package fiberstock

import (
	"context"
	"net/http"

	"controlemat/internal/domain"
	"controlemat/internal/pkg/logger"
	"controlemat/internal/pkg/response"
)

// FiberStockService define o contrato que o Handler espera da fachada de registros.
type FiberStockService interface {
	SearchFiberStock(ctx context.Context, q string) ([]domain.FiberStockItem, error)
	CreateFiberStockItem(ctx context.Context, in domain.FiberStockInput) (domain.FiberStockItem, error)
	ImportFiberStockItems(ctx context.Context, inputs []domain.FiberStockInput) ([]domain.FiberStockItem, error)
	UpdateFiberStockItem(ctx context.Context, item domain.FiberStockItem) (domain.FiberStockItem, error)
	DeleteFiberStockItem(ctx context.Context, id string) error
}

// Handler agrupa os handlers do estoque de fibras.
type Handler struct {
	Service FiberStockService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc FiberStockService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	response.Write(w, r, h.Logger, data, err, successStatus)
}

// ListFiberStockHandler lida com a requisição GET /v1/fiber-stock.
// @Summary Lista o estoque de fibras
// @Tags fiber-stock
// @Produce json
// @Param q query string false "Texto de busca (sem diferenciar maiúsculas)"
// @Success 200 {array} domain.FiberStockItem
// @Failure 503 {object} domain.ErrorResponse "Armazenamento indisponível"
// @Router /fiber-stock [get]
func (h *Handler) ListFiberStockHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.SearchFiberStock(r.Context(), r.URL.Query().Get("q"))
	h.handleServiceResponse(w, r, items, err, http.StatusOK)
}

// CreateFiberStockItemHandler lida com a requisição POST /v1/fiber-stock.
// @Summary Cria um item no estoque de fibras
// @Description O ID de exibição é alocado no mês corrente.
// @Tags fiber-stock
// @Accept json
// @Produce json
// @Param item body domain.FiberStockInput true "Dados do item"
// @Success 201 {object} domain.FiberStockItem
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 503 {object} domain.ErrorResponse "Falha ao consultar a sequência do mês"
// @Router /fiber-stock [post]
func (h *Handler) CreateFiberStockItemHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.FiberStockInput
	if err := response.DecodeJSON(w, r, &in); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	created, err := h.Service.CreateFiberStockItem(r.Context(), in)
	h.handleServiceResponse(w, r, created, err, http.StatusCreated)
}

// ImportFiberStockHandler lida com a requisição POST /v1/fiber-stock/import.
// @Summary Importa itens em lote
// @Description Recebe as linhas já lidas da planilha. Os itens recebem IDs de exibição contíguos, na ordem enviada. Uma linha de cabeçalho (material = "MATERIAL") é ignorada.
// @Tags fiber-stock
// @Accept json
// @Produce json
// @Param items body []domain.FiberStockInput true "Linhas a importar"
// @Success 201 {array} domain.FiberStockItem
// @Failure 400 {object} domain.ErrorResponse "Linha inválida; nada foi gravado"
// @Router /fiber-stock/import [post]
func (h *Handler) ImportFiberStockHandler(w http.ResponseWriter, r *http.Request) {
	var inputs []domain.FiberStockInput
	if err := response.DecodeJSON(w, r, &inputs); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	items, err := h.Service.ImportFiberStockItems(r.Context(), inputs)
	h.handleServiceResponse(w, r, items, err, http.StatusCreated)
}

// UpdateFiberStockItemHandler lida com a requisição PUT /v1/fiber-stock/{id}.
// @Summary Atualiza um item do estoque
// @Tags fiber-stock
// @Accept json
// @Produce json
// @Param id path string true "ID do item"
// @Param item body domain.FiberStockItem true "Dados do item"
// @Success 200 {object} domain.FiberStockItem
// @Failure 404 {object} domain.ErrorResponse "Item não encontrado"
// @Router /fiber-stock/{id} [put]
func (h *Handler) UpdateFiberStockItemHandler(w http.ResponseWriter, r *http.Request) {
	var item domain.FiberStockItem
	if err := response.DecodeJSON(w, r, &item); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}
	item.ID = r.PathValue("id")

	updated, err := h.Service.UpdateFiberStockItem(r.Context(), item)
	h.handleServiceResponse(w, r, updated, err, http.StatusOK)
}

// DeleteFiberStockItemHandler lida com a requisição DELETE /v1/fiber-stock/{id}.
// @Summary Exclui um item do estoque
// @Tags fiber-stock
// @Param id path string true "ID do item"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse "Item não encontrado"
// @Router /fiber-stock/{id} [delete]
func (h *Handler) DeleteFiberStockItemHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.DeleteFiberStockItem(r.Context(), r.PathValue("id"))
	h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
}
