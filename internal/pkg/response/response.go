// Package response padroniza as respostas JSON da API, inclusive as de erro.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"controlemat/internal/domain"
	apperror "controlemat/internal/errors"
	"controlemat/internal/pkg/logger"
)

// Write envia data com successStatus quando err é nil; caso contrário traduz
// err para o status HTTP e o corpo domain.ErrorResponse.
func Write(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err == nil {
		JSON(w, log, successStatus, data)
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	JSON(w, log, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// JSON codifica data (se não for nil) com o status informado.
func JSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// MaxBodyBytes limita o corpo das requisições JSON.
const MaxBodyBytes = 1 << 20

// DecodeJSON lê o corpo da requisição em dst. Corpo inválido vira ValidationError.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidationError("Payload JSON inválido.")
	}
	return nil
}
