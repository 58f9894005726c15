package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidFilter = "VAL_003" // Filtro com formato ou valor inválido

	// Erros de roteamento (4000-4999)
	ErrRouteNotFound    = "RTE_001" // Rota inexistente
	ErrMethodNotAllowed = "RTE_002" // Método não suportado pela rota

	// Erros de previsão (3000-3999), devolvidos no campo "code" das respostas com success=false
	ErrInsufficientHistory = "FCT_001" // Menos de 3 dias de vendas
	ErrNoProducts          = "FCT_002" // Nenhum produto ativo

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidFilter:    http.StatusBadRequest,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrInternalServer:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado.
// Success é sempre false para que o cliente possa tratar todas as respostas pelo mesmo campo.
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}
