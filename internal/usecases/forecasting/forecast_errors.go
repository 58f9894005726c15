package forecasting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-forecast-api/pkg/apiErrors"
)

// Erros específicos para o contexto de previsões
var (
	// Dados insuficientes: resultado esperado, não é uma falha do serviço
	ErrInsufficientSalesData = errors.New("insufficient data (minimum 3 days required)")
	ErrNoProducts            = errors.New("no products found")

	// Falhas de infraestrutura e de cálculo
	ErrDataSourceUnavailable = errors.New("data source unavailable")
	ErrComputationFault      = errors.New("forecast computation fault")
)

// ForecastError é um erro com contexto adicional para as previsões
type ForecastError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ForecastError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ForecastError) Unwrap() error {
	return e.Err
}

// NewForecastError cria um novo ForecastError
func NewForecastError(err error, code string, details string) *ForecastError {
	return &ForecastError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsInsufficientData informa se o erro representa falta de histórico ou de produtos.
// Esses casos vão no campo "message" da resposta; os demais vão em "error".
func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientSalesData) || errors.Is(err, ErrNoProducts)
}

// classify converte o erro de uma operação em ForecastError com o código da API
func classify(err error) *ForecastError {
	switch {
	case errors.Is(err, ErrInsufficientSalesData):
		return NewForecastError(err, apiErrors.ErrInsufficientHistory, "")
	case errors.Is(err, ErrNoProducts):
		return NewForecastError(err, apiErrors.ErrNoProducts, "")
	default:
		return NewForecastError(ErrDataSourceUnavailable, apiErrors.ErrDatabaseOperation, err.Error())
	}
}
