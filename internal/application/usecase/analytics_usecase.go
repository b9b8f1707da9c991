package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// AnalyticsUseCase consultas agregadas sobre ventas, stock y movimientos.
// El reloj se inyecta para poder fijar las ventanas calendario en tests.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso de analítica.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository, now func() time.Time) *AnalyticsUseCase {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo, now: now}
}

// StockTotalValue valor total del inventario: SUM(price * current_stock).
func (uc *AnalyticsUseCase) StockTotalValue(ctx context.Context) (*dto.TotalResponse, error) {
	total, err := uc.analyticsRepo.StockTotalValue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalResponse{Total: total}, nil
}

// SaleTotalSum suma de Total_amount de todas las ventas.
func (uc *AnalyticsUseCase) SaleTotalSum(ctx context.Context) (*dto.TotalResponse, error) {
	total, err := uc.analyticsRepo.SaleTotalSum(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalResponse{Total: total}, nil
}

// SaleTotalForWindow suma de ventas de la ventana calendario actual
// (día/mes/año), excluyendo las ventas de tipo Batch.
func (uc *AnalyticsUseCase) SaleTotalForWindow(ctx context.Context, window string) (*dto.TotalResponse, error) {
	total, err := uc.analyticsRepo.SaleTotalForWindow(ctx, window, uc.now())
	if err != nil {
		return nil, err
	}
	return &dto.TotalResponse{Total: total}, nil
}

// SaleTotalByReturnReason suma de devoluciones del año en curso con la razón dada.
func (uc *AnalyticsUseCase) SaleTotalByReturnReason(ctx context.Context, reason string) (*dto.TotalResponse, error) {
	total, err := uc.analyticsRepo.SaleTotalByReturnReason(ctx, reason, uc.now())
	if err != nil {
		return nil, err
	}
	return &dto.TotalResponse{Total: total}, nil
}

// CountSalesAndCredit conteo de ventas del año y de las que llevan crédito.
func (uc *AnalyticsUseCase) CountSalesAndCredit(ctx context.Context) (*dto.SalesAndCreditResponse, error) {
	total, credit, err := uc.analyticsRepo.CountSalesAndCredit(ctx, uc.now())
	if err != nil {
		return nil, err
	}
	return &dto.SalesAndCreditResponse{TotalCount: total, CreditCount: credit}, nil
}

// CountFutureCreditDue créditos que vencen después de ahora.
func (uc *AnalyticsUseCase) CountFutureCreditDue(ctx context.Context) (*dto.CountResponse, error) {
	count, err := uc.analyticsRepo.CountCreditDueAfter(ctx, uc.now())
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: count}, nil
}

// CountPastCreditDue créditos vencidos antes de ahora.
func (uc *AnalyticsUseCase) CountPastCreditDue(ctx context.Context) (*dto.CountResponse, error) {
	count, err := uc.analyticsRepo.CountCreditDueBefore(ctx, uc.now())
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: count}, nil
}

// TopProducts ranking de productos por cantidad vendida en la ventana actual.
// El repositorio agrega y ordena el conjunto completo; la página se corta acá,
// después de agregar, así Total refleja todos los productos del período.
func (uc *AnalyticsUseCase) TopProducts(ctx context.Context, window string, page dto.PageRequest) (*dto.TopProductListResponse, error) {
	page.DefaultPage()
	rows, err := uc.analyticsRepo.TopProducts(ctx, window, uc.now())
	if err != nil {
		return nil, err
	}

	total := len(rows)
	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	out := make([]dto.TopProductDTO, 0, end-start)
	for _, row := range rows[start:end] {
		out = append(out, dto.TopProductDTO{
			ProductID: row.ProductID,
			TotalSold: row.TotalSold,
			Name:      row.Name,
		})
	}
	return &dto.TopProductListResponse{Data: out, Total: total}, nil
}

// ProducedAdjustments totales de ajustes positivos de productos producidos en
// la ventana actual.
func (uc *AnalyticsUseCase) ProducedAdjustments(ctx context.Context, window string) ([]dto.ProducedAdjustmentDTO, error) {
	rows, err := uc.analyticsRepo.ProducedAdjustments(ctx, window, uc.now())
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProducedAdjustmentDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ProducedAdjustmentDTO{Name: row.Name, TotalAdjustment: row.TotalAdjustment})
	}
	return out, nil
}
