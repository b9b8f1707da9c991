package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

func rankedProducts() []repository.TopProductResult {
	return []repository.TopProductResult{
		{ProductID: "p1", TotalSold: 50, Name: "Harina 000"},
		{ProductID: "p2", TotalSold: 40, Name: "Azúcar"},
		{ProductID: "p3", TotalSold: 30, Name: "Deleted Product"},
		{ProductID: "p4", TotalSold: 20, Name: "Levadura"},
		{ProductID: "p5", TotalSold: 10, Name: "Sal"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ranking de productos vendidos
// ──────────────────────────────────────────────────────────────────────────────

// La página se corta después de agregar: Total refleja todos los productos del
// período, no los de la página.
func TestTopProducts_PaginaDespuesDeAgregar(t *testing.T) {
	repo := &fakeAnalyticsRepo{top: rankedProducts()}
	uc := usecase.NewAnalyticsUseCase(repo, fixedClock())

	out, err := uc.TopProducts(context.Background(), repository.WindowMonth, dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)

	assert.Equal(t, 5, out.Total, "el total cuenta todos los productos agregados")
	require.Len(t, out.Data, 2)
	assert.Equal(t, "p3", out.Data[0].ProductID)
	assert.Equal(t, "Deleted Product", out.Data[0].Name,
		"los stocks borrados conservan su lugar en el ranking")
	assert.Equal(t, "p4", out.Data[1].ProductID)
}

// Offset más allá del total → página vacía con el total intacto.
func TestTopProducts_OffsetFueraDeRango(t *testing.T) {
	repo := &fakeAnalyticsRepo{top: rankedProducts()}
	uc := usecase.NewAnalyticsUseCase(repo, fixedClock())

	out, err := uc.TopProducts(context.Background(), repository.WindowDay, dto.PageRequest{Limit: 10, Offset: 100})
	require.NoError(t, err)

	assert.Empty(t, out.Data)
	assert.Equal(t, 5, out.Total)
}

// Sin ventas en la ventana → página vacía, total cero.
func TestTopProducts_SinVentas(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := usecase.NewAnalyticsUseCase(repo, fixedClock())

	out, err := uc.TopProducts(context.Background(), repository.WindowYear, dto.PageRequest{})
	require.NoError(t, err)

	assert.Empty(t, out.Data)
	assert.Zero(t, out.Total)
}

// Ventana inválida propagada desde el repositorio → ErrInvalidInput.
func TestTopProducts_VentanaInvalida(t *testing.T) {
	repo := &fakeAnalyticsRepo{topErr: domain.ErrInvalidInput}
	uc := usecase.NewAnalyticsUseCase(repo, fixedClock())

	_, err := uc.TopProducts(context.Background(), "week", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La ventana pedida llega tal cual al repositorio.
func TestTopProducts_PropagaVentana(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	uc := usecase.NewAnalyticsUseCase(repo, fixedClock())

	_, err := uc.TopProducts(context.Background(), repository.WindowDay, dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, repo.windows, 1)
	assert.Equal(t, repository.WindowDay, repo.windows[0])
}
