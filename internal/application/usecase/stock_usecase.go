package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// StockUseCase casos de uso de inventario. El ajuste de stock (Update) registra
// un movimiento y, si la cantidad queda por debajo del nivel de reorden, emite
// una notificación de prioridad alta. Las tres escrituras son independientes:
// no hay transacción, un fallo posterior no revierte las anteriores.
type StockUseCase struct {
	stockRepo        repository.StockRepository
	movementRepo     repository.MovementRepository
	notificationRepo repository.NotificationRepository
	now              func() time.Time
}

// NewStockUseCase construye el caso de uso de stock.
func NewStockUseCase(
	stockRepo repository.StockRepository,
	movementRepo repository.MovementRepository,
	notificationRepo repository.NotificationRepository,
	now func() time.Time,
) *StockUseCase {
	if now == nil {
		now = time.Now
	}
	return &StockUseCase{
		stockRepo:        stockRepo,
		movementRepo:     movementRepo,
		notificationRepo: notificationRepo,
		now:              now,
	}
}

// Create da de alta un stock. imageName es el nombre del archivo de imagen ya
// guardado por el caller; vacío si no se subió imagen.
func (uc *StockUseCase) Create(in dto.CreateStockRequest, imageName string) (*dto.StockResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == "" {
		in.Type = entity.StockTypeFinished
	}
	stock := &entity.Stock{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		CurrentStock: in.CurrentStock,
		Price:        in.Price,
		ReorderLevel: in.ReorderLevel,
		Location:     in.Location,
		Type:         in.Type,
		ProductImage: imageName,
	}
	if err := uc.stockRepo.Create(stock); err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// List devuelve una página de stocks con el total.
func (uc *StockUseCase) List(page dto.PageRequest) (*dto.StockListResponse, error) {
	page.DefaultPage()
	stocks, total, err := uc.stockRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, *toStockResponse(s))
	}
	return &dto.StockListResponse{
		Data: out,
		Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByID devuelve un stock o ErrNotFound.
func (uc *StockUseCase) GetByID(id string) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	return toStockResponse(stock), nil
}

// Update ejecuta el flujo de ajuste de stock:
//
//  1. carga el stock (ErrNotFound si no existe),
//  2. registra un movimiento tipo Modification con el delta entre la cantidad
//     nueva y la actual, a nombre de actingUser,
//  3. si la cantidad nueva queda por debajo del nivel de reorden nuevo, crea
//     una notificación de prioridad High,
//  4. persiste el stock con los campos nuevos.
//
// El orden importa: movimiento y notificación se escriben antes que el stock
// y sobreviven aunque la escritura final falle.
func (uc *StockUseCase) Update(id string, in dto.UpdateStockRequest, actingUser string, imageName string) (*dto.StockResponse, error) {
	if in.CurrentStock == nil || in.ReorderLevel == nil {
		return nil, domain.ErrInvalidInput
	}

	stock, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}

	delta := *in.CurrentStock - stock.CurrentStock

	if in.Name != nil {
		stock.Name = *in.Name
	}
	if in.Category != nil {
		stock.Category = *in.Category
	}
	if in.Price != nil {
		stock.Price = *in.Price
	}
	if in.Location != nil {
		stock.Location = *in.Location
	}
	if in.Type != nil {
		stock.Type = *in.Type
	}
	if imageName != "" {
		stock.ProductImage = imageName
	}
	stock.CurrentStock = *in.CurrentStock
	stock.ReorderLevel = *in.ReorderLevel

	movement := &entity.Movement{
		ID:         uuid.New().String(),
		ProductID:  stock.ID,
		Name:       stock.Name,
		Type:       entity.MovementTypeModification,
		Adjustment: delta,
		Date:       uc.now(),
		User:       actingUser,
	}
	if err := uc.movementRepo.Create(movement); err != nil {
		return nil, fmt.Errorf("registrar movimiento de ajuste: %w", err)
	}

	if *in.CurrentStock < *in.ReorderLevel {
		notification := &entity.Notification{
			ID:        uuid.New().String(),
			Message:   fmt.Sprintf("%s is running low on stock.", stock.Name),
			Priority:  entity.PriorityHigh,
			CreatedAt: uc.now(),
		}
		if err := uc.notificationRepo.Create(notification); err != nil {
			return nil, fmt.Errorf("crear notificación de stock bajo: %w", err)
		}
	}

	if err := uc.stockRepo.Update(stock); err != nil {
		return nil, fmt.Errorf("actualizar stock: %w", err)
	}
	return toStockResponse(stock), nil
}

// Delete elimina un stock por id.
func (uc *StockUseCase) Delete(id string) error {
	return uc.stockRepo.Delete(id)
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		CurrentStock: s.CurrentStock,
		Price:        s.Price,
		ReorderLevel: s.ReorderLevel,
		Location:     s.Location,
		Type:         s.Type,
		ProductImage: s.ProductImage,
	}
}
