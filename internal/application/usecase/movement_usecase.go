package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// MovementUseCase casos de uso del registro de movimientos. Los movimientos
// son append-only: se crean (manualmente o desde el ajuste de stock) y se
// consultan, nunca se modifican.
type MovementUseCase struct {
	movementRepo repository.MovementRepository
	now          func() time.Time
}

// NewMovementUseCase construye el caso de uso de movimientos.
func NewMovementUseCase(movementRepo repository.MovementRepository, now func() time.Time) *MovementUseCase {
	if now == nil {
		now = time.Now
	}
	return &MovementUseCase{movementRepo: movementRepo, now: now}
}

// Create registra un movimiento manual.
func (uc *MovementUseCase) Create(in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if in.Name == "" || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	movement := &entity.Movement{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		Name:       in.Name,
		Type:       in.Type,
		Adjustment: in.Adjustment,
		Date:       uc.now(),
		User:       in.User,
	}
	if err := uc.movementRepo.Create(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// List devuelve una página de movimientos ordenados por fecha descendente.
func (uc *MovementUseCase) List(page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	movements, total, err := uc.movementRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Data: out,
		Page: dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// GetByID devuelve un movimiento o ErrNotFound.
func (uc *MovementUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	movement, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(movement), nil
}

// Delete elimina un movimiento por id.
func (uc *MovementUseCase) Delete(id string) error {
	return uc.movementRepo.Delete(id)
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Name:       m.Name,
		Type:       m.Type,
		Adjustment: m.Adjustment,
		Date:       m.Date,
		User:       m.User,
	}
}
