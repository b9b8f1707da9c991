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

// creditDueLayout formato de fecha de vencimiento de crédito en requests.
const creditDueLayout = "2006-01-02"

// SaleUseCase casos de uso de ventas: alta con crédito opcional, consultas por
// cliente y fecha, y corrección/baja.
type SaleUseCase struct {
	saleRepo repository.SaleRepository
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso de ventas.
func NewSaleUseCase(saleRepo repository.SaleRepository, now func() time.Time) *SaleUseCase {
	if now == nil {
		now = time.Now
	}
	return &SaleUseCase{saleRepo: saleRepo, now: now}
}

// Create registra una venta. receiptName es el nombre del comprobante ya
// guardado por el caller; vacío si no se adjuntó.
func (uc *SaleUseCase) Create(in dto.CreateSaleRequest, receiptName string) (*dto.SaleResponse, error) {
	if in.FullName == "" || in.TransactionID == "" {
		return nil, domain.ErrInvalidInput
	}

	creditDue, err := parseCreditDue(in.CreditDue)
	if err != nil {
		return nil, err
	}

	saleType := in.SaleType
	if saleType == "" {
		saleType = entity.SaleTypeNormal
	}

	sale := &entity.Sale{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		FullName:      in.FullName,
		Contact:       in.Contact,
		Amount:        in.Amount,
		Quantity:      in.Quantity,
		PaymentMethod: in.PaymentMethod,
		TotalAmount:   in.TotalAmount,
		CreditDue:     creditDue,
		Credit:        in.Credit,
		Receipt:       receiptName,
		TransactionID: in.TransactionID,
		ReturnReason:  in.ReturnReason,
		SaleType:      saleType,
		Date:          uc.now(),
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List devuelve una página de ventas ordenadas por fecha descendente.
func (uc *SaleUseCase) List(page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, total, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toSaleListResponse(sales, dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}), nil
}

// GetByID devuelve una venta o ErrNotFound.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// FindByFullName busca ventas por nombre de cliente (substring,
// case-insensitive). ErrNotFound si no hay coincidencias.
func (uc *SaleUseCase) FindByFullName(fullName string) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.FindByFullName(fullName)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, domain.ErrNotFound
	}
	return toSaleResponses(sales), nil
}

// FindByDate devuelve las ventas del día calendario dado ("2006-01-02").
// ErrNotFound si no hubo ventas ese día.
func (uc *SaleUseCase) FindByDate(date string) ([]dto.SaleResponse, error) {
	day, err := time.Parse(creditDueLayout, date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.saleRepo.FindByDate(day)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, domain.ErrNotFound
	}
	return toSaleResponses(sales), nil
}

// ListCredit devuelve las ventas con crédito pendiente distinto de cero.
func (uc *SaleUseCase) ListCredit() (*dto.SaleListResponse, error) {
	sales, total, err := uc.saleRepo.ListCredit()
	if err != nil {
		return nil, err
	}
	return toSaleListResponse(sales, dto.PageResponse{Limit: total, Offset: 0, Total: total}), nil
}

// Update corrige los campos presentes de una venta.
func (uc *SaleUseCase) Update(id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	if in.FullName != nil {
		sale.FullName = *in.FullName
	}
	if in.Contact != nil {
		sale.Contact = *in.Contact
	}
	if in.Amount != nil {
		sale.Amount = *in.Amount
	}
	if in.Quantity != nil {
		sale.Quantity = *in.Quantity
	}
	if in.PaymentMethod != nil {
		sale.PaymentMethod = *in.PaymentMethod
	}
	if in.TotalAmount != nil {
		sale.TotalAmount = *in.TotalAmount
	}
	if in.CreditDue != nil {
		creditDue, err := parseCreditDue(*in.CreditDue)
		if err != nil {
			return nil, err
		}
		sale.CreditDue = creditDue
	}
	if in.Credit != nil {
		sale.Credit = in.Credit
	}
	if in.ReturnReason != nil {
		sale.ReturnReason = *in.ReturnReason
	}
	if in.SaleType != nil {
		sale.SaleType = *in.SaleType
	}

	if err := uc.saleRepo.Update(sale); err != nil {
		return nil, fmt.Errorf("actualizar venta: %w", err)
	}
	return toSaleResponse(sale), nil
}

// Delete elimina una venta por id.
func (uc *SaleUseCase) Delete(id string) error {
	return uc.saleRepo.Delete(id)
}

// parseCreditDue interpreta la fecha de vencimiento; vacío = sin crédito.
func parseCreditDue(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	due, err := time.Parse(creditDueLayout, raw)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &due, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:            s.ID,
		ProductID:     s.ProductID,
		FullName:      s.FullName,
		Contact:       s.Contact,
		Amount:        s.Amount,
		Quantity:      s.Quantity,
		PaymentMethod: s.PaymentMethod,
		TotalAmount:   s.TotalAmount,
		CreditDue:     s.CreditDue,
		Credit:        s.Credit,
		Receipt:       s.Receipt,
		TransactionID: s.TransactionID,
		ReturnReason:  s.ReturnReason,
		SaleType:      s.SaleType,
		Date:          s.Date,
	}
}

func toSaleResponses(sales []*entity.Sale) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return out
}

func toSaleListResponse(sales []*entity.Sale, page dto.PageResponse) *dto.SaleListResponse {
	return &dto.SaleListResponse{Data: toSaleResponses(sales), Page: page}
}
