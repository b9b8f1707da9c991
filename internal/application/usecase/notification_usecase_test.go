package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

func decPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func saleWithCredit(id, fullName string, due time.Time, credit int64) *entity.Sale {
	return &entity.Sale{
		ID:        id,
		FullName:  fullName,
		CreditDue: &due,
		Credit:    decPtr(credit),
		Date:      due.AddDate(0, 0, -30),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Barrido de créditos por vencer
// ──────────────────────────────────────────────────────────────────────────────

// El barrido notifica los créditos cuyo vencimiento cae en el día calendario
// de hoy, sin importar la hora.
func TestCheckCreditDue_NotificaVencimientosDeHoy(t *testing.T) {
	today := fixedNow() // 2024-05-15 10:00 UTC
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		saleWithCredit("s1", "Juan Pérez", time.Date(2024, 5, 15, 23, 59, 0, 0, time.UTC), 5000),
		saleWithCredit("s2", "María López", time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), 3000),
		saleWithCredit("s3", "Pedro Gómez", time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), 1000),
	}}
	notificationRepo := &fakeNotificationRepo{}
	uc := usecase.NewNotificationUseCase(notificationRepo, saleRepo, func() time.Time { return today })

	created, err := uc.CheckCreditDue()
	require.NoError(t, err)

	assert.Equal(t, 2, created, "solo s1 y s3 vencen hoy")
	require.Len(t, notificationRepo.notifications, 2)
	assert.Equal(t, "Juan Pérez's credit due today.", notificationRepo.notifications[0].Message)
	assert.Equal(t, entity.PriorityHigh, notificationRepo.notifications[0].Priority)
	assert.Equal(t, "Pedro Gómez's credit due today.", notificationRepo.notifications[1].Message)
}

// Solo la fecha de vencimiento decide: las ventas sin fecha se ignoran.
func TestCheckCreditDue_IgnoraVentasSinVencimiento(t *testing.T) {
	today := fixedNow()
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		{ID: "s1", FullName: "Sin Vencimiento", Date: today},
		{ID: "s2", FullName: "Con Crédito Sin Fecha", Credit: decPtr(5000), Date: today},
	}}
	notificationRepo := &fakeNotificationRepo{}
	uc := usecase.NewNotificationUseCase(notificationRepo, saleRepo, func() time.Time { return today })

	created, err := uc.CheckCreditDue()
	require.NoError(t, err)

	assert.Zero(t, created)
	assert.Empty(t, notificationRepo.notifications)
}

// El monto del crédito no condiciona el aviso: una venta con vencimiento hoy
// se notifica aunque el crédito sea cero o ni siquiera esté cargado.
func TestCheckCreditDue_NotificaSinImportarElMonto(t *testing.T) {
	today := fixedNow()
	zero := decimal.Zero
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		{ID: "s1", FullName: "Crédito Cero", CreditDue: &today, Credit: &zero, Date: today},
		{ID: "s2", FullName: "Crédito Sin Cargar", CreditDue: &today, Date: today},
	}}
	notificationRepo := &fakeNotificationRepo{}
	uc := usecase.NewNotificationUseCase(notificationRepo, saleRepo, func() time.Time { return today })

	created, err := uc.CheckCreditDue()
	require.NoError(t, err)

	assert.Equal(t, 2, created)
	require.Len(t, notificationRepo.notifications, 2)
	assert.Equal(t, "Crédito Cero's credit due today.", notificationRepo.notifications[0].Message)
	assert.Equal(t, "Crédito Sin Cargar's credit due today.", notificationRepo.notifications[1].Message)
}

// El barrido no deduplica: dos corridas el mismo día duplican las
// notificaciones de los mismos créditos.
func TestCheckCreditDue_DosCorridasDuplicanNotificaciones(t *testing.T) {
	today := fixedNow()
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		saleWithCredit("s1", "Juan Pérez", today, 5000),
	}}
	notificationRepo := &fakeNotificationRepo{}
	uc := usecase.NewNotificationUseCase(notificationRepo, saleRepo, func() time.Time { return today })

	_, err := uc.CheckCreditDue()
	require.NoError(t, err)
	_, err = uc.CheckCreditDue()
	require.NoError(t, err)

	assert.Len(t, notificationRepo.notifications, 2,
		"la segunda corrida vuelve a notificar el mismo crédito")
}

// El barrido lee todas las ventas en una sola página sin límite práctico.
func TestCheckCreditDue_LeePaginaSinLimitePractico(t *testing.T) {
	saleRepo := &fakeSaleRepo{}
	uc := usecase.NewNotificationUseCase(&fakeNotificationRepo{}, saleRepo, fixedClock())

	_, err := uc.CheckCreditDue()
	require.NoError(t, err)

	assert.Equal(t, 500000, saleRepo.lastLimit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Marcar como leída
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkAsRead_SellaReadAt(t *testing.T) {
	notificationRepo := &fakeNotificationRepo{}
	uc := usecase.NewNotificationUseCase(notificationRepo, &fakeSaleRepo{}, fixedClock())

	created, err := uc.Create(dto.CreateNotificationRequest{Message: "hola"})
	require.NoError(t, err)

	out, err := uc.MarkAsRead(created.ID, true)
	require.NoError(t, err)
	assert.True(t, out.IsRead)
	require.NotNil(t, out.ReadAt)
	assert.Equal(t, fixedNow(), *out.ReadAt)

	// Volver a no leída limpia el sello.
	out, err = uc.MarkAsRead(created.ID, false)
	require.NoError(t, err)
	assert.False(t, out.IsRead)
	assert.Nil(t, out.ReadAt)
}

func TestNotificationCreate_PrioridadNormalPorDefecto(t *testing.T) {
	uc := usecase.NewNotificationUseCase(&fakeNotificationRepo{}, &fakeSaleRepo{}, fixedClock())

	out, err := uc.Create(dto.CreateNotificationRequest{Message: "aviso manual"})
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityNormal, out.Priority)
	assert.Equal(t, fixedNow(), out.CreatedAt)
}
