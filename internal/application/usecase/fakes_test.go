package usecase_test

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory de los repositorios
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	stocks    map[string]*entity.Stock
	updateErr error
}

func newFakeStockRepo(stocks ...*entity.Stock) *fakeStockRepo {
	r := &fakeStockRepo{stocks: map[string]*entity.Stock{}}
	for _, s := range stocks {
		r.stocks[s.ID] = s
	}
	return r
}

func (r *fakeStockRepo) Create(stock *entity.Stock) error {
	r.stocks[stock.ID] = stock
	return nil
}

func (r *fakeStockRepo) GetByID(id string) (*entity.Stock, error) {
	s, ok := r.stocks[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

func (r *fakeStockRepo) List(limit, offset int) ([]*entity.Stock, int, error) {
	var out []*entity.Stock
	for _, s := range r.stocks {
		out = append(out, s)
	}
	return out, len(out), nil
}

func (r *fakeStockRepo) Update(stock *entity.Stock) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.stocks[stock.ID] = stock
	return nil
}

func (r *fakeStockRepo) Delete(id string) error {
	delete(r.stocks, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
	createErr error
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.Movement, int, error) {
	return r.movements, len(r.movements), nil
}

func (r *fakeMovementRepo) Delete(id string) error { return nil }

type fakeNotificationRepo struct {
	notifications []*entity.Notification
	createErr     error
}

func (r *fakeNotificationRepo) Create(n *entity.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) GetByID(id string) (*entity.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, nil
}

func (r *fakeNotificationRepo) List() ([]*entity.Notification, error) {
	return r.notifications, nil
}

func (r *fakeNotificationRepo) Update(n *entity.Notification) error {
	for i, existing := range r.notifications {
		if existing.ID == n.ID {
			r.notifications[i] = n
		}
	}
	return nil
}

func (r *fakeNotificationRepo) Delete(id string) error { return nil }

type fakeSaleRepo struct {
	sales     []*entity.Sale
	lastLimit int // límite recibido en la última llamada a List
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.sales = append(r.sales, s)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, int, error) {
	r.lastLimit = limit
	return r.sales, len(r.sales), nil
}

func (r *fakeSaleRepo) FindByFullName(fullName string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if strings.Contains(strings.ToLower(s.FullName), strings.ToLower(fullName)) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) FindByDate(date time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		y1, m1, d1 := s.Date.Date()
		y2, m2, d2 := date.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListCredit() ([]*entity.Sale, int, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.HasCredit() {
			out = append(out, s)
		}
	}
	return out, len(out), nil
}

func (r *fakeSaleRepo) Update(s *entity.Sale) error { return nil }
func (r *fakeSaleRepo) Delete(id string) error      { return nil }

type fakeAnalyticsRepo struct {
	top     []repository.TopProductResult
	topErr  error
	windows []string // ventanas recibidas
}

func (r *fakeAnalyticsRepo) StockTotalValue(ctx context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeAnalyticsRepo) SaleTotalSum(ctx context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeAnalyticsRepo) SaleTotalForWindow(ctx context.Context, window string, now time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeAnalyticsRepo) SaleTotalByReturnReason(ctx context.Context, reason string, now time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeAnalyticsRepo) CountSalesAndCredit(ctx context.Context, now time.Time) (int, int, error) {
	return 0, 0, nil
}

func (r *fakeAnalyticsRepo) CountCreditDueAfter(ctx context.Context, moment time.Time) (int, error) {
	return 0, nil
}

func (r *fakeAnalyticsRepo) CountCreditDueBefore(ctx context.Context, moment time.Time) (int, error) {
	return 0, nil
}

func (r *fakeAnalyticsRepo) TopProducts(ctx context.Context, window string, now time.Time) ([]repository.TopProductResult, error) {
	r.windows = append(r.windows, window)
	return r.top, r.topErr
}

func (r *fakeAnalyticsRepo) ProducedAdjustments(ctx context.Context, window string, now time.Time) ([]repository.ProducedAdjustmentResult, error) {
	return nil, nil
}

// fixedNow reloj fijo para tests: 2024-05-15 10:00 UTC.
func fixedNow() time.Time {
	return time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
}

func fixedClock() func() time.Time {
	return func() time.Time { return fixedNow() }
}
