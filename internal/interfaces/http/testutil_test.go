package http_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/laminasur/backoffice-api/internal/application/directory"
	"github.com/laminasur/backoffice-api/internal/application/sales"
	"github.com/laminasur/backoffice-api/internal/application/stock"
	"github.com/laminasur/backoffice-api/internal/domain"
	"github.com/laminasur/backoffice-api/internal/domain/entity"
	"github.com/laminasur/backoffice-api/internal/domain/repository"
	httpRouter "github.com/laminasur/backoffice-api/internal/interfaces/http"
)

// Fakes en memoria para los tests de handlers. Replican el contrato de los
// repositorios de postgres lo justo para ejercitar las rutas.

type ledgerStore struct {
	mu        sync.Mutex
	movements []*entity.StockMovement
	balances  map[string]*entity.CurrentStock
	nextID    int64
	failTx    error // si no es nil, el runner falla con este error
}

func newLedgerStore() *ledgerStore {
	return &ledgerStore{balances: make(map[string]*entity.CurrentStock)}
}

func (s *ledgerStore) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.CurrentStockRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failTx != nil {
		return s.failTx
	}
	return fn(&ledgerMovRepo{store: s}, &ledgerStockRepo{store: s})
}

type ledgerMovRepo struct{ store *ledgerStore }

func (r *ledgerMovRepo) Create(_ context.Context, m *entity.StockMovement) (int64, error) {
	r.store.nextID++
	m.ID = r.store.nextID
	m.CreatedAt = time.Now()
	r.store.movements = append(r.store.movements, m)
	return m.ID, nil
}

func (r *ledgerMovRepo) List(_ context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	if offset >= len(r.store.movements) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.store.movements) {
		end = len(r.store.movements)
	}
	return r.store.movements[offset:end], nil
}

type ledgerStockRepo struct{ store *ledgerStore }

func (r *ledgerStockRepo) ApplyDelta(_ context.Context, ref entity.Referencia, delta int) error {
	key := ref.ID()
	cs, ok := r.store.balances[key]
	if !ok {
		cs = &entity.CurrentStock{
			ReferenciaID: key,
			TipoProducto: ref.TipoProducto,
			Ancho:        ref.Ancho,
			Calibre:      ref.Calibre,
			Peso:         ref.Peso,
		}
		r.store.balances[key] = cs
	}
	cs.CantidadActual += delta
	cs.LastUpdated = time.Now()
	return nil
}

func (r *ledgerStockRepo) List(_ context.Context) ([]*entity.CurrentStock, error) {
	out := make([]*entity.CurrentStock, 0, len(r.store.balances))
	for _, cs := range r.store.balances {
		out = append(out, cs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReferenciaID < out[j].ReferenciaID })
	return out, nil
}

// Los repos de lectura fuera de tx comparten el mismo store.

type readMovRepo struct{ store *ledgerStore }

func (r *readMovRepo) Create(_ context.Context, _ *entity.StockMovement) (int64, error) {
	return 0, errors.New("solo lectura")
}

func (r *readMovRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&ledgerMovRepo{store: r.store}).List(ctx, limit, offset)
}

type readStockRepo struct{ store *ledgerStore }

func (r *readStockRepo) ApplyDelta(_ context.Context, _ entity.Referencia, _ int) error {
	return errors.New("solo lectura")
}

func (r *readStockRepo) List(ctx context.Context) ([]*entity.CurrentStock, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&ledgerStockRepo{store: r.store}).List(ctx)
}

type clienteStore struct {
	mu       sync.Mutex
	clientes []*entity.Cliente
	nextID   int64
}

func (s *clienteStore) Create(_ context.Context, c *entity.Cliente) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existente := range s.clientes {
		if existente.Nombre == c.Nombre {
			return 0, domain.ErrDuplicate
		}
	}
	s.nextID++
	c.ID = s.nextID
	c.CreatedAt = time.Now()
	s.clientes = append(s.clientes, c)
	return c.ID, nil
}

func (s *clienteStore) List(_ context.Context, search string) ([]*entity.Cliente, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Cliente, 0, len(s.clientes))
	for _, c := range s.clientes {
		if search == "" || strings.Contains(strings.ToLower(c.Nombre), strings.ToLower(search)) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

type orderStore struct {
	mu     sync.Mutex
	orders map[int64]*entity.SalesOrder
	nextID int64
}

func newOrderStore() *orderStore {
	return &orderStore{orders: make(map[int64]*entity.SalesOrder)}
}

func (s *orderStore) RunSales(_ context.Context, fn func(repository.SalesOrderRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

func (s *orderStore) Create(_ context.Context, o *entity.SalesOrder) (int64, error) {
	s.nextID++
	o.ID = s.nextID
	s.orders[o.ID] = o
	return o.ID, nil
}

func (s *orderStore) CreateItem(_ context.Context, it *entity.SalesOrderItem) error {
	o, ok := s.orders[it.PedidoID]
	if !ok {
		return errors.New("pedido no encontrado")
	}
	o.Items = append(o.Items, it)
	return nil
}

func (s *orderStore) ListWithItems(_ context.Context) ([]*entity.SalesOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.SalesOrder, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *orderStore) UpdatePayment(_ context.Context, id int64, estado string, fechaPago *time.Time, abono decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.EstadoFactura = estado
	o.FechaPago = fechaPago
	o.ValorAbono = abono
	return nil
}

type testEnv struct {
	app     *fiber.App
	ledger  *ledgerStore
	cliente *clienteStore
	orders  *orderStore
}

func newTestApp() *testEnv {
	ledgerSt := newLedgerStore()
	clienteSt := &clienteStore{}
	orderSt := newOrderStore()

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:    stock.NewLedgerUseCase(ledgerSt, &readMovRepo{store: ledgerSt}, &readStockRepo{store: ledgerSt}),
		ClienteUC: directory.NewClienteUseCase(clienteSt),
		OrderUC:   sales.NewOrderUseCase(orderSt, orderSt),
	})
	return &testEnv{app: app, ledger: ledgerSt, cliente: clienteSt, orders: orderSt}
}
