package stock_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laminasur/backoffice-api/internal/application/stock"
	"github.com/laminasur/backoffice-api/internal/domain"
	"github.com/laminasur/backoffice-api/internal/domain/entity"
	"github.com/laminasur/backoffice-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: las escrituras se preparan
// en un buffer y solo se aplican al store en el commit. Un fallo en
// cualquier paso descarta todo el buffer, como el Rollback de la BD.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	movements []*entity.StockMovement
	balances  map[string]*entity.CurrentStock
	nextID    int64
	failApply error // si no es nil, ApplyDelta falla con este error
}

func newMemStore() *memStore {
	return &memStore{balances: make(map[string]*entity.CurrentStock)}
}

type stagedDelta struct {
	ref   entity.Referencia
	delta int
}

type memTx struct {
	store  *memStore
	movs   []*entity.StockMovement
	deltas []stagedDelta
}

func (t *memTx) commit() {
	for _, m := range t.movs {
		t.store.nextID++
		m.ID = t.store.nextID
		m.CreatedAt = time.Now()
		t.store.movements = append(t.store.movements, m)
	}
	for _, d := range t.deltas {
		key := d.ref.ID()
		cs, ok := t.store.balances[key]
		if !ok {
			cs = &entity.CurrentStock{
				ReferenciaID: key,
				TipoProducto: d.ref.TipoProducto,
				Ancho:        d.ref.Ancho,
				Calibre:      d.ref.Calibre,
				Peso:         d.ref.Peso,
			}
			t.store.balances[key] = cs
		}
		cs.CantidadActual += d.delta
		cs.LastUpdated = time.Now()
	}
}

type memMovRepo struct{ tx *memTx }

func (r *memMovRepo) Create(_ context.Context, m *entity.StockMovement) (int64, error) {
	r.tx.movs = append(r.tx.movs, m)
	return int64(len(r.tx.movs)), nil
}

func (r *memMovRepo) List(_ context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, errors.New("no implementado en tx")
}

type memStockRepo struct{ tx *memTx }

func (r *memStockRepo) ApplyDelta(_ context.Context, ref entity.Referencia, delta int) error {
	if r.tx.store.failApply != nil {
		return r.tx.store.failApply
	}
	r.tx.deltas = append(r.tx.deltas, stagedDelta{ref: ref, delta: delta})
	return nil
}

func (r *memStockRepo) List(_ context.Context) ([]*entity.CurrentStock, error) {
	return nil, errors.New("no implementado en tx")
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.CurrentStockRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	tx := &memTx{store: r.store}
	if err := fn(&memMovRepo{tx: tx}, &memStockRepo{tx: tx}); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// Repos de solo lectura atados al store (equivalente a los repos sobre el pool).

type memMovReader struct{ store *memStore }

func (r *memMovReader) Create(_ context.Context, _ *entity.StockMovement) (int64, error) {
	return 0, errors.New("solo lectura")
}

func (r *memMovReader) List(_ context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.StockMovement, len(r.store.movements))
	copy(out, r.store.movements)
	return out, nil
}

type memStockReader struct{ store *memStore }

func (r *memStockReader) ApplyDelta(_ context.Context, _ entity.Referencia, _ int) error {
	return errors.New("solo lectura")
}

func (r *memStockReader) List(_ context.Context) ([]*entity.CurrentStock, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.CurrentStock, 0, len(r.store.balances))
	for _, cs := range r.store.balances {
		out = append(out, cs)
	}
	return out, nil
}

func newLedger(store *memStore) *stock.LedgerUseCase {
	return stock.NewLedgerUseCase(
		&memTxRunner{store: store},
		&memMovReader{store: store},
		&memStockReader{store: store},
	)
}

func dptr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func iptr(n int) *int { return &n }

func entradaLamina(cantidad int) stock.MovementInput {
	return stock.MovementInput{
		Fecha:        "2024-01-10",
		Turno:        "AM",
		MovementType: entity.MovementEntrada,
		TipoProducto: "Lamina",
		Cantidad:     cantidad,
		Ancho:        dptr("1.2"),
		Calibre:      iptr(22),
	}
}

func balance(t *testing.T, store *memStore, key string) *entity.CurrentStock {
	t.Helper()
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.balances[key]
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: primera entrada sobre almacenamiento vacío crea el saldo.
func TestRecordMovement_PrimeraEntrada(t *testing.T) {
	store := newMemStore()
	uc := newLedger(store)

	err := uc.RecordMovement(context.Background(), entradaLamina(100))
	require.NoError(t, err)

	require.Len(t, store.movements, 1, "el log debe tener 1 fila")
	mov := store.movements[0]
	assert.Equal(t, 100, mov.Cantidad, "el log guarda la cantidad sin signo")
	assert.Equal(t, entity.MovementEntrada, mov.MovementType)
	assert.NotZero(t, mov.ID)

	cs := balance(t, store, "Lamina-1.2-22-N/A")
	require.NotNil(t, cs, "debe crearse la fila de saldo con la clave derivada")
	assert.Equal(t, 100, cs.CantidadActual)
	assert.Len(t, store.balances, 1)
}

// Escenario B: una salida posterior con los mismos atributos descuenta del
// mismo saldo.
func TestRecordMovement_SalidaDescuentaMismoSaldo(t *testing.T) {
	store := newMemStore()
	uc := newLedger(store)
	ctx := context.Background()

	require.NoError(t, uc.RecordMovement(ctx, entradaLamina(100)))

	salida := entradaLamina(30)
	salida.MovementType = entity.MovementSalida
	require.NoError(t, uc.RecordMovement(ctx, salida))

	assert.Len(t, store.movements, 2, "el log debe tener 2 filas")
	cs := balance(t, store, "Lamina-1.2-22-N/A")
	require.NotNil(t, cs)
	assert.Equal(t, 70, cs.CantidadActual)
	assert.Len(t, store.balances, 1, "ambos movimientos comparten referencia")
}

// Escenario C: un tipo no reconocido resta, igual que el sistema anterior.
// El test fija ese comportamiento a propósito (ver DESIGN.md).
func TestRecordMovement_TipoNoReconocidoResta(t *testing.T) {
	store := newMemStore()
	uc := newLedger(store)
	ctx := context.Background()

	require.NoError(t, uc.RecordMovement(ctx, entradaLamina(100)))

	ajuste := entradaLamina(10)
	ajuste.MovementType = "Ajuste"
	require.NoError(t, uc.RecordMovement(ctx, ajuste))

	cs := balance(t, store, "Lamina-1.2-22-N/A")
	require.NotNil(t, cs)
	assert.Equal(t, 90, cs.CantidadActual, "un tipo desconocido debe tratarse como débito")
}

// Escenario D: movimientos que difieren solo en ancho producen dos saldos.
func TestRecordMovement_AnchosDistintosNoSeMezclan(t *testing.T) {
	store := newMemStore()
	uc := newLedger(store)
	ctx := context.Background()

	require.NoError(t, uc.RecordMovement(ctx, entradaLamina(100)))

	otra := entradaLamina(50)
	otra.Ancho = dptr("1.3")
	require.NoError(t, uc.RecordMovement(ctx, otra))

	require.Len(t, store.balances, 2, "cada ancho tiene su propia fila")
	assert.Equal(t, 100, balance(t, store, "Lamina-1.2-22-N/A").CantidadActual)
	assert.Equal(t, 50, balance(t, store, "Lamina-1.3-22-N/A").CantidadActual)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_CamposRequeridos(t *testing.T) {
	casos := map[string]func(*stock.MovementInput){
		"sin fecha":         func(in *stock.MovementInput) { in.Fecha = "" },
		"sin turno":         func(in *stock.MovementInput) { in.Turno = "  " },
		"sin movement_type": func(in *stock.MovementInput) { in.MovementType = "" },
		"sin tipo_producto": func(in *stock.MovementInput) { in.TipoProducto = "" },
		"cantidad cero":     func(in *stock.MovementInput) { in.Cantidad = 0 },
		"cantidad negativa": func(in *stock.MovementInput) { in.Cantidad = -5 },
		"fecha inválida":    func(in *stock.MovementInput) { in.Fecha = "10/01/2024" },
	}
	for nombre, mutar := range casos {
		t.Run(nombre, func(t *testing.T) {
			store := newMemStore()
			uc := newLedger(store)
			in := entradaLamina(100)
			mutar(&in)

			err := uc.RecordMovement(context.Background(), in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, store.movements, "una validación fallida no deja efectos durables")
			assert.Empty(t, store.balances)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad y concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// Si el upsert del saldo falla, el movimiento tampoco queda en el log.
func TestRecordMovement_RollbackSinEstadoParcial(t *testing.T) {
	store := newMemStore()
	uc := newLedger(store)
	ctx := context.Background()

	require.NoError(t, uc.RecordMovement(ctx, entradaLamina(100)))

	store.failApply = errors.New("deadlock detected")
	err := uc.RecordMovement(ctx, entradaLamina(40))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransaction)

	assert.Len(t, store.movements, 1, "el movimiento fallido no debe quedar en el log")
	assert.Equal(t, 100, balance(t, store, "Lamina-1.2-22-N/A").CantidadActual,
		"el saldo debe quedar exactamente como antes de la llamada")
}

// N llamadas concurrentes sobre la misma referencia: ninguna se pierde.
func TestRecordMovement_ConcurrenciaSinPerdidas(t *testing.T) {
	store := newMemStore()
	uc := newLedger(store)

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, 2*n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- uc.RecordMovement(context.Background(), entradaLamina(10))
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			salida := entradaLamina(3)
			salida.MovementType = entity.MovementSalida
			errs <- uc.RecordMovement(context.Background(), salida)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	cs := balance(t, store, "Lamina-1.2-22-N/A")
	require.NotNil(t, cs)
	assert.Equal(t, n*10-n*3, cs.CantidadActual, "el saldo final debe reflejar todos los deltas")
	assert.Len(t, store.movements, 2*n)
}

// Invariante: el saldo siempre es igual a la suma de los deltas del log.
func TestInvariante_SaldoIgualSumaDelLog(t *testing.T) {
	store := newMemStore()
	uc := newLedger(store)
	ctx := context.Background()

	movimientos := []stock.MovementInput{
		entradaLamina(100),
		func() stock.MovementInput { in := entradaLamina(30); in.MovementType = entity.MovementSalida; return in }(),
		func() stock.MovementInput { in := entradaLamina(7); in.MovementType = "Ajuste"; return in }(),
		func() stock.MovementInput { in := entradaLamina(50); in.Ancho = dptr("1.3"); return in }(),
	}
	for _, in := range movimientos {
		require.NoError(t, uc.RecordMovement(ctx, in))
	}

	sumas := make(map[string]int)
	store.mu.Lock()
	for _, m := range store.movements {
		sumas[m.Referencia().ID()] += m.Delta()
	}
	store.mu.Unlock()

	stocks, err := uc.GetCurrentStock(ctx)
	require.NoError(t, err)
	require.Len(t, stocks, len(sumas))
	for _, cs := range stocks {
		assert.Equal(t, sumas[cs.ReferenciaID], cs.CantidadActual,
			"saldo de %s debe ser la suma con signo del log", cs.ReferenciaID)
	}
}

func TestListMovements_DevuelveElLog(t *testing.T) {
	store := newMemStore()
	uc := newLedger(store)
	ctx := context.Background()

	require.NoError(t, uc.RecordMovement(ctx, entradaLamina(100)))
	movs, err := uc.ListMovements(ctx, 50, 0)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, "Lamina", movs[0].TipoProducto)
}
