package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstore "github.com/tu-usuario/cafeteria-panel/internal/application/store"
	"github.com/tu-usuario/cafeteria-panel/internal/domain"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
	domstore "github.com/tu-usuario/cafeteria-panel/internal/domain/store"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del gateway remoto
//
// Simula el backend con un libro en memoria que recalcula las existencias en
// cada lectura, igual que hace el servidor real en /store-items/calculation.
// ──────────────────────────────────────────────────────────────────────────────

type fakeGateway struct {
	mu      sync.Mutex
	records []entity.StoreRecord
	nextID  int

	createErr  error // si no es nil, CreateRecord falla con este error
	replaceErr error
	removeErr  error

	createCalls int
	removeCalls int
	listCalls   int
	removeBlock chan struct{} // si no es nil, RemoveStock espera aquí
}

func newFakeGateway(seed ...entity.StoreRecord) *fakeGateway {
	return &fakeGateway{records: seed, nextID: 100}
}

func (f *fakeGateway) ListRecords(_ context.Context) ([]entity.StoreRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := make([]entity.StoreRecord, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeGateway) ListStockLevels(_ context.Context) ([]entity.StockLevel, error) {
	f.mu.Lock()
	records := make([]entity.StoreRecord, len(f.records))
	copy(records, f.records)
	f.mu.Unlock()
	return domstore.Aggregate(records), nil
}

func (f *fakeGateway) CreateRecord(_ context.Context, p appstore.RecordPayload) (*entity.StoreRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	rec := entity.StoreRecord{
		ID:           fmt.Sprintf("rec-%d", f.nextID),
		ItemID:       p.ItemID,
		SupplyID:     p.SupplyID,
		Amount:       p.Amount,
		PricePerUnit: p.PricePerUnit,
		IsDebit:      false,
	}
	f.records = append(f.records, rec)
	return &rec, nil
}

func (f *fakeGateway) ReplaceRecord(_ context.Context, id string, p appstore.RecordPayload) (*entity.StoreRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].ItemID = p.ItemID
			f.records[i].SupplyID = p.SupplyID
			f.records[i].Amount = p.Amount
			f.records[i].PricePerUnit = p.PricePerUnit
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, &domain.BackendError{Status: 404, Detail: "movimiento no encontrado"}
}

func (f *fakeGateway) RemoveStock(_ context.Context, itemID string, amount, pricePerItem decimal.Decimal) error {
	if f.removeBlock != nil {
		<-f.removeBlock
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeCalls++
	if f.removeErr != nil {
		return f.removeErr
	}
	f.records = append(f.records, entity.StoreRecord{
		ID:           fmt.Sprintf("rec-out-%d", f.removeCalls),
		ItemID:       itemID,
		Amount:       amount,
		PricePerUnit: pricePerItem,
		IsDebit:      true,
	})
	return nil
}

func seedRecord(id, itemID string, amount float64, debit bool) entity.StoreRecord {
	return entity.StoreRecord{
		ID:      id,
		ItemID:  itemID,
		Amount:  decimal.NewFromFloat(amount),
		IsDebit: debit,
	}
}

func stockOf(t *testing.T, snap appstore.Snapshot, itemID string) decimal.Decimal {
	t.Helper()
	for _, l := range snap.StockLevels {
		if l.ItemID == itemID {
			return l.Amount
		}
	}
	return decimal.Zero
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga y snapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_CargaMovimientosYExistencias(t *testing.T) {
	gw := newFakeGateway(
		seedRecord("r1", "A", 10, false),
		seedRecord("r2", "A", 3, true),
	)
	uc := appstore.New(gw)

	require.NoError(t, uc.Load(context.Background()))

	snap := uc.Snapshot()
	assert.Len(t, snap.Records, 2)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
	assert.True(t, stockOf(t, snap, "A").Equal(decimal.NewFromInt(7)),
		"el stock de A debe ser 10 − 3 = 7")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateAddition
// ──────────────────────────────────────────────────────────────────────────────

// Propiedad de ida y vuelta: registrar "5,50" debe subir el stock en 5.5
// después de la recarga automática.
func TestCreateAddition_RecargaYSubeStock(t *testing.T) {
	gw := newFakeGateway(seedRecord("r1", "A", 2, false))
	uc := appstore.New(gw)
	require.NoError(t, uc.Load(context.Background()))

	antes := stockOf(t, uc.Snapshot(), "A")

	created, err := uc.CreateAddition(context.Background(), appstore.NewRecordInput{
		ItemID:       "A",
		Amount:       "5,50",
		PricePerUnit: "2,00",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID, "el backend asigna el ID")

	despues := stockOf(t, uc.Snapshot(), "A")
	assert.True(t, despues.Sub(antes).Equal(decimal.NewFromFloat(5.5)),
		"el stock debe subir exactamente 5.5: antes %s, después %s", antes, despues)
}

// Validación local: sin insumo o con cantidad no numérica no se llama al
// backend y el estado cargado no cambia.
func TestCreateAddition_ValidacionLocalNoLlamaAlBackend(t *testing.T) {
	gw := newFakeGateway(seedRecord("r1", "A", 2, false))
	uc := appstore.New(gw)
	require.NoError(t, uc.Load(context.Background()))

	casos := []appstore.NewRecordInput{
		{ItemID: "", Amount: "5", PricePerUnit: "1"},        // sin insumo
		{ItemID: "A", Amount: "abc", PricePerUnit: "1"},     // no numérico
		{ItemID: "A", Amount: "12,34,56", PricePerUnit: ""}, // doble separador
		{ItemID: "A", Amount: "0", PricePerUnit: "1"},       // cantidad cero (política endurecida)
	}
	for _, in := range casos {
		_, err := uc.CreateAddition(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v debe rechazarse localmente", in)
	}
	assert.Zero(t, gw.createCalls, "ninguna entrada inválida debe llegar al backend")
}

// Sin mutación optimista: si el backend rechaza, los datos quedan intactos y
// el detalle del 422 se muestra tal cual.
func TestCreateAddition_FalloNoMutaYConservaDetalle(t *testing.T) {
	gw := newFakeGateway(seedRecord("r1", "A", 7, false))
	gw.createErr = &domain.BackendError{Status: 422, Detail: "amount must be positive"}
	uc := appstore.New(gw)
	require.NoError(t, uc.Load(context.Background()))
	antes := uc.Snapshot()
	listasAntes := gw.listCalls

	_, err := uc.CreateAddition(context.Background(), appstore.NewRecordInput{
		ItemID: "A", Amount: "5", PricePerUnit: "1",
	})
	require.Error(t, err)

	snap := uc.Snapshot()
	assert.Equal(t, antes.Records, snap.Records, "los movimientos no deben cambiar tras un fallo")
	assert.Equal(t, antes.StockLevels, snap.StockLevels, "las existencias no deben cambiar tras un fallo")
	assert.Equal(t, "amount must be positive", snap.Err,
		"el detalle del backend debe mostrarse tal cual, no un genérico")
	assert.Equal(t, listasAntes, gw.listCalls,
		"un fallo de mutación nunca dispara la recarga")
}

// Un fallo de transporte muestra el genérico, no el texto técnico del error.
func TestCreateAddition_FalloDeTransporteMuestraGenerico(t *testing.T) {
	gw := newFakeGateway()
	gw.createErr = fmt.Errorf("dial tcp: connection refused: %w", domain.ErrTransport)
	uc := appstore.New(gw)
	require.NoError(t, uc.Load(context.Background()))

	_, err := uc.CreateAddition(context.Background(), appstore.NewRecordInput{
		ItemID: "A", Amount: "1", PricePerUnit: "0",
	})
	require.Error(t, err)
	assert.Equal(t, domain.ErrTransport.Error(), uc.Snapshot().Err)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateAddition
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateAddition_ReemplazoTotal(t *testing.T) {
	lote := "supply-9"
	gw := newFakeGateway(seedRecord("r1", "A", 10, false))
	uc := appstore.New(gw)
	require.NoError(t, uc.Load(context.Background()))

	updated, err := uc.UpdateAddition(context.Background(), "r1", appstore.NewRecordInput{
		ItemID:       "B",
		SupplyID:     &lote,
		Amount:       "4,5",
		PricePerUnit: "3",
	})
	require.NoError(t, err)
	assert.Equal(t, "B", updated.ItemID)
	require.NotNil(t, updated.SupplyID)
	assert.Equal(t, "supply-9", *updated.SupplyID)
	assert.True(t, updated.Amount.Equal(decimal.NewFromFloat(4.5)))

	// La recarga reflejó el reemplazo: A ya no tiene stock, B sí.
	snap := uc.Snapshot()
	assert.True(t, stockOf(t, snap, "A").IsZero())
	assert.True(t, stockOf(t, snap, "B").Equal(decimal.NewFromFloat(4.5)))
}

// SupplyID con cadena vacía se normaliza a nil antes de llegar al backend,
// para no confundir "sin lote" con "lote inválido".
func TestUpdateAddition_SupplyVacioSeNormalizaANil(t *testing.T) {
	vacio := ""
	gw := newFakeGateway(seedRecord("r1", "A", 10, false))
	uc := appstore.New(gw)
	require.NoError(t, uc.Load(context.Background()))

	updated, err := uc.UpdateAddition(context.Background(), "r1", appstore.NewRecordInput{
		ItemID:       "A",
		SupplyID:     &vacio,
		Amount:       "10",
		PricePerUnit: "0",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.SupplyID, "cadena vacía nunca debe viajar como supply_id")
}

func TestUpdateAddition_SinIDEsInvalido(t *testing.T) {
	uc := appstore.New(newFakeGateway())
	_, err := uc.UpdateAddition(context.Background(), "", appstore.NewRecordInput{
		ItemID: "A", Amount: "1", PricePerUnit: "0",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// RemoveStock
// ──────────────────────────────────────────────────────────────────────────────

// Pista de tope, no bloqueo: retirar 1000 con stock 7 SÍ se envía al backend;
// el panel propaga lo que el backend decida.
func TestRemoveStock_NoBloqueaPorEncimaDelStock(t *testing.T) {
	gw := newFakeGateway(seedRecord("r1", "A", 7, false))
	uc := appstore.New(gw)
	require.NoError(t, uc.Load(context.Background()))

	err := uc.RemoveStock(context.Background(), "A", "1000", "0")
	require.NoError(t, err)
	assert.Equal(t, 1, gw.removeCalls, "la salida debe enviarse aunque supere el stock mostrado")

	// El fake la aceptó; el neto queda negativo y se muestra tal cual.
	assert.True(t, stockOf(t, uc.Snapshot(), "A").Equal(decimal.NewFromInt(-993)))
}

func TestRemoveStock_PropagaRechazoDelBackend(t *testing.T) {
	gw := newFakeGateway(seedRecord("r1", "A", 7, false))
	gw.removeErr = &domain.BackendError{Status: 409, Detail: "stock insuficiente"}
	uc := appstore.New(gw)
	require.NoError(t, uc.Load(context.Background()))

	err := uc.RemoveStock(context.Background(), "A", "1000", "0")
	require.Error(t, err)
	assert.Equal(t, "stock insuficiente", uc.Snapshot().Err)
}

func TestRemoveStock_CantidadDebeSerPositiva(t *testing.T) {
	gw := newFakeGateway()
	uc := appstore.New(gw)

	assert.ErrorIs(t, uc.RemoveStock(context.Background(), "A", "0", "0"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.RemoveStock(context.Background(), "A", "abc", "0"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.RemoveStock(context.Background(), "", "5", "0"), domain.ErrInvalidInput)
	assert.Zero(t, gw.removeCalls)
}

// El precio por unidad es opcional en salidas; vacío equivale a 0.
func TestRemoveStock_PrecioVacioEsCero(t *testing.T) {
	gw := newFakeGateway(seedRecord("r1", "A", 7, false))
	uc := appstore.New(gw)
	require.NoError(t, uc.Load(context.Background()))

	require.NoError(t, uc.RemoveStock(context.Background(), "A", "2", ""))
	snap := uc.Snapshot()
	require.NotEmpty(t, snap.Records)
	ultimo := snap.Records[len(snap.Records)-1]
	assert.True(t, ultimo.PricePerUnit.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Operaciones en vuelo
// ──────────────────────────────────────────────────────────────────────────────

// Dos envíos con la misma clave no se serializan: el segundo se rechaza
// mientras el primero sigue en vuelo.
func TestRemoveStock_DuplicadoEnVueloSeRechaza(t *testing.T) {
	gw := newFakeGateway(seedRecord("r1", "A", 7, false))
	gw.removeBlock = make(chan struct{})
	uc := appstore.New(gw)
	require.NoError(t, uc.Load(context.Background()))

	primero := make(chan error, 1)
	go func() {
		primero <- uc.RemoveStock(context.Background(), "A", "1", "0")
	}()

	// Esperar a que la primera llamada marque su clave en vuelo.
	require.Eventually(t, func() bool {
		return uc.InFlight(appstore.KeyRemove("A"))
	}, time.Second, time.Millisecond, "la clave remove:A debe marcarse en vuelo")

	err := uc.RemoveStock(context.Background(), "A", "2", "0")
	assert.ErrorIs(t, err, domain.ErrOpInFlight, "el duplicado debe rechazarse")

	// Otra clave (otro insumo) no se ve afectada.
	assert.False(t, uc.InFlight(appstore.KeyRemove("B")))

	close(gw.removeBlock)
	require.NoError(t, <-primero)
	assert.False(t, uc.InFlight(appstore.KeyRemove("A")), "la clave se libera al terminar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Re-derivación local
// ──────────────────────────────────────────────────────────────────────────────

// DeriveLevels produce lo mismo que la lista del backend para los mismos
// movimientos: sustituto directo para la vista optimista.
func TestDeriveLevels_CoincideConElBackend(t *testing.T) {
	gw := newFakeGateway(
		seedRecord("r1", "A", 10, false),
		seedRecord("r2", "A", 3, true),
		seedRecord("r3", "B", 5, false),
	)
	uc := appstore.New(gw)
	require.NoError(t, uc.Load(context.Background()))

	local := uc.DeriveLevels()
	remoto := uc.Snapshot().StockLevels

	require.Equal(t, len(remoto), len(local))
	for i := range remoto {
		assert.Equal(t, remoto[i].ItemID, local[i].ItemID)
		assert.True(t, remoto[i].Amount.Equal(local[i].Amount),
			"derivación local y backend deben coincidir para %s", remoto[i].ItemID)
	}
}
