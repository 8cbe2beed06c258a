// Package store implementa el caso de uso del libro de bodega: el view-model
// que consume el panel (movimientos + existencias + estado de carga/error) y
// las tres mutaciones (registrar entrada, editar entrada, dar salida).
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cafeteria-panel/internal/domain"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
	domstore "github.com/tu-usuario/cafeteria-panel/internal/domain/store"
)

// Claves de operación en curso. El caso de uso rechaza una mutación cuya
// clave ya está en vuelo, para que el panel pueda deshabilitar el doble envío.
const (
	KeyCreate = "create"

	keyUpdatePrefix = "update:"
	keyRemovePrefix = "remove:"
)

// KeyUpdate clave de en-vuelo para la edición del movimiento id.
func KeyUpdate(id string) string { return keyUpdatePrefix + id }

// KeyRemove clave de en-vuelo para la salida del insumo itemID.
func KeyRemove(itemID string) string { return keyRemovePrefix + itemID }

// NewRecordInput entrada cruda del formulario. Amount y PricePerUnit llegan
// como texto porque el separador decimal depende del teclado del usuario.
type NewRecordInput struct {
	ItemID       string
	SupplyID     *string
	Amount       string
	PricePerUnit string
}

// Snapshot estado observable del view-model. Err vacío significa sin error;
// tras un fallo los datos previos siguen visibles junto al mensaje.
type Snapshot struct {
	Records     []entity.StoreRecord
	StockLevels []entity.StockLevel
	Loading     bool
	Err         string
}

// UseCase view-model del libro de bodega. Tras cada mutación exitosa recarga
// ambas listas del backend (nunca muta localmente), de modo que el panel no
// diverge del cálculo autoritativo del servidor.
type UseCase struct {
	gw Gateway

	mu       sync.Mutex
	records  []entity.StoreRecord
	levels   []entity.StockLevel
	loading  bool
	errMsg   string
	inFlight map[string]bool
}

// New construye el caso de uso.
func New(gw Gateway) *UseCase {
	return &UseCase{
		gw:       gw,
		inFlight: make(map[string]bool),
	}
}

// Load carga movimientos y existencias del backend. En caso de fallo conserva
// los datos previamente cargados y deja el mensaje en el estado de error.
func (uc *UseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	uc.loading = true
	uc.mu.Unlock()

	records, err := uc.gw.ListRecords(ctx)
	if err != nil {
		uc.failLoad(err)
		return err
	}
	levels, err := uc.gw.ListStockLevels(ctx)
	if err != nil {
		uc.failLoad(err)
		return err
	}

	uc.mu.Lock()
	uc.records = records
	uc.levels = levels
	uc.loading = false
	uc.errMsg = ""
	uc.mu.Unlock()
	return nil
}

// Snapshot devuelve una copia del estado observable.
func (uc *UseCase) Snapshot() Snapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s := Snapshot{
		Records:     make([]entity.StoreRecord, len(uc.records)),
		StockLevels: make([]entity.StockLevel, len(uc.levels)),
		Loading:     uc.loading,
		Err:         uc.errMsg,
	}
	copy(s.Records, uc.records)
	copy(s.StockLevels, uc.levels)
	return s
}

// InFlight indica si la operación con esa clave sigue en vuelo; el panel la
// usa para deshabilitar el control de envío correspondiente.
func (uc *UseCase) InFlight(key string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.inFlight[key]
}

// DeriveLevels re-deriva las existencias con el agregador local a partir de
// los movimientos ya cargados, sin viaje de red. Mismo resultado que la lista
// del backend para los mismos movimientos.
func (uc *UseCase) DeriveLevels() []entity.StockLevel {
	uc.mu.Lock()
	records := make([]entity.StoreRecord, len(uc.records))
	copy(records, uc.records)
	uc.mu.Unlock()
	return domstore.Aggregate(records)
}

// CreateAddition registra una entrada de bodega. Precondiciones locales:
// ItemID presente, Amount > 0, PricePerUnit >= 0. Un fallo de validación se
// devuelve de forma síncrona, sin tocar el backend ni el estado cargado.
func (uc *UseCase) CreateAddition(ctx context.Context, in NewRecordInput) (*entity.StoreRecord, error) {
	payload, err := uc.buildPayload(in)
	if err != nil {
		return nil, err
	}

	if err := uc.begin(KeyCreate); err != nil {
		return nil, err
	}
	defer uc.end(KeyCreate)

	created, err := uc.gw.CreateRecord(ctx, payload)
	if err != nil {
		uc.failMutation(err)
		return nil, err
	}
	uc.reload(ctx)
	return created, nil
}

// UpdateAddition reemplaza los campos mutables de una entrada existente.
// Aplica solo a entradas; las salidas no son registros editables.
func (uc *UseCase) UpdateAddition(ctx context.Context, id string, in NewRecordInput) (*entity.StoreRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("id de movimiento requerido: %w", domain.ErrInvalidInput)
	}
	payload, err := uc.buildPayload(in)
	if err != nil {
		return nil, err
	}

	key := KeyUpdate(id)
	if err := uc.begin(key); err != nil {
		return nil, err
	}
	defer uc.end(key)

	updated, err := uc.gw.ReplaceRecord(ctx, id, payload)
	if err != nil {
		uc.failMutation(err)
		return nil, err
	}
	uc.reload(ctx)
	return updated, nil
}

// RemoveStock registra una salida directa del insumo. El panel pre-rellena la
// cantidad con el stock actual como pista, pero no bloquea cantidades
// mayores: esa validación, si existe, la impone el backend.
func (uc *UseCase) RemoveStock(ctx context.Context, itemID, amount, pricePerItem string) error {
	if itemID == "" {
		return fmt.Errorf("insumo requerido: %w", domain.ErrInvalidInput)
	}
	qty, err := domstore.ParseAmount(amount)
	if err != nil {
		return err
	}
	if !qty.GreaterThan(decimal.Zero) {
		return fmt.Errorf("la cantidad a retirar debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	price := decimal.Zero
	if pricePerItem != "" {
		if price, err = domstore.ParseAmount(pricePerItem); err != nil {
			return err
		}
	}

	key := KeyRemove(itemID)
	if err := uc.begin(key); err != nil {
		return err
	}
	defer uc.end(key)

	if err := uc.gw.RemoveStock(ctx, itemID, qty, price); err != nil {
		uc.failMutation(err)
		return err
	}
	uc.reload(ctx)
	return nil
}

// buildPayload valida la entrada del formulario y construye el reemplazo
// completo. SupplyID vacío se normaliza a nil para no enviar "" al backend.
func (uc *UseCase) buildPayload(in NewRecordInput) (RecordPayload, error) {
	if in.ItemID == "" {
		return RecordPayload{}, fmt.Errorf("insumo requerido: %w", domain.ErrInvalidInput)
	}
	amount, err := domstore.ParseAmount(in.Amount)
	if err != nil {
		return RecordPayload{}, err
	}
	if !amount.GreaterThan(decimal.Zero) {
		return RecordPayload{}, fmt.Errorf("la cantidad debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	price, err := domstore.ParseAmount(in.PricePerUnit)
	if err != nil {
		return RecordPayload{}, err
	}

	supplyID := in.SupplyID
	if supplyID != nil && *supplyID == "" {
		supplyID = nil
	}
	return RecordPayload{
		ItemID:       in.ItemID,
		SupplyID:     supplyID,
		Amount:       amount,
		PricePerUnit: price,
	}, nil
}

// begin marca la clave como en vuelo; si ya lo está, rechaza el duplicado.
func (uc *UseCase) begin(key string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.inFlight[key] {
		return domain.ErrOpInFlight
	}
	uc.inFlight[key] = true
	return nil
}

func (uc *UseCase) end(key string) {
	uc.mu.Lock()
	delete(uc.inFlight, key)
	uc.mu.Unlock()
}

// reload recarga ambas listas tras una mutación exitosa. Se emite solo en la
// ruta de éxito: un fallo de mutación nunca dispara recarga, para no
// enmascarar el error con datos de apariencia fresca.
func (uc *UseCase) reload(ctx context.Context) {
	_ = uc.Load(ctx)
}

func (uc *UseCase) failLoad(err error) {
	uc.mu.Lock()
	uc.loading = false
	uc.errMsg = userMessage(err)
	uc.mu.Unlock()
}

// failMutation deja el mensaje de error sin tocar los datos ya cargados:
// datos obsoletos-pero-válidos siguen visibles junto al error.
func (uc *UseCase) failMutation(err error) {
	uc.mu.Lock()
	uc.errMsg = userMessage(err)
	uc.mu.Unlock()
}

// userMessage extrae el texto visible para el usuario: el detalle del backend
// tal cual cuando existe (4xx estructurado) y un genérico para fallos de red,
// timeout o 5xx, de los que no se espera detalle.
func userMessage(err error) string {
	if be := domain.AsBackendError(err); be != nil {
		return be.Error()
	}
	return domain.ErrTransport.Error()
}
