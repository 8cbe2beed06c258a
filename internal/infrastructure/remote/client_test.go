package remote_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstore "github.com/tu-usuario/cafeteria-panel/internal/application/store"
	"github.com/tu-usuario/cafeteria-panel/internal/domain"
	"github.com/tu-usuario/cafeteria-panel/internal/infrastructure/remote"
	"github.com/tu-usuario/cafeteria-panel/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newGateway levanta un backend falso y devuelve el gateway de bodega
// apuntándole.
func newGateway(t *testing.T, handler http.HandlerFunc) *remote.StoreGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return remote.NewStoreGateway(remote.NewClient(srv.URL, 5*time.Second, logger.Nop()))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de headers
// ──────────────────────────────────────────────────────────────────────────────

// El token del context debe viajar como Bearer, y cada petición debe llevar
// X-Request-ID propio.
func TestClient_AdjuntaBearerYRequestID(t *testing.T) {
	var gotAuth, gotRequestID, gotAccept string
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("[]"))
	})

	ctx := remote.WithToken(context.Background(), "token-de-sesion")
	_, err := gw.ListRecords(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-de-sesion", gotAuth)
	assert.NotEmpty(t, gotRequestID, "cada petición debe llevar X-Request-ID")
	assert.Equal(t, "application/json", gotAccept)
}

// Sin token en el context no se debe enviar header Authorization.
func TestClient_SinTokenNoEnviaAuthorization(t *testing.T) {
	var gotAuth string
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	})

	_, err := gw.ListRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de deserialización
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_ListRecords_DeserializaMovimientos(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/store-items", r.URL.Path)
		w.Write([]byte(`[
			{"id":"r1","item_id":"i1","item_name":"Café en grano","supply_id":"s1",
			 "supplier":"Tostadores SAC","amount":"12.5","price_per_unit":"4.20",
			 "debit":false,"reporting_period_id":"p1","date":"2026-08-30T10:00:00Z"},
			{"id":"r2","item_id":"i2","item_name":"Leche","supply_id":null,
			 "supplier":"","amount":"3","price_per_unit":"1.10",
			 "debit":true,"reporting_period_id":"p1","date":"2026-08-31T09:00:00Z"}
		]`))
	})

	records, err := gw.ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Café en grano", records[0].ItemName)
	require.NotNil(t, records[0].SupplyID)
	assert.Equal(t, "s1", *records[0].SupplyID)
	assert.True(t, records[0].Amount.Equal(dec("12.5")))
	assert.False(t, records[0].IsDebit)

	assert.Nil(t, records[1].SupplyID, "supply_id null debe quedar nil")
	assert.True(t, records[1].IsDebit)
}

// SupplyID nil debe viajar como null JSON, nunca como cadena vacía.
func TestClient_CreateRecord_SupplyIDNilViajaComoNull(t *testing.T) {
	var rawBody map[string]json.RawMessage
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &rawBody))
		w.Write([]byte(`{"id":"r9","item_id":"i1","item_name":"Café en grano",
			"supply_id":null,"supplier":"","amount":"5","price_per_unit":"0",
			"debit":false,"reporting_period_id":"p1","date":"2026-08-31T10:00:00Z"}`))
	})

	created, err := gw.CreateRecord(context.Background(), appstore.RecordPayload{
		ItemID: "i1",
		Amount: dec("5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "r9", created.ID)

	require.Contains(t, rawBody, "supply_id")
	assert.Equal(t, "null", string(rawBody["supply_id"]))
}

func TestClient_RemoveStock_PosteaAlEndpointDeSalidas(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusOK)
	})

	err := gw.RemoveStock(context.Background(), "i1", dec("2.5"), dec("0"))
	require.NoError(t, err)

	assert.Equal(t, "/store-items/remove", gotPath)
	assert.Equal(t, "i1", gotBody["item_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de taxonomía de errores
// ──────────────────────────────────────────────────────────────────────────────

// 401 debe mapear a ErrUnauthorized, no a BackendError.
func TestClient_401MapeaAErrUnauthorized(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Not authenticated"}`))
	})

	_, err := gw.ListRecords(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, domain.AsBackendError(err))
}

// El detalle del backend debe conservarse tal cual para mostrarlo al usuario.
func TestClient_422ConservaDetalleVerbatim(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"amount must be positive"}`))
	})

	_, err := gw.ListRecords(context.Background())
	require.Error(t, err)

	be := domain.AsBackendError(err)
	require.NotNil(t, be)
	assert.Equal(t, http.StatusUnprocessableEntity, be.Status)
	assert.Equal(t, "amount must be positive", be.Detail)
}

// Forma de lista: detail [{msg: ...}]. Se toma el primer msg no vacío.
func TestClient_DetalleEnListaTomaPrimerMsg(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":[{"msg":"item_id is required"},{"msg":"amount invalid"}]}`))
	})

	_, err := gw.ListRecords(context.Background())
	be := domain.AsBackendError(err)
	require.NotNil(t, be)
	assert.Equal(t, "item_id is required", be.Detail)
}

// Forma alterna: {"message": ...}.
func TestClient_DetalleEnCampoMessage(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"store item not found"}`))
	})

	_, err := gw.ListRecords(context.Background())
	be := domain.AsBackendError(err)
	require.NotNil(t, be)
	assert.Equal(t, http.StatusNotFound, be.Status)
	assert.Equal(t, "store item not found", be.Detail)
}

// Cuerpo 4xx ilegible: BackendError sin detalle, con mensaje de reserva.
func TestClient_CuerpoIlegibleDejaDetalleVacio(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`<html>conflict</html>`))
	})

	_, err := gw.ListRecords(context.Background())
	be := domain.AsBackendError(err)
	require.NotNil(t, be)
	assert.Empty(t, be.Detail)
	assert.NotEmpty(t, be.Error(), "debe haber mensaje de reserva")
}

// 5xx es un problema del servidor, no del usuario: ErrTransport genérico.
func TestClient_500MapeaAErrTransport(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"stack trace interno"}`))
	})

	_, err := gw.ListRecords(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Nil(t, domain.AsBackendError(err), "un 5xx no debe exponer detalle del backend")
}

// Caída de red (servidor apagado): ErrTransport.
func TestClient_ErrorDeRedMapeaAErrTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // apagar de inmediato

	gw := remote.NewStoreGateway(remote.NewClient(srv.URL, time.Second, logger.Nop()))
	_, err := gw.ListRecords(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

// Context cancelado antes de la llamada: también ErrTransport, con la causa.
func TestClient_ContextCanceladoCortaLaLlamada(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("[]"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.ListRecords(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
}
