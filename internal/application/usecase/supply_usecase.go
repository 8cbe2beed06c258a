package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/cafeteria-panel/internal/application/dto"
	"github.com/tu-usuario/cafeteria-panel/internal/domain"
)

// SupplyUseCase alta, listado y baja de lotes de abastecimiento.
type SupplyUseCase struct {
	gw SupplyGateway
}

// NewSupplyUseCase construye el caso de uso.
func NewSupplyUseCase(gw SupplyGateway) *SupplyUseCase {
	return &SupplyUseCase{gw: gw}
}

// List devuelve los lotes registrados.
func (uc *SupplyUseCase) List(ctx context.Context) ([]dto.SupplyResponse, error) {
	list, err := uc.gw.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplyResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToSupplyResponse(s))
	}
	return out, nil
}

// Create registra una entrega de proveedor. Date nil equivale a "hoy"
// (lo resuelve el backend).
func (uc *SupplyUseCase) Create(ctx context.Context, in dto.CreateSupplyRequest) (*dto.SupplyResponse, error) {
	if in.SupplierID == "" {
		return nil, fmt.Errorf("proveedor requerido: %w", domain.ErrInvalidInput)
	}
	created, err := uc.gw.Create(ctx, in.SupplierID, in.Date)
	if err != nil {
		return nil, err
	}
	resp := dto.ToSupplyResponse(*created)
	return &resp, nil
}

// Delete elimina un lote. Los movimientos que ya lo referencian quedan
// en manos del backend (puede rechazarlo con 409).
func (uc *SupplyUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id de lote requerido: %w", domain.ErrInvalidInput)
	}
	return uc.gw.Delete(ctx, id)
}
