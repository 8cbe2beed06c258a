package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/cafeteria-panel/internal/application/dto"
	"github.com/tu-usuario/cafeteria-panel/internal/domain"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	gw SupplierGateway
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(gw SupplierGateway) *SupplierUseCase {
	return &SupplierUseCase{gw: gw}
}

// List devuelve todos los proveedores.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.gw.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToSupplierResponse(s))
	}
	return out, nil
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	payload, err := buildSupplierPayload(in)
	if err != nil {
		return nil, err
	}
	created, err := uc.gw.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	resp := dto.ToSupplierResponse(*created)
	return &resp, nil
}

// Update edita un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("id de proveedor requerido: %w", domain.ErrInvalidInput)
	}
	payload, err := buildSupplierPayload(in)
	if err != nil {
		return nil, err
	}
	updated, err := uc.gw.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	resp := dto.ToSupplierResponse(*updated)
	return &resp, nil
}

// Delete elimina un proveedor por ID.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id de proveedor requerido: %w", domain.ErrInvalidInput)
	}
	return uc.gw.Delete(ctx, id)
}

func buildSupplierPayload(in dto.SaveSupplierRequest) (SupplierPayload, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return SupplierPayload{}, fmt.Errorf("nombre de proveedor requerido: %w", domain.ErrInvalidInput)
	}
	return SupplierPayload{
		Name:  name,
		Phone: strings.TrimSpace(in.Phone),
		Email: strings.TrimSpace(in.Email),
	}, nil
}
