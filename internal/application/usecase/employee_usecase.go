package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/cafeteria-panel/internal/application/dto"
	"github.com/tu-usuario/cafeteria-panel/internal/domain"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	gw EmployeeGateway
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(gw EmployeeGateway) *EmployeeUseCase {
	return &EmployeeUseCase{gw: gw}
}

// List devuelve todos los empleados.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.gw.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, dto.ToEmployeeResponse(e))
	}
	return out, nil
}

// Create registra un empleado.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.SaveEmployeeRequest) (*dto.EmployeeResponse, error) {
	payload, err := buildEmployeePayload(in)
	if err != nil {
		return nil, err
	}
	created, err := uc.gw.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	resp := dto.ToEmployeeResponse(*created)
	return &resp, nil
}

// Update edita un empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.SaveEmployeeRequest) (*dto.EmployeeResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("id de empleado requerido: %w", domain.ErrInvalidInput)
	}
	payload, err := buildEmployeePayload(in)
	if err != nil {
		return nil, err
	}
	updated, err := uc.gw.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	resp := dto.ToEmployeeResponse(*updated)
	return &resp, nil
}

// Delete elimina un empleado por ID.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id de empleado requerido: %w", domain.ErrInvalidInput)
	}
	return uc.gw.Delete(ctx, id)
}

func buildEmployeePayload(in dto.SaveEmployeeRequest) (EmployeePayload, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return EmployeePayload{}, fmt.Errorf("nombre de empleado requerido: %w", domain.ErrInvalidInput)
	}
	return EmployeePayload{
		Name:     name,
		Phone:    strings.TrimSpace(in.Phone),
		Position: strings.TrimSpace(in.Position),
	}, nil
}
