package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/cafeteria-panel/internal/application/dto"
	"github.com/tu-usuario/cafeteria-panel/internal/domain"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
)

// CategoryUseCase casos de uso CRUD para categorías de la carta.
type CategoryUseCase struct {
	gw CategoryGateway
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(gw CategoryGateway) *CategoryUseCase {
	return &CategoryUseCase{gw: gw}
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.gw.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// Create crea una categoría con el nombre dado.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("nombre de categoría requerido: %w", domain.ErrInvalidInput)
	}
	created, err := uc.gw.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	resp := dto.ToCategoryResponse(*created)
	return &resp, nil
}

// Update renombra una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.SaveCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if id == "" || name == "" {
		return nil, fmt.Errorf("id y nombre de categoría requeridos: %w", domain.ErrInvalidInput)
	}
	updated, err := uc.gw.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	resp := dto.ToCategoryResponse(*updated)
	return &resp, nil
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id de categoría requerido: %w", domain.ErrInvalidInput)
	}
	return uc.gw.Delete(ctx, id)
}

func toCategoryResponses(list []entity.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToCategoryResponse(c))
	}
	return out
}
