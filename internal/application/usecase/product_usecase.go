package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/cafeteria-panel/internal/application/dto"
	"github.com/tu-usuario/cafeteria-panel/internal/domain"
	"github.com/tu-usuario/cafeteria-panel/internal/domain/entity"
	domstore "github.com/tu-usuario/cafeteria-panel/internal/domain/store"
)

// ProductUseCase casos de uso CRUD para productos de la carta.
type ProductUseCase struct {
	gw ProductGateway
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(gw ProductGateway) *ProductUseCase {
	return &ProductUseCase{gw: gw}
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.gw.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Create crea un producto. El precio llega como texto y se parsea con la
// misma tolerancia de separador decimal que las cantidades de bodega.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	payload, err := buildProductPayload(in)
	if err != nil {
		return nil, err
	}
	created, err := uc.gw.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(*created)
	return &resp, nil
}

// Update edita un producto (reemplazo total de campos editables).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("id de producto requerido: %w", domain.ErrInvalidInput)
	}
	payload, err := buildProductPayload(in)
	if err != nil {
		return nil, err
	}
	updated, err := uc.gw.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	resp := dto.ToProductResponse(*updated)
	return &resp, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id de producto requerido: %w", domain.ErrInvalidInput)
	}
	return uc.gw.Delete(ctx, id)
}

func buildProductPayload(in dto.SaveProductRequest) (ProductPayload, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ProductPayload{}, fmt.Errorf("nombre de producto requerido: %w", domain.ErrInvalidInput)
	}
	if in.CategoryID == "" {
		return ProductPayload{}, fmt.Errorf("categoría requerida: %w", domain.ErrInvalidInput)
	}
	price, err := domstore.ParseAmount(in.Price)
	if err != nil {
		return ProductPayload{}, err
	}
	return ProductPayload{
		Name:       name,
		CategoryID: in.CategoryID,
		Price:      price,
		ImageURL:   in.ImageURL,
	}, nil
}

func toProductResponses(list []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProductResponse(p))
	}
	return out
}
