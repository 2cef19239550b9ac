package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/mercadito/internal/application/dto"
	"github.com/tu-usuario/mercadito/internal/domain/entity"
	"github.com/tu-usuario/mercadito/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD y búsqueda para el catálogo.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Search lista el catálogo filtrado por término (vacío = todo), más recientes
// primero. El término se pliega (minúsculas, sin diacríticos) antes de armar
// el patrón; el repositorio pliega name con el mismo criterio, así "café"
// encuentra "Café" y también "Cafe".
func (uc *ProductUseCase) Search(term string, limit, offset int) ([]dto.ProductResponse, error) {
	pattern := ""
	if folded := FoldSearchTerm(term); folded != "" {
		pattern = "%" + folded + "%"
	}
	list, err := uc.repo.SearchByName(pattern, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// ListAll devuelve el catálogo completo (sitemap, exportación PDF).
func (uc *ProductUseCase) ListAll() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update reemplaza los campos del formulario y conserva la imagen existente
// cuando in.ImageURL es nil: una imagen no enviada nunca pisa un image_url
// no nulo. Devuelve (nil, nil) si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.Name = in.Name
	product.Price = in.Price
	product.Description = in.Description
	product.Stock = in.Stock
	if in.ImageURL != nil {
		product.ImageURL = in.ImageURL
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
