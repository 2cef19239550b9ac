package repository

import "github.com/tu-usuario/mercadito/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// SearchByName filtra por patrón sobre name; la comparación es insensible
	// a mayúsculas y acentos en ambos lados (el pattern llega ya plegado y la
	// implementación pliega name). pattern vacío lista todo.
	// Orden: más recientes primero.
	SearchByName(pattern string, limit, offset int) ([]*entity.Product, error)
	// ListAll devuelve el catálogo completo (sitemap, exportación PDF).
	ListAll() ([]*entity.Product, error)
	Delete(id string) error
}
