package usecase

import (
	"context"

	"github.com/tu-usuario/mercadito/internal/application/dto"
)

// CatalogPDFGenerator genera la versión imprimible del catálogo.
// Lo implementa infrastructure/pdf; la interfaz evita acoplar el caso de uso a Maroto.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, products []dto.ProductResponse) ([]byte, error)
}

// CatalogExportUseCase arma el PDF del catálogo completo para el vendedor.
type CatalogExportUseCase struct {
	products *ProductUseCase
	pdf      CatalogPDFGenerator
}

// NewCatalogExportUseCase construye el caso de uso de exportación.
func NewCatalogExportUseCase(products *ProductUseCase, pdf CatalogPDFGenerator) *CatalogExportUseCase {
	return &CatalogExportUseCase{products: products, pdf: pdf}
}

// Export devuelve los bytes del PDF con todos los productos del catálogo.
func (uc *CatalogExportUseCase) Export(ctx context.Context) ([]byte, error) {
	items, err := uc.products.ListAll()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCatalogPDF(ctx, items)
}
