package usecase_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mercadito/internal/application/dto"
	"github.com/tu-usuario/mercadito/internal/application/usecase"
	"github.com/tu-usuario/mercadito/internal/domain/entity"
)

// fakeProductRepo repositorio en memoria que emula el SearchByName real:
// contains sobre el name plegado (minúsculas, sin acentos), más recientes primero.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return nil
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) SearchByName(pattern string, limit, offset int) ([]*entity.Product, error) {
	needle := strings.Trim(pattern, "%")
	var out []*entity.Product
	for _, p := range r.products {
		if needle == "" || strings.Contains(usecase.FoldSearchTerm(p.Name), needle) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	return r.SearchByName("", 0, 0)
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func strPtr(s string) *string { return &s }

func mustCreate(t *testing.T, uc *usecase.ProductUseCase, name string, img *string) *dto.ProductResponse {
	t.Helper()
	p, err := uc.Create(dto.CreateProductRequest{
		Name:     name,
		Price:    decimal.RequireFromString("9.99"),
		Stock:    5,
		ImageURL: img,
	})
	require.NoError(t, err)
	return p
}

func TestProductCreate_AsignaIDYTimestamps(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	p := mustCreate(t, uc, "Widget", nil)

	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	assert.Nil(t, p.ImageURL)
}

func TestProductGetByID_Inexistente_NilNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	p, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductUpdate_SinImagenNueva_ConservaLaExistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created := mustCreate(t, uc, "Widget", strPtr("/uploads/original.png"))

	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:  "Widget Pro",
		Price: decimal.RequireFromString("19.99"),
		Stock: 3,
		// ImageURL nil: no se subió imagen nueva.
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Widget Pro", updated.Name)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "/uploads/original.png", *updated.ImageURL,
		"editar sin imagen nueva no debe pisar la imagen existente")

	persisted, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted.ImageURL)
	assert.Equal(t, "/uploads/original.png", *persisted.ImageURL)
}

func TestProductUpdate_ConImagenNueva_LaReemplaza(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created := mustCreate(t, uc, "Widget", strPtr("/uploads/original.png"))

	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:     "Widget",
		Price:    decimal.RequireFromString("9.99"),
		Stock:    5,
		ImageURL: strPtr("/uploads/nueva.webp"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "/uploads/nueva.webp", *updated.ImageURL)
}

func TestProductUpdate_Inexistente_NilNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	updated, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: "X"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestProductSearch_PliegaElTermino(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	mustCreate(t, uc, "Cafe molido 500g", nil)
	mustCreate(t, uc, "Yerba mate", nil)

	// "Café " con tilde, mayúscula y espacios debe encontrar "Cafe molido".
	results, err := uc.Search("  Café ", 50, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Cafe molido 500g", results[0].Name)
}

func TestProductSearch_NombreAcentuado_SeEncuentraConYSinTilde(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	mustCreate(t, uc, "Café de Colombia", nil)

	// La insensibilidad a acentos corre en ambas direcciones: el término se
	// pliega y el repositorio pliega el name almacenado.
	for _, term := range []string{"café", "cafe", "CAFÉ"} {
		results, err := uc.Search(term, 50, 0)
		require.NoError(t, err)
		require.Len(t, results, 1, "buscar %q debe encontrar el producto acentuado", term)
		assert.Equal(t, "Café de Colombia", results[0].Name)
	}
}

func TestProductSearch_TerminoVacioListaTodo(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	mustCreate(t, uc, "Uno", nil)
	mustCreate(t, uc, "Dos", nil)

	results, err := uc.Search("", 50, 0)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestProductSearch_SinCoincidencias(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	mustCreate(t, uc, "Widget", nil)

	results, err := uc.Search("zzz", 50, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProductDelete_EliminaElProducto(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	created := mustCreate(t, uc, "Widget", nil)

	require.NoError(t, uc.Delete(created.ID))

	p, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestFoldSearchTerm(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Café", "cafe"},
		{"  PERFUMERÍA  ", "perfumeria"},
		{"ñandú", "nandu"},
		{"widget", "widget"},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, usecase.FoldSearchTerm(tc.in), "entrada: %q", tc.in)
	}
}
