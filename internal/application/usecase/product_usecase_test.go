package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
)

// fakeProductRepo repositorio de productos en memoria.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.products, id)
	return nil
}

func newProductUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(newFakeProductRepo())
}

func strPtr(s string) *string { return &s }

func createProductRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        "Camiseta básica",
		Description: "Algodón 100%",
		Brand:       "Acme",
		Price:       decimal.RequireFromString("49.90"),
		Variants: []entity.Variant{
			{Color: "negro", Size: "M", Stock: 10},
			{Color: "blanco", Size: "L", Stock: 3},
		},
	}
}

func TestProductCreate_PrecioNegativo_Rechazado(t *testing.T) {
	uc := newProductUC()
	in := createProductRequest()
	in.Price = decimal.RequireFromString("-0.01")
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_StockNegativoEnVariante_Rechazado(t *testing.T) {
	uc := newProductUC()
	in := createProductRequest()
	in.Variants[1].Stock = -1
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_SinVariantes_RespondeListaVacia(t *testing.T) {
	uc := newProductUC()
	in := createProductRequest()
	in.Variants = nil

	out, err := uc.Create(in)
	require.NoError(t, err)
	require.NotNil(t, out.Variants, "variants debe serializar como [] y no como null")
	assert.Empty(t, out.Variants)
}

func TestProductUpdate_MergeParcial(t *testing.T) {
	uc := newProductUC()
	created, err := uc.Create(createProductRequest())
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("59.90")
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:  strPtr("Camiseta premium"),
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, "Camiseta premium", out.Name)
	assert.True(t, newPrice.Equal(out.Price))
	assert.Equal(t, "Acme", out.Brand, "los campos no enviados no se tocan")
	assert.Len(t, out.Variants, 2, "variants nil no debe borrar las variantes")
}

func TestProductUpdate_VariantesReemplazanCompletas(t *testing.T) {
	uc := newProductUC()
	created, err := uc.Create(createProductRequest())
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Variants: []entity.Variant{{Color: "rojo", Size: "S", Stock: 1}},
	})
	require.NoError(t, err)
	require.Len(t, out.Variants, 1, "enviar variants reemplaza el conjunto completo")
	assert.Equal(t, "rojo", out.Variants[0].Color)
}

func TestProductUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	uc := newProductUC()
	_, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc := newProductUC()
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
