package catalogxml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/autotienda-api/internal/infrastructure/catalogxml"
)

const catalogoUTF8 = `<?xml version="1.0" encoding="UTF-8"?>
<catalogo concesionario="Autos del Valle">
  <vehiculo categoria="suv" stock="3">
    <nombre>Mazda CX-5</nombre>
    <precio>145900000</precio>
    <descripcion>SUV mediana</descripcion>
    <imagenes><imagen> https://img/cx5.jpg </imagen></imagenes>
    <ficha><dato clave="motor">2.5L</dato><dato>sin clave</dato></ficha>
    <equipamiento><item>Techo corredizo</item><item> </item></equipamiento>
  </vehiculo>
  <vehiculo categoria="sedan">
    <nombre>Sin precio</nombre>
  </vehiculo>
  <vehiculo><precio>1</precio></vehiculo>
</catalogo>`

func TestParse_UTF8(t *testing.T) {
	cat, err := catalogxml.Parse(strings.NewReader(catalogoUTF8))
	require.NoError(t, err)
	assert.Equal(t, "Autos del Valle", cat.Dealer)
	require.Len(t, cat.Products, 1)
	assert.Len(t, cat.Skipped, 2)

	p := cat.Products[0]
	assert.Equal(t, "Mazda CX-5", p.Name)
	assert.Equal(t, "suv", p.Category)
	assert.Equal(t, "145900000", p.Price.String())
	require.NotNil(t, p.Stock)
	assert.Equal(t, 3, *p.Stock)
	assert.Equal(t, []string{"https://img/cx5.jpg"}, p.Images)
	assert.Equal(t, map[string]string{"motor": "2.5L"}, p.Specs)
	assert.Equal(t, []string{"Techo corredizo"}, p.Features)
}

func TestParse_Latin1(t *testing.T) {
	src := `<?xml version="1.0" encoding="ISO-8859-1"?>
<catalogo concesionario="Camiones Bogotá">
  <vehiculo categoria="camión"><nombre>Chevrolet NHR</nombre><precio>120000000</precio></vehiculo>
</catalogo>`
	encoded, err := charmap.ISO8859_1.NewEncoder().String(src)
	require.NoError(t, err)

	cat, err := catalogxml.Parse(bytes.NewReader([]byte(encoded)))
	require.NoError(t, err)
	assert.Equal(t, "Camiones Bogotá", cat.Dealer)
	require.Len(t, cat.Products, 1)
	assert.Equal(t, "camión", cat.Products[0].Category)
	assert.Nil(t, cat.Products[0].Stock)
}

func TestParse_RaizIncorrecta(t *testing.T) {
	_, err := catalogxml.Parse(strings.NewReader(`<productos/>`))
	assert.Error(t, err)
}
