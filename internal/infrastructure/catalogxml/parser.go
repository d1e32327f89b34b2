// Package catalogxml lee el catálogo XML que exportan los concesionarios.
//
// Formato esperado (la codificación suele ser ISO-8859-1):
//
//	<catalogo concesionario="...">
//	  <vehiculo categoria="suv" stock="3">
//	    <nombre>...</nombre>
//	    <precio>145900000</precio>
//	    <descripcion>...</descripcion>
//	    <imagenes><imagen>https://...</imagen></imagenes>
//	    <ficha><dato clave="motor">2.5L</dato></ficha>
//	    <equipamiento><item>Techo corredizo</item></equipamiento>
//	  </vehiculo>
//	</catalogo>
package catalogxml

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
)

// Catalog resultado de leer un archivo. Skipped describe los vehículos descartados.
type Catalog struct {
	Dealer   string
	Products []dto.CreateProductRequest
	Skipped  []string
}

// Parse lee el documento completo. Un vehículo inválido no aborta la lectura: se anota en Skipped.
func Parse(r io.Reader) (*Catalog, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("catalogxml: parsear XML: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "catalogo" {
		return nil, fmt.Errorf("catalogxml: se esperaba raíz <catalogo>")
	}

	out := &Catalog{Dealer: strings.TrimSpace(root.SelectAttrValue("concesionario", ""))}
	for i, el := range root.SelectElements("vehiculo") {
		req, err := parseVehicle(el)
		if err != nil {
			out.Skipped = append(out.Skipped, fmt.Sprintf("vehiculo %d: %v", i+1, err))
			continue
		}
		out.Products = append(out.Products, req)
	}
	return out, nil
}

func parseVehicle(el *etree.Element) (dto.CreateProductRequest, error) {
	req := dto.CreateProductRequest{
		Name:        childText(el, "nombre"),
		Category:    strings.TrimSpace(el.SelectAttrValue("categoria", "")),
		Description: childText(el, "descripcion"),
		Specs:       map[string]string{},
	}
	if req.Name == "" {
		return req, fmt.Errorf("sin <nombre>")
	}

	price, err := decimal.NewFromString(childText(el, "precio"))
	if err != nil {
		return req, fmt.Errorf("%s: precio inválido", req.Name)
	}
	req.Price = &price

	if raw := strings.TrimSpace(el.SelectAttrValue("stock", "")); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("%s: stock inválido %q", req.Name, raw)
		}
		req.Stock = &stock
	}

	if imgs := el.SelectElement("imagenes"); imgs != nil {
		for _, img := range imgs.SelectElements("imagen") {
			req.Images = append(req.Images, strings.TrimSpace(img.Text()))
		}
	}
	if ficha := el.SelectElement("ficha"); ficha != nil {
		for _, d := range ficha.SelectElements("dato") {
			key := strings.TrimSpace(d.SelectAttrValue("clave", ""))
			if key != "" {
				req.Specs[key] = strings.TrimSpace(d.Text())
			}
		}
	}
	if eq := el.SelectElement("equipamiento"); eq != nil {
		for _, it := range eq.SelectElements("item") {
			if v := strings.TrimSpace(it.Text()); v != "" {
				req.Features = append(req.Features, v)
			}
		}
	}
	return req, nil
}

func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

// charsetReader soporta los exportes en Latin-1 además de UTF-8.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToUpper(charset) {
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	case "", "UTF-8":
		return input, nil
	}
	return nil, fmt.Errorf("codificación no soportada: %s", charset)
}
