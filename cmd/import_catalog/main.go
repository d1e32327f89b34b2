// import_catalog carga en el store configurado el catálogo XML exportado por un concesionario.
//
// Uso: go run ./cmd/import_catalog [ruta/catalogo.xml]
// Por defecto busca catalogo.xml en el directorio actual. Con STORAGE_DRIVER=memory
// la carga no persiste: sirve para validar el archivo antes de importarlo a PostgreSQL.
package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/autotienda-api/internal/application/usecase"
	"github.com/jhoicas/autotienda-api/internal/infrastructure/catalogxml"
	"github.com/jhoicas/autotienda-api/internal/infrastructure/storage"
	"github.com/jhoicas/autotienda-api/pkg/config"
	"github.com/jhoicas/autotienda-api/pkg/logger"
)

func main() {
	xmlPath := "catalogo.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(xmlPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", xmlPath).Msg("abrir XML")
	}
	defer f.Close()

	catalog, err := catalogxml.Parse(f)
	if err != nil {
		log.Fatal().Err(err).Msg("leer catálogo")
	}
	for _, s := range catalog.Skipped {
		log.Warn().Str("detalle", s).Msg("vehículo descartado al leer")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store")
	}
	defer store.Close()

	res, err := usecase.NewCatalogImportUseCase(store.Products).Import(ctx, catalog.Products)
	if err != nil {
		log.Fatal().Err(err).Msg("importar catálogo")
	}
	for _, name := range res.Duplicates {
		log.Info().Str("nombre", name).Msg("ya existe en el catálogo, omitido")
	}
	for _, msg := range res.Failed {
		log.Warn().Str("detalle", msg).Msg("vehículo rechazado")
	}
	log.Info().
		Str("concesionario", catalog.Dealer).
		Str("driver", store.Driver).
		Int("creados", len(res.Created)).
		Int("duplicados", len(res.Duplicates)).
		Int("rechazados", len(res.Failed)+len(catalog.Skipped)).
		Msg("importación terminada")
}
