package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// pathID lee el parámetro :id. Solo acepta enteros positivos.
func pathID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
}

// queryID lee un filtro opcional de ID desde la query. 0 si no viene.
func queryID(c *fiber.Ctx, key string) (int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidQuery(c *fiber.Ctx, key string) error {
	return badRequest(c, "INVALID_QUERY", key+" debe ser un entero positivo")
}
