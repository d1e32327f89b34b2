package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/pkg/logger"
)

// latencyRecorder lo implementa metrics.LatencyRecorder.
type latencyRecorder interface {
	Record(d time.Duration)
}

// requestObserver lo implementa metrics.HTTPMetrics.
type requestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// ServerOptions parámetros de NewApp. Logger, Latency y Metrics son opcionales.
type ServerOptions struct {
	AppName string
	Logger  *logger.Logger
	Latency latencyRecorder
	Metrics requestObserver
}

// NewApp construye la aplicación Fiber con la cadena de middlewares común:
// recover → request id → log de acceso/latencias. Los cuerpos JSON se decodifican en modo estricto.
func NewApp(opts ServerOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		JSONDecoder:  strictJSONUnmarshal,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(accessLog(opts.Logger, opts.Latency, opts.Metrics))
	return app
}

// strictJSONUnmarshal rechaza campos desconocidos y basura después del objeto.
func strictJSONUnmarshal(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("contenido adicional después del objeto JSON")
	}
	return nil
}

// errorHandler último recurso para errores que escapan de los handlers (rutas inexistentes,
// panics recuperados, errores de Fiber). Siempre responde JSON.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "ROUTE_NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Error: fe.Message})
	}
	return writeError(c, err)
}

// accessLog registra una línea por petición y alimenta el histograma de latencias y Prometheus.
func accessLog(l *logger.Logger, rec latencyRecorder, obs requestObserver) fiber.Handler {
	if l == nil {
		l = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// Resolver el status antes de loguear; si no, se registraría el 200 por defecto.
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		if rec != nil {
			rec.Record(elapsed)
		}
		status := c.Response().StatusCode()
		if obs != nil {
			obs.ObserveRequest(c.Method(), c.Route().Path, status, elapsed)
		}
		ev := l.Info()
		if status >= fiber.StatusInternalServerError {
			ev = l.Error()
		}
		ev.Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("http")
		return nil
	}
}
