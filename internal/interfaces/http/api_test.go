package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/autotienda-api/internal/application/analytics"
	"github.com/jhoicas/autotienda-api/internal/application/auth"
	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/application/orders"
	"github.com/jhoicas/autotienda-api/internal/application/usecase"
	"github.com/jhoicas/autotienda-api/internal/domain/catalog"
	"github.com/jhoicas/autotienda-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/autotienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/autotienda-api/internal/infrastructure/metrics"
	"github.com/jhoicas/autotienda-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/autotienda-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/autotienda-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Harness: app completa sobre el store en memoria sembrado con los fixtures
// ──────────────────────────────────────────────────────────────────────────────

// IDs que asignan los fixtures embebidos.
const (
	adminID   = int64(1)
	clienteID = int64(2)
)

type testAPI struct {
	app      *fiber.App
	repos    memory.Repositories
	settings *usecase.SettingsService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()

	set, err := fixtures.Default()
	require.NoError(t, err)
	seeded, err := fixtures.Seed(context.Background(), fixtures.Target{
		Users:    repos.Users,
		Products: repos.Products,
		Orders:   repos.Orders,
		Support:  repos.Support,
		FAQs:     repos.FAQs,
	}, set, fixtures.Options{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	require.True(t, seeded)

	latency := metrics.NewLatencyRecorder()
	httpMetrics := metrics.NewHTTPMetrics("autotienda")
	settings := usecase.NewSettingsService(false)
	orderUC := orders.NewOrderUseCase(repos.Orders)

	app := apphttp.NewApp(apphttp.ServerOptions{
		AppName: "autotienda-test",
		Latency: latency,
		Metrics: httpMetrics,
	})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		UserUC:      usecase.NewUserUseCase(repos.Users),
		ProductUC:   usecase.NewProductUseCase(repos.Products),
		FAQUC:       usecase.NewFAQUseCase(repos.FAQs),
		SupportUC:   usecase.NewSupportUseCase(repos.Support),
		CreateOrder: orders.NewCreateOrderUseCase(memory.NewTxRunner(store), false),
		OrderUC:     orderUC,
		ReceiptUC:   orders.NewReceiptUseCase(orderUC, repos.Users, pdf.NewMarotoReceiptGenerator("Autotienda")),
		DashboardUC: analytics.NewDashboardUseCase(analytics.DashboardRepos{
			Users: repos.Users, Products: repos.Products, Orders: repos.Orders,
			Support: repos.Support, FAQs: repos.FAQs,
		}, latency),
		Settings:       settings,
		JWTSecret:      testJWTSecret,
		Cookie:         apphttp.CookieConfig{MaxAge: time.Hour},
		MetricsHandler: httpMetrics.Handler(),
		AppName:        "autotienda-test",
		StorageDriver:  "memory",
	})
	return &testAPI{app: app, repos: repos, settings: settings}
}

func bearer(t *testing.T, id int64, username, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, id, username, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func adminAuth(t *testing.T) string   { return bearer(t, adminID, "admin", "admin") }
func clienteAuth(t *testing.T) string { return bearer(t, clienteID, "cliente", "cliente") }

// do lanza la petición; body puede ser nil, un string JSON crudo o cualquier valor serializable.
func (a *testAPI) do(t *testing.T, method, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func errorCode(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body := decode[dto.ErrorResponse](t, resp)
	assert.NotEmpty(t, body.Error, "el cuerpo de error siempre trae mensaje")
	return body
}

func tokenCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.TokenCookie {
			return c
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["storage"])
}

func TestMetricsPrometheus(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodGet, "/api/products/1", "", nil)

	resp := api.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `autotienda_http_requests_total{method="GET",route="/api/products/:id",status="200"} 1`)
}

func TestRutaInexistente_Retorna404JSON(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ROUTE_NOT_FOUND", errorCode(t, resp).Code)
}

func TestIDNoNumerico_Retorna400(t *testing.T) {
	api := newTestAPI(t)
	for _, path := range []string{"/api/products/abc", "/api/products/0", "/api/faq/-3"} {
		resp := api.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "INVALID_ID", errorCode(t, resp).Code, path)
	}
}

func TestCampoDesconocido_Retorna400(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/faq", adminAuth(t),
		`{"question":"¿Hay taller?","answer":"Sí","color":"rojo"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// FAQ
// ──────────────────────────────────────────────────────────────────────────────

func TestFAQ_CrearAplicaValoresPorDefecto(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/faq", adminAuth(t),
		map[string]string{"question": "¿Tienen parqueadero?", "answer": "Sí, gratuito."})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decode[dto.FAQEnvelope](t, resp)
	assert.Equal(t, "general", out.FAQ.Category)
	assert.Equal(t, 999, out.FAQ.Order)
	assert.Positive(t, out.FAQ.ID)
}

func TestFAQ_CrearSinCamposRequeridos_Retorna400(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/faq", adminAuth(t), map[string]string{"question": "sin respuesta"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp).Code)
}

func TestFAQ_ListaOrdenadaYEstable(t *testing.T) {
	api := newTestAPI(t)
	// Dos FAQ con el mismo order: deben quedar en orden de inserción.
	for _, q := range []string{"primera empatada", "segunda empatada"} {
		resp := api.do(t, http.MethodPost, "/api/faq", adminAuth(t),
			map[string]interface{}{"question": q, "answer": "r", "order": 2})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := api.do(t, http.MethodGet, "/api/faq", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.FAQListResponse](t, resp).FAQs

	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].Order, list[i].Order, "orden ascendente por order")
	}
	var tied []string
	for _, f := range list {
		if f.Order == 2 {
			tied = append(tied, f.Question)
		}
	}
	require.Len(t, tied, 3)
	assert.Equal(t, []string{"primera empatada", "segunda empatada"}, tied[1:])
}

func TestFAQ_EscrituraRequiereAdmin(t *testing.T) {
	api := newTestAPI(t)
	body := map[string]string{"question": "q", "answer": "a"}

	resp := api.do(t, http.MethodPost, "/api/faq", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/api/faq", clienteAuth(t), body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestFAQ_EliminarYLuego404(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodDelete, "/api/faq/1", adminAuth(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.DeleteResponse](t, resp)
	assert.Equal(t, int64(1), out.ID)
	assert.NotEmpty(t, out.Message)

	resp = api.do(t, http.MethodGet, "/api/faq/1", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = api.do(t, http.MethodDelete, "/api/faq/1", adminAuth(t), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFAQ_ActualizarSoloRespuesta(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/faq", adminAuth(t), map[string]interface{}{
		"question": "Q1", "answer": "A1", "category": "pagos", "order": 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode[dto.FAQEnvelope](t, resp).FAQ.ID

	path := "/api/faq/" + strconv.FormatInt(id, 10)
	resp = api.do(t, http.MethodPut, path, adminAuth(t), map[string]string{"answer": "A2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = api.do(t, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	faq := decode[dto.FAQEnvelope](t, resp).FAQ
	assert.Equal(t, "Q1", faq.Question)
	assert.Equal(t, "A2", faq.Answer)
	assert.Equal(t, "pagos", faq.Category)
	assert.Equal(t, 5, faq.Order)
}

// Borrar un id inexistente responde 404 en todos los recursos.
func TestEliminarInexistente_Retorna404(t *testing.T) {
	api := newTestAPI(t)
	for _, resource := range []string{"users", "products", "orders", "support", "faq"} {
		t.Run(resource, func(t *testing.T) {
			resp := api.do(t, http.MethodDelete, "/api/"+resource+"/9999", adminAuth(t), nil)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Equal(t, "NOT_FOUND", errorCode(t, resp).Code)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CrearSinImagenUsaPlaceholder(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/products", adminAuth(t),
		`{"name":"Chevrolet Onix","price":69900000,"description":"Sedán urbano","images":["  ",""]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	p := decode[dto.ProductEnvelope](t, resp).Product
	assert.Equal(t, []string{catalog.PlaceholderImage("Chevrolet Onix")}, p.Images)
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, "69900000", p.Price.String())
}

func TestProductos_ImagenUnicaSeCombina(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/products", adminAuth(t),
		`{"name":"Onix","price":1,"description":"d","image":"https://img/a.jpg","images":["https://img/b.jpg"]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	p := decode[dto.ProductEnvelope](t, resp).Product
	assert.ElementsMatch(t, []string{"https://img/a.jpg", "https://img/b.jpg"}, p.Images)
}

func TestProductos_PrecioInvalido_Retorna400(t *testing.T) {
	api := newTestAPI(t)
	for _, body := range []string{
		`{"name":"X","price":0,"description":"d"}`,
		`{"name":"X","price":-5,"description":"d"}`,
		`{"name":"X","description":"d"}`,
		`{"name":"X","price":10,"description":"d","stock":-1}`,
		`{"name":"X","price":0.001,"description":"d"}`,
		`{"name":"X","price":99.999,"description":"d"}`,
	} {
		resp := api.do(t, http.MethodPost, "/api/products", adminAuth(t), body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestProductos_FiltroCategoriaSinTildes(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/products?category=ELECTRICO", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ProductListResponse](t, resp).Products
	require.Len(t, list, 1)
	assert.Equal(t, "Kia EV6 GT-Line", list[0].Name)
}

func TestProductos_ActualizacionParcialYNoEncontrado(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPut, "/api/products/2", adminAuth(t), map[string]int{"stock": 9})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	p := decode[dto.ProductEnvelope](t, resp).Product
	assert.Equal(t, 9, p.Stock)
	assert.Equal(t, "Mazda CX-5 Grand Touring", p.Name, "los campos ausentes no cambian")
	assert.Equal(t, int64(2), p.ID)

	resp = api.do(t, http.MethodPut, "/api/products/999", adminAuth(t), map[string]int{"stock": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductos_PrecioConCentavos(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/products", adminAuth(t), `{"name":"Spark","price":45000000.50,"description":"d"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "45000000.5", decode[dto.ProductEnvelope](t, resp).Product.Price.String())

	resp = api.do(t, http.MethodPut, "/api/products/1", adminAuth(t), `{"price":0.005}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_OKFijaCookie(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/auth/login", "",
		map[string]string{"username": "cliente", "password": "cliente123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.AuthResponse](t, resp)
	assert.Equal(t, "cliente", out.User.Role)
	assert.NotEmpty(t, out.Token)

	cookie := tokenCookie(resp)
	require.NotNil(t, cookie, "login debe fijar la cookie token")
	assert.Equal(t, out.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
}

func TestLogin_CredencialesInvalidas_SinCookie(t *testing.T) {
	api := newTestAPI(t)
	for _, body := range []map[string]string{
		{"username": "cliente", "password": "incorrecta"},
		{"username": "fantasma", "password": "cliente123"},
	} {
		resp := api.do(t, http.MethodPost, "/api/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Nil(t, tokenCookie(resp), "un login fallido no fija cookie")
	}
}

func TestLogin_CamposFaltantes_Retorna400(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "cliente"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_UsuarioInactivo_Retorna403(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/auth/login", "",
		map[string]string{"username": "laura", "password": "laura123"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Nil(t, tokenCookie(resp))
}

func TestLogout_BorraLaMismaCookie(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := tokenCookie(resp)
	require.NotNil(t, cookie, "logout debe expirar la cookie token")
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))
}

func TestRegister(t *testing.T) {
	api := newTestAPI(t)
	body := map[string]string{
		"name": "Nuevo Cliente", "username": "nuevo", "email": "nuevo@correo.com", "password": "secreto1",
	}
	resp := api.do(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.AuthResponse](t, resp)
	assert.Equal(t, "cliente", out.User.Role)
	assert.Equal(t, "activo", out.User.Status)
	assert.NotNil(t, tokenCookie(resp))

	// El token emitido sirve para /me.
	resp = api.do(t, http.MethodGet, "/api/auth/me", "Bearer "+out.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "nuevo", decode[dto.UserEnvelope](t, resp).User.Username)

	t.Run("duplicado", func(t *testing.T) {
		resp := api.do(t, http.MethodPost, "/api/auth/register", "", body)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
	t.Run("password corto", func(t *testing.T) {
		resp := api.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
			"name": "X", "username": "otro", "email": "otro@correo.com", "password": "123",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
	t.Run("email mal formado", func(t *testing.T) {
		resp := api.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
			"name": "X", "username": "otro", "email": "no-es-email", "password": "secreto1",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestMe_SinToken_Retorna401(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token emitido antes de desactivar la cuenta deja de servir.
func TestSesion_CuentaDesactivadaPierdeAcceso(t *testing.T) {
	api := newTestAPI(t)
	token := clienteAuth(t)
	resp := api.do(t, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = api.do(t, http.MethodPut, "/api/users/2", adminAuth(t), map[string]string{"status": "inactivo"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/orders", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ACCOUNT_INACTIVE", errorCode(t, resp).Code)

	before := orderCount(t, api)
	resp = api.do(t, http.MethodPost, "/api/orders", token, map[string]interface{}{
		"userId": clienteID,
		"items":  []map[string]int64{{"productId": 1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, before, orderCount(t, api))
}

// Un admin degradado a cliente pierde las rutas de admin aunque su token diga "admin".
func TestSesion_AdminDegradadoPierdeRol(t *testing.T) {
	api := newTestAPI(t)
	token := adminAuth(t)
	resp := api.do(t, http.MethodPut, "/api/users/1", token, map[string]string{"role": "cliente"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/users", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cliente", decode[dto.UserEnvelope](t, resp).User.Role)
}

// El token de una cuenta borrada ya no autentica ni permite crear pedidos.
func TestSesion_CuentaBorradaNoAutentica(t *testing.T) {
	api := newTestAPI(t)
	token := clienteAuth(t)
	resp := api.do(t, http.MethodDelete, "/api/users/2", adminAuth(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	before := orderCount(t, api)
	resp = api.do(t, http.MethodPost, "/api/orders", token, map[string]interface{}{
		"userId": clienteID,
		"items":  []map[string]int64{{"productId": 1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", errorCode(t, resp).Code)
	assert.Equal(t, before, orderCount(t, api))

	// En rutas públicas con auth opcional sigue como anónimo.
	resp = api.do(t, http.MethodPost, "/api/support", token, map[string]string{
		"subject": "Hola", "message": "Sigo aquí", "category": "ventas",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Nil(t, decode[dto.SupportTicketEnvelope](t, resp).Ticket.UserID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios (admin)
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuarios_SoloAdmin(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/users", clienteAuth(t), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/users", adminAuth(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password", "la lista nunca expone el password")

	var list dto.UserListResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Len(t, list.Users, 3)
}

func TestUsuarios_CrearValidaRolYUnicidad(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/users", adminAuth(t), map[string]string{
		"name": "Vendedor", "username": "vendedor", "email": "v@autotienda.com", "role": "vendedor",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/api/users", adminAuth(t), map[string]string{
		"name": "Otro", "username": "CLIENTE", "email": "x@autotienda.com", "role": "cliente",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = api.do(t, http.MethodPut, "/api/users/3", adminAuth(t), map[string]string{"email": "admin@autotienda.com"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func orderCount(t *testing.T, api *testAPI) int {
	t.Helper()
	n, err := api.repos.Orders.Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestPedidos_CrearCongelaLineasYTotal(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/orders", clienteAuth(t), map[string]interface{}{
		"userId": clienteID,
		"items": []map[string]int64{
			{"productId": 1, "quantity": 2},
			{"productId": 2, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	o := decode[dto.OrderEnvelope](t, resp).Order
	assert.Equal(t, "pendiente", o.Status)
	assert.Equal(t, clienteID, o.UserID)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Toyota Corolla 2024", o.Items[0].Name)
	assert.Equal(t, "https://images.autotienda.com/corolla-2024-frente.jpg", o.Items[0].Image)
	// 2 × 98.500.000 + 145.900.000
	assert.Equal(t, "342900000", o.Total.String())

	// El precio de la línea no cambia si luego cambia el producto.
	resp = api.do(t, http.MethodPut, "/api/products/1", adminAuth(t), map[string]int{"price": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = api.do(t, http.MethodGet, "/api/orders/2", clienteAuth(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "98500000", decode[dto.OrderEnvelope](t, resp).Order.Items[0].Price.String())
}

func TestPedidos_StockInsuficiente_NoGuardaNada(t *testing.T) {
	api := newTestAPI(t)
	before := orderCount(t, api)

	resp := api.do(t, http.MethodPost, "/api/orders", clienteAuth(t), map[string]interface{}{
		"userId": clienteID,
		"items": []map[string]int64{
			{"productId": 1, "quantity": 1},
			{"productId": 3, "quantity": 5},
		},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := errorCode(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Contains(t, body.Error, "Ford Ranger XLT")

	assert.Equal(t, before, orderCount(t, api), "el pedido fallido no se persiste")
}

func TestPedidos_ProductoInexistente_Retorna404ConID(t *testing.T) {
	api := newTestAPI(t)
	before := orderCount(t, api)

	resp := api.do(t, http.MethodPost, "/api/orders", clienteAuth(t), map[string]interface{}{
		"userId": clienteID,
		"items":  []map[string]int64{{"productId": 1, "quantity": 1}, {"productId": 4242, "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, errorCode(t, resp).Error, "4242")
	assert.Equal(t, before, orderCount(t, api))
}

func TestPedidos_Validaciones(t *testing.T) {
	api := newTestAPI(t)
	cases := map[string]interface{}{
		"sin items":     map[string]interface{}{"userId": clienteID, "items": []interface{}{}},
		"sin userId":    map[string]interface{}{"items": []map[string]int64{{"productId": 1, "quantity": 1}}},
		"cantidad cero": map[string]interface{}{"userId": clienteID, "items": []map[string]int64{{"productId": 1, "quantity": 0}}},
	}
	for name, body := range cases {
		resp := api.do(t, http.MethodPost, "/api/orders", clienteAuth(t), body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
	}
}

func TestPedidos_ClienteNoPuedePedirAOtroUsuario(t *testing.T) {
	api := newTestAPI(t)
	body := map[string]interface{}{
		"userId": adminID,
		"items":  []map[string]int64{{"productId": 1, "quantity": 1}},
	}
	resp := api.do(t, http.MethodPost, "/api/orders", clienteAuth(t), body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = api.do(t, http.MethodPost, "/api/orders", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPedidos_ListadoFiltradoPorDueño(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/orders", adminAuth(t), map[string]interface{}{
		"userId": adminID,
		"items":  []map[string]int64{{"productId": 2, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = api.do(t, http.MethodGet, "/api/orders", clienteAuth(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, o := range decode[dto.OrderListResponse](t, resp).Orders {
		assert.Equal(t, clienteID, o.UserID, "un cliente solo ve sus pedidos")
	}

	resp = api.do(t, http.MethodGet, "/api/orders", adminAuth(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.OrderListResponse](t, resp).Orders, 2)

	resp = api.do(t, http.MethodGet, "/api/orders?status=entregado", adminAuth(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.OrderListResponse](t, resp).Orders, 1)

	// Pedido del admin leído por el cliente: misma respuesta que un id inexistente.
	resp = api.do(t, http.MethodGet, "/api/orders/2", clienteAuth(t), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	ajeno := errorCode(t, resp)
	resp = api.do(t, http.MethodGet, "/api/orders/4242", clienteAuth(t), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, errorCode(t, resp), ajeno)
}

func TestPedidos_ActualizarEstado(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPut, "/api/orders/1", adminAuth(t), map[string]string{"status": "volando"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = api.do(t, http.MethodPut, "/api/orders/1", adminAuth(t), map[string]string{"status": "cancelado"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cancelado", decode[dto.OrderEnvelope](t, resp).Order.Status)

	resp = api.do(t, http.MethodPut, "/api/orders/1", clienteAuth(t), map[string]string{"status": "entregado"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPedidos_ComprobantePDF(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/orders/1/receipt", clienteAuth(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	resp = api.do(t, http.MethodGet, "/api/orders/99/receipt", adminAuth(t), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Soporte
// ──────────────────────────────────────────────────────────────────────────────

func TestSoporte_TicketAnonimoSinDueño(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/support", "", map[string]interface{}{
		"userId": clienteID, "name": "Ana", "email": "ana@correo.com",
		"subject": "Repuestos", "message": "¿Tienen filtros?", "category": "taller",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ticket := decode[dto.SupportTicketEnvelope](t, resp).Ticket
	assert.Nil(t, ticket.UserID, "un visitante anónimo no puede asignar dueño")
	assert.Equal(t, "abierto", ticket.Status)
}

func TestSoporte_ClienteAutenticadoQuedaComoDueño(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/support", clienteAuth(t), map[string]string{
		"subject": "Garantía", "message": "Ruido en la suspensión", "category": "posventa",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ticket := decode[dto.SupportTicketEnvelope](t, resp).Ticket
	require.NotNil(t, ticket.UserID)
	assert.Equal(t, clienteID, *ticket.UserID)
}

func TestSoporte_ListadoYFiltros(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodGet, "/api/support", clienteAuth(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.SupportTicketListResponse](t, resp).Tickets, 1)

	resp = api.do(t, http.MethodGet, "/api/support?status=resuelto", adminAuth(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tickets := decode[dto.SupportTicketListResponse](t, resp).Tickets
	require.Len(t, tickets, 1)
	assert.Equal(t, "taller", tickets[0].Category)

	resp = api.do(t, http.MethodGet, "/api/support?userId=abc", adminAuth(t), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// El ticket anónimo no es del cliente.
	resp = api.do(t, http.MethodGet, "/api/support/2", clienteAuth(t), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSoporte_CamposRequeridos(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPost, "/api/support", "", map[string]string{"subject": "Hola"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin
// ──────────────────────────────────────────────────────────────────────────────

func TestAdmin_ModoMantenimiento(t *testing.T) {
	api := newTestAPI(t)
	resp := api.do(t, http.MethodPut, "/api/admin/settings", adminAuth(t), map[string]bool{"maintenanceMode": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.SettingsResponse](t, resp).MaintenanceMode)

	order := map[string]interface{}{
		"userId": clienteID,
		"items":  []map[string]int64{{"productId": 1, "quantity": 1}},
	}
	resp = api.do(t, http.MethodPost, "/api/orders", clienteAuth(t), order)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "MAINTENANCE", errorCode(t, resp).Code)

	resp = api.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "X", "username": "x1", "email": "x1@correo.com", "password": "secreto1",
	})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	// El admin sigue operando.
	order["userId"] = adminID
	resp = api.do(t, http.MethodPost, "/api/orders", adminAuth(t), order)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Lecturas públicas no se ven afectadas.
	resp = api.do(t, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdmin_Stats(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodGet, "/api/products", "", nil)

	resp := api.do(t, http.MethodGet, "/api/admin/stats", adminAuth(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[dto.StatsResponse](t, resp)
	assert.Equal(t, dto.ResourceCounts{Users: 3, Products: 5, Orders: 1, Tickets: 2, FAQs: 4}, stats.Counts)
	assert.GreaterOrEqual(t, stats.Latency.Count, int64(1))

	resp = api.do(t, http.MethodGet, "/api/admin/stats", clienteAuth(t), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
