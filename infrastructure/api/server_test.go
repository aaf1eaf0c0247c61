package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/infrastructure/index"
	"tienda-live/infrastructure/storage"
	"tienda-live/moderation"
	"tienda-live/projection"
	"tienda-live/runtime"
	"tienda-live/services"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) *Server {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })

	registry := runtime.NewRegistry()
	rooms := runtime.NewRooms(log, registry, nil)
	gateway := runtime.NewGateway(log, rooms, nil, nil)
	moderator, err := moderation.NewModerator([]string{"idiota"}, '*', log)
	require.NoError(t, err)
	numbers, err := domain.NewOrderNumberGenerator()
	require.NoError(t, err)

	promotions := storage.NewPromotionRepository(db, log, 10)
	redemption := services.NewRedemptionService(log, promotions, gateway, nil)

	return NewServer(log, ":0", "", Dependencies{
		Orders:      services.NewOrderService(log, storage.NewOrderRepository(db, log), index.NewOrderIndex(writer, log), redemption, gateway, numbers),
		Promotions:  services.NewPromotionService(log, promotions, gateway),
		Redemption:  redemption,
		Configs:     services.NewConfigService(log, storage.NewConfigRepository(db, log), gateway),
		Reviews:     services.NewReviewService(log, storage.NewReviewRepository(db, log), moderator, gateway),
		Connections: registry,
		Gatherer:    prometheus.NewRegistry(),
	})
}

func call(t *testing.T, s *Server, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	response, err := s.App().Test(request, -1)
	require.NoError(t, err)
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	decoded := map[string]any{}
	_ = json.Unmarshal(raw, &decoded)
	return response.StatusCode, decoded
}

func TestServer_Discount_Code_Flow(t *testing.T) {
	s := setupServer(t)

	// Given PROMO10 usable once in store 7
	status, created := call(t, s, http.MethodPost, "/api/configuracion/evento", map[string]any{
		"tienda_id":            7,
		"titulo":               "Diez por ciento",
		"codigo_descuento":     "promo10",
		"descuento_porcentaje": 10,
		"limite_uso":           1,
	})
	require.Equal(t, http.StatusCreated, status)
	promotionID := created["id"]

	t.Run("should validate the code", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodPost, "/api/configuracion/validar-codigo", map[string]any{"codigo": "PROMO10", "tienda_id": "7"})
		req.Equal(http.StatusOK, status)
		req.Equal(true, body["valid"])
	})

	t.Run("should answer 404 for an unknown code", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodPost, "/api/configuracion/validar-codigo", map[string]any{"codigo": "NOPE", "tienda_id": 7})
		req.Equal(http.StatusNotFound, status)
		req.Equal(false, body["valid"])
	})

	t.Run("should apply the code to a new order", func(t *testing.T) {
		req := require.New(t)
		status, order := call(t, s, http.MethodPost, "/api/ordenes", map[string]any{
			"tienda_id":        7,
			"cliente_nombre":   "Ana",
			"cliente_telefono": "555",
			"codigo_descuento": "promo10",
			"items":            []map[string]any{{"producto_id": 1, "cantidad": 2, "precio_unitario": 50}},
		})
		req.Equal(http.StatusCreated, status)
		req.Equal("90", order["total"])
		req.Equal("PROMO10", order["codigo_descuento"])
	})

	t.Run("should refuse the exhausted code", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodPost, "/api/configuracion/validar-codigo", map[string]any{"codigo": "PROMO10", "tienda_id": 7})
		req.Equal(http.StatusBadRequest, status)
		req.Equal("exhausted", body["reason"])

		status, body = call(t, s, http.MethodPost, "/api/configuracion/usar-codigo", map[string]any{
			"evento_id":          promotionID,
			"codigo_usado":       "PROMO10",
			"descuento_aplicado": 5,
		})
		req.Equal(http.StatusConflict, status)
		req.Equal("exhausted", body["reason"])
	})

	t.Run("should refuse a used code that is not the promotion's", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodPost, "/api/configuracion/usar-codigo", map[string]any{
			"evento_id":    promotionID,
			"codigo_usado": "OTRO",
		})
		req.Equal(http.StatusBadRequest, status)
		req.Equal("invalid-request", body["reason"])
	})

	t.Run("should refuse store ids and phones holding the key separator", func(t *testing.T) {
		req := require.New(t)
		status, _ := call(t, s, http.MethodPost, "/api/configuracion/validar-codigo", map[string]any{"codigo": "PROMO10", "tienda_id": "7:x"})
		req.Equal(http.StatusBadRequest, status)

		status, _ = call(t, s, http.MethodPost, "/api/configuracion/validar-codigo", map[string]any{"codigo": "PROMO10", "tienda_id": "7", "cliente_telefono": "555:1"})
		req.Equal(http.StatusBadRequest, status)

		status, body := call(t, s, http.MethodGet, "/api/configuracion/eventos/7:x", nil)
		req.Equal(http.StatusBadRequest, status)
		req.Equal("invalid-request", body["reason"])
	})
}

func callList(t *testing.T, s *Server, path string) (int, []map[string]any) {
	t.Helper()
	response, err := s.App().Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer response.Body.Close()
	var body []map[string]any
	_ = json.NewDecoder(response.Body).Decode(&body)
	return response.StatusCode, body
}

func TestServer_Orders(t *testing.T) {
	s := setupServer(t)
	status, order := call(t, s, http.MethodPost, "/api/ordenes", map[string]any{
		"tienda_id":      "3",
		"cliente_nombre": "Luis Gomez",
		"items":          []map[string]any{{"producto_id": "p1", "cantidad": 1, "precio_unitario": "12.50"}},
	})
	require.Equal(t, http.StatusCreated, status)
	number := order["numero_orden"].(string)

	t.Run("should refuse an order without items", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodPost, "/api/ordenes", map[string]any{"tienda_id": 3, "cliente_nombre": "Ana", "items": []any{}})
		req.Equal(http.StatusBadRequest, status)
		req.Equal("invalid-request", body["reason"])
	})

	t.Run("should read the order back", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodGet, "/api/ordenes/numero/"+number, nil)
		req.Equal(http.StatusOK, status)
		req.Equal("pendiente", body["estado"])
	})

	t.Run("should refuse an unknown status", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodPut, "/api/ordenes/"+number+"/estado", map[string]any{"estado": "perdida"})
		req.Equal(http.StatusBadRequest, status)
		req.Equal("invalid-status", body["reason"])
	})

	t.Run("should change the status", func(t *testing.T) {
		req := require.New(t)
		status, _ := call(t, s, http.MethodPut, "/api/ordenes/"+number+"/estado", map[string]any{"estado": "confirmada"})
		req.Equal(http.StatusOK, status)
	})

	t.Run("should find the order by customer name", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodGet, "/api/ordenes/buscar/3?q=luis", nil)
		req.Equal(http.StatusOK, status)
		req.Equal(float64(1), body["total"])
	})

	t.Run("should list the orders of the store with filters", func(t *testing.T) {
		req := require.New(t)
		status, orders := callList(t, s, "/api/ordenes/tienda/3")
		req.Equal(http.StatusOK, status)
		req.Len(orders, 1)
		req.Equal(number, orders[0]["numero_orden"])

		status, orders = callList(t, s, "/api/ordenes/tienda/3?estado=entregada&tiempo=hoy")
		req.Equal(http.StatusOK, status)
		req.Empty(orders)

		status, _ = callList(t, s, "/api/ordenes/tienda/3?tiempo=ayer")
		req.Equal(http.StatusBadRequest, status)
	})

	t.Run("should give the store dashboard figures", func(t *testing.T) {
		req := require.New(t)
		status, stats := call(t, s, http.MethodGet, "/api/ordenes/stats/3", nil)
		req.Equal(http.StatusOK, status)
		req.Equal("3", stats["tienda_id"])
		req.Equal(float64(1), stats["total_ordenes"])
		req.Equal("12.5", stats["ventas_hoy"])
		req.Equal(map[string]any{"producto_id": "p1", "cantidad_vendida": float64(1)}, stats["producto_mas_vendido"])
	})

	t.Run("should answer 404 for an unknown order", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodPost, "/api/ordenes/ORD-0-0/notificar", map[string]any{"mensaje": "hola"})
		req.Equal(http.StatusNotFound, status)
		req.Equal("not-found", body["reason"])
	})
}

func TestServer_Store_Surface(t *testing.T) {
	s := setupServer(t)

	t.Run("should expose health and socket stats", func(t *testing.T) {
		req := require.New(t)
		status, _ := call(t, s, http.MethodGet, "/health", nil)
		req.Equal(http.StatusOK, status)

		status, body := call(t, s, http.MethodGet, "/api/socket/stats", nil)
		req.Equal(http.StatusOK, status)
		req.Contains(body, "totalConnections")
	})

	t.Run("should refuse a configuration without known fields", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodPut, "/api/configuracion/tienda/1", map[string]any{"hack": true})
		req.Equal(http.StatusBadRequest, status)
		req.Equal("no-fields", body["reason"])
	})

	t.Run("should keep a censored review pending", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodPost, "/api/comentarios", map[string]any{
			"tienda_id":      1,
			"cliente_nombre": "Ana",
			"comentario":     "vendedor idiota",
			"calificacion":   2,
		})
		req.Equal(http.StatusCreated, status)
		req.NotContains(body["comentario"], "idiota")

		status, _ = call(t, s, http.MethodGet, "/api/comentarios/pendientes/1", nil)
		req.Equal(http.StatusOK, status)
	})

	t.Run("should refuse a short review", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodPost, "/api/comentarios", map[string]any{"tienda_id": 1, "comentario": "ok"})
		req.Equal(http.StatusBadRequest, status)
		req.Equal("invalid-request", body["reason"])
	})
}

func TestServer_Published_Reviews(t *testing.T) {
	s := setupServer(t)
	submit := func(comment string, rating int) string {
		status, body := call(t, s, http.MethodPost, "/api/comentarios", map[string]any{
			"tienda_id":        4,
			"cliente_nombre":   "Ana",
			"cliente_telefono": "555",
			"comentario":       comment,
			"calificacion":     rating,
		})
		require.Equal(t, http.StatusCreated, status)
		return body["id"].(string)
	}
	published := submit("Excelente servicio", 5)
	submit("Buen producto", 4)
	status, _ := call(t, s, http.MethodPut, "/api/comentarios/"+published+"/aprobar", nil)
	require.Equal(t, http.StatusOK, status)

	t.Run("should show only approved reviews with their average", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodGet, "/api/comentarios/tienda/4", nil)
		req.Equal(http.StatusOK, status)
		reviews := body["comentarios"].([]any)
		req.Len(reviews, 1)
		req.NotContains(reviews[0], "cliente_telefono")
		summary := body["estadisticas"].(map[string]any)
		req.Equal("5.0", summary["promedio_calificacion"])
		req.Equal(float64(1), summary["total_comentarios"])
	})

	t.Run("should count pending reviews in the owner stats", func(t *testing.T) {
		req := require.New(t)
		status, body := call(t, s, http.MethodGet, "/api/comentarios/stats/4", nil)
		req.Equal(http.StatusOK, status)
		summary := body["resumen"].(map[string]any)
		req.Equal(float64(2), summary["total_comentarios"])
		req.Equal(float64(1), summary["pendientes_aprobacion"])
		req.Equal("4.5", summary["promedio_calificacion"])
		req.Equal("100.0", summary["porcentaje_satisfaccion"])
		req.Len(body["distribucion"], 1)
	})

	t.Run("should delete a review once", func(t *testing.T) {
		req := require.New(t)
		status, _ := call(t, s, http.MethodDelete, "/api/comentarios/"+published, nil)
		req.Equal(http.StatusOK, status)

		_, body := call(t, s, http.MethodGet, "/api/comentarios/tienda/4", nil)
		req.Empty(body["comentarios"])
		req.Nil(body["estadisticas"].(map[string]any)["promedio_calificacion"])

		status, body = call(t, s, http.MethodDelete, "/api/comentarios/"+published, nil)
		req.Equal(http.StatusNotFound, status)
		req.Equal("not-found", body["reason"])
	})
}

func TestServer_Recent_Notifications(t *testing.T) {
	req := require.New(t)
	timeline := projection.NewTimeline(10)
	for _, name := range []string{event.PromotionCreated, event.ConfigUpdated} {
		n := event.NewNotification(domain.StoreRoom("7"), "7", name, event.Fields{"tiendaId": "7"}, time.Now())
		req.NoError(timeline.Consume(context.Background(), n))
	}
	s := NewServer(logs.GetLoggerFromLevel(slog.LevelDebug), ":0", "", Dependencies{Recent: timeline})

	request := httptest.NewRequest(http.MethodGet, "/api/socket/recientes/7?limit=1", nil)
	response, err := s.App().Test(request, -1)
	req.NoError(err)
	defer response.Body.Close()

	var body []map[string]any
	req.NoError(json.NewDecoder(response.Body).Decode(&body))
	req.Len(body, 1)
	req.Equal(event.ConfigUpdated, body[0]["event"])
}
