package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	receiptsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventario_receipts_total",
		Help: "Recepciones de stock registradas.",
	})
	allocationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventario_allocations_total",
		Help: "Asignaciones de ítems a materiales registradas.",
	})
)

// MetricsHandler expone el registry de Prometheus en formato fiber.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
