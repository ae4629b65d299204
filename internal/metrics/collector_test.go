package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A single collector for the whole test binary; promauto registers metrics
// in the default registry and rejects duplicates.
var collector = NewCollector()

func TestMiddleware_CountsRequests(t *testing.T) {
	app := fiber.New()
	app.Use(collector.Middleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	resp.Body.Close()

	count := testutil.ToFloat64(collector.httpRequests.WithLabelValues("GET", "/ping", "200"))
	assert.Equal(t, float64(1), count)
}

func TestUploadAndAuthCounters(t *testing.T) {
	uploadsBefore := testutil.ToFloat64(collector.uploadsTotal)
	bytesBefore := testutil.ToFloat64(collector.uploadBytes)
	failuresBefore := testutil.ToFloat64(collector.authFailures)

	collector.ObserveUpload(2048)
	collector.IncrementAuthFailures()

	assert.Equal(t, uploadsBefore+1, testutil.ToFloat64(collector.uploadsTotal))
	assert.Equal(t, bytesBefore+2048, testutil.ToFloat64(collector.uploadBytes))
	assert.Equal(t, failuresBefore+1, testutil.ToFloat64(collector.authFailures))
}
