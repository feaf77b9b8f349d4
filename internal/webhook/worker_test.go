package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/wildfire_dashboard/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestWorker(cfg *config.Config) *ScarWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	w := NewScarWorker(nil, logger, cfg)
	w.sleep = func(time.Duration) {}
	return w
}

func TestDeliver_SignedPayload(t *testing.T) {
	payload := `{"analysis_id":"x","area_ha":12.5}`
	var gotSignature, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
	})

	ok := worker.deliver(context.Background(), ScarEvent{AnalysisID: uuid.New()}, payload)

	assert.True(t, ok)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestDeliver_RetriesThenGivesUp(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        srv.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	ok := worker.deliver(context.Background(), ScarEvent{}, "{}")

	assert.False(t, ok)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDeliver_NoURLConfigured(t *testing.T) {
	worker := newTestWorker(&config.Config{WebhookMaxRetries: 3})

	assert.False(t, worker.deliver(context.Background(), ScarEvent{}, "{}"))
}
