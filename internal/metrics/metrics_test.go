// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/flywatch/internal/notification"
	"grimm.is/flywatch/internal/page"
)

func TestMetrics_ObservesLog(t *testing.T) {
	m := NewMetrics()
	l := notification.NewLog(notification.WithObserver(m))

	for range notification.Capacity + 2 {
		l.Append(notification.PacketsThresholdExceeded{Threshold: 1})
	}
	l.Append(notification.FavoriteTransmitted{})

	assert.Equal(t, float64(notification.Capacity+2), testutil.ToFloat64(m.Appended.WithLabelValues("packets_threshold_exceeded")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Appended.WithLabelValues("favorite_transmitted")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.Appended.WithLabelValues("bytes_threshold_exceeded")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.Evicted))
	assert.Equal(t, float64(notification.Capacity), testutil.ToFloat64(m.Held))

	l.ClearAll()
	l.ClearAll()
	assert.Equal(t, float64(notification.Capacity), testutil.ToFloat64(m.Cleared))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.Held))
}

func TestMetrics_PageRenders(t *testing.T) {
	m := NewMetrics()
	m.PageRendered(page.StatePopulated)
	m.PageRendered(page.StatePopulated)
	m.PageRendered(page.StateUnconfigured)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.PageRenders.WithLabelValues("populated")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PageRenders.WithLabelValues("unconfigured")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.PageRenders.WithLabelValues("waiting_for_events")))
}

func TestHandler(t *testing.T) {
	m := NewMetrics()
	m.Rejected("unknown_kind")
	reg := NewRegistry(m)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "flywatch_notifications_retained 0")
	assert.Contains(t, body, `flywatch_notifications_ingest_rejected_total{reason="unknown_kind"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_SSHSessions(t *testing.T) {
	m := NewMetrics()
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.SSHSessions))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.SSHSessionsTotal))
}
