package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/smartfridge/internal/server/auth"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAuthOutcome(t *testing.T) {
	m := New()

	m.RecordAuthOutcome(nil)
	m.RecordAuthOutcome(auth.ErrExpired)
	m.RecordAuthOutcome(auth.NewFailure(auth.FailureInternalStore, errors.New("db down")))
	m.RecordAuthOutcome(errors.New("unclassified"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.authOutcomes.WithLabelValues(OutcomeValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.authOutcomes.WithLabelValues(auth.FailureExpired.String())))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.authOutcomes.WithLabelValues(auth.FailureInternalStore.String())))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.authOutcomes.WithLabelValues(auth.FailureNoSession.String())))
}

func TestRecordLogin(t *testing.T) {
	m := New()

	m.RecordLogin(LoginSuccess)
	m.RecordLogin(LoginUnauthorized)
	m.RecordLogin(LoginUnauthorized)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues(LoginSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues(LoginUnauthorized)))
}

func TestHandler_ExposesCounters(t *testing.T) {
	m := New()
	m.RecordAuthOutcome(nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `smartfridge_auth_outcomes_total{outcome="valid"} 1`)
	assert.Contains(t, string(body), `smartfridge_logins_total{status="error"} 0`)
	assert.Contains(t, string(body), `smartfridge_auth_outcomes_total{outcome="expired"} 0`)
}
