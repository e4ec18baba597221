package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(dispatchTotal.WithLabelValues("RAG_QA"))
	IncDispatch("RAG_QA")
	assert.Equal(t, before+1, testutil.ToFloat64(dispatchTotal.WithLabelValues("RAG_QA")))

	errsBefore := testutil.ToFloat64(retrievalErrors.WithLabelValues("general"))
	ObserveRetrieval("general", time.Now(), errors.New("boom"))
	ObserveRetrieval("general", time.Now(), nil)
	assert.Equal(t, errsBefore+1, testutil.ToFloat64(retrievalErrors.WithLabelValues("general")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	IncSpeculative("reused")

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `assistant_speculative_retrieval_total{outcome="reused"}`)
}
