package utils

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAQICategory(t *testing.T) {
	require.Equal(t, "Good", AQICategory(30))
	require.Equal(t, "Satisfactory", AQICategory(100))
	require.Equal(t, "Moderate", AQICategory(150))
	require.Equal(t, "Poor", AQICategory(250))
	require.Equal(t, "Very Poor", AQICategory(350))
	require.Equal(t, "Severe", AQICategory(450))
}

func newAQIServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAQI(t *testing.T) {
	srv := newAQIServer(t, `{"status":"ok","data":{"aqi":180,"city":{"name":"Pune"}}}`)

	t.Setenv("AQI_API_URL", srv.URL)
	InitAQI()

	data, err := FetchAQI("pune")
	require.NoError(t, err)
	require.Equal(t, "Pune", data.City)
	require.Equal(t, 180, data.AQI)
	require.Equal(t, "Moderate", data.Category)
}

func TestFetchAQI_ProviderError(t *testing.T) {
	srv := newAQIServer(t, `{"status":"error"}`)

	t.Setenv("AQI_API_URL", srv.URL)
	InitAQI()

	_, err := FetchAQI("nowhere")
	require.Error(t, err)
}

func TestFetchAQI_NotInitialized(t *testing.T) {
	aqiClient = nil

	_, err := FetchAQI("pune")
	require.Error(t, err)
}

// The client is built once at startup and only read afterwards, so
// parallel requests must share it without racing.
func TestFetchAQI_ConcurrentRequests(t *testing.T) {
	srv := newAQIServer(t, `{"status":"ok","data":{"aqi":42,"city":{"name":"Delhi"}}}`)

	t.Setenv("AQI_API_URL", srv.URL)
	InitAQI()

	const workers = 8
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := FetchAQI("delhi")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
