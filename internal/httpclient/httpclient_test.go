package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus bool
		wantRetry  bool
	}{
		{name: "200 ok", status: http.StatusOK, body: `{"ok":true}`},
		{name: "204 no content", status: http.StatusNoContent},
		{name: "400 fatal", status: http.StatusBadRequest, body: "bad", wantStatus: true},
		{name: "401 fatal", status: http.StatusUnauthorized, body: "nope", wantStatus: true},
		{name: "404 fatal", status: http.StatusNotFound, wantStatus: true},
		{name: "500 retryable", status: http.StatusInternalServerError, body: "boom", wantStatus: true, wantRetry: true},
		{name: "503 retryable", status: http.StatusServiceUnavailable, wantStatus: true, wantRetry: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set(RequestIDHeader, "corr-1")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			req, err := NewJSONRequest(context.Background(), http.MethodGet, srv.URL, nil)
			require.NoError(t, err)

			resp, err := New().Execute(req)
			if !tt.wantStatus {
				require.NoError(t, err)
				assert.Equal(t, tt.status, resp.StatusCode)
				assert.Equal(t, tt.body, string(resp.Body))
				assert.Equal(t, "corr-1", resp.RequestID())
				return
			}

			require.Error(t, err)
			var se *StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.status, se.Code)
			assert.Equal(t, tt.body, se.Body)
			assert.Equal(t, "corr-1", se.RequestID)
			assert.Equal(t, tt.wantRetry, Retryable(err))
		})
	}
}

func TestExecute_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close()

	req, err := NewJSONRequest(context.Background(), http.MethodGet, addr, nil)
	require.NoError(t, err)

	_, err = New(WithConnectTimeout(time.Second)).Execute(req)
	require.Error(t, err)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, http.MethodGet, te.Method)
	assert.True(t, Retryable(err))
}

func TestExecute_ContextCanceledNotRetryable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := NewJSONRequest(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	_, err = New().Execute(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, Retryable(err))
}

func TestExecuteOptional(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			fmt.Fprint(w, `{"total":1}`)
		}
	}))
	defer srv.Close()

	c := New()

	req, err := NewJSONRequest(context.Background(), http.MethodGet, srv.URL+"/missing", nil)
	require.NoError(t, err)
	resp, err := c.ExecuteOptional(req)
	require.NoError(t, err)
	assert.Nil(t, resp)

	req, err = NewJSONRequest(context.Background(), http.MethodGet, srv.URL+"/found", nil)
	require.NoError(t, err)
	resp, err = c.ExecuteOptional(req)
	require.NoError(t, err)
	require.NotNil(t, resp)

	var body struct {
		Total int `json:"total"`
	}
	require.NoError(t, resp.DecodeJSON(&body))
	assert.Equal(t, 1, body.Total)

	req, err = NewJSONRequest(context.Background(), http.MethodGet, srv.URL+"/broken", nil)
	require.NoError(t, err)
	_, err = c.ExecuteOptional(req)
	assert.True(t, IsStatus(err, http.StatusBadGateway))
}

func TestDecorators(t *testing.T) {
	t.Parallel()

	var gotAuth, gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotBody = r.PostForm.Get("grant_type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	req, err := NewFormRequest(context.Background(), srv.URL, url.Values{"grant_type": {"client_credentials"}})
	require.NoError(t, err)
	_, err = New().Execute(Basic(req, "app", "cert"))
	require.NoError(t, err)

	// base64("app:cert") = "YXBwOmNlcnQ="
	assert.Equal(t, "Basic YXBwOmNlcnQ=", gotAuth)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "client_credentials", gotBody)

	req, err = NewJSONRequest(context.Background(), http.MethodPut, srv.URL, map[string]int{"a": 1})
	require.NoError(t, err)
	_, err = New().Execute(Bearer(req, "tok"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestRetryable_OtherErrors(t *testing.T) {
	t.Parallel()

	assert.False(t, Retryable(nil))
	assert.False(t, Retryable(errors.New("plain")))
	assert.False(t, Retryable(&TransportError{Err: context.DeadlineExceeded}))
}
