package httputils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, BadRequest("bad input"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error": "bad input"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	HandleError(rec, errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}

func TestWarningResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WarningResponse(rec, "No posts found.", []int{}))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status": "warning", "warning": "No posts found.", "data": []}`, rec.Body.String())
}

func TestCSVResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, CSVResponse(rec, "out.csv", []string{"a", "b"}, [][]string{{"1", "x,y"}}))

	require.Equal(t, `attachment; filename="out.csv"`, rec.Header().Get("Content-Disposition"))
	require.Equal(t, "a,b\n1,\"x,y\"\n", rec.Body.String())
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?from=2016&to=x", nil)

	v, err := QueryInt(r, "from", 0)
	require.NoError(t, err)
	require.Equal(t, 2016, v)

	v, err = QueryInt(r, "missing", 7)
	require.NoError(t, err)
	require.Equal(t, 7, v)

	_, err = QueryInt(r, "to", 0)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestWithRequestID(t *testing.T) {
	var seen string
	h := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	require.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "given")
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "given", seen)
}

func TestDecodeJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	var v map[string]any
	err := DecodeJSON(r, &v)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusUnsupportedMediaType, httpErr.Code)
}
