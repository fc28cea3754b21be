package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestURLParamInt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "valid", value: "12", want: 12},
		{name: "zero", value: "0", wantErr: true},
		{name: "not a number", value: "abc", wantErr: true},
		{name: "missing", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.value)
			got, err := URLParamInt(r, "id")
			if tt.wantErr {
				assert.EqualError(t, err, "invalid id")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?card_id=3", nil)
	v, err := QueryInt(r, "card_id")
	require.NoError(t, err)
	assert.Equal(t, 3, *v)

	v, err = QueryInt(r, "book_id")
	require.NoError(t, err)
	assert.Nil(t, v)

	r = httptest.NewRequest(http.MethodGet, "/?card_id=x", nil)
	_, err = QueryInt(r, "card_id")
	assert.EqualError(t, err, "invalid card_id")
}
