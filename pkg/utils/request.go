package utils

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// URLParamInt reads a positive integer route parameter.
func URLParamInt(r *http.Request, key string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, key))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}

// QueryInt reads an optional positive integer query parameter.
func QueryInt(r *http.Request, key string) (*int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &v, nil
}
