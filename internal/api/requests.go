// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package api

import (
	"fmt"
	"net/http"
	"strconv"
)

// CreateDestinationRequest is the POST /api/v1/destinations body.
// URL is optional; when omitted the store generates a map-search URL
// from the title and district.
type CreateDestinationRequest struct {
	Title      string   `json:"title" validate:"required,max=200"`
	District   string   `json:"district" validate:"required,max=100"`
	Categories []string `json:"categories" validate:"omitempty,dive,max=100"`
	URL        string   `json:"url" validate:"omitempty,url,max=500"`
}

// parseLimit reads an integer query parameter bounded to [1, max],
// falling back to def when absent.
func parseLimit(r *http.Request, name string, def, max int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("%s must be between 1 and %d", name, max)
	}
	return n, nil
}
