// Wisata - Tourism Destination Recommendation API
// Copyright 2026 Wisata Jogja
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wisatajogja/wisata

package validation

import (
	"errors"
	"strings"
	"testing"
)

type samplePayload struct {
	Title    string `json:"title" validate:"required,max=200"`
	District string `json:"district" validate:"required"`
	URL      string `json:"url" validate:"omitempty,url"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=20"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		payload    samplePayload
		wantFields []string
	}{
		{
			name:    "valid payload",
			payload: samplePayload{Title: "Candi Ijo", District: "Sleman", Limit: 5},
		},
		{
			name:       "missing required fields",
			payload:    samplePayload{},
			wantFields: []string{"title", "district"},
		},
		{
			name:       "invalid url",
			payload:    samplePayload{Title: "Candi Ijo", District: "Sleman", URL: "not a url"},
			wantFields: []string{"url"},
		},
		{
			name:       "limit above max",
			payload:    samplePayload{Title: "Candi Ijo", District: "Sleman", Limit: 50},
			wantFields: []string{"limit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.payload)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("expected valid payload, got %v", err)
				}
				return
			}

			var rve *RequestValidationError
			if !errors.As(err, &rve) {
				t.Fatalf("expected *RequestValidationError, got %v", err)
			}
			if len(rve.Fields) != len(tt.wantFields) {
				t.Fatalf("got %d field errors %v, want %d", len(rve.Fields), rve.Fields, len(tt.wantFields))
			}
			for i, field := range tt.wantFields {
				if rve.Fields[i].Field != field {
					t.Errorf("field[%d] = %q, want %q", i, rve.Fields[i].Field, field)
				}
			}
		})
	}
}

func TestRequestValidationErrorMessage(t *testing.T) {
	err := &RequestValidationError{Fields: []FieldError{
		{Field: "title", Message: "this field is required"},
	}}
	if !strings.Contains(err.Error(), "title: this field is required") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestJSONTagNames(t *testing.T) {
	payload := samplePayload{District: "Sleman"}
	err := ValidateStruct(&payload)

	var rve *RequestValidationError
	if !errors.As(err, &rve) {
		t.Fatalf("expected *RequestValidationError, got %v", err)
	}
	if rve.Fields[0].Field != "title" {
		t.Errorf("expected json tag name, got %q", rve.Fields[0].Field)
	}
}
