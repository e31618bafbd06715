package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestBookParams(t *testing.T) {
	tests := []struct {
		name             string
		target           string
		paramCategory    string
		paramTitle       string
		expectedCategory string
		expectedTitle    string
	}{
		{
			// plain path: params arrive decoded, pass through untouched
			name:             "plain segments",
			target:           "/api/books/SciFi/Dune/details",
			paramCategory:    "SciFi",
			paramTitle:       "Dune",
			expectedCategory: "SciFi",
			expectedTitle:    "Dune",
		},
		{
			// "%20" is the canonical escape of a space, so RawPath stays
			// empty and echo hands the param over already decoded
			name:             "title with space",
			target:           "/api/books/SciFi/Dune%20Messiah/details",
			paramCategory:    "SciFi",
			paramTitle:       "Dune Messiah",
			expectedCategory: "SciFi",
			expectedTitle:    "Dune Messiah",
		},
		{
			// a literal "%" in the title must survive; RawPath is empty
			// here too and a second unescape would turn it into a space
			name:             "title with literal percent",
			target:           "/api/books/SciFi/Dune%2520Messiah/details",
			paramCategory:    "SciFi",
			paramTitle:       "Dune%20Messiah",
			expectedCategory: "SciFi",
			expectedTitle:    "Dune%20Messiah",
		},
		{
			// an escaped slash forces echo onto the raw path, so the
			// params still carry their escapes and need decoding
			name:             "category with escaped slash",
			target:           "/api/books/Science%2FFiction/Dune/details",
			paramCategory:    "Science%2FFiction",
			paramTitle:       "Dune",
			expectedCategory: "Science/Fiction",
			expectedTitle:    "Dune",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("category", "title")
			c.SetParamValues(tt.paramCategory, tt.paramTitle)

			title, category := bookParams(c)
			assert.Equal(t, tt.expectedCategory, category)
			assert.Equal(t, tt.expectedTitle, title)
		})
	}
}
