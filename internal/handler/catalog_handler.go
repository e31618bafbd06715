package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bookshelf/internal/catalog"
	"bookshelf/internal/errors"
)

// CatalogHandler serves the static book catalog.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListBooks godoc
// @Summary List all books
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Book
// @Router /books [get]
func (h *CatalogHandler) ListBooks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.List())
}

// ListCategory godoc
// @Summary List books of one category
// @Tags catalog
// @Produce json
// @Param category path string true "Book category"
// @Success 200 {array} model.Book
// @Failure 404 {object} errors.ErrorResponse
// @Router /books/{category} [get]
func (h *CatalogHandler) ListCategory(c echo.Context) error {
	books, ok := h.catalog.ListByCategory(pathParam(c, "category"))
	if !ok {
		httpErr := errors.MapErrorToHTTP(errors.ErrCategoryNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, books)
}
