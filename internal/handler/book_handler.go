package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bookshelf/internal/auth"
	"bookshelf/internal/errors"
	"bookshelf/internal/service"
)

// BookHandler handles like, comment and details endpoints. Book
// identity is the raw (title, category) pair from the URL; it is
// passed through verbatim after path-unescaping.
type BookHandler struct {
	interactions service.InteractionService
	jwtService   *auth.JWTService
}

// NewBookHandler creates a new book handler.
func NewBookHandler(interactions service.InteractionService, jwtService *auth.JWTService) *BookHandler {
	return &BookHandler{
		interactions: interactions,
		jwtService:   jwtService,
	}
}

// CommentRequest represents a comment submission.
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// LikeResponse reports the like state after a toggle.
type LikeResponse struct {
	Liked bool `json:"liked"`
}

// pathParam returns one route parameter in decoded form. echo routes
// on the raw path only when it differs from the decoded one
// (URL.RawPath is set); only then do the params still carry
// percent-escapes. Unescaping otherwise would mangle titles containing
// a literal "%".
func pathParam(c echo.Context, name string) string {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

func bookParams(c echo.Context) (title, category string) {
	return pathParam(c, "title"), pathParam(c, "category")
}

// ToggleLike godoc
// @Summary Toggle the caller's like on a book
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param category path string true "Book category"
// @Param title path string true "Book title"
// @Success 200 {object} LikeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /books/{category}/{title}/like [post]
func (h *BookHandler) ToggleLike(c echo.Context) error {
	claims := auth.FromContext(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "no token provided",
			Code:  "TOKEN_MISSING",
		})
	}

	title, category := bookParams(c)
	liked, err := h.interactions.ToggleLike(c.Request().Context(), claims.UserID, title, category)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, LikeResponse{Liked: liked})
}

// AddComment godoc
// @Summary Comment on a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category path string true "Book category"
// @Param title path string true "Book title"
// @Param request body CommentRequest true "Comment text"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /books/{category}/{title}/comment [post]
func (h *BookHandler) AddComment(c echo.Context) error {
	claims := auth.FromContext(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "no token provided",
			Code:  "TOKEN_MISSING",
		})
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "comment text is required",
			Code:  "EMPTY_TEXT",
		})
	}

	title, category := bookParams(c)
	comment, err := h.interactions.AddComment(c.Request().Context(), claims.UserID, title, category, req.Text)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetDetails godoc
// @Summary Get like count, own like state and comments for a book
// @Tags books
// @Produce json
// @Param category path string true "Book category"
// @Param title path string true "Book title"
// @Param userId query string false "User id for isLiked (used when no token is sent)"
// @Success 200 {object} service.BookDetails
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /books/{category}/{title}/details [get]
func (h *BookHandler) GetDetails(c echo.Context) error {
	title, category := bookParams(c)

	userID, err := h.detailsUserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid userId",
			Code:  "INVALID_USER_ID",
		})
	}

	details, err := h.interactions.GetDetails(c.Request().Context(), title, category, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, details)
}

// detailsUserID resolves the optional identity for isLiked. A valid
// bearer token wins over the legacy userId query parameter; an absent
// or bad token on this public route just means anonymous.
func (h *BookHandler) detailsUserID(c echo.Context) (*uuid.UUID, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		if claims, err := h.jwtService.Verify(strings.TrimPrefix(header, "Bearer ")); err == nil {
			return &claims.UserID, nil
		}
	}

	raw := c.QueryParam("userId")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
