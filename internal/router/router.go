package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bookshelf/internal/auth"
	"bookshelf/internal/config"
	apperrors "bookshelf/internal/errors"
	"bookshelf/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	bookHandler *handler.BookHandler,
	catalogHandler *handler.CatalogHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: false,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/books", catalogHandler.ListBooks)
	api.GET("/books/:category", catalogHandler.ListCategory)
	api.GET("/books/:category/:title/details", bookHandler.GetDetails)

	// Secured routes (require a valid session token)
	secured := api.Group("", AuthGate(jwtService))

	secured.GET("/profile", authHandler.Profile)
	secured.POST("/books/:category/:title/like", bookHandler.ToggleLike)
	secured.POST("/books/:category/:title/comment", bookHandler.AddComment)
}

// AuthGate builds the JWT middleware guarding protected routes. It
// stores *auth.Claims in the context on success and answers 401 with a
// distinct machine-readable code for each failure mode: header absent,
// header without the Bearer prefix, and each way token verification
// can fail.
func AuthGate(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  auth.ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.Verify(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			resp := gateErrorResponse(c.Request().Header.Get(echo.HeaderAuthorization), err)
			return echo.NewHTTPError(http.StatusUnauthorized, resp)
		},
	})
}

func gateErrorResponse(header string, err error) apperrors.ErrorResponse {
	if header == "" {
		return apperrors.ErrorResponse{
			Error: "no token provided, authorization denied",
			Code:  "TOKEN_MISSING",
		}
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return apperrors.ErrorResponse{
			Error: "authorization header must use the Bearer scheme",
			Code:  "AUTH_HEADER_MALFORMED",
		}
	}

	httpErr := apperrors.MapErrorToHTTP(tokenError(err))
	return httpErr.ToErrorResponse()
}

// tokenError digs the service-level token error out of whatever the
// jwt middleware wrapped around it.
func tokenError(err error) error {
	for _, sentinel := range []error{
		apperrors.ErrTokenExpired,
		apperrors.ErrTokenSignature,
		apperrors.ErrTokenMissing,
		apperrors.ErrTokenMalformed,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return apperrors.ErrTokenMalformed
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
