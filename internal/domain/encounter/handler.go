package encounter

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/TheGaff87/featured-creatures-api/internal/platform/auth"
)

type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes binds the public read routes directly on the API group and
// the write routes behind the authentication middleware.
func (h *Handler) RegisterRoutes(api *echo.Group, authMW echo.MiddlewareFunc) {
	api.GET("/animals", h.ListAnimals)
	api.GET("/zoos", h.ListZoos)
	api.GET("/encounters", h.ListEncounters)
	api.GET("/animal/:term", h.ListByAnimal)
	api.GET("/zoo/:term", h.ListByZoo)

	write := api.Group("", authMW)
	write.POST("/encounters", h.CreateEncounter)
	write.PUT("/encounters/:id", h.UpdateEncounter)
	write.DELETE("/encounters/:id", h.DeleteEncounter)
}

func (h *Handler) ListAnimals(c echo.Context) error {
	animals, err := h.svc.DistinctAnimals(c.Request().Context())
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, animals)
}

func (h *Handler) ListZoos(c echo.Context) error {
	zoos, err := h.svc.DistinctZoos(c.Request().Context())
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, zoos)
}

func (h *Handler) ListEncounters(c echo.Context) error {
	views, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) ListByAnimal(c echo.Context) error {
	views, err := h.svc.ByAnimal(c.Request().Context(), c.Param("term"))
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) ListByZoo(c echo.Context) error {
	views, err := h.svc.ByZoo(c.Request().Context(), c.Param("term"))
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) CreateEncounter(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	identity := auth.UserFromContext(c.Request().Context())
	enc, err := h.svc.Create(c.Request().Context(), &req, identity)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, errorBody(verr.Error()))
		}
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusCreated, enc.Serialize())
}

func (h *Handler) UpdateEncounter(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid encounter id"))
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	if err := h.svc.Update(c.Request().Context(), id, &req); err != nil {
		return h.storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteEncounter(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid encounter id"))
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return h.storeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// storeError logs the persistence failure with full detail and reduces it to
// a generic message for the client.
func (h *Handler) storeError(c echo.Context, err error) error {
	h.logger.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Msg("store error")
	return c.JSON(http.StatusInternalServerError, errorBody("Internal server error"))
}

func errorBody(msg string) map[string]string {
	return map[string]string{"message": msg}
}
