package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"careerpath/internal/errors"
	"careerpath/internal/service"
)

// ResourceHandler lists learning resources.
type ResourceHandler struct {
	catalogService service.CatalogService
}

func NewResourceHandler(catalogService service.CatalogService) *ResourceHandler {
	return &ResourceHandler{catalogService: catalogService}
}

// List godoc
// @Summary List learning resources
// @Tags resources
// @Produce json
// @Param skill_id query int false "Only resources of this skill"
// @Success 200 {array} model.Resource
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /resources [get]
func (h *ResourceHandler) List(c echo.Context) error {
	var skillID uint
	if raw := c.QueryParam("skill_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid skill_id",
				Code:  "INVALID_ID",
			})
		}
		skillID = uint(id)
	}
	resources, err := h.catalogService.Resources(c.Request().Context(), skillID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, resources)
}
