package handlers

import (
	"net/http"

	"pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	catalog entities.Catalog
}

func NewPlanHandler(catalog entities.Catalog) *PlanHandler {
	return &PlanHandler{catalog: catalog}
}

// ListPlans godoc
// @Summary  Plan and order-bump catalog
// @Tags     plans
// @Produce  json
// @Success  200  {object}  response.CatalogResponse
// @Router   /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.catalog))
}
