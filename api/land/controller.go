/*
Package land (API layer) exposes the land listing endpoints.

Error handling:
 1. Binding errors answer 400 through response.HandleError.
 2. Domain and application errors go through response.HandleAppError, which
    translates them via errors.FromDomainError and maps codes to HTTP statuses.
*/
package land

import (
	"context"
	"net/http"

	"landlisting/api/response"
	landapp "landlisting/application/land"
	"landlisting/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Controller handles the /lands routes.
type Controller struct {
	landService *landapp.ApplicationService
}

// NewController creates the land controller.
func NewController(landService *landapp.ApplicationService) *Controller {
	return &Controller{
		landService: landService,
	}
}

// RegisterRoutes registers the land routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	landGroup := router.Group("/lands")
	{
		landGroup.POST("", c.CreateLand)
		landGroup.GET("", c.SearchLands)
		landGroup.GET("/:id", c.GetLand)
		landGroup.PUT("/:id", c.UpdateLandDetails)
		landGroup.PUT("/:id/price", c.UpdateLandPrice)
		landGroup.DELETE("/:id", c.DeleteLand)

		landGroup.POST("/:id/publish", c.PublishLand)
		landGroup.POST("/:id/unpublish", c.UnpublishLand)
		landGroup.POST("/:id/archive", c.ArchiveLand)
		landGroup.POST("/:id/sold", c.MarkLandSold)
		landGroup.POST("/:id/reserve", c.ReserveLand)
		landGroup.POST("/:id/restore", c.RestoreLand)

		landGroup.GET("/:id/publication-check", c.CheckPublication)
		landGroup.GET("/:id/valuation", c.AssessValue)
		landGroup.GET("/:id/seo", c.GetSEOSuggestions)
		landGroup.GET("/:id/similar", c.FindSimilar)
	}
}

func landID(ctx *gin.Context) (string, bool) {
	id := ctx.Param("id")
	if id == "" {
		response.HandleError(ctx, errors.BadRequest("land ID is required"), "land ID is required", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

// CreateLand creates a draft listing.
// POST /api/v1/lands
func (c *Controller) CreateLand(ctx *gin.Context) {
	var req landapp.CreateLandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	land, err := c.landService.CreateLand(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, land, "land created successfully")
}

// GetLand returns one listing.
// GET /api/v1/lands/:id
func (c *Controller) GetLand(ctx *gin.Context) {
	id, ok := landID(ctx)
	if !ok {
		return
	}

	land, err := c.landService.GetLand(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, land, "land retrieved successfully")
}

// SearchLands pages through listings.
// GET /api/v1/lands
func (c *Controller) SearchLands(ctx *gin.Context) {
	var query landapp.SearchLandsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.HandleError(ctx, err, "invalid query parameters", http.StatusBadRequest)
		return
	}

	result, err := c.landService.SearchLands(ctx.Request.Context(), query)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	pagination := response.Pagination{
		Page:       result.CurrentPage,
		PageSize:   len(result.Lands),
		TotalItems: result.Total,
		TotalPages: result.TotalPages,
	}
	response.HandlePaginated(ctx, result.Lands, pagination, "lands retrieved successfully")
}

// UpdateLandDetails applies a partial update.
// PUT /api/v1/lands/:id
func (c *Controller) UpdateLandDetails(ctx *gin.Context) {
	id, ok := landID(ctx)
	if !ok {
		return
	}

	var req landapp.UpdateLandDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	land, err := c.landService.UpdateLandDetails(ctx.Request.Context(), id, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, land, "land updated successfully")
}

// UpdateLandPrice changes the asking price.
// PUT /api/v1/lands/:id/price
func (c *Controller) UpdateLandPrice(ctx *gin.Context) {
	id, ok := landID(ctx)
	if !ok {
		return
	}

	var req landapp.UpdateLandPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	land, err := c.landService.UpdateLandPrice(ctx.Request.Context(), id, req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, land, "land price updated successfully")
}

// DeleteLand removes a draft or archived listing.
// DELETE /api/v1/lands/:id
func (c *Controller) DeleteLand(ctx *gin.Context) {
	id, ok := landID(ctx)
	if !ok {
		return
	}

	if err := c.landService.DeleteLand(ctx.Request.Context(), id); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleNoContent(ctx)
}

// PublishLand takes a listing live.
// POST /api/v1/lands/:id/publish
func (c *Controller) PublishLand(ctx *gin.Context) {
	c.statusAction(ctx, c.landService.PublishLand, "land published successfully")
}

// UnpublishLand takes a listing off the public site.
// POST /api/v1/lands/:id/unpublish
func (c *Controller) UnpublishLand(ctx *gin.Context) {
	c.statusAction(ctx, c.landService.UnpublishLand, "land unpublished successfully")
}

// ArchiveLand archives a listing.
// POST /api/v1/lands/:id/archive
func (c *Controller) ArchiveLand(ctx *gin.Context) {
	c.statusAction(ctx, c.landService.ArchiveLand, "land archived successfully")
}

// MarkLandSold records a sale.
// POST /api/v1/lands/:id/sold
func (c *Controller) MarkLandSold(ctx *gin.Context) {
	c.statusAction(ctx, c.landService.MarkLandSold, "land marked as sold")
}

// ReserveLand places a deposit hold.
// POST /api/v1/lands/:id/reserve
func (c *Controller) ReserveLand(ctx *gin.Context) {
	c.statusAction(ctx, c.landService.ReserveLand, "land reserved successfully")
}

// RestoreLand brings an archived listing back to draft.
// POST /api/v1/lands/:id/restore
func (c *Controller) RestoreLand(ctx *gin.Context) {
	c.statusAction(ctx, c.landService.RestoreLand, "land restored successfully")
}

func (c *Controller) statusAction(
	ctx *gin.Context,
	action func(context.Context, string) (*landapp.LandResponse, error),
	message string,
) {
	id, ok := landID(ctx)
	if !ok {
		return
	}

	land, err := action(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, land, message)
}

// CheckPublication reports whether a listing may go live.
// GET /api/v1/lands/:id/publication-check
func (c *Controller) CheckPublication(ctx *gin.Context) {
	id, ok := landID(ctx)
	if !ok {
		return
	}

	check, err := c.landService.ValidateLandForPublication(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, check, "publication check completed")
}

// AssessValue returns the market value assessment.
// GET /api/v1/lands/:id/valuation
func (c *Controller) AssessValue(ctx *gin.Context) {
	id, ok := landID(ctx)
	if !ok {
		return
	}

	valuation, err := c.landService.AssessLandValue(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, valuation, "valuation completed")
}

// GetSEOSuggestions returns generated listing copy.
// GET /api/v1/lands/:id/seo
func (c *Controller) GetSEOSuggestions(ctx *gin.Context) {
	id, ok := landID(ctx)
	if !ok {
		return
	}

	seo, err := c.landService.GetSEOSuggestions(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, seo, "seo suggestions generated")
}

// FindSimilar returns comparable listings.
// GET /api/v1/lands/:id/similar
func (c *Controller) FindSimilar(ctx *gin.Context) {
	id, ok := landID(ctx)
	if !ok {
		return
	}

	similar, err := c.landService.FindSimilarLands(ctx.Request.Context(), id)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, similar, "similar lands retrieved successfully")
}
