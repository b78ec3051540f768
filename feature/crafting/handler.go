package crafting

import (
	"errors"
	"net/url"

	"craftstore/core/crafting"
	"craftstore/core/logger"
	"craftstore/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for crafting.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the crafting routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/crafting")
	group.Post("/evaluate", h.HandleEvaluate)
	group.Get("/players/:player/recipes", h.HandleRecipeMask)
	group.Get("/players/:player/recipes/:recipe", h.HandleRecipeDetail)
}

// HandleEvaluate evaluates an inline requirement.
// @Summary Evaluate Requirement
// @Description Evaluate required-item lines against inline storage pools.
// @Tags crafting
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Pools, lines and groups"
// @Success 200 {object} RecipeReport "Evaluation"
// @Failure 400 {object} map[string]string "Malformed Request"
// @Router /crafting/evaluate [post]
func (h *Handler) HandleEvaluate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Invalid evaluate body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	report, err := h.service.Evaluate(req)
	if err != nil {
		return h.fail(c, l, "Evaluation failed", err)
	}

	return c.JSON(report)
}

// HandleRecipeMask lists the craftable state of a station's recipes.
// @Summary Recipe Mask
// @Description Craftable state of every recipe of a station for a player.
// @Tags crafting
// @Produce json
// @Param player path string true "Player ID"
// @Param station query string false "Station (windmill, cooking)"
// @Success 200 {array} RecipeStatus "Recipe Mask"
// @Failure 400 {object} map[string]string "Invalid Station"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /crafting/players/{player}/recipes [get]
func (h *Handler) HandleRecipeMask(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	mask, err := h.service.RecipeMask(c.Context(), c.Params("player"), c.Query("station"))
	if err != nil {
		return h.fail(c, l, "Recipe mask failed", err)
	}

	return c.JSON(mask)
}

// HandleRecipeDetail returns the detailed report of one recipe.
// @Summary Recipe Detail
// @Description Per-slot storage amounts and craftable state of one recipe.
// @Tags crafting
// @Produce json
// @Param player path string true "Player ID"
// @Param recipe path string true "Recipe ID or name"
// @Success 200 {object} RecipeReport "Recipe Report"
// @Failure 404 {object} map[string]interface{} "Recipe Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /crafting/players/{player}/recipes/{recipe} [get]
func (h *Handler) HandleRecipeDetail(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	// Recipe names carry spaces.
	query := c.Params("recipe")
	if unescaped, err := url.PathUnescape(query); err == nil {
		query = unescaped
	}

	report, err := h.service.EvaluateRecipe(c.Context(), c.Params("player"), query)
	if err != nil {
		return h.fail(c, l, "Recipe detail failed", err)
	}

	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	var notFound *RecipeNotFoundError
	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":       err.Error(),
			"suggestions": notFound.Suggestions,
		})
	case errors.Is(err, crafting.ErrMalformedLine), errors.Is(err, ErrInvalidStation):
		l.Warn(msg, zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, inventory.ErrNoDatabase):
		l.Error(msg, zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		l.Error(msg, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
