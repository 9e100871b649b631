package controller

import (
	"menu-ai-be/internal/dto"
	"menu-ai-be/internal/pkg/serverutils"
	"menu-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMenuController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	Seasonal(ctx *fiber.Ctx) error
	Popular(ctx *fiber.Ctx) error
	Recommend(ctx *fiber.Ctx) error
}

type menuController struct {
	menuService service.IMenuService
}

func NewMenuController(menuService service.IMenuService) IMenuController {
	return &menuController{
		menuService: menuService,
	}
}

func (c *menuController) RegisterRoutes(r fiber.Router) {
	r.Get("/menu", c.Index)
	r.Get("/menu/:id", c.Show)
	r.Post("/search", c.Search)
	r.Get("/categories", c.Categories)
	r.Get("/seasonal", c.Seasonal)
	r.Get("/popular", c.Popular)
	r.Post("/recommendations", c.Recommend)
}

func (c *menuController) Index(ctx *fiber.Ctx) error {
	items := c.menuService.GetAllItems()
	return ctx.JSON(serverutils.SuccessResponse("Success list menu", &dto.MenuItemsResponse{Items: items}))
}

func (c *menuController) Show(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	item, ok := c.menuService.GetItemById(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Menu item not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show menu item", &item))
}

func (c *menuController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.menuService.Search(&req)
	return ctx.JSON(serverutils.SuccessResponse("Success search menu", res))
}

func (c *menuController) Categories(ctx *fiber.Ctx) error {
	categories := c.menuService.Categories()
	return ctx.JSON(serverutils.SuccessResponse("Success list categories", &dto.CategoriesResponse{Categories: categories}))
}

func (c *menuController) Seasonal(ctx *fiber.Ctx) error {
	items := c.menuService.SeasonalItems()
	return ctx.JSON(serverutils.SuccessResponse("Success list seasonal items", &dto.MenuItemsResponse{Items: items}))
}

func (c *menuController) Popular(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 5)
	items := c.menuService.PopularItems(limit)
	return ctx.JSON(serverutils.SuccessResponse("Success list popular items", &dto.MenuItemsResponse{Items: items}))
}

func (c *menuController) Recommend(ctx *fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.menuService.Recommend(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success recommend menu", res))
}
