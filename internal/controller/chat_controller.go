package controller

import (
	"errors"

	"menu-ai-be/internal/dto"
	"menu-ai-be/internal/pkg/serverutils"
	"menu-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	CleanupSessions(ctx *fiber.Ctx) error
	AnalyzeIntent(ctx *fiber.Ctx) error
	AnalyzeEmotion(ctx *fiber.Ctx) error
	ExtractEntities(ctx *fiber.Ctx) error
	SubmitFeedback(ctx *fiber.Ctx) error
	ConversationMetrics(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService        service.IChatService
	defaultMaxAgeHours int
}

func NewChatController(chatService service.IChatService, defaultMaxAgeHours int) IChatController {
	return &chatController{
		chatService:        chatService,
		defaultMaxAgeHours: defaultMaxAgeHours,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
	r.Get("/session/:id", c.ShowSession)
	r.Delete("/session/:id", c.DeleteSession)
	r.Post("/cleanup-sessions", c.CleanupSessions)
	r.Post("/analyze-intent", c.AnalyzeIntent)
	r.Post("/analyze-emotion", c.AnalyzeEmotion)
	r.Post("/extract-entities", c.ExtractEntities)
	r.Post("/feedback", c.SubmitFeedback)
	r.Get("/conversation-metrics/:id", c.ConversationMetrics)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}

func (c *chatController) ShowSession(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	res, err := c.chatService.GetSession(sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	if err := c.chatService.DeleteSession(sessionId); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func (c *chatController) CleanupSessions(ctx *fiber.Ctx) error {
	maxAgeHours := ctx.QueryInt("max_age_hours", c.defaultMaxAgeHours)
	if maxAgeHours <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "max_age_hours must be positive")
	}

	res := c.chatService.CleanupSessions(maxAgeHours)
	return ctx.JSON(serverutils.SuccessResponse("Success cleanup sessions", res))
}

func (c *chatController) AnalyzeIntent(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.chatService.AnalyzeIntent(req.Message)
	return ctx.JSON(serverutils.SuccessResponse("Success analyze intent", res))
}

func (c *chatController) AnalyzeEmotion(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.chatService.AnalyzeEmotion(req.Message)
	return ctx.JSON(serverutils.SuccessResponse("Success analyze emotion", res))
}

func (c *chatController) ExtractEntities(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.chatService.ExtractEntities(req.Message)
	return ctx.JSON(serverutils.SuccessResponse("Success extract entities", res))
}

func (c *chatController) SubmitFeedback(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SubmitFeedback(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit feedback", res))
}

func (c *chatController) ConversationMetrics(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	res, err := c.chatService.ConversationMetrics(sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success conversation metrics", res))
}
