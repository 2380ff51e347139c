package controller

import (
	"strconv"

	"ai-notebook-be/internal/dto"
	"ai-notebook-be/internal/pkg/serverutils"
	"ai-notebook-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStudioController interface {
	RegisterRoutes(r fiber.Router)
	GenerateGuide(ctx *fiber.Ctx) error
	ListGuides(ctx *fiber.Ctx) error
	AudioOverview(ctx *fiber.Ctx) error
}

type studioController struct {
	guideService service.IGuideService
	audioService service.IAudioService
}

func NewStudioController(guideService service.IGuideService, audioService service.IAudioService) IStudioController {
	return &studioController{
		guideService: guideService,
		audioService: audioService,
	}
}

func (c *studioController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/studio/v1")
	h.Post("/guide", c.GenerateGuide)
	h.Get("/guide/:notebookId", c.ListGuides)
	h.Post("/audio", c.AudioOverview)
}

func (c *studioController) GenerateGuide(ctx *fiber.Ctx) error {
	var req dto.GenerateGuideRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.guideService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate guide", res))
}

func (c *studioController) ListGuides(ctx *fiber.Ctx) error {
	notebookId, err := uuid.Parse(ctx.Params("notebookId"))
	if err != nil {
		return service.ErrNotebookNotFound
	}

	res, err := c.guideService.ListByNotebook(ctx.Context(), notebookId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list guides", res))
}

// AudioOverview streams the raw PCM back with its format in headers, so the
// client can decode without re-encoding overhead.
func (c *studioController) AudioOverview(ctx *fiber.Ctx) error {
	var req dto.AudioOverviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.audioService.GenerateOverview(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set("Content-Type", "application/octet-stream")
	ctx.Set("X-Audio-Sample-Rate", strconv.Itoa(res.SampleRate))
	ctx.Set("X-Audio-Channels", strconv.Itoa(res.Channels))
	return ctx.Send(res.PCM)
}
