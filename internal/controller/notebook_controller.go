package controller

import (
	"ai-notebook-be/internal/dto"
	"ai-notebook-be/internal/pkg/serverutils"
	"ai-notebook-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	Deselect(ctx *fiber.Ctx) error
	Rename(ctx *fiber.Ctx) error
	AddSource(ctx *fiber.Ctx) error
}

type notebookController struct {
	service service.INotebookService
}

func NewNotebookController(service service.INotebookService) INotebookController {
	return &notebookController{service: service}
}

func (c *notebookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notebook/v1")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Post("/deselect", c.Deselect)
	h.Get(":id", c.Show)
	h.Put(":id", c.Rename)
	h.Post(":id/select", c.Select)
	h.Post(":id/source", c.AddSource)
}

func (c *notebookController) GetAll(ctx *fiber.Ctx) error {
	res := c.service.GetAll(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get all notebooks", res))
}

// Create allocates the notebook and selects it, matching the new-notebook
// workflow where the user lands directly in the conversation view.
func (c *notebookController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNotebookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if req.FirstSource != nil {
		if err := serverutils.ValidateRequest(req.FirstSource); err != nil {
			return err
		}
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	c.service.Select(ctx.Context(), res.Id)
	return ctx.JSON(serverutils.SuccessResponse("Success create notebook", res))
}

func (c *notebookController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return service.ErrNotebookNotFound
	}

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show notebook", res))
}

func (c *notebookController) Select(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return service.ErrNotebookNotFound
	}

	c.service.Select(ctx.Context(), id)
	return ctx.JSON(serverutils.SuccessResponse[any]("Success select notebook", nil))
}

func (c *notebookController) Deselect(ctx *fiber.Ctx) error {
	c.service.Deselect(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse[any]("Success deselect notebook", nil))
}

func (c *notebookController) Rename(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return service.ErrNotebookNotFound
	}

	var req dto.RenameNotebookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if err := c.service.Rename(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success rename notebook", nil))
}

func (c *notebookController) AddSource(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return service.ErrNotebookNotFound
	}

	var req dto.AddSourceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.NotebookId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddSource(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add source", res))
}
