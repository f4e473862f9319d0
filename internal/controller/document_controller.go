package controller

import (
	"hr-assistant-be/internal/dto"
	"hr-assistant-be/internal/pkg/serverutils"
	"hr-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Render(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("render", c.Render)
}

// Render returns the PDF bytes directly; the client downloads the file.
func (c *documentController) Render(ctx *fiber.Ctx) error {
	var req dto.RenderDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return dto.NewInvalidInput("request body is not valid JSON")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return dto.NewInvalidInput(err.Error())
	}

	out, fileName, err := c.documentService.Render(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set("Content-Type", "application/pdf")
	ctx.Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	return ctx.Send(out)
}
