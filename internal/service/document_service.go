package service

import (
	"context"
	"fmt"
	"time"

	"hr-assistant-be/internal/dto"
	"hr-assistant-be/pkg/docrender"
)

type IDocumentService interface {
	Render(ctx context.Context, request *dto.RenderDocumentRequest) ([]byte, string, error)
}

// documentService exposes the layout engine directly, for re-rendering a
// previously composed markdown with style overrides.
type documentService struct{}

func NewDocumentService() IDocumentService {
	return &documentService{}
}

// Render returns the PDF bytes and a suggested file name. Unlike the turn
// pipeline there is no text fallback here: a render failure surfaces.
func (s *documentService) Render(ctx context.Context, request *dto.RenderDocumentRequest) ([]byte, string, error) {
	renderer := docrender.NewRenderer()
	if request.Style != nil {
		applyStyleOverride(renderer, request.Style)
	}

	meta := docrender.Metadata{
		Title:     request.Metadata.Title,
		Type:      request.Metadata.Type,
		Author:    request.Metadata.Author,
		Date:      request.Metadata.Date,
		Reference: request.Metadata.Reference,
	}
	if meta.Date == "" {
		meta.Date = time.Now().Format("02/01/2006")
	}

	out, err := renderer.Render(request.Markdown, meta)
	if err != nil {
		return nil, "", dto.NewRenderFailed(err)
	}

	fileName := fmt.Sprintf("%s_%d.pdf", request.Metadata.Type, time.Now().Unix())
	return out, fileName, nil
}

func applyStyleOverride(renderer *docrender.Renderer, override *dto.DocumentStyleOverride) {
	if override.BodyFontSize > 0 {
		renderer.Style.BodyFontSize = override.BodyFontSize
	}
	if override.TitleFontSize > 0 {
		renderer.Style.TitleFontSize = override.TitleFontSize
	}
	if override.MarginTop > 0 {
		renderer.Geometry.MarginTop = override.MarginTop
	}
	if override.MarginBottom > 0 {
		renderer.Geometry.MarginBottom = override.MarginBottom
	}
	if override.MarginLeft > 0 {
		renderer.Geometry.MarginLeft = override.MarginLeft
	}
	if override.MarginRight > 0 {
		renderer.Geometry.MarginRight = override.MarginRight
	}
}
