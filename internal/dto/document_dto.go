package dto

// RenderDocumentRequest is the internal render contract: markdown in,
// paginated PDF bytes out.
type RenderDocumentRequest struct {
	Markdown string                 `json:"markdown" validate:"required"`
	Metadata DocumentMetadataDTO    `json:"metadata" validate:"required"`
	Style    *DocumentStyleOverride `json:"style,omitempty"`
}

type DocumentMetadataDTO struct {
	Title     string `json:"title" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=decree letter report note"`
	Author    string `json:"author"`
	Date      string `json:"date"`
	Reference string `json:"reference,omitempty"`
}

type DocumentStyleOverride struct {
	BodyFontSize  float64 `json:"body_font_size,omitempty"`
	TitleFontSize float64 `json:"title_font_size,omitempty"`
	MarginTop     float64 `json:"margin_top,omitempty"`
	MarginBottom  float64 `json:"margin_bottom,omitempty"`
	MarginLeft    float64 `json:"margin_left,omitempty"`
	MarginRight   float64 `json:"margin_right,omitempty"`
}
