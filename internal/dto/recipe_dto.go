package dto

type SetFavoriteRequest struct {
	IsFavorite bool `json:"is_favorite"`
}

type SetPrintedRequest struct {
	IsPrinted bool `json:"is_printed"`
}

type SetMemoryRequest struct {
	ChildMemory string `json:"child_memory"`
}

type SetTemplateRequest struct {
	TemplateType string `json:"template_type"`
}
