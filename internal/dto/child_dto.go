package dto

type CreateChildRequest struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Theme       string `json:"theme"`
	Preferences string `json:"preferences,omitempty"`
}

type UpdateChildRequest struct {
	Name        *string `json:"name,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Theme       *string `json:"theme,omitempty"`
	Preferences *string `json:"preferences,omitempty"`
}
