package dto

type AssistantChatRequest struct {
	Message string `json:"message"`
}

type AssistantChatResponse struct {
	Message string `json:"message"`
}

type AssistantErrorResponse struct {
	Error string `json:"error"`
}
