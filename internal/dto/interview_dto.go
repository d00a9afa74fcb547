package dto

type SubmitAnswerRequest struct {
	QuestionID string      `json:"question_id"`
	Answer     interface{} `json:"answer"`
}
