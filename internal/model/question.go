package model

// Question is one catalog entry for an onboarding module.
// CorrectAnswer and Keywords are grading data and must never reach clients,
// hence the "-" json tags.
type Question struct {
	ID            string   `json:"id" bson:"id"`
	Prompt        string   `json:"question" bson:"question"`
	CorrectAnswer string   `json:"-" bson:"correctAnswer"`
	Keywords      []string `json:"-" bson:"keywords,omitempty"`
}

// PublicQuestion is the client-facing view of a Question.
type PublicQuestion struct {
	ID     string `json:"id"`
	Prompt string `json:"question"`
}

// Public strips grading data for API responses.
func (q *Question) Public() PublicQuestion {
	return PublicQuestion{ID: q.ID, Prompt: q.Prompt}
}
