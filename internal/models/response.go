package models

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// Performance summarizes a user's results for one session. Score is the
// mean of available per-question scores over the total question count,
// rounded to two decimals, and nil for a session with no questions.
type Performance struct {
	TotalQuestions int      `json:"total_questions"`
	AnsweredCount  int      `json:"answered_count"`
	Score          *float64 `json:"score"`
}

// QuestionDetail pairs a session question with the requesting user's
// answer to it, if any. Only the first matching answer is considered.
type QuestionDetail struct {
	Question Question `json:"question"`
	Answer   *Answer  `json:"answer"`
}

type SessionDetailResponse struct {
	Session     InterviewSession `json:"session"`
	Questions   []QuestionDetail `json:"questions"`
	Performance Performance      `json:"performance"`
}

type SubmitAnswerResponse struct {
	Answer        Answer    `json:"answer"`
	NextQuestion  *Question `json:"next_question"`
	SessionStatus string    `json:"session_status"`
}
