package api

const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"

	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
)

// Error represents a standardized error structure
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error Error `json:"error"`
}

// NewErrorResponse собирает тело ответа с ошибкой
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: Error{Code: code, Message: message}}
}

// FeedbackEntry - запись обратной связи в ответах API
type FeedbackEntry struct {
	ID         int64  `json:"id"`
	Reviewer   string `json:"reviewer"`
	TeamMember string `json:"team_member"`
	Feedback   string `json:"feedback"`
	Team       string `json:"team"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// FeedbackGroup - группа записей участник/ревьювер
type FeedbackGroup struct {
	TeamMember string `json:"team_member"`
	Reviewer   string `json:"reviewer"`
	Count      int    `json:"count"`
}

// User - учётная запись без пароля
type User struct {
	Username        string   `json:"username"`
	Role            string   `json:"role"`
	Team            string   `json:"team"`
	AssignedMembers []string `json:"assigned_members"`
}
