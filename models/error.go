package models

import "net/http"

// ErrorCode identifies a client-visible error condition
type ErrorCode struct {
	Name   string
	Status int
	Type   string
	Title  string
	Detail string
}

var (
	NoRecommendationFound = ErrorCode{
		Name:   "NO_RECOMMENDATION_FOUND",
		Status: http.StatusNotFound,
		Type:   "/errors/no-recommendation-found",
		Title:  "No Recommendation Found",
		Detail: "입력하신 조건에 맞는 꽃 조합을 찾을 수 없습니다. 다른 조건으로 시도해 보세요.",
	}
	FlowerNotFound = ErrorCode{
		Name:   "FLOWER_NOT_FOUND",
		Status: http.StatusNotFound,
		Type:   "/errors/flower-not-found",
		Title:  "Flower Not Found",
		Detail: "요청하신 꽃을 찾을 수 없습니다.",
	}
	InvalidInputValue = ErrorCode{
		Name:   "INVALID_INPUT_VALUE",
		Status: http.StatusBadRequest,
		Type:   "/errors/invalid-input-value",
		Title:  "Invalid Input Value",
		Detail: "요청 값이 올바르지 않습니다.",
	}
	NotFound = ErrorCode{
		Name:   "NOT_FOUND",
		Status: http.StatusNotFound,
		Type:   "/errors/not-found",
		Title:  "Not Found",
		Detail: "요청하신 경로를 찾을 수 없습니다.",
	}
	MethodNotAllowed = ErrorCode{
		Name:   "METHOD_NOT_ALLOWED",
		Status: http.StatusMethodNotAllowed,
		Type:   "/errors/method-not-allowed",
		Title:  "Method Not Allowed",
		Detail: "지원하지 않는 요청 방식입니다.",
	}
	TooManyRequests = ErrorCode{
		Name:   "TOO_MANY_REQUESTS",
		Status: http.StatusTooManyRequests,
		Type:   "/errors/too-many-requests",
		Title:  "Too Many Requests",
		Detail: "요청이 너무 많습니다. 잠시 후 다시 시도해 주세요.",
	}
	ServiceUnavailable = ErrorCode{
		Name:   "SERVICE_UNAVAILABLE",
		Status: http.StatusServiceUnavailable,
		Type:   "/errors/service-unavailable",
		Title:  "Service Unavailable",
		Detail: "일시적으로 요청을 처리할 수 없습니다.",
	}
	InternalServerError = ErrorCode{
		Name:   "INTERNAL_SERVER_ERROR",
		Status: http.StatusInternalServerError,
		Type:   "/errors/internal-server-error",
		Title:  "Internal Server Error",
		Detail: "서버 내부 오류가 발생했습니다.",
	}
)

// ErrorResponse is the problem document returned for every API error
type ErrorResponse struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

// NewErrorResponse builds an ErrorResponse for the given code and request path.
// An empty detail falls back to the code's default detail.
func NewErrorResponse(code ErrorCode, instance string, detail string) ErrorResponse {
	if detail == "" {
		detail = code.Detail
	}
	return ErrorResponse{
		Type:     code.Type,
		Title:    code.Title,
		Status:   code.Status,
		Detail:   detail,
		Instance: instance,
	}
}
