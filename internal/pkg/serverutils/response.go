package serverutils

// Response is the envelope every endpoint returns.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message string) Response[any] {
	return Response[any]{
		Success: false,
		Message: message,
	}
}

// ErrorResponseWithData carries diagnostic payloads alongside a failure,
// e.g. the raw undecodable guide text.
func ErrorResponseWithData(message string, data any) Response[any] {
	return Response[any]{
		Success: false,
		Message: message,
		Data:    data,
	}
}
