// Package httperror defines the error response body of the API.
package httperror

type Error struct {
	Message string `json:"error" example:"you are not allowed to update this register"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
