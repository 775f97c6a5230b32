// Package httperr renders the JSON error body shared by every handler:
// {"error":{"message":...},"detail":{"kind":...,"field":...}}.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Detail tells clients which rule failed and on which input field.
type Detail struct {
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
}

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail *Detail `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail *Detail) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the body and records err on the context for the
// logging middleware. Message and detail are the only parts clients see.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail *Detail) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
