package httpresp

import "github.com/gin-gonic/gin"

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, Envelope{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(201, Envelope{Success: true, Data: data})
}

func Message(c *gin.Context, message string) {
	c.JSON(200, Envelope{Success: true, Message: message})
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, Envelope{Success: true, Data: ListResponse[T]{
		Data:  data,
		Total: len(data),
	}})
}
