package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-showcase-api/internal/utils"
)

// Envelope is the body of every successful response
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes a successful envelope
func Respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// PaginationDTO is shared by every paginated listing
type PaginationDTO struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	Limit       int   `json:"limit"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// ToPaginationDTO builds pagination metadata for total items
func ToPaginationDTO(params utils.PaginationParams, total int64) PaginationDTO {
	totalPages := params.TotalPages(total)
	return PaginationDTO{
		CurrentPage: params.Page,
		TotalPages:  totalPages,
		TotalItems:  total,
		Limit:       params.Limit,
		HasNext:     params.Page < totalPages,
		HasPrev:     params.Page > 1,
	}
}
