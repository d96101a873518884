package dto

import (
	"encoding/xml"
	"time"
)

// APIResponse is the envelope for every API response, rendered as JSON or XML
type APIResponse struct {
	XMLName   xml.Name     `json:"-" xml:"response"`
	Data      interface{}  `json:"data,omitempty" xml:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty" xml:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" xml:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse wraps data in a success envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	XMLName xml.Name `json:"-" xml:"result"`
	Message string   `json:"message" xml:"message"`
}

// HealthResponse reports the state of the service and its store
type HealthResponse struct {
	XMLName  xml.Name `json:"-" xml:"health"`
	Status   string   `json:"status" xml:"status" example:"UP"`
	Database string   `json:"database" xml:"database" example:"UP"`
}
