package response

import (
	"encoding/json"
	"io"
)

// Response is the JSON envelope printed for machine-readable output
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Total int `json:"total"`
}

func JSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func Success(w io.Writer, message string, data interface{}) error {
	return JSON(w, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(w io.Writer, message string, data interface{}, meta *Meta) error {
	return JSON(w, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func Error(w io.Writer, message string, err interface{}) error {
	return JSON(w, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}
