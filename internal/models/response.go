package models

import (
	"net/http"
	"time"
)

// ResponseModel is the body of every non-success response.
type ResponseModel struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

// ResponseCurrentTime returns the current time in Unix milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

func NewErrorResponse(code int, text string) ResponseModel {
	if text == "" {
		text = http.StatusText(code)
	}
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Text:        text,
		Version:     1,
	}
}

// FieldErrorsResponse lists validation failures per query parameter.
type FieldErrorsResponse struct {
	FieldErrors map[string][]string `json:"fieldErrors"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func NewStatusResponse() StatusResponse {
	return StatusResponse{Status: "ok"}
}
