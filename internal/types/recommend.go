package types

import "encoding/json"

// RecommendResponse is the normalized envelope returned for every recommendation call
type RecommendResponse struct {
	Status     string          `json:"status"`
	Data       json.RawMessage `json:"data"`
	Suggestion interface{}     `json:"suggestion"`
	Message    string          `json:"message,omitempty"`
	HTTPStatus int             `json:"httpStatus"`
}
