package handler

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// pageResponse mirrors the page contract: content plus metadata. The JSON
// shape is owned by the transport layer so internal paging types can change
// without breaking clients.
type pageResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
}
