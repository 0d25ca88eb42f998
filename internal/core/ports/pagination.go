package ports

// PageQuery carries normalised pagination parameters for list operations.
// Page is 0-based; OrderBy names an entity field, not a storage column.
type PageQuery struct {
	Page      int
	Size      int
	OrderBy   string
	Direction string // "ASC" or "DESC"
}

// Page is a bounded slice of a larger ordered result set plus metadata.
type Page[T any] struct {
	Content       []T
	TotalElements int64
	TotalPages    int
	Page          int
	Size          int
}
