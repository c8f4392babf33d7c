package common

const (
	// MaxRequestBody limits JSON request bodies for store/review endpoints.
	MaxRequestBody = 1 << 20
)
