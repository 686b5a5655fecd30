package dto

// ThemeRequest sets the theme preference.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse reports the theme preference.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// ErrorResponse carries a failure reason.
type ErrorResponse struct {
	Error string `json:"error"`
}
