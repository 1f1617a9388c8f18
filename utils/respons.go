package utils

import "github.com/gin-gonic/gin"

// JSONResponse is the envelope every endpoint returns. Success responses set
// Status true and leave Errors null; failures set Status false, null out Data
// and carry field-level detail in Errors when there is any.
type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Errors  interface{} `json:"errors"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
		Errors:  nil,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
		Errors:  nil,
	})
}

// RespondValidationError maps a binding failure to a 400 envelope carrying a
// per-field error map when the underlying error provides one.
func RespondValidationError(c *gin.Context, err error) {
	c.JSON(400, JSONResponse{
		Status:  false,
		Message: "Validation failed",
		Data:    nil,
		Errors:  FieldErrors(err),
	})
}
