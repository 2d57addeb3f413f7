package forms

import (
	"github.com/gin-gonic/gin"
)

// Former parses a request into a typed form. Validation of field contents
// belongs to the service layer; a Former only reports malformed requests.
type Former interface {
	ParseAndValidate(c *gin.Context) (Former, error)
	ConvertToMap() map[string]interface{}
}
