package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/casebook/internal/platform/apierr"
)

var errInternal = errors.New("internal server error")

// Renderer turns a named view and its data into a response: an HTML
// template "<name>.html" when templates are loaded, JSON otherwise.
type Renderer struct {
	html bool
}

func NewRenderer(html bool) *Renderer {
	return &Renderer{html: html}
}

func (r *Renderer) HTML() bool { return r != nil && r.html }

func (r *Renderer) View(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if r.HTML() {
		c.HTML(status, name+".html", data)
		return
	}
	data["view"] = name
	c.JSON(status, data)
}

// Error renders a classified error as the "error" view or the JSON envelope.
func (r *Renderer) Error(c *gin.Context, err error) {
	ae := apierr.As(err)
	if !r.HTML() {
		RespondAPIError(c, err)
		return
	}
	msg := errInternal.Error()
	if ae.Status < http.StatusInternalServerError && ae.Err != nil {
		msg = ae.Err.Error()
	}
	c.HTML(ae.Status, "error.html", gin.H{
		"status":  ae.Status,
		"code":    ae.Code,
		"message": msg,
	})
}
