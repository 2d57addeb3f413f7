package notice

import (
	"github.com/gin-gonic/gin"
)

type Category string

const (
	CategorySuccess Category = "success"
	CategoryInfo    Category = "info"
	CategoryWarning Category = "warning"
	CategoryDanger  Category = "danger"
)

// Notice is a one-shot message shown on the next rendered page.
type Notice struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

// Store carries notices across a redirect. Pop returns and forgets every
// notice queued for the client.
type Store interface {
	Add(c *gin.Context, n Notice) error
	Pop(c *gin.Context) ([]Notice, error)
}

// pendingKey holds notices added during the current request so a Pop in
// the same request sees them before the cookie round-trip.
const pendingKey = "notice.pending"

func pending(c *gin.Context) []Notice {
	if v, ok := c.Get(pendingKey); ok {
		if ns, ok := v.([]Notice); ok {
			return ns
		}
	}
	return nil
}
