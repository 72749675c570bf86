package httpframework

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestInitRegistersFrameworkMiddlewareOnce(t *testing.T) {
	extra := func(c *gin.Context) {}
	Init(extra)

	// Init adds the access logger and recovery itself, so a caller passing
	// one middleware of its own must end up with exactly three handlers
	assert.Len(t, Instance().Handlers, 3)

	Init(extra)
	assert.Len(t, Instance().Handlers, 3, "repeated Init must not stack middleware")
}
