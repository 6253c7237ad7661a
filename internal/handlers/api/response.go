package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	apiVersion      = "v0"
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	RequestID string    `json:"requestId"`
}

// Response is the envelope of every API reply.
type Response struct {
	Data     any      `json:"data"`
	Errors   []string `json:"errors"`
	Metadata Metadata `json:"metadata"`
}

func newResponse(c *gin.Context, data any, errs []string) Response {
	if errs == nil {
		errs = []string{}
	}
	return Response{
		Data:   data,
		Errors: errs,
		Metadata: Metadata{
			Timestamp: time.Now(),
			Version:   apiVersion,
			RequestID: c.GetString(requestIDKey),
		},
	}
}

func success(c *gin.Context, status int, data any) {
	c.JSON(status, newResponse(c, data, nil))
}

func failure(c *gin.Context, status int, errs ...string) {
	c.AbortWithStatusJSON(status, newResponse(c, nil, errs))
}

// RequestID keeps the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
