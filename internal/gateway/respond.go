package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Every response carries a status discriminator: "success" for 2xx, "fail"
// for client errors, "error" for server faults.

func respondSuccess(c *gin.Context, code int, data gin.H) {
	body := gin.H{"status": "success"}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(code, body)
}

func respondFail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "fail", "message": message})
}

func respondError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": message})
}

// respondRPC translates a gRPC error into the HTTP envelope.
func respondRPC(c *gin.Context, err error) {
	st, ok := status.FromError(err)
	if !ok {
		respondError(c, "upstream service unavailable")
		return
	}
	switch st.Code() {
	case codes.InvalidArgument:
		respondFail(c, http.StatusBadRequest, st.Message())
	case codes.NotFound:
		respondFail(c, http.StatusNotFound, st.Message())
	case codes.FailedPrecondition:
		respondFail(c, http.StatusPreconditionFailed, st.Message())
	case codes.AlreadyExists:
		respondFail(c, http.StatusConflict, st.Message())
	case codes.Unauthenticated:
		respondFail(c, http.StatusUnauthorized, st.Message())
	case codes.PermissionDenied:
		respondFail(c, http.StatusForbidden, st.Message())
	default:
		respondError(c, st.Message())
	}
}
