package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const loginPath = "/login"

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, loginPath)
}

func redirectTo(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

func notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Not Found")
}

func badRequest(c *gin.Context) {
	c.String(http.StatusBadRequest, "Bad Request")
}

func serviceUnavailable(c *gin.Context) {
	c.String(http.StatusServiceUnavailable, "Service Unavailable")
}

func tooManyRequests(c *gin.Context) {
	c.String(http.StatusTooManyRequests, "Too Many Requests")
}

func internalServerError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "Internal Server Error")
}
