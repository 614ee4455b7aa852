package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SunceWallet/txrep/internal/handler/response"
	"github.com/SunceWallet/txrep/pkg/version"
)

// HealthCheck reports that the server is up
func HealthCheck(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "UP",
		"version": version.Version,
		"service": "txrep-server",
	})
}
