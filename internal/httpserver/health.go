package httpserver

import (
	"github.com/gin-gonic/gin"

	"rag-assistant/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "rag-assistant"
)

type healthResp struct {
	Status  string          `json:"status"`
	Service string          `json:"service"`
	Version string          `json:"version"`
	Env     string          `json:"environment,omitempty"`
	Routes  map[string]bool `json:"routes,omitempty"`
}

func (srv HTTPServer) health(status string) healthResp {
	return healthResp{Status: status, Service: ServiceName, Version: HealthVersion}
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.health("healthy"))
}

// readyCheck reports which optional route groups are mounted.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	resp := srv.health("ready")
	resp.Env = srv.environment
	resp.Routes = map[string]bool{
		"prompt": srv.promptHandler != nil,
		"email":  srv.emailHandler != nil,
	}
	response.OK(c, resp)
}

// liveCheck godoc
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.health("alive"))
}
