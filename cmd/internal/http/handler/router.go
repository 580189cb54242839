package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes groups every route set the API serves.
type Routes struct {
	ClientTypes *DefaultClientTypeRoute
	Parties     *DefaultPartyRoute
	Templates   *DefaultTemplateRoute
	Deals       *DefaultDealRoute
}

func (r *Routes) Register(e *echo.Echo) {
	api := e.Group("/api")

	// Client types (the frontend still asks for "contract types")
	api.GET("/client-types", r.ClientTypes.GetClientTypes)
	api.GET("/contract-types", r.ClientTypes.GetClientTypes)
	api.POST("/client-types", r.ClientTypes.CreateClientType)
	api.DELETE("/client-types/:id", r.ClientTypes.DeleteClientType)

	// Parties
	api.GET("/executors", r.Parties.GetExecutors)
	api.POST("/executors", r.Parties.CreateExecutor)
	api.DELETE("/executors/:id", r.Parties.DeleteExecutor)
	api.GET("/clients", r.Parties.GetClients)
	api.POST("/clients", r.Parties.CreateClient)
	api.DELETE("/clients/:id", r.Parties.DeleteClient)

	// Templates
	api.GET("/sample-contracts", r.Templates.GetSampleContracts)
	api.POST("/sample-contracts", r.Templates.CreateSampleContract)
	api.DELETE("/sample-contracts/:id", r.Templates.DeleteSampleContract)
	api.GET("/sample-contracts/:id/attaches", r.Templates.GetSampleContractAttaches)
	api.GET("/sample-attaches", r.Templates.GetSampleAttaches)
	api.POST("/sample-attaches", r.Templates.CreateSampleAttach)
	api.DELETE("/sample-attaches/:id", r.Templates.DeleteSampleAttach)
	api.GET("/services", r.Templates.GetServices)
	api.POST("/services", r.Templates.CreateService)
	api.DELETE("/services/:id", r.Templates.DeleteService)

	// Deals
	api.GET("/deals", r.Deals.GetDeals)
	api.POST("/deals", r.Deals.CreateDeal)
	api.DELETE("/deals/:id", r.Deals.DeleteDeal)
	api.GET("/deals/:id/attachments", r.Deals.GetDealAttachments)
	api.GET("/attachments", r.Deals.GetAttachments)
	api.POST("/attachments", r.Deals.CreateAttachment)
	api.POST("/attachments/:id/status", r.Deals.RefreshAttachmentStatus)
	api.DELETE("/attachments/:id", r.Deals.DeleteAttachment)

	// Docker Compose healthcheck
	e.GET("/health", Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
