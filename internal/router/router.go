package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateUser(c *ginext.Context)
	GetUserReservations(c *ginext.Context)
	PurgeUserReservations(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	QueryReservations(c *ginext.Context)
	GetReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	UseReservation(c *ginext.Context)
	CompleteReservation(c *ginext.Context)
	RefundReservation(c *ginext.Context)
	NotifyPayment(c *ginext.Context)
	CreateSpace(c *ginext.Context)
	GetSpace(c *ginext.Context)
	UpdateSpaceState(c *ginext.Context)
	UpdateSpaceAvailability(c *ginext.Context)
	CheckSpaceAvailability(c *ginext.Context)
	ListLots(c *ginext.Context)
	ListLotSpaces(c *ginext.Context)
	GetLotAvailability(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users/:id/reservations", h.GetUserReservations)
		api.DELETE("/users/:id/reservations", h.PurgeUserReservations)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.QueryReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/use", h.UseReservation)
		api.POST("/reservations/:id/complete", h.CompleteReservation)
		api.POST("/reservations/:id/refund", h.RefundReservation)

		// Payments
		api.POST("/payments/notify", h.NotifyPayment)

		// Spaces
		api.POST("/spaces", h.CreateSpace)
		api.GET("/spaces/:id", h.GetSpace)
		api.PUT("/spaces/:id/state", h.UpdateSpaceState)
		api.PUT("/spaces/:id/availability", h.UpdateSpaceAvailability)
		api.GET("/spaces/:id/availability", h.CheckSpaceAvailability)

		// Lots
		api.GET("/lots", h.ListLots)
		api.GET("/lots/:id/spaces", h.ListLotSpaces)
		api.GET("/lots/:id/availability", h.GetLotAvailability)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
