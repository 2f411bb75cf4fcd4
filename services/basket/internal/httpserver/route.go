package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	BasketHandler  *BasketHTTP
	ItemHandler    *ItemHTTP
	SummaryHandler *SummaryHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.GET("/baskets", d.BasketHandler.GetBaskets)
	api.POST("/baskets", d.BasketHandler.CreateBasket)
	api.GET("/baskets/:id", d.BasketHandler.GetBasket)
	api.PUT("/baskets/:id", d.BasketHandler.UpdateBasket)
	api.PATCH("/baskets/:id", d.BasketHandler.PatchBasket)
	api.DELETE("/baskets/:id", d.BasketHandler.DeleteBasket)

	api.GET("/basket-items", d.ItemHandler.GetItems)
	api.POST("/basket-items", d.ItemHandler.CreateItem)
	api.GET("/basket-items/:id", d.ItemHandler.GetItem)
	api.PATCH("/basket-items/:id", d.ItemHandler.PatchItem)
	api.DELETE("/basket-items/:id", d.ItemHandler.DeleteItem)

	api.GET("/basket-summary", d.SummaryHandler.GetSummary)
	api.GET("/basket-summary/:basket_id", d.SummaryHandler.GetSummary)
}
