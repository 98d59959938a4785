package routes

import (
	"bidworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBids    = "/bids"
	PathTotals  = "/totals"
	PathCatalog = "/catalog"
)

func addBidRoutes(rg *gin.RouterGroup, bidHandler *handlers.BidHandler, catalogHandler *handlers.CatalogHandler) {
	bids := rg.Group(PathBids)
	{
		bids.POST("", bidHandler.CreateBid)
		bids.GET("/:contract_number", bidHandler.GetBid)
		bids.PUT("/:contract_number", bidHandler.SaveBid)
		bids.PATCH("/:contract_number/status", bidHandler.UpdateBidStatus)
	}

	rg.POST(PathTotals, bidHandler.ComputeTotals)

	catalogGroup := rg.Group(PathCatalog)
	{
		catalogGroup.GET("/signs", catalogHandler.GetSignCatalog)
		catalogGroup.GET("/equipment", catalogHandler.GetEquipmentCatalog)
		catalogGroup.GET("/reference/:kind", catalogHandler.GetReferenceData)
	}
}
