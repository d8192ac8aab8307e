package routes

import (
	"romaneio_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDrivers    = "/motoristas"
	PathManifests  = "/romaneios"
	PathDeliveries = "/entregas"
)

func addRomaneioRoutes(
	rg *gin.RouterGroup,
	driverHandler *handlers.DriverHandler,
	manifestHandler *handlers.ManifestHandler,
	deliveryHandler *handlers.DeliveryHandler,
) {
	drivers := rg.Group(PathDrivers)
	{
		drivers.POST("", driverHandler.CreateDriver)
		drivers.GET("", driverHandler.ListDrivers)
		drivers.GET("/:id", driverHandler.GetDriver)
		drivers.PATCH("/:id", driverHandler.UpdateDriver)
	}

	manifests := rg.Group(PathManifests)
	{
		manifests.POST("", manifestHandler.CreateManifest)
		manifests.GET("", manifestHandler.ListManifests)
		manifests.GET("/:id", manifestHandler.GetManifest)
		manifests.PATCH("/:id/status", manifestHandler.UpdateManifestStatus)
		manifests.DELETE("/:id", manifestHandler.DeleteManifest)
	}

	deliveries := rg.Group(PathDeliveries)
	{
		deliveries.POST("", deliveryHandler.CreateDelivery)
		deliveries.GET("", deliveryHandler.ListDeliveries)
		deliveries.PATCH("/:id/status", deliveryHandler.UpdateDeliveryStatus)
	}
}
