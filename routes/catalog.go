package routes

import (
	artistcontroller "github.com/7248-om/gshock12/controllers/artist"
	artworkcontroller "github.com/7248-om/gshock12/controllers/artwork"
	menucontroller "github.com/7248-om/gshock12/controllers/menu"
	workshopcontroller "github.com/7248-om/gshock12/controllers/workshop"
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes registers menu, artists, artworks and workshops.
// Reads are public; writes need an admin token unless noted.
func SetupCatalogRoutes(api *gin.RouterGroup, d Dependencies) {
	menu := api.Group("/menu")
	{
		menu.GET("", menucontroller.GetMenu(d.DB))
		menu.GET("/categories", menucontroller.GetCategories(d.DB))
		menu.GET("/export", d.adminOnly(menucontroller.ExportMenuToExcel(d.DB))...)
		menu.POST("/import", d.adminOnly(menucontroller.ImportMenuFromExcel(d.DB))...)
		menu.GET("/:id", menucontroller.GetMenuItem(d.DB))
		menu.POST("", d.adminOnly(menucontroller.CreateMenuItem(d.DB))...)
		menu.PUT("/:id", d.adminOnly(menucontroller.UpdateMenuItem(d.DB))...)
		menu.DELETE("/:id", d.adminOnly(menucontroller.DeleteMenuItem(d.DB))...)
	}

	artists := api.Group("/artists")
	{
		artists.GET("", artistcontroller.GetArtists(d.DB))
		artists.GET("/:id", artistcontroller.GetArtist(d.DB))
		// any signed-in user may own one profile
		artists.POST("", d.authed(), artistcontroller.CreateArtist(d.DB))
		artists.PUT("/:id", d.authed(), artistcontroller.UpdateArtist(d.DB))
	}

	artworks := api.Group("/artworks")
	{
		artworks.GET("", artworkcontroller.GetArtworks(d.DB))
		artworks.GET("/:id", artworkcontroller.GetArtwork(d.DB))
		artworks.POST("", d.adminOnly(artworkcontroller.CreateArtwork(d.DB))...)
		artworks.PUT("/:id", d.adminOnly(artworkcontroller.UpdateArtwork(d.DB))...)
		artworks.DELETE("/:id", d.adminOnly(artworkcontroller.DeleteArtwork(d.DB))...)
	}

	workshops := api.Group("/workshops")
	{
		workshops.GET("", workshopcontroller.GetWorkshops(d.DB))
		workshops.GET("/:id", workshopcontroller.GetWorkshop(d.DB))
		workshops.POST("", d.adminOnly(workshopcontroller.CreateWorkshop(d.DB, d.Store))...)
		workshops.PUT("/:id", d.adminOnly(workshopcontroller.UpdateWorkshop(d.DB, d.Store))...)
		workshops.PUT("/:id/status", d.adminOnly(workshopcontroller.UpdateWorkshopStatus(d.DB))...)
		workshops.DELETE("/:id", d.adminOnly(workshopcontroller.DeleteWorkshop(d.DB, d.Store))...)
	}
}
