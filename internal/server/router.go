package server

import (
	"net/http"

	"site-tracker/internal/authz"
	"site-tracker/internal/config"
	"site-tracker/internal/handlers"
	"site-tracker/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.Static("/uploads", cfg.UploadDir)
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("site_session", store))

	r.Use(middleware.InjectUser())

	// HOME
	r.GET("/", handlers.IndexPage)

	// AUTH
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// MATERIALS
	auth.GET("/materials",
		middleware.RequirePermission(authz.ActionViewMaterials),
		handlers.ListMaterials,
	)
	auth.GET("/add_material",
		middleware.RequirePermission(authz.ActionManageMaterials),
		handlers.ShowAddMaterial,
	)
	auth.POST("/add_material",
		middleware.RequirePermission(authz.ActionManageMaterials),
		handlers.AddMaterial,
	)
	auth.GET("/edit_material/:id",
		middleware.RequirePermission(authz.ActionManageMaterials),
		handlers.ShowEditMaterial,
	)
	auth.POST("/edit_material/:id",
		middleware.RequirePermission(authz.ActionManageMaterials),
		handlers.UpdateMaterial,
	)
	auth.GET("/update_quantity/:id",
		middleware.RequirePermission(authz.ActionUpdateQuantity),
		handlers.ShowUpdateQuantity,
	)
	auth.POST("/update_quantity/:id",
		middleware.RequirePermission(authz.ActionUpdateQuantity),
		handlers.UpdateQuantity,
	)

	// deleting materials is admin-only
	auth.POST("/delete_material/:id",
		middleware.RequirePermission(authz.ActionDeleteMaterial),
		handlers.DeleteMaterial,
	)

	auth.GET("/export_csv",
		middleware.RequirePermission(authz.ActionViewMaterials),
		handlers.ExportCSV,
	)

	// FLEET EQUIPMENT
	auth.GET("/equipment",
		middleware.RequirePermission(authz.ActionViewEquipment),
		handlers.ListEquipment,
	)
	auth.GET("/equipment/add",
		middleware.RequirePermission(authz.ActionManageEquipment),
		handlers.ShowAddEquipment,
	)
	auth.POST("/equipment/add",
		middleware.RequirePermission(authz.ActionManageEquipment),
		handlers.AddEquipment,
	)
	auth.GET("/equipment/:id",
		middleware.RequirePermission(authz.ActionViewEquipment),
		handlers.ViewEquipment,
	)
	auth.GET("/equipment/:id/add_service",
		middleware.RequirePermission(authz.ActionManageEquipment),
		handlers.ShowAddServiceLog,
	)
	auth.POST("/equipment/:id/add_service",
		middleware.RequirePermission(authz.ActionManageEquipment),
		handlers.AddServiceLog,
	)

	// ACTIVITY LOG
	auth.GET("/activity",
		middleware.RequirePermission(authz.ActionViewActivity),
		handlers.ListActivity,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
