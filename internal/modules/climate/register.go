package climate

import (
	"database/sql"
	"net/http"

	"hawaii-climate-server/internal/modules/climate/controller"
	"hawaii-climate-server/internal/modules/climate/repository"
	"hawaii-climate-server/internal/modules/climate/service"
)

func RegisterFeature(mux *http.ServeMux, db *sql.DB) {
	observationRepository := repository.NewRepository(db)
	climateService := service.New(observationRepository)
	climateController := controller.NewClimateController(climateService)
	climateController.RegisterRoutes(mux)
}
