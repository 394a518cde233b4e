package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ugobe007/merlin2-sub009/internal/api/models"
	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// CatalogHandler serves the supported-industry and chemistry catalogs the
// wizard uses to build its forms.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

var industryDescriptions = map[model.Industry]models.IndustryInfo{
	model.IndustryOffice: {
		Description: "Commercial office, sized from floor area.",
		KeyInputs:   []string{"squareFeet", "operatingHours"},
	},
	model.IndustryRetail: {
		Description: "Retail store, sized from floor area.",
		KeyInputs:   []string{"squareFeet", "operatingHours"},
	},
	model.IndustryWarehouse: {
		Description: "Warehouse/distribution, sized from floor area.",
		KeyInputs:   []string{"squareFeet", "operatingHours"},
	},
	model.IndustryHospital: {
		Description: "Acute-care hospital, sized from licensed beds.",
		KeyInputs:   []string{"beds"},
	},
	model.IndustryHotel: {
		Description: "Hotel, sized from room count and occupancy.",
		KeyInputs:   []string{"rooms", "occupancy"},
	},
	model.IndustryDataCenter: {
		Description: "Data center, sized from IT load and PUE.",
		KeyInputs:   []string{"itLoadKW", "pue"},
	},
	model.IndustryEVCharging: {
		Description: "EV charging site, sized from charger count, rating and concurrency.",
		KeyInputs:   []string{"chargers", "chargerPowerKW", "concurrency"},
	},
	model.IndustryCarWash: {
		Description: "Car wash, sized from wash positions and daily volume.",
		KeyInputs:   []string{"washPositions", "washesPerDay", "operatingHours"},
	},
	model.IndustryManufacturing: {
		Description: "Manufacturing plant, sized from connected machine load or floor area.",
		KeyInputs:   []string{"machineLoadKW", "shifts", "squareFeet"},
	},
	model.IndustryColdStorage: {
		Description: "Cold-storage warehouse, refrigeration-dominated.",
		KeyInputs:   []string{"squareFeet", "refrigeratedPct"},
	},
}

// ListIndustries handles GET /api/v1/industries
func (h *CatalogHandler) ListIndustries(c *gin.Context) {
	out := make([]models.IndustryInfo, 0, len(industryDescriptions))
	for _, ind := range model.Industries() {
		info := industryDescriptions[ind]
		info.Industry = string(ind)
		out = append(out, info)
	}
	c.JSON(http.StatusOK, gin.H{"industries": out})
}

// ListChemistries handles GET /api/v1/chemistries
func (h *CatalogHandler) ListChemistries(c *gin.Context) {
	out := make([]models.ChemistryInfo, 0, len(config.Chemistries))
	for _, chem := range []model.Chemistry{model.ChemistryLFP, model.ChemistryNMC, model.ChemistryFlow} {
		p := config.Chemistries[chem]
		out = append(out, models.ChemistryInfo{
			Chemistry:         string(chem),
			CalendarFadePctYr: p.CalendarFadePctPerYear,
			RatedCycleLife:    p.RatedCycleLife,
			WarrantyYear:      p.WarrantyYear,
			WarrantyFloorPct:  p.WarrantyFloorPct,
			TerminalFloorPct:  p.FloorPct,
		})
	}
	c.JSON(http.StatusOK, gin.H{"chemistries": out})
}
