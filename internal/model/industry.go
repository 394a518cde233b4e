package model

import "strings"

// Industry identifies the facility type being quoted. It selects the power
// model, the per-unit anchors the resolver looks for, and the duration
// default used by sizing.
type Industry string

const (
	IndustryOffice        Industry = "office"
	IndustryRetail        Industry = "retail"
	IndustryWarehouse     Industry = "warehouse"
	IndustryHospital      Industry = "hospital"
	IndustryHotel         Industry = "hotel"
	IndustryDataCenter    Industry = "data_center"
	IndustryEVCharging    Industry = "ev_charging"
	IndustryCarWash       Industry = "car_wash"
	IndustryManufacturing Industry = "manufacturing"
	IndustryColdStorage   Industry = "cold_storage"
)

// industryAliases maps the spellings the upstream wizard has used over time
// to the canonical identifiers.
var industryAliases = map[string]Industry{
	"office":        IndustryOffice,
	"commercial":    IndustryOffice,
	"retail":        IndustryRetail,
	"store":         IndustryRetail,
	"warehouse":     IndustryWarehouse,
	"distribution":  IndustryWarehouse,
	"hospital":      IndustryHospital,
	"healthcare":    IndustryHospital,
	"medical":       IndustryHospital,
	"hotel":         IndustryHotel,
	"hospitality":   IndustryHotel,
	"data_center":   IndustryDataCenter,
	"datacenter":    IndustryDataCenter,
	"data-center":   IndustryDataCenter,
	"ev_charging":   IndustryEVCharging,
	"evcharging":    IndustryEVCharging,
	"ev-charging":   IndustryEVCharging,
	"charging":      IndustryEVCharging,
	"car_wash":      IndustryCarWash,
	"carwash":       IndustryCarWash,
	"car-wash":      IndustryCarWash,
	"manufacturing": IndustryManufacturing,
	"factory":       IndustryManufacturing,
	"industrial":    IndustryManufacturing,
	"cold_storage":  IndustryColdStorage,
	"coldstorage":   IndustryColdStorage,
	"cold-storage":  IndustryColdStorage,
	"refrigerated":  IndustryColdStorage,
}

// ParseIndustry resolves a free-text industry name. ok is false for unknown
// values so the caller decides the fallback.
func ParseIndustry(s string) (Industry, bool) {
	ind, ok := industryAliases[strings.ToLower(strings.TrimSpace(s))]
	return ind, ok
}

// Industries lists the canonical identifiers in display order.
func Industries() []Industry {
	return []Industry{
		IndustryOffice,
		IndustryRetail,
		IndustryWarehouse,
		IndustryHospital,
		IndustryHotel,
		IndustryDataCenter,
		IndustryEVCharging,
		IndustryCarWash,
		IndustryManufacturing,
		IndustryColdStorage,
	}
}
