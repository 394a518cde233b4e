package power

import (
	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// Per-room split of the headline kW/room density. In-room HVAC dominates;
// the remainder is plug loads and lighting.
const (
	hotelRoomHVACShare  = 0.50
	hotelRoomPlugShare  = 0.28
	hotelRoomLightShare = 0.22

	hotelKitchenKWPerRoom  = 0.25
	hotelLaundryKWPerRoom  = 0.15
	hotelControlsKWPerRoom = 0.03
	hotelPoolKW            = 8.0
)

// hotelModel sizes from room count. Occupancy adjusts the in-room block but
// never alone: half the in-room draw (corridor conditioning, minibar
// refrigeration, standby HVAC) is occupancy-independent, which is why base
// load is derived from always-on sub-loads rather than a flat occupancy
// percentage.
type hotelModel struct{}

func (hotelModel) Industry() model.Industry { return model.IndustryHotel }

func (hotelModel) Compute(in model.CanonicalInputs) Result {
	var res Result

	occAdj := 0.5 + 0.5*clampFrac(in.OccupancyPct)
	roomBlockKW := in.Rooms * config.HotelKWPerRoom * occAdj

	hvacKW := roomBlockKW * hotelRoomHVACShare
	plugKW := roomBlockKW * hotelRoomPlugShare
	roomLightKW := roomBlockKW * hotelRoomLightShare

	kitchenKW := in.Rooms * hotelKitchenKWPerRoom
	laundryKW := in.Rooms * hotelLaundryKWPerRoom
	controlsKW := in.Rooms * hotelControlsKWPerRoom
	poolKW := hotelPoolKW

	peakKW := hvacKW + plugKW + roomLightKW + kitchenKW + laundryKW + controlsKW + poolKW
	peakKW, warns := anchoredPeak(model.IndustryHotel, peakKW, in.SquareFeet)
	res.Warnings = append(res.Warnings, warns...)

	res.Loads = []Load{
		{Name: "guest_room_hvac", Category: model.ContributorHVAC, KW: hvacKW},
		{Name: "guest_room_plug", Category: model.ContributorOther, KW: plugKW},
		{Name: "lighting", Category: model.ContributorLighting, KW: roomLightKW},
		{Name: "kitchen", Category: model.ContributorProcess, KW: kitchenKW},
		{Name: "laundry", Category: model.ContributorProcess, KW: laundryKW},
		{Name: "pool", Category: model.ContributorProcess, KW: poolKW},
		{Name: "controls", Category: model.ContributorControls, KW: controlsKW},
	}

	// Hotels never close; kitchen refrigeration, standby HVAC and controls
	// carry the overnight floor.
	const hours = 24.0
	const duty = 0.60
	baseKW := controlsKW + 0.40*hvacKW + 0.25*roomLightKW + 0.50*kitchenKW + 0.20*plugKW

	res.DutyCycle = duty
	res.Profile = model.LoadProfile{
		BaseLoadKW:      baseKW,
		PeakLoadKW:      peakKW,
		EnergyKWhPerDay: dailyEnergyKWh(baseKW, peakKW, duty, hours),
	}
	return res
}

func clampFrac(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func init() { register(hotelModel{}) }
