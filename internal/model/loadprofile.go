package model

import "errors"

// LoadProfile summarizes a facility's electrical demand.
// Units:
// - BaseLoadKW: kW, minimum continuous draw (always-on)
// - PeakLoadKW: kW, maximum draw
// - EnergyKWhPerDay: kWh/day
type LoadProfile struct {
	BaseLoadKW      float64 `json:"base_load_kw"`
	PeakLoadKW      float64 `json:"peak_load_kw"`
	EnergyKWhPerDay float64 `json:"energy_kwh_per_day"`
}

func (p LoadProfile) Validate() error {
	if p.BaseLoadKW < 0 {
		return errors.New("BaseLoadKW must be >= 0")
	}
	if p.PeakLoadKW < p.BaseLoadKW {
		return errors.New("PeakLoadKW must be >= BaseLoadKW")
	}
	// Base load runs 24h; daily energy can never be below it.
	if p.EnergyKWhPerDay < p.BaseLoadKW*24 {
		return errors.New("EnergyKWhPerDay must be >= BaseLoadKW * 24")
	}
	return nil
}
