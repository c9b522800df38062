package solar

import "time"

// SnapshotRow is a flat, CSV-friendly view of a Snapshot.
type SnapshotRow struct {
	LocalTime   string  `csv:"local_time" json:"local_time"`
	SolarTime   string  `csv:"solar_time" json:"solar_time"`
	Latitude    float64 `csv:"latitude" json:"latitude"`
	Longitude   float64 `csv:"longitude" json:"longitude"`
	DayNumber   int     `csv:"day_number" json:"day_number"`
	B           float64 `csv:"b_degrees" json:"b_degrees"`
	GOn         float64 `csv:"g_on" json:"g_on"`
	E           float64 `csv:"equation_of_time_minutes" json:"equation_of_time_minutes"`
	Declination float64 `csv:"declination_degrees" json:"declination_degrees"`
	HourAngle   float64 `csv:"hour_angle_degrees" json:"hour_angle_degrees"`
	Zenith      float64 `csv:"zenith_degrees" json:"zenith_degrees"`
	Altitude    float64 `csv:"altitude_degrees" json:"altitude_degrees"`
}

// Row flattens the snapshot.
func (s Snapshot) Row() SnapshotRow {
	return SnapshotRow{
		LocalTime:   s.LocalTime.Format(time.RFC3339),
		SolarTime:   s.SolarTime.Format(time.RFC3339Nano),
		Latitude:    s.Location.Latitude,
		Longitude:   s.Location.Longitude,
		DayNumber:   s.DayNumber,
		B:           s.B,
		GOn:         s.GOn,
		E:           s.E,
		Declination: s.Declination,
		HourAngle:   s.HourAngle,
		Zenith:      s.Zenith,
		Altitude:    s.Altitude,
	}
}

// Rows flattens every point of the profile.
func (p Profile) Rows() []SnapshotRow {
	rows := make([]SnapshotRow, 0, len(p.Points))
	for _, s := range p.Points {
		rows = append(rows, s.Row())
	}
	return rows
}
