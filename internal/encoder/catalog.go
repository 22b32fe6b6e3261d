package encoder

import "time"

// event is one fixed historical marker. Markers are filtered against the
// active series' date extent before they are emitted.
type event struct {
	date    time.Time
	label   string
	yOffset float64
}

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// events is the fixed marker catalog.
var events = []event{
	{day(2000, 3, 10), "Dot-com peak", 24},
	{day(2005, 2, 2), "Amazon Prime launches", 52},
	{day(2008, 9, 15), "Global financial crisis", 38},
	{day(2020, 3, 15), "COVID-19 lockdowns", 24},
}

// phase is one fixed era band, rendered regardless of the data extent.
type phase struct {
	startYear int
	endYear   int
	name      string
}

var phases = []phase{
	{1995, 2001, "Dot-com era"},
	{2001, 2007, "Broadband adoption"},
	{2007, 2015, "Mobile & marketplaces"},
	{2015, 2023, "Subscription & pandemic"},
}

// phasePalette is the categorical band palette, cycled by phase index.
var phasePalette = []string{"#c6dbef", "#fdd0a2", "#c7e9c0", "#dadaeb"}

// Line and fill colors shared by the encoders.
const (
	colorSales = "#4c78a8"
	colorLoans = "#e45756"
	colorArea  = "#9ecae1"
	colorGuide = "#72727a"
)
