package scheduler

// location is a simulated delivery origin. The scheduler has no real device
// position to work from, so each notification is stamped with a random city.
type location struct {
	Name      string
	Latitude  float64
	Longitude float64
}

var cities = []location{
	{"New York, NY", 40.7128, -74.0060},
	{"London, UK", 51.5074, -0.1278},
	{"Tokyo, Japan", 35.6762, 139.6503},
	{"Paris, France", 48.8566, 2.3522},
	{"Sydney, Australia", -33.8688, 151.2093},
	{"São Paulo, Brazil", -23.5505, -46.6333},
	{"Mumbai, India", 19.0760, 72.8777},
	{"Cairo, Egypt", 30.0444, 31.2357},
	{"Los Angeles, CA", 34.0522, -118.2437},
	{"Toronto, Canada", 43.6532, -79.3832},
	{"Berlin, Germany", 52.5200, 13.4050},
	{"Bangkok, Thailand", 13.7563, 100.5018},
}
