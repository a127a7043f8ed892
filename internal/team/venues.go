package team

// Venue is a home arena known independently of the results document.
type Venue struct {
	Team     string // display name
	Name     string
	Location string
}

// VenueDirectory is a secondary venue lookup keyed by canonical team key.
// It is consulted only after the results document yields nothing.
type VenueDirectory struct {
	venues map[string]Venue
}

// NewVenueDirectory copies the given table.
func NewVenueDirectory(venues map[string]Venue) VenueDirectory {
	m := make(map[string]Venue, len(venues))
	for k, v := range venues {
		m[fold(k)] = v
	}
	return VenueDirectory{venues: m}
}

// DefaultArenas covers the NBA clubs most often asked about.
func DefaultArenas() VenueDirectory {
	return NewVenueDirectory(map[string]Venue{
		"lakers":   {Team: "Los Angeles Lakers", Name: "Crypto.com Arena", Location: "Los Angeles, California"},
		"celtics":  {Team: "Boston Celtics", Name: "TD Garden", Location: "Boston, Massachusetts"},
		"warriors": {Team: "Golden State Warriors", Name: "Chase Center", Location: "San Francisco, California"},
		"heat":     {Team: "Miami Heat", Name: "Kaseya Center", Location: "Miami, Florida"},
		"bulls":    {Team: "Chicago Bulls", Name: "United Center", Location: "Chicago, Illinois"},
		"knicks":   {Team: "New York Knicks", Name: "Madison Square Garden", Location: "New York, New York"},
	})
}

// Lookup returns the venue for a canonical key.
func (d VenueDirectory) Lookup(key string) (Venue, bool) {
	v, ok := d.venues[fold(key)]
	return v, ok
}
