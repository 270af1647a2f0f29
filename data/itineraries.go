// api/data/itineraries.go
package data

import "strings"

// Duration is the length of an itinerary in nights and days.
type Duration struct {
	Nights int `json:"nights"`
	Days   int `json:"days"`
}

// Itinerary is one packaged trip from the catalog. The catalog is static,
// curated content; prices are in INR.
type Itinerary struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Duration    Duration `json:"duration"`
	Price       int      `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Inclusions  []string `json:"inclusions"`
	Cities      []string `json:"cities"`
	Featured    bool     `json:"featured"`
}

// Itineraries returns the full catalog.
func Itineraries() []Itinerary {
	return itineraries
}

// FeaturedItineraries returns the itineraries highlighted on the home page.
func FeaturedItineraries() []Itinerary {
	var featured []Itinerary
	for _, i := range itineraries {
		if i.Featured {
			featured = append(featured, i)
		}
	}
	return featured
}

// ItinerariesByDestination returns the itineraries for a destination,
// matched case-insensitively.
func ItinerariesByDestination(destination string) []Itinerary {
	var matches []Itinerary
	for _, i := range itineraries {
		if strings.EqualFold(i.Destination, destination) {
			matches = append(matches, i)
		}
	}
	return matches
}

// ItineraryBySlug looks up a single itinerary by its URL slug.
func ItineraryBySlug(slug string) (Itinerary, bool) {
	for _, i := range itineraries {
		if i.Slug == slug {
			return i, true
		}
	}
	return Itinerary{}, false
}

var itineraries = []Itinerary{
	{
		ID:          "japan-6n7d",
		Destination: "Japan",
		Title:       "Tokyo, Hakone & Osaka Discovery",
		Slug:        "japan-tokyo-hakone-osaka",
		Duration:    Duration{Nights: 6, Days: 7},
		Price:       160000,
		Image:       "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?w=800&q=80",
		Description: "Experience the best of Japan from the bustling streets of Tokyo to the serene beauty of Hakone and the vibrant culture of Osaka.",
		Highlights: []string{
			"Explore Tokyo's Shibuya & Shinjuku",
			"Day trip to Mount Fuji",
			"Traditional Ryokan experience",
			"Osaka Castle & food tour",
		},
		Inclusions: []string{"Flights", "Hotels", "JR Pass", "Select meals", "Tours"},
		Cities:     []string{"Tokyo", "Hakone", "Osaka"},
		Featured:   true,
	},
	{
		ID:          "japan-8n9d",
		Destination: "Japan",
		Title:       "Mount Fuji to Osaka Grand Journey",
		Slug:        "japan-fuji-osaka-grand",
		Duration:    Duration{Nights: 8, Days: 9},
		Price:       220000,
		Image:       "https://images.unsplash.com/photo-1545569341-9eb8b30979d9?w=800&q=80",
		Description: "An extended journey through Japan covering Tokyo, the iconic Mount Fuji, ancient Kyoto, and vibrant Osaka.",
		Highlights: []string{
			"Climb Mount Fuji (seasonal)",
			"Kyoto temple hopping",
			"Bullet train experience",
			"Traditional tea ceremony",
		},
		Inclusions: []string{"Flights", "Hotels", "JR Pass", "Daily breakfast", "Private tours"},
		Cities:     []string{"Tokyo", "Mount Fuji", "Kyoto", "Osaka"},
		Featured:   true,
	},
	{
		ID:          "vietnam-10n11d",
		Destination: "Vietnam",
		Title:       "Hanoi to Phu Quoc Complete",
		Slug:        "vietnam-hanoi-phuquoc",
		Duration:    Duration{Nights: 10, Days: 11},
		Price:       82000,
		Image:       "https://images.unsplash.com/photo-1528127269322-539801943592?w=800&q=80",
		Description: "Journey through Vietnam from the charming streets of Hanoi to the paradise beaches of Phu Quoc.",
		Highlights: []string{
			"Ha Long Bay cruise",
			"Hoi An ancient town",
			"Cu Chi Tunnels tour",
			"Phu Quoc beach relaxation",
		},
		Inclusions: []string{"Flights", "Hotels", "Ha Long cruise", "All transfers", "Breakfast"},
		Cities:     []string{"Hanoi", "Ha Long Bay", "Hoi An", "Ho Chi Minh", "Phu Quoc"},
		Featured:   true,
	},
	{
		ID:          "vietnam-8n9d",
		Destination: "Vietnam",
		Title:       "Cities & Bay Explorer",
		Slug:        "vietnam-cities-bay",
		Duration:    Duration{Nights: 8, Days: 9},
		Price:       67500,
		Image:       "https://images.unsplash.com/photo-1555921015-5532091f6026?w=800&q=80",
		Description: "Discover Vietnam's vibrant cities and the stunning Ha Long Bay in this compact yet comprehensive tour.",
		Highlights: []string{
			"Hanoi street food tour",
			"Overnight Ha Long Bay cruise",
			"Hoi An lantern making",
			"Ho Chi Minh City tour",
		},
		Inclusions: []string{"Flights", "Hotels", "Bay cruise", "Transfers", "Select meals"},
		Cities:     []string{"Hanoi", "Ha Long Bay", "Hoi An", "Ho Chi Minh City"},
		Featured:   false,
	},
	{
		ID:          "south-africa-6n7d",
		Destination: "South Africa",
		Title:       "Cape Town Self-Drive Adventure",
		Slug:        "south-africa-cape-town-drive",
		Duration:    Duration{Nights: 6, Days: 7},
		Price:       165000,
		Image:       "https://images.unsplash.com/photo-1580060839134-75a5edca2e99?w=800&q=80",
		Description: "Explore Cape Town and the stunning Garden Route at your own pace with this self-drive adventure.",
		Highlights: []string{
			"Table Mountain cable car",
			"Cape Peninsula drive",
			"Wine tasting in Stellenbosch",
			"Garden Route scenic drive",
		},
		Inclusions: []string{"Flights", "Car rental", "Hotels", "Breakfast", "GPS & maps"},
		Cities:     []string{"Cape Town", "Stellenbosch", "Knysna"},
		Featured:   true,
	},
	{
		ID:          "south-africa-12n13d",
		Destination: "South Africa",
		Title:       "Cape Town & Kruger Safari",
		Slug:        "south-africa-cape-kruger",
		Duration:    Duration{Nights: 12, Days: 13},
		Price:       235000,
		Image:       "https://images.unsplash.com/photo-1516026672322-bc52d61a55d5?w=800&q=80",
		Description: "The ultimate South Africa experience combining Cape Town's beauty with an unforgettable Kruger safari.",
		Highlights: []string{
			"Big Five safari in Kruger",
			"Cape Town city tour",
			"Robben Island visit",
			"Panorama Route drive",
		},
		Inclusions: []string{"Flights", "Lodges", "Safari drives", "All meals on safari", "Park fees"},
		Cities:     []string{"Cape Town", "Johannesburg", "Kruger National Park"},
		Featured:   true,
	},
	{
		ID:          "finland-7n8d",
		Destination: "Finland",
		Title:       "Winter Wonderland Aurora",
		Slug:        "finland-winter-aurora",
		Duration:    Duration{Nights: 7, Days: 8},
		Price:       265000,
		Image:       "https://images.unsplash.com/photo-1531366936337-7c912a4589a7?w=800&q=80",
		Description: "Chase the Northern Lights, stay in glass igloos, and experience the magic of Finnish Lapland.",
		Highlights: []string{
			"Glass igloo accommodation",
			"Northern Lights hunting",
			"Husky safari",
			"Santa Claus Village",
		},
		Inclusions: []string{"Flights", "Unique stays", "Winter activities", "All meals", "Thermal gear"},
		Cities:     []string{"Helsinki", "Rovaniemi", "Saariselkä"},
		Featured:   true,
	},
	{
		ID:          "australia-6n7d",
		Destination: "Australia",
		Title:       "Cities & Landscapes Discovery",
		Slug:        "australia-cities-landscapes",
		Duration:    Duration{Nights: 6, Days: 7},
		Price:       150000,
		Image:       "https://images.unsplash.com/photo-1523482580672-f109ba8cb9be?w=800&q=80",
		Description: "From Sydney's iconic harbor to Melbourne's laneways, discover Australia's diverse cities and landscapes.",
		Highlights: []string{
			"Sydney Opera House tour",
			"Blue Mountains day trip",
			"Great Ocean Road drive",
			"Melbourne food & coffee scene",
		},
		Inclusions: []string{"Flights", "Hotels", "Transfers", "Select tours", "Breakfast"},
		Cities:     []string{"Sydney", "Melbourne"},
		Featured:   true,
	},
	{
		ID:          "swiss-austria-7n8d",
		Destination: "Switzerland",
		Title:       "Swiss Alps to Vienna",
		Slug:        "swiss-austria-alps-vienna",
		Duration:    Duration{Nights: 7, Days: 8},
		Price:       280000,
		Image:       "https://images.unsplash.com/photo-1531366936337-7c912a4589a7?w=800&q=80",
		Description: "Experience the best of Central Europe from the Swiss Alps through Austria to imperial Vienna.",
		Highlights: []string{
			"Jungfrau railway journey",
			"Lucerne lake cruise",
			"Salzburg Mozart tour",
			"Vienna palace visit",
		},
		Inclusions: []string{"Flights", "Train passes", "Hotels", "Breakfast", "City tours"},
		Cities:     []string{"Zurich", "Lucerne", "Interlaken", "Salzburg", "Vienna"},
		Featured:   false,
	},
}
