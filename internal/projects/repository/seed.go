package repository

import "github.com/atelier-works/portfolio-backend/internal/store"

// seedProjects returns fresh copies of the bootstrap portfolio. Returning
// new maps per call keeps callers free to stamp timestamps without
// sharing state between seeding rounds.
func seedProjects() []store.Document {
	return []store.Document{
		{
			"title":       "Casa Horizonte",
			"image":       "https://images.unsplash.com/photo-1494526585095-c41746248156?q=80&w=1600&auto=format&fit=crop",
			"location":    "Monterey, CA",
			"year":        "2023",
			"tags":        []string{"Residential", "Coastal"},
			"description": "A cliffside residence framing expansive Pacific views through disciplined apertures and warm concrete.",
		},
		{
			"title":       "Gallery of Light",
			"image":       "https://images.unsplash.com/photo-1487956382158-bb926046304a?q=80&w=1600&auto=format&fit=crop",
			"location":    "Santa Fe, NM",
			"year":        "2022",
			"tags":        []string{"Cultural"},
			"description": "Adaptive reuse gallery washed in high desert light with calibrated roof lanterns.",
		},
		{
			"title":       "Courtyard House",
			"image":       "https://images.unsplash.com/photo-1487958449943-2429e8be8625?q=80&w=1600&auto=format&fit=crop",
			"location":    "Austin, TX",
			"year":        "2021",
			"tags":        []string{"Residential", "Courtyard"},
			"description": "A quiet inward-facing plan organized around a planted court and deep overhangs.",
		},
		{
			"title":       "Cliffside Studio",
			"image":       "https://images.unsplash.com/photo-1502005229762-cf1b2da7c3f5?q=80&w=1600&auto=format&fit=crop",
			"location":    "Big Sur, CA",
			"year":        "2020",
			"tags":        []string{"Studio"},
			"description": "A minimal artist studio perched on a rocky outcrop, tuned to the horizon.",
		},
	}
}
