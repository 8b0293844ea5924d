package database

import "entropy/models"

// SeedCatalog returns the fixed nine-module catalog. Ids are stable; the
// catalog is loaded once and only the enrolled counters change afterwards.
func SeedCatalog() []models.Module {
	return []models.Module{
		{
			ID:          1,
			Category:    models.CategoryDesign,
			Title:       "Intro to Graphic Design",
			Description: "Learn the fundamentals of visual design, color theory, and typography. Perfect for beginners!",
			Duration:    "2 hours",
			Level:       "Beginner",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			ID:          2,
			Category:    models.CategoryDesign,
			Title:       "UI/UX Design Basics",
			Description: "Master user interface and experience design principles for digital products.",
			Duration:    "3 hours",
			Level:       "Beginner",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			ID:          3,
			Category:    models.CategoryDesign,
			Title:       "Digital Photography",
			Description: "Capture stunning images with professional techniques and composition rules.",
			Duration:    "2.5 hours",
			Level:       "Intermediate",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			ID:          4,
			Category:    models.CategoryFilmmaking,
			Title:       "Intro to Storyboarding",
			Description: "Plan your films with professional storyboarding techniques and visual storytelling.",
			Duration:    "2 hours",
			Level:       "Beginner",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			ID:          5,
			Category:    models.CategoryFilmmaking,
			Title:       "Cinematography 101",
			Description: "Learn camera angles, lighting, and shot composition for compelling visuals.",
			Duration:    "3 hours",
			Level:       "Intermediate",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			ID:          6,
			Category:    models.CategoryFilmmaking,
			Title:       "Video Editing Mastery",
			Description: "Master post-production with industry-standard editing software and techniques.",
			Duration:    "4 hours",
			Level:       "Intermediate",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			ID:          7,
			Category:    models.CategoryMusic,
			Title:       "Music Production Basics",
			Description: "Create professional-quality tracks using digital audio workstations and mixing techniques.",
			Duration:    "3 hours",
			Level:       "Beginner",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			ID:          8,
			Category:    models.CategoryMusic,
			Title:       "Audio Recording & Mixing",
			Description: "Learn professional recording techniques and audio mixing for crystal-clear sound.",
			Duration:    "2.5 hours",
			Level:       "Intermediate",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			ID:          9,
			Category:    models.CategoryMusic,
			Title:       "Sound Design for Film",
			Description: "Create immersive soundscapes and audio effects for video projects.",
			Duration:    "3.5 hours",
			Level:       "Advanced",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
	}
}
