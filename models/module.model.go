package models

// Catalog categories
const (
	CategoryDesign     = "Design"
	CategoryFilmmaking = "Filmmaking"
	CategoryMusic      = "Music"
)

// Categories returns the fixed catalog categories in display order.
func Categories() []string {
	return []string{CategoryDesign, CategoryFilmmaking, CategoryMusic}
}

// Module represents one learning unit in the catalog. Modules are seeded
// at startup; only the enrolled counter changes afterwards.
type Module struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Category    string `json:"category" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Level       string `json:"level"`
	VideoURL    string `json:"videoUrl"`
	Enrolled    int64  `json:"enrolled" gorm:"default:0"`
}
