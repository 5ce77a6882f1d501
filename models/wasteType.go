package models

// WasteCategory is the coarse material class (Fier, Cupru, Aluminiu...).
type WasteCategory struct {
	ID   int    `gorm:"primary_key" json:"id"`
	Name string `gorm:"uniqueIndex;size:50;not null" json:"name"`
}

// WasteType is a specific waste designation under exactly one category.
// Discovered lazily from column headers and immutable once created; merging
// or renaming is an out-of-band operator action, never done by the import.
type WasteType struct {
	ID         int    `gorm:"primary_key" json:"id"`
	CategoryId int    `gorm:"uniqueIndex:idx_waste_type_key;not null" json:"category_id"`
	Name       string `gorm:"uniqueIndex:idx_waste_type_key;size:150;not null" json:"name"`

	Category *WasteCategory `gorm:"foreignKey:CategoryId" json:"category,omitempty"`
}
