package models

// Dog is catalog reference data; rows are never updated after import.
type Dog struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"size:255" json:"name"`
	ImageFilename string `gorm:"size:255;not null" json:"image_filename"`
	Breed         string `gorm:"size:255;default:''" json:"breed"`
	Age           int    `gorm:"not null;index" json:"age"` // months
	Gender        Gender `gorm:"type:varchar(1);not null;index" json:"gender"`
	Size          Size   `gorm:"type:varchar(2);not null;index" json:"size"`
}

// ValidAge reports whether age (in months) is inside the accepted catalog range.
func ValidAge(age int) bool {
	return age > 0 && age < 200
}
