package models

// Admin represents an administrative user account
type Admin struct {
	BaseModel
	FirstName string `gorm:"type:varchar(100)" json:"firstName"`
	LastName  string `gorm:"type:varchar(100)" json:"lastName"`
	Email     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password  string `gorm:"type:varchar(100);not null" json:"password,omitempty"` // bcrypt hash, never plaintext
	Role      string `gorm:"type:varchar(50);default:'ADMIN'" json:"role"`         // free-form role label, e.g. ADMIN
	Image     string `gorm:"type:varchar(255)" json:"image"`                       // avatar reference/URL

	// Notifications addressed to this admin. A lookup relation only: the
	// read path queries by receiver id instead of walking this slice, and
	// it never serializes with the account.
	Notifications []Notification `gorm:"foreignKey:ReceiverID" json:"-"`
}
