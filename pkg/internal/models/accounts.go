package models

type Account struct {
	BaseModel

	Name  string `json:"name"`
	Email string `json:"email" gorm:"uniqueIndex"`

	// Bcrypt digest, never rendered to the outside.
	Password string `json:"-"`

	Blogs []Blog `json:"blogs,omitempty" gorm:"foreignKey:AccountID"`
}
