package models

import "time"

type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	AssignedTasks []Task `gorm:"foreignKey:AssignedUserID" json:"-"`
}
