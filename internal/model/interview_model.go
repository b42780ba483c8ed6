package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Interview struct {
	ID         string                      `gorm:"type:varchar(128);primaryKey" json:"id"`
	UserID     string                      `gorm:"type:varchar(128);index" json:"user_id"`
	Role       string                      `gorm:"type:varchar(255)" json:"role"`
	Level      string                      `gorm:"type:varchar(100)" json:"level"`
	Type       string                      `gorm:"type:varchar(100)" json:"type"`
	Techstack  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"techstack"`
	Questions  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"questions"`
	Finalized  bool                        `gorm:"index" json:"finalized"`
	CoverImage string                      `gorm:"type:text" json:"cover_image"`
	Embedding  *pgvector.Vector            `gorm:"type:vector(3072)" json:"-"`
	CreatedAt  time.Time                   `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}

func (i *Interview) TableName() string {
	return "interviews"
}
