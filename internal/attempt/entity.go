package attempt

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Attempt struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Category  string         `gorm:"type:text;not null" json:"category"`
	QuizDate  string         `gorm:"type:text;not null" json:"quiz_date"`
	Score     int            `gorm:"not null;default:0" json:"score"`
	Total     int            `gorm:"not null;default:0" json:"total"`
	Answers   datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
