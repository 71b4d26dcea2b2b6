package position

import (
	"time"
)

type Position struct {
	ID           uint                `gorm:"primaryKey"`
	Name         string              `gorm:"size:255;not null"`
	Description  string              `gorm:"type:text"`
	DepartmentID *uint               `gorm:"index"`
	Department   *PositionDepartment `gorm:"foreignKey:DepartmentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	CreatedAt    time.Time           `gorm:"autoCreateTime"`
}

// PositionDepartment is a narrow read model over the departments table,
// loaded only for display-name enrichment.
type PositionDepartment struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (PositionDepartment) TableName() string {
	return "departments"
}
