package model

import "time"

// OneTimeCodeModel mirrors the 'one_time_codes' table. Only the SHA-256 digest
// of a code is ever written here.
type OneTimeCodeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"type:varchar(255);not null;index"`
	CodeHash  []byte `gorm:"column:code_hash;type:bytea;not null"`
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OneTimeCodeModel) TableName() string {
	return "one_time_codes"
}
