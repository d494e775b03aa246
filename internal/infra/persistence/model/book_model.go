package model

import "time"

// BookModel mirrors the 'books' table.
type BookModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	IsAvailable bool   `gorm:"column:is_available;not null;default:true"`
	ImgSrc      string `gorm:"column:imgsrc;type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

// BorrowRecordModel mirrors the 'borrowedbooks' table. BookID references books.id.
type BorrowRecordModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	BookID    int64      `gorm:"column:book_id;not null"`
	Status    string     `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Book *BookModel `gorm:"foreignKey:BookID"`
}

// TableName explicitly sets the table name for GORM.
func (BorrowRecordModel) TableName() string {
	return "borrowedbooks"
}
