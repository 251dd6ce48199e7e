package models

import (
	"time"

	"phonestore-api/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the users table
type User struct {
	ID             uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	Username       string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email          string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password       string         `gorm:"size:255;not null" json:"-"`
	Role           domain.Role    `gorm:"size:20;default:'USER'" json:"role"`
	Firstname      string         `gorm:"size:100" json:"firstname"`
	Lastname       string         `gorm:"size:100" json:"lastname"`
	Salutation     string         `gorm:"size:20" json:"salutation"`
	Street         string         `gorm:"size:200" json:"street"`
	City           string         `gorm:"size:100" json:"city"`
	PostalCode     int            `json:"postal_code"`
	HouseNumber    string         `gorm:"size:20" json:"house_number"`
	CountryCode    string         `gorm:"size:5" json:"country_code"`
	ProfilePicture string         `gorm:"size:255" json:"profile_picture"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserResponse DTO
type UserResponse struct {
	ID             uuid.UUID   `json:"id"`
	Username       string      `json:"username"`
	Email          string      `json:"email"`
	Role           domain.Role `json:"role"`
	Firstname      string      `json:"firstname"`
	Lastname       string      `json:"lastname"`
	Salutation     string      `json:"salutation"`
	Street         string      `json:"street"`
	City           string      `json:"city"`
	PostalCode     int         `json:"postal_code"`
	HouseNumber    string      `json:"house_number"`
	CountryCode    string      `json:"country_code"`
	ProfilePicture string      `json:"profile_picture"`
	IsActive       bool        `json:"is_active"`
	CreatedAt      time.Time   `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Role:           u.Role,
		Firstname:      u.Firstname,
		Lastname:       u.Lastname,
		Salutation:     u.Salutation,
		Street:         u.Street,
		City:           u.City,
		PostalCode:     u.PostalCode,
		HouseNumber:    u.HouseNumber,
		CountryCode:    u.CountryCode,
		ProfilePicture: u.ProfilePicture,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
	}
}

// Brand represents the brands table
type Brand struct {
	ID          uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;size:100;not null" json:"name"`
	PicturePath string         `gorm:"size:255" json:"picture_path"`
	CreatedByID *uuid.UUID     `gorm:"type:char(36)" json:"created_by_id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Brand) TableName() string {
	return "brands"
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Phone represents the phones table
type Phone struct {
	ID          uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	DisplaySize float64        `gorm:"type:decimal(4,2)" json:"display_size"`
	Memory      int            `json:"memory"`
	Battery     int            `json:"battery"`
	Price       float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	Picture     string         `gorm:"size:255" json:"picture"`
	BrandID     *uuid.UUID     `gorm:"type:char(36);index" json:"brand_id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Brand *Brand `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
}

func (Phone) TableName() string {
	return "phones"
}

func (p *Phone) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Order represents the orders table
type Order struct {
	ID        uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:char(36);not null;index" json:"user_id"`
	Status    string         `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Phones []Phone `gorm:"many2many:order_phones" json:"phones,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderResponse DTO
type OrderResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Status    string    `json:"status"`
	Phones    []Phone   `json:"phones"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *Order) ToResponse() *OrderResponse {
	resp := &OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Status:    o.Status,
		Phones:    o.Phones,
		CreatedAt: o.CreatedAt,
	}
	if o.User != nil {
		resp.Username = o.User.Username
	}
	for _, p := range o.Phones {
		resp.Total += p.Price
	}
	return resp
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Brand{},
		&Phone{},
		&Order{},
	)
}
