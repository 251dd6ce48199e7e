package config

import (
	"context"
	"log"

	"phonestore-api/internal/adapters/persistence/models"
	"phonestore-api/internal/adapters/persistence/repositories"
	"phonestore-api/internal/core/domain"
	"phonestore-api/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	users  repositories.UserRepository
	brands repositories.BrandRepository
	phones repositories.PhoneRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		users:  repositories.NewUserRepository(db),
		brands: repositories.NewBrandRepository(db),
		phones: repositories.NewPhoneRepository(db),
	}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("Running database seeders...")

	ctx := context.Background()

	if err := s.seedAdminUser(ctx); err != nil {
		log.Printf("Warning: admin seeder failed: %v", err)
	}
	if err := s.seedBrands(ctx); err != nil {
		log.Printf("Warning: brand seeder failed: %v", err)
	}
	if err := s.seedPhones(ctx); err != nil {
		log.Printf("Warning: phone seeder failed: %v", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// seedAdminUser seeds the default admin account.
// For development only; in production create admins through a secure process.
func (s *Seeder) seedAdminUser(ctx context.Context) error {
	admins, err := s.users.ListByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if len(admins) > 0 {
		return nil // admin already exists
	}

	hashedPassword, err := password.Hash(getEnv("ADMIN_PASSWORD", "Admin@1234"))
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@phonestore.local",
		Password: hashedPassword,
		Role:     domain.RoleAdmin,
		IsActive: true,
	}

	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Admin user created: %s", admin.Username)
	return nil
}

// seedBrands seeds a starter set of phone brands
func (s *Seeder) seedBrands(ctx context.Context) error {
	existing, err := s.brands.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil // brands already seeded
	}

	brands := []models.Brand{
		{Name: "Apple"},
		{Name: "Samsung"},
		{Name: "Google"},
		{Name: "Xiaomi"},
	}

	for i := range brands {
		if err := s.brands.Create(ctx, &brands[i]); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d brands", len(brands))
	return nil
}

// seedPhones seeds a starter catalog so a fresh install is browsable
func (s *Seeder) seedPhones(ctx context.Context) error {
	_, total, err := s.phones.List(ctx, nil, 0, 1)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil // catalog already seeded
	}

	phones := []struct {
		brand string
		phone models.Phone
	}{
		{"Apple", models.Phone{Name: "iPhone 15", Description: "Apple flagship", DisplaySize: 6.1, Memory: 128, Battery: 3349, Price: 949}},
		{"Samsung", models.Phone{Name: "Galaxy S24", Description: "Samsung flagship", DisplaySize: 6.2, Memory: 256, Battery: 4000, Price: 899}},
		{"Google", models.Phone{Name: "Pixel 8", Description: "Google flagship", DisplaySize: 6.2, Memory: 128, Battery: 4575, Price: 699}},
		{"Xiaomi", models.Phone{Name: "Redmi Note 13", Description: "Mid-range workhorse", DisplaySize: 6.67, Memory: 256, Battery: 5000, Price: 249}},
	}

	for i := range phones {
		if brand, err := s.brands.GetByName(ctx, phones[i].brand); err == nil {
			phones[i].phone.BrandID = &brand.ID
		}
		if err := s.phones.Create(ctx, &phones[i].phone); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d phones", len(phones))
	return nil
}
