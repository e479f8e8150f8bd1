package database

import (
	"fmt"
	"log"

	"tryout_backend/internal/config"
	"tryout_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate runs the schema migration and seeds the default admin account.
// Split from InitDB so the test rig can run it against another dialect.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Admin{},
		&model.Category{},
		&model.SubCategory{},
		&model.Question{},
		&model.Student{},
		&model.TestSession{},
		&model.Answer{},
		&model.NoteCategory{},
		&model.Note{},
	)
	if err != nil {
		return err
	}

	return seedDefaultAdmin(db)
}

func seedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.Admin{
		Username: "admin",
		Password: string(hashed),
		Name:     "Administrator",
		Email:    "admin@tryout.com",
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Println("Default admin account created (admin/admin123), change the password after first login")
	return nil
}
