// @title           AfarTech Admin Service API
// @version         1.0
// @description     Administrative backend: admin account CRUD, login with bearer tokens, and per-admin notification reads

// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/OussemaDev7/AfarTech-Project/internal/app/routes"
	"github.com/OussemaDev7/AfarTech-Project/internal/domain/models"
	"github.com/OussemaDev7/AfarTech-Project/internal/infrastructure/config"
	"github.com/OussemaDev7/AfarTech-Project/internal/infrastructure/database"
	Logger "github.com/OussemaDev7/AfarTech-Project/pkg/logger"
)

func main() {
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		// Environment variables may be set another way, keep going.
		Logger.Warning("no .env file loaded: %v", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database connection pool: %v", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	if stats, err := pool.Stats(); err == nil {
		Logger.Info("database pool stats: %v", stats)
	}

	if cfg.DBMigrationMode == "drop" {
		log.Println("warning: running in drop mode, all tables will be recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("failed to drop and recreate tables: %v", err)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("auto migration failed: %v", err)
		}
	}

	ensureAdminExists(db, cfg)

	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort
	Logger.Info("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate adds missing columns and tables, never drops anything
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Notification{},
	)
}

// dropAndRecreateTables drops both tables and migrates from scratch.
// Notifications go first because of the receiver foreign key.
func dropAndRecreateTables(db *gorm.DB) error {
	for _, table := range []string{"notifications", "admins"} {
		log.Printf("dropping table: %s", table)
		if err := db.Exec("DROP TABLE IF EXISTS " + table).Error; err != nil {
			log.Printf("failed to drop table %s: %v", table, err)
		}
	}

	return autoMigrate(db)
}

// ensureAdminExists seeds a default admin account when the table is empty
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)

	if count == 0 {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash default admin password: %v", err)
		}

		admin := models.Admin{
			FirstName: "Default",
			LastName:  "Admin",
			Email:     cfg.DefaultAdminEmail,
			Password:  string(hashedPassword),
			Role:      "ADMIN",
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("failed to create default admin: %v", err)
		}

		log.Println("default admin account created")
	}
}
