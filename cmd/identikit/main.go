package main

import (
	"log"

	"github.com/identikit/identikit/internal/app"
	"github.com/identikit/identikit/internal/users"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg)

	repo := users.NewRepository()
	svc := users.NewService(repo, logger)

	admin := users.NewUser(1, cfg.AdminUsername, cfg.AdminEmail)
	admin.AddRole("admin")
	svc.Save(admin)

	if !users.ValidateEmail(admin.Email) {
		logger.Warn("admin email failed validation", "email", admin.Email)
	}

	logger.Info("seeded user store",
		"count", svc.Count(),
		"admin_id", admin.ID,
		"admin_roles", admin.Roles,
	)
}
