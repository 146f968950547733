package main

import (
	"context"
	"flag"
	"os"

	"shop-service/config"
	"shop-service/internal/models"
	"shop-service/internal/repository"
	"shop-service/pkg/database"
	"shop-service/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var allowedRoles = map[models.Role]bool{
	models.RoleCustomer:       true,
	models.RoleProductManager: true,
	models.RoleSupervisor:     true,
	models.RoleOperator:       true,
	models.RoleAdmin:          true,
}

// setrole назначает роль пользователю по username:
//
//	setrole -username alice -role ROLE_SUPERVISOR
func main() {
	username := flag.String("username", "", "имя пользователя")
	role := flag.String("role", "", "новая роль (ROLE_*)")
	flag.Parse()

	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	if *username == "" || *role == "" {
		log.Fatal("Нужны оба флага: -username и -role")
	}
	newRole := models.Role(*role)
	if !allowedRoles[newRole] {
		log.Fatal("Недопустимая роль", zap.String("role", *role))
	}

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	ctx := context.Background()
	users := repository.NewUserRepo(db)

	u, err := users.GetByUsername(ctx, *username)
	if err != nil {
		log.Fatal("Ошибка поиска пользователя", zap.Error(err))
	}
	if u == nil {
		log.Fatal("Пользователь не найден", zap.String("username", *username))
	}

	if err := users.UpdateRole(ctx, u.ID, newRole); err != nil {
		log.Fatal("Ошибка обновления роли", zap.Error(err))
	}

	log.Info("Роль обновлена",
		zap.String("username", *username),
		zap.String("role", string(newRole)),
	)
}
