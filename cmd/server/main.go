package main

import (
	"log"
	"os"
	"time"

	"foodcourt/internal/config"
	"foodcourt/internal/controllers/http"
	mmysql "foodcourt/internal/infra/mysql"
	"foodcourt/internal/infra/rabbitmq"
	"foodcourt/internal/infra/sessions"
	mysqlrepo "foodcourt/internal/repository/mysql"
	"foodcourt/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1000)
	sqlDB.SetMaxIdleConns(200)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	users := mysqlrepo.NewUserRepository(db)
	kitchens := mysqlrepo.NewKitchenRepository(db)
	foods := mysqlrepo.NewFoodRepository(db)
	orders := mysqlrepo.NewOrderRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	redisClient := config.MustInitRedis()

	tokens := sessions.NewStore(redisClient, config.SessionTTL())

	auth := services.NewAuthService(users, tokens)
	catalog := services.NewCatalogService(kitchens, foods)
	orderSvc := services.NewOrderService(orders, foods, kitchens, publisher)
	orderSvc.SetRedisClient(redisClient)
	orderSvc.SetStrictTransitions(config.StrictTransitions())

	handler := http.NewHandler(auth, catalog, orderSvc, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := config.Getenv("PORT", "8080")

	log.Printf("Starting foodcourt on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
