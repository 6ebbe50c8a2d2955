package main

import (
	"log"

	"github.com/Iliketoeatsalmon/WiMaRC/config"
	"github.com/Iliketoeatsalmon/WiMaRC/controllers"
	"github.com/Iliketoeatsalmon/WiMaRC/seed"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	settings := config.Load()

	db, err := gorm.Open(postgres.Open(settings.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := controllers.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	if err := seed.Run(db); err != nil {
		log.Fatal("Failed to seed database: ", err)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(settings.CORSOrigins) == 1 && settings.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = settings.CORSOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	corsConfig.AllowHeaders = []string{"Authorization", "Content-Type"}
	r.Use(cors.New(corsConfig))

	api := controllers.New(db)
	api.Register(r)

	if err := r.Run(settings.Addr); err != nil {
		log.Fatal(err)
	}
}
