package main

import (
	"Folks_Community/internal/config"
	"Folks_Community/internal/model"
	"Folks_Community/internal/pkg"
	"Folks_Community/internal/repository/mysql"
	"Folks_Community/internal/router"
)

func main() {
	cfg := config.Load()

	if err := pkg.InitIDNode(cfg.SnowflakeNode); err != nil {
		panic(err)
	}

	db, err := mysql.InitDB(cfg.MySQLDSN)
	if err != nil {
		panic(err)
	}

	// auto-migration keeps dev schemas current; unique indexes on email,
	// slug and (community, user) come from the model tags
	db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Role{},
		&model.Member{},
	)

	events := pkg.NewEventProducer(pkg.KafkaConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
	})
	defer events.Close()

	// Gin
	r := router.InitRouter(db, cfg, events)
	err = r.Run(":" + cfg.Port)
	if err != nil {
		return
	}
}
