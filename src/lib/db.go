package lib

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Mongo holds the notification inbox database. The relational store never
// touches it; only the notify package and the notification controller do.
var Mongo *mongo.Database

// ConnectDB initializes the SQLite connection and sets the global DB variable.
// TranslateError is required so unique-index violations come back as
// gorm.ErrDuplicatedKey instead of driver-specific strings.
func ConnectDB(dbPath string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	slog.Info("Connected to SQLite", "path", dbPath)
}

// ConnectMongo initializes the Mongo connection for the notification inbox.
func ConnectMongo(uri, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		panic("Failed to connect to MongoDB: " + err.Error())
	}

	Mongo = client.Database(dbName)
	slog.Info("Connected to MongoDB", "db", dbName)
}
