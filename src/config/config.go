package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds every runtime setting. All values come from the environment;
// defaults match local development against docker-compose services.
type Config struct {
	Env          string `env:"ENV" env-default:"dev"`
	Port         string `env:"PORT" env-default:"3000"`
	DBPath       string `env:"DB_PATH" env-default:"./classmate.db"`
	JWTSecret    string `env:"JWT_SECRET" env-default:"fallback-secret-key"`
	MongoURI     string `env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	MongoDB      string `env:"MONGO_DB" env-default:"classmate"`
	RedisAddr    string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	AllowOrigins string `env:"ALLOW_ORIGINS" env-default:"http://localhost:5173"`
}

// MustLoad reads the configuration from the environment and exits on failure.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
