package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CredentialVerifier checks a login credential pair. The env-backed
// single-admin implementation is a prototype stand-in; a user
// collection can replace it without touching the handlers.
type CredentialVerifier interface {
	Verify(email, password string) bool
}

// AdminCredentials verifies against the one configured admin account.
type AdminCredentials struct {
	Email    string
	Password string
}

func (a AdminCredentials) Verify(email, password string) bool {
	return email == a.Email && password == a.Password
}

// Config holds everything established at startup. It is read-only
// after Load/Connect; handlers receive it, never reach for globals.
type Config struct {
	MongoURI    string
	DBName      string
	Port        string
	JWTSecret   string
	StaticDir   string
	CORSOrigins []string

	Credentials CredentialVerifier
	MongoClient *mongo.Client

	// nil when no Cloudinary account is configured; image upload is
	// then rejected while URL-only creates keep working.
	Cloudinary *cloudinary.Cloudinary
}

func Load() *Config {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:    getenv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:      getenv("DB_NAME", "club_manager"),
		Port:        getenv("PORT", "5000"),
		JWTSecret:   getenv("JWT_SECRET", "dev-only-secret"),
		StaticDir:   getenv("STATIC_DIR", "frontend/dist"),
		CORSOrigins: []string{getenv("CORS_ORIGIN", "http://localhost:5173")},
		Credentials: AdminCredentials{
			Email:    getenv("ADMIN_EMAIL", "admin@example.com"),
			Password: getenv("ADMIN_PASSWORD", "changeme"),
		},
	}

	if name := os.Getenv("CLOUDINARY_CLOUD_NAME"); name != "" {
		cld, err := cloudinary.NewFromParams(
			name,
			os.Getenv("CLOUDINARY_API_KEY"),
			os.Getenv("CLOUDINARY_API_SECRET"),
		)
		if err != nil {
			log.Printf("cloudinary config error: %v", err)
		} else {
			cfg.Cloudinary = cld
		}
	}

	return cfg
}

// Connect dials Mongo and pings it so a bad URI fails at startup, not
// on the first request.
func (cfg *Config) Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	cfg.MongoClient = client
	log.Printf("connected to MongoDB (db=%s)", cfg.DBName)
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
