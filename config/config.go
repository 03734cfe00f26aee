package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Completion API (OpenAI-compatible). The key is required: the service
	// refuses to start without a usable completion backend.
	KolosalAPIKey  string `env:"KOLOSAL_API_KEY,required"`
	KolosalBaseURL string `env:"KOLOSAL_BASE_URL" envDefault:"https://api.kolosal.ai/v1"`
	KolosalModel   string `env:"KOLOSAL_MODEL" envDefault:"Llama 4 Maverick"`
	// Development switch: serve canned answers instead of calling the API.
	KolosalMock bool `env:"KOLOSAL_MOCK" envDefault:"false"`

	// Admin credentials
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"Kolosal"`

	// Vector store (Qdrant REST)
	StoreURL       string `env:"STORE_URL" envDefault:"http://localhost:6333"`
	StoreAPIKey    string `env:"STORE_API_KEY"`
	CollectionBase string `env:"STORE_COLLECTION" envDefault:"shoopaholic_vectors"`

	// Embeddings endpoint (OpenAI-compatible)
	EmbEndpoint string `env:"EMB_ENDPOINT" envDefault:"https://api.openai.com"`
	EmbAPIKey   string `env:"EMB_API_KEY"`
	EmbModel    string `env:"EMB_MODEL" envDefault:"text-embedding-3-small"`

	// Local persistence
	StorageDir string `env:"STORAGE_DIR" envDefault:"storage"`
	DBPath     string `env:"DB_PATH" envDefault:"storage/analytics.db"`

	// Retrieval / recommendation knobs
	TopK           int `env:"RETRIEVE_TOP_K" envDefault:"3"`
	RecoMinQueries int `env:"RECO_MIN_QUERIES" envDefault:"3"`
	RecoMinCount   int `env:"RECO_MIN_COUNT" envDefault:"1"`
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("[cfg] %v", err)
	}
	return cfg
}
