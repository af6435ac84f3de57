package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"fotkaj/internal/infrastructure/binding"
	"fotkaj/internal/infrastructure/broker"
	"fotkaj/internal/infrastructure/database"
	"fotkaj/internal/infrastructure/minio"
	"fotkaj/internal/infrastructure/whatsapp"
	"fotkaj/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Address         string                 `yaml:"address"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	DBConfig        database.Config        `yaml:"db_config"`
	BindingStore    binding.Config         `yaml:"binding_store"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	WhatsApp        whatsapp.Config        `yaml:"whatsapp"`
	VerifyToken     string
	Logger          logger.Config `yaml:"logger"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BindingStore.URI = os.Getenv("BINDING_STORE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.WhatsApp.Token = os.Getenv("WHATSAPP_TOKEN")
	config.VerifyToken = os.Getenv("WHATSAPP_VERIFY_TOKEN")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Environment == "prod" && c.WhatsApp.Token == "" {
		return errors.New("WHATSAPP_TOKEN is required in prod")
	}

	return nil
}
