package config

import (
	"pdf-master-pro/internal/domain"
	"pdf-master-pro/internal/service"
	"pdf-master-pro/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	PDFService      domain.PDFService
	CompressService domain.CompressService
	ConvertService  domain.ConvertService
	ImageService    domain.ImageService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	return &Container{
		Config:          config,
		Logger:          appLogger,
		PDFService:      service.NewPDFService(appLogger),
		CompressService: service.NewCompressService(config, appLogger),
		ConvertService:  service.NewConvertService(config, appLogger),
		ImageService:    service.NewImageService(appLogger),
	}
}
