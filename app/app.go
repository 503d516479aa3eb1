package app

import (
	"github.com/mbolis/form-builder/config"
	"github.com/mbolis/form-builder/storage"
)

type App struct {
	storage.Store
	config.Config
}
