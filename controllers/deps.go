// Package controllers holds the handles shared by every controller.
package controllers

import (
	"elearning/cache"
	"elearning/config"
	"elearning/mailer"
	"elearning/media"
	"elearning/session"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Deps are the long-lived handles injected into each controller.
type Deps struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Cache    cache.Store
	Sessions *session.Manager
	Mailer   mailer.Mailer
	Media    media.Uploader
	Log      zerolog.Logger
}
