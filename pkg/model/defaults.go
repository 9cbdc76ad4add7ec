package model

import (
	"time"
)

const (
	DefaultStaticPaths   = 2
	DefaultRevalidate    = 24 * time.Hour
	DefaultLocale        = "pt-BR"
	DefaultTimezone      = "UTC"
	DefaultAPITimeout    = 10 * time.Second
	DefaultCacheBackend  = "memory"
	DefaultLogMaxSize    = 50 // megabytes
	DefaultLogMaxAge     = 30 // days
	DefaultLogMaxBackups = 7
)
