// SPDX-License-Identifier: LGPL-3.0-or-later
// Copyright (c) 2026 Michael Dipperstein
// Source: github.com/MichaelDipperstein/lzss

// Command lzssd serves LZSS compression and decompression over HTTP.
//
// Configuration comes from the environment: PORT selects the listen
// port, APP_ENV switches the router into release mode when set to
// "production", and MAX_FILE_SIZE caps upload sizes in bytes.
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/MichaelDipperstein/lzss/internal/api"
	"github.com/MichaelDipperstein/lzss/internal/config"
)

func main() {
	cfg := config.Load()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	api.SetupRoutes(router, api.NewHandlers(cfg))

	log.Printf("lzssd listening on port %s (env %s, upload limit %d bytes)",
		cfg.Port, cfg.Environment, cfg.MaxFileSize)
	log.Fatalln(router.Run(":" + cfg.Port))
}
