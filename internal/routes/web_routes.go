package routes

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	cacheName   = "bnsp-epresensi-v2.1.4"
	staticCache = "static-v2.1.4"
)

// Halaman yang dilayani oleh SPA. Path lain mendapat 404.
var spaPages = []string{"/", "/login", "/profile", "/attendance-history"}

// OfflineManifest dibaca service worker untuk memilih file yang disimpan di cache.
type OfflineManifest struct {
	CacheName   string   `json:"cache_name"`
	StaticCache string   `json:"static_cache"`
	URLs        []string `json:"urls"`
	NetworkOnly []string `json:"network_only"`
}

func defaultManifest() OfflineManifest {
	return OfflineManifest{
		CacheName:   cacheName,
		StaticCache: staticCache,
		URLs:        []string{"/", "/login", "/manifest.json", "/placeholder.svg"},
		NetworkOnly: []string{"/api/", "/health"},
	}
}

const fallbackShell = `<!doctype html>
<html lang="id">
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>E-Presensi BNSP</title></head>
<body><div id="root"></div></body>
</html>`

func SetupWebRoutes(app *fiber.App, d Deps) {
	webDir := strings.TrimSpace(d.Config.WebDir)

	app.Get("/offline-manifest.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-cache")
		return c.JSON(defaultManifest())
	})

	// 1. Asset statis hasil build frontend
	if webDir != "" {
		app.Static("/assets", filepath.Join(webDir, "assets"), fiber.Static{MaxAge: 86400})
		for _, f := range []string{"/manifest.json", "/placeholder.svg", "/sw.js", "/favicon.ico"} {
			app.Static(f, filepath.Join(webDir, strings.TrimPrefix(f, "/")))
		}
	}

	// 2. Shell SPA untuk halaman yang dikenal
	shell := func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-cache")
		if webDir != "" {
			index := filepath.Join(webDir, "index.html")
			if _, err := os.Stat(index); err == nil {
				return c.SendFile(index)
			}
		}
		c.Type("html", "utf-8")
		return c.SendString(fallbackShell)
	}
	for _, page := range spaPages {
		app.Get(page, shell)
	}

	// 3. Selain itu 404
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Endpoint tidak ditemukan"})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Halaman tidak ditemukan",
			"actions": []string{"home"},
		})
	})
}
