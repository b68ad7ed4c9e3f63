// Package s11a is the engine behind s11a.com: a personal blog and portfolio
// site built with Go, Echo, and templ. It serves Markdown posts with derived
// presentation metadata (reading time, relative dates, related posts, and
// tables of contents), plus an admin dashboard, RSS, and a sitemap.
//
// Users provide their own templ components via the ViewFuncs struct, and the
// engine handles handler logic, middleware, and database operations.
package s11a

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/funsaized/s11a/ingest"
)

// ViewFuncs holds user-provided templ components that the engine calls when
// rendering pages. This is the inversion-of-control mechanism that lets
// users own and customize all templates.
type ViewFuncs struct {
	Home             func(posts []Post, activeTag, activeCategory string, tags, categories []string, siteURL string) templ.Component
	Post             func(page PostPage, siteURL string) templ.Component
	AdminLogin       func(showError bool, csrfToken string) templ.Component
	AdminDashboard   func(posts []Post, message string, csrfToken string) templ.Component
	AdminFormPartial func(post Post, csrfToken string) templ.Component
	AdminImages      func(images []Image, csrfToken string) templ.Component
	NotFound         func() templ.Component
	ServerError      func() templ.Component
}

// App is the central application. It wires together the store, cache,
// handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache
	Views  ViewFuncs

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the database, cache, middleware, routes, and starts the
// server.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("s11a: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("s11a: SessionSecret is required")
	}

	if err := a.initStorage(); err != nil {
		return err
	}

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) initStorage() error {
	if a.Store != nil {
		return nil
	}
	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("s11a: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)
	return nil
}

// ImportContent loads Markdown files from dir (or Config.ContentDir when dir
// is empty) into the store, upserting by slug. It returns the number of
// posts imported.
func (a *App) ImportContent(dir string) (int, error) {
	if dir == "" {
		dir = a.Config.ContentDir
	}
	if err := a.initStorage(); err != nil {
		return 0, err
	}
	entries, err := ingest.LoadDir(dir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		item := entry.Item
		date := item.Date
		if date.IsZero() {
			date = time.Now().UTC()
		}
		post := Post{
			Slug:      item.Slug,
			Title:     item.Title,
			Date:      date.Format("2006-01-02"),
			Tags:      item.Tags,
			Category:  item.Category,
			Excerpt:   item.Excerpt,
			Thumbnail: item.Thumbnail,
			Content:   entry.Markdown,
			Published: entry.Published,
		}
		if err := a.Store.SavePost(post); err != nil {
			return count, fmt.Errorf("s11a: import %s: %w", item.Slug, err)
		}
		count++
	}
	if a.Cache != nil {
		a.Cache.Invalidate()
	}
	return count, nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// User's static assets
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/blog/:slug/", a.handlePost)

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/post/:slug/", a.handleAdminPost)
	e.POST("/admin/save/", a.handleAdminSave)
	e.DELETE("/admin/post/:slug/", a.handleAdminDelete)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("s11a: required environment variable %s is not set", key)
	}
	return v
}
