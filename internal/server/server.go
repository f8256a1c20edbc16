package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/handler"
	authmw "github.com/RAISA-MUKARRAMA/BookBound-ebook-reader-backend/internal/middleware"
)

type Config struct {
	UploadsDir string
	JWTSecret  string
}

type Server struct {
	echo            *echo.Echo
	authHandler     *handler.AuthHandler
	bookHandler     *handler.BookHandler
	userHandler     *handler.UserHandler
	cartHandler     *handler.CartHandler
	purchaseHandler *handler.PurchaseHandler

	jwtSecret string
}

func NewServer(
	cfg Config,
	authHandler *handler.AuthHandler,
	bookHandler *handler.BookHandler,
	userHandler *handler.UserHandler,
	cartHandler *handler.CartHandler,
	purchaseHandler *handler.PurchaseHandler,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Static("/uploads", cfg.UploadsDir)

	s := &Server{
		echo:            e,
		authHandler:     authHandler,
		bookHandler:     bookHandler,
		userHandler:     userHandler,
		cartHandler:     cartHandler,
		purchaseHandler: purchaseHandler,
		jwtSecret:       cfg.JWTSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.POST("/register", s.authHandler.Register)
	auth.POST("/login", s.authHandler.Login)

	books := api.Group("/books")
	books.GET("", s.bookHandler.List)
	books.GET("/:id", s.bookHandler.Get)
	books.POST("", s.bookHandler.Create, authmw.JWTAuth(s.jwtSecret))

	api.GET("/users/:email", s.userHandler.GetProfile)

	cart := api.Group("/cart")
	cart.POST("/add", s.cartHandler.Add)
	cart.GET("/:email", s.cartHandler.Get)
	cart.POST("/remove", s.cartHandler.Remove)

	// -------- purchase / settlement --------
	purchase := api.Group("/purchase")
	purchase.POST("", s.purchaseHandler.Checkout)
	purchase.POST("/check", s.purchaseHandler.Check)
	purchase.POST("/checkForAUser", s.purchaseHandler.CheckForAUser)
	purchase.POST("/history", s.purchaseHandler.History)

	// -------- bank settlement callback --------
	purchase.GET("/complete", s.purchaseHandler.Complete)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
