// Package server implements the registration/snippet backend API.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/CHARAN123567888880/SyntaxRush/internal/catalog"
)

// registerRequest is the POST /api/register payload.
type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Server serves the two backend endpoints.
type Server struct {
	users   UserStore
	catalog *catalog.Catalog
}

// New returns a server over the given user store and snippet catalog.
func New(users UserStore, cat *catalog.Catalog) *Server {
	return &Server{users: users, catalog: cat}
}

// Router builds the gin engine with CORS and the API routes.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.POST("/register", s.register)
		api.GET("/snippets", s.snippets)
	}
	return r
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.users.InsertUser(c.Request.Context(), req.Username, req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusCreated, "User registered")
}

func (s *Server) snippets(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.AllCode())
}
