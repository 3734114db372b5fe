package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/querif/querif/internal/catalog"
	"github.com/querif/querif/internal/config"
	"github.com/querif/querif/internal/graph"
	"github.com/querif/querif/internal/nl2sparql"
	"github.com/querif/querif/internal/rdf"
	"github.com/querif/querif/internal/sparql"
)

type Server struct {
	cfg    *config.Config
	sparql *sparql.Client
	store  *graph.Store
}

func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg,
		sparql: sparql.NewClient(cfg.Endpoints.SPARQL),
	}

	if cfg.Sink.URI != "" {
		store, err := graph.NewStore(cfg.Sink.URI, cfg.Sink.User, cfg.Sink.Password)
		if err != nil {
			log.Fatalf("Failed to connect to graph store: %v", err)
		}
		if err := store.BuildIndices(context.Background()); err != nil {
			log.Printf("Failed to build graph store indices: %v", err)
		}
		s.store = store
	}

	return s
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)
	r.POST("/ask", s.Ask)
	r.POST("/graph", s.Graph)
	r.GET("/catalog", s.Catalog)
	r.POST("/catalog/:name", s.CatalogRun)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type AskRequest struct {
	Prompt  string `json:"prompt" binding:"required"`
	Profile string `json:"profile"`
}

// Ask runs the NL→SPARQL pipeline. A soft failure (the defined
// could-not-answer outcome) is a 422; a propagated pipeline error is a
// 500, so the two stay distinguishable to callers.
func (s *Server) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	pipeline, err := nl2sparql.FromConfig(c.Request.Context(), s.cfg, req.Profile)
	if err != nil {
		log.Printf("Failed to build pipeline: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	query, results, err := pipeline.GenerateAndExecute(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Printf("Pipeline failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process question"})
		return
	}
	if query == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not answer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"query": query, "results": results})
}

type GraphRequest struct {
	Prompt     string `json:"prompt" binding:"required"`
	Profile    string `json:"profile"`
	MaxResults int    `json:"max_results"`
	Save       bool   `json:"save"`
}

// Graph runs the pipeline and materializes the result bindings as an RDF
// graph, optionally persisting it to the configured sink.
func (s *Server) Graph(c *gin.Context) {
	var req GraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.MaxResults <= 0 {
		req.MaxResults = 20
	}

	pipeline, err := nl2sparql.FromConfig(c.Request.Context(), s.cfg, req.Profile)
	if err != nil {
		log.Printf("Failed to build pipeline: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	query, results, err := pipeline.GenerateAndExecute(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Printf("Pipeline failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process question"})
		return
	}
	if query == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not answer"})
		return
	}

	builder := graph.NewBuilder()
	builder.BuildFromResults(query, results, req.MaxResults)

	resp := gin.H{
		"query":  query,
		"nodes":  builder.Nodes(),
		"edges":  builder.Edges(),
		"turtle": builder.Turtle(),
	}

	if req.Save && s.store != nil {
		groupID, err := s.store.SaveGraph(c.Request.Context(), builder)
		if err != nil {
			log.Printf("Failed to save graph: %v", err)
		} else {
			resp["group_id"] = groupID
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Catalog lists the predefined queries and templates.
func (s *Server) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"queries":   catalog.Queries(),
		"templates": catalog.Templates(),
	})
}

type CatalogRunRequest struct {
	Params map[string]string `json:"params"`
}

// CatalogRun executes a predefined query or a rendered template by name.
func (s *Server) CatalogRun(c *gin.Context) {
	name := c.Param("name")

	var req CatalogRunRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	query := ""
	if q, ok := catalog.Lookup(name); ok {
		query = q.Req
	} else {
		rendered, err := catalog.Render(name, req.Params)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		query = rendered
	}

	results, err := s.sparql.Execute(c.Request.Context(), rdf.PrefixBlock()+query)
	if err != nil {
		log.Printf("Catalog query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute query"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"query": query, "results": results})
}
