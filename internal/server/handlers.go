package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/pathdiv/bfs"
	"github.com/katalvlaran/pathdiv/core"
	"github.com/katalvlaran/pathdiv/diverse"
	"github.com/katalvlaran/pathdiv/internal/telemetry"
	"github.com/katalvlaran/pathdiv/report"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeInternalError  = "internal_error"
)

// respondError writes a standardized JSON error response and aborts the request.
func respondError(c *gin.Context, status int, code, message string) {
	telemetry.ErrorsTotal.WithLabelValues(code).Inc()
	resp := gin.H{"code": code, "message": message}
	if rid, ok := c.Get(requestIDKey); ok {
		resp["request_id"] = rid
	}
	c.AbortWithStatusJSON(status, resp)
}

// respondEngineError maps engine and registry errors to HTTP responses.
func (s *Server) respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, diverse.ErrUnknownNode):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, diverse.ErrBadK):
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	default:
		s.log.WithError(err).Error("request failed")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal error")
	}
}

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Sessions int    `json:"sessions"`
}

// health handles GET /healthz.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Version: s.version, Sessions: s.sessions.Len()})
}

type vertexJSON struct {
	ID string   `json:"id"`
	X  *float64 `json:"x,omitempty"`
	Y  *float64 `json:"y,omitempty"`
}

type edgeJSON struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Weight     float64 `json:"weight"`
	TravelTime float64 `json:"travel_time"`
}

type graphResponse struct {
	Stats      core.GraphStats `json:"stats"`
	Components int             `json:"components"`
	Vertices   []vertexJSON    `json:"vertices"`
	Edges      []edgeJSON      `json:"edges"`
}

// network handles GET /api/graph: the topology a client needs to draw routes.
// Each undirected edge is listed once, smaller id first.
func (s *Server) network(c *gin.Context) {
	comps, err := bfs.Components(s.graph)
	if err != nil {
		s.respondEngineError(c, err)
		return
	}
	ids := s.graph.Vertices()
	resp := graphResponse{
		Components: len(comps),
		Stats:    s.graph.Stats(),
		Vertices: make([]vertexJSON, 0, len(ids)),
		Edges:    make([]edgeJSON, 0, s.graph.EdgeCount()),
	}
	for _, id := range ids {
		v, err := s.graph.Vertex(id)
		if err != nil {
			s.respondEngineError(c, err)
			return
		}
		vj := vertexJSON{ID: id}
		if v.HasPosition {
			x, y := v.X, v.Y
			vj.X, vj.Y = &x, &y
		}
		resp.Vertices = append(resp.Vertices, vj)

		arcs, err := s.graph.Neighbors(id)
		if err != nil {
			s.respondEngineError(c, err)
			return
		}
		for _, a := range arcs {
			if id < a.To {
				resp.Edges = append(resp.Edges, edgeJSON{From: id, To: a.To, Weight: a.Weight, TravelTime: a.TravelTime})
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

type routesRequest struct {
	From      string `json:"from" binding:"required"`
	To        string `json:"to" binding:"required"`
	K         int    `json:"k"`
	SessionID string `json:"session_id"`
}

type routesResponse struct {
	SessionID string `json:"session_id,omitempty"`
	*report.Report
}

// routes handles POST /api/routes.
func (s *Server) routes(c *gin.Context) {
	var req routesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body: "+err.Error())
		return
	}
	k := req.K
	if k == 0 {
		k = s.k
	}
	if k > maxK {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, fmt.Sprintf("k must not exceed %d", maxK))
		return
	}

	var rep *report.Report
	run := func(g *core.Graph) error {
		var err error
		rep, err = report.Diversify(g, req.From, req.To, k,
			diverse.WithLogger(s.log),
			diverse.WithObserver(telemetry.SearchObserver{}),
		)

		return err
	}

	var err error
	if req.SessionID == "" {
		err = run(s.graph.CloneFresh())
	} else {
		if _, perr := uuid.Parse(req.SessionID); perr != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid session id")
			return
		}
		err = s.sessions.Use(req.SessionID, run)
	}
	if err != nil {
		s.respondEngineError(c, err)
		return
	}
	telemetry.PathsExtracted.Observe(float64(len(rep.Routes)))

	c.JSON(http.StatusOK, routesResponse{SessionID: req.SessionID, Report: rep})
}

type sessionResponse struct {
	ID         string          `json:"id"`
	TTLSeconds float64         `json:"ttl_seconds"`
	Stats      core.GraphStats `json:"stats"`
}

// createSession handles POST /api/sessions.
func (s *Server) createSession(c *gin.Context) {
	id := s.sessions.Create()
	s.respondSession(c, http.StatusCreated, id)
}

// getSession handles GET /api/sessions/:id.
func (s *Server) getSession(c *gin.Context) {
	id, ok := sessionParam(c)
	if !ok {
		return
	}
	s.respondSession(c, http.StatusOK, id)
}

func (s *Server) respondSession(c *gin.Context, status int, id string) {
	var st core.GraphStats
	err := s.sessions.Use(id, func(g *core.Graph) error {
		st = g.Stats()

		return nil
	})
	if err != nil {
		s.respondEngineError(c, err)
		return
	}
	c.JSON(status, sessionResponse{ID: id, TTLSeconds: s.sessions.ttl.Seconds(), Stats: st})
}

// deleteSession handles DELETE /api/sessions/:id.
func (s *Server) deleteSession(c *gin.Context) {
	id, ok := sessionParam(c)
	if !ok {
		return
	}
	if err := s.sessions.Delete(id); err != nil {
		s.respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// resetSession handles POST /api/sessions/:id/reset.
func (s *Server) resetSession(c *gin.Context) {
	id, ok := sessionParam(c)
	if !ok {
		return
	}
	if err := s.sessions.Reset(id); err != nil {
		s.respondEngineError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func sessionParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid session id")
		return "", false
	}

	return id, true
}
