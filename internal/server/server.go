// Package server exposes a loaded mapper over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"kmap/internal/mapper"
	"kmap/internal/output"
	"kmap/internal/pipeline"
	"kmap/internal/seq"
	"kmap/internal/version"
	"kmap/pkg/api"
)

// Config controls the HTTP service.
type Config struct {
	Port    int
	Threads int    // workers per /map request
	RefName string // reported in run metadata
	Log     logrus.FieldLogger
}

type errorBody struct {
	Error string `json:"error"`
}

// NewRouter builds the gin engine serving m. m must already hold a reference.
func NewRouter(m *mapper.Mapper, cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Log != nil {
		r.Use(requestLogger(cfg.Log))
	}
	r.GET("/healthz", NewHealthHandler(m))
	r.GET("/kmers/:kmer", NewKmerHandler(m))
	r.GET("/positions/:pos", NewPositionHandler(m))
	r.POST("/map", NewMapHandler(m, cfg))
	return r
}

func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start).String(),
		}).Info("request")
	}
}

// NewHealthHandler reports index parameters.
func NewHealthHandler(m *mapper.Mapper) func(c *gin.Context) {
	return func(c *gin.Context) {
		ix := m.Index()
		c.JSON(http.StatusOK, gin.H{
			"status":           "ok",
			"k":                m.K(),
			"reference_length": ix.Len(),
			"kmers":            ix.Size(),
		})
	}
}

// NewKmerHandler looks a k-mer up on both strands.
func NewKmerHandler(m *mapper.Mapper) func(c *gin.Context) {
	return func(c *gin.Context) {
		kmer := c.Param("kmer")
		if len(kmer) != m.K() {
			c.JSON(http.StatusBadRequest, errorBody{fmt.Sprintf("k-mer length %d != k %d", len(kmer), m.K())})
			return
		}
		pos, strand := m.Index().LookupStrand(kmer)
		if pos == nil {
			pos = []int{}
		}
		c.JSON(http.StatusOK, api.KmerV1{Kmer: kmer, Positions: pos, Strand: string(strand)})
	}
}

// NewPositionHandler returns the reference k-mer starting at :pos.
func NewPositionHandler(m *mapper.Mapper) func(c *gin.Context) {
	return func(c *gin.Context) {
		pos, err := strconv.Atoi(c.Param("pos"))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorBody{"position must be an integer"})
			return
		}
		kmer, ok := m.Index().KmerAt(pos)
		if !ok {
			c.JSON(http.StatusNotFound, errorBody{"position out of range"})
			return
		}
		c.JSON(http.StatusOK, api.PositionV1{Position: pos, Kmer: kmer})
	}
}

// NewMapHandler maps the submitted reads and returns a run document.
func NewMapHandler(m *mapper.Mapper, cfg Config) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req api.MapRequestV1
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorBody{"invalid request body: " + err.Error()})
			return
		}
		reads := make([]seq.Record, 0, len(req.Reads))
		for _, r := range req.Reads {
			rec, err := seq.New(r.ID, strings.ToUpper(r.Seq), r.Qual)
			if err != nil {
				c.JSON(http.StatusBadRequest, errorBody{err.Error()})
				return
			}
			reads = append(reads, rec)
		}

		results := make([]mapper.Result, 0, len(reads))
		err := pipeline.ForEachResult(c.Request.Context(), pipeline.Config{Threads: cfg.Threads}, m, reads,
			func(r mapper.Result) error {
				results = append(results, r)
				return nil
			})
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, context.Canceled) {
				// client went away; nobody reads the body
				status = 499
			}
			c.JSON(status, errorBody{err.Error()})
			return
		}

		meta := output.Meta{
			RunID:   uuid.NewString(),
			Version: version.Version,
			K:       m.K(),
			RefName: cfg.RefName,
			RefLen:  m.Index().Len(),
		}
		c.JSON(http.StatusOK, output.ToAPIRun(meta, results))
	}
}

// ListenAndServe runs the service until ctx is canceled.
func ListenAndServe(ctx context.Context, m *mapper.Mapper, cfg Config) error {
	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: NewRouter(m, cfg),
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			return err
		}
		return ctx.Err()
	}
}
