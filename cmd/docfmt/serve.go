// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"time"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/docfmt/document"
	"github.com/bufbuild/docfmt/notation"
	"github.com/bufbuild/docfmt/printer"
)

// runServe implements the serve subcommand.
func runServe(args []string) error {
	flags, common := newFlagSet("serve")
	host := flags.String("host", "", "host to listen on (DOCFMT_HOST)")
	port := flags.Int("port", 0, "port to listen on (DOCFMT_PORT)")

	cfg, err := common.parse(flags, args)
	if err != nil {
		return err
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host":
			cfg.Host = *host
		case "port":
			cfg.Port = *port
		}
	})

	svc, err := newService(cfg, log.StandardLogger())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:      svc.router(),
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		svc.logger.Infof("docfmt v%s listening on %s", version, srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	svc.logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// service formats documents sent over HTTP.
type service struct {
	cfg      *Config
	defaults printer.Options
	logger   *log.Logger

	// Bounds the number of documents being printed at once.
	slots *semaphore.Weighted
}

func newService(cfg *Config, logger *log.Logger) (*service, error) {
	defaults, err := cfg.PrinterOptions()
	if err != nil {
		return nil, err
	}

	slots := cfg.MaxParallelism
	if slots <= 0 {
		slots = runtime.GOMAXPROCS(-1)
	}
	return &service{
		cfg:      cfg,
		defaults: defaults,
		logger:   logger,
		slots:    semaphore.NewWeighted(int64(slots)),
	}, nil
}

func (s *service) router() http.Handler {
	r := mux.NewRouter()

	// Catch the api version
	rv := r.PathPrefix("/v1").Subrouter()
	rv.HandleFunc("/health/ready", handleHealthReady()).Methods(http.MethodGet)
	rv.HandleFunc("/format", s.handleFormat()).Methods(http.MethodPost)

	var h http.Handler = r
	h = gorilla.CombinedLoggingHandler(s.logger.Writer(), h)
	h = gorilla.CompressHandler(h)
	h = gorilla.ContentTypeHandler(h, "application/json")
	return h
}

// ReqFormat is the body of a POST /v1/format request.
type ReqFormat struct {
	// A name for the document, used in error positions.
	Name string `json:"name"`
	// The document, in notation syntax.
	Doc string `json:"doc"`

	// Overrides for the service's printer options.
	LineWidth   int    `json:"lineWidth,omitempty"`
	IndentWidth int    `json:"indentWidth,omitempty"`
	IndentStyle string `json:"indentStyle,omitempty"`
	LineEnding  string `json:"lineEnding,omitempty"`
}

// ResFormat is the body of a successful POST /v1/format response.
type ResFormat struct {
	Output string `json:"output"`
}

// ResError is the body of an unsuccessful response.
type ResError struct {
	Error  string `json:"error"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

func (r *ReqFormat) options(defaults printer.Options) (printer.Options, error) {
	options := defaults
	if r.LineWidth != 0 {
		options.LineWidth = r.LineWidth
	}
	if r.IndentWidth != 0 {
		options.IndentWidth = r.IndentWidth
	}
	if r.IndentStyle != "" {
		style, err := printer.ParseIndentStyle(r.IndentStyle)
		if err != nil {
			return options, err
		}
		options.IndentStyle = style
	}
	if r.LineEnding != "" {
		ending, err := printer.ParseLineEnding(r.LineEnding)
		if err != nil {
			return options, err
		}
		options.LineEnding = ending
	}
	return options, options.Validate()
}

func handleHealthReady() http.HandlerFunc {
	return func(rw http.ResponseWriter, _ *http.Request) {
		handleJSONResponse(rw, http.StatusOK, "ok")
	}
}

func (s *service) handleFormat() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			s.handleError(rw, http.StatusBadRequest, errors.New("empty body"))
			return
		}

		var req ReqFormat
		body := http.MaxBytesReader(rw, r.Body, s.cfg.MaxBodyBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			s.handleError(rw, http.StatusBadRequest, err)
			return
		}

		options, err := req.options(s.defaults)
		if err != nil {
			s.handleError(rw, http.StatusBadRequest, err)
			return
		}
		doc, err := notation.Parse(req.Name, req.Doc)
		if err != nil {
			s.handleError(rw, http.StatusUnprocessableEntity, err)
			return
		}

		if err := s.slots.Acquire(r.Context(), 1); err != nil {
			s.handleError(rw, http.StatusServiceUnavailable, err)
			return
		}
		out, err := printer.Print(options, doc)
		s.slots.Release(1)
		if err != nil {
			s.handleError(rw, http.StatusUnprocessableEntity, err)
			return
		}

		handleJSONResponse(rw, http.StatusOK, ResFormat{Output: out})
	}
}

// handleError is a helper function for unified HTTP error handling.
func (s *service) handleError(rw http.ResponseWriter, status int, err error) {
	s.logger.WithField("status", status).Warn(err)

	res := ResError{Error: err.Error()}
	var nerr *notation.Error
	if errors.As(err, &nerr) {
		res.Error = nerr.Err.Error()
		res.Line, res.Column = nerr.Pos.Line, nerr.Pos.Column
	}
	var structural *document.StructuralIntegrityError
	if errors.As(err, &structural) {
		s.logger.WithField("problem", structural.Problem).Error("document has malformed tags")
	}
	handleJSONResponse(rw, status, res)
}

// handleJSONResponse is a helper function for unified JSON response handling.
func handleJSONResponse(rw http.ResponseWriter, status int, res any) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(res)
}
