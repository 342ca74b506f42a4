// Package service exposes the codec and the result store over HTTP.
//
// The gateway sits between off-chain inference workflows and the settlement
// path: workflows POST computed envelopes as jobs, and consumers fetch them
// back by job ID. The encode/decode endpoints exist for clients that speak
// JSON numbers rather than raw envelopes.
//
// The codec itself never logs or retries (its operations are pure); all
// observability lives at this layer.
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ritual-net/infernet-go/internal/config"
	"github.com/ritual-net/infernet-go/internal/payload"
	"github.com/ritual-net/infernet-go/internal/store"
	"github.com/ritual-net/infernet-go/internal/vector"
)

// Server handles the gateway's HTTP API.
type Server struct {
	cfg   config.Config
	log   *zap.Logger
	store *store.Store
	mux   *http.ServeMux
}

// New builds a Server with its routes registered. The store may be nil, in
// which case the job endpoints respond 503 and the stateless encode/decode
// endpoints still work.
func New(cfg config.Config, logger *zap.Logger, st *store.Store) *Server {
	s := &Server{cfg: cfg, log: logger, store: st, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /api/v1/encode", s.handleEncode)
	s.mux.HandleFunc("POST /api/v1/decode", s.handleDecode)
	s.mux.HandleFunc("POST /api/v1/jobs", s.handleCreateJob)
	s.mux.HandleFunc("GET /api/v1/jobs/{id}", s.handleGetJob)
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return http.MaxBytesHandler(s.mux, int64(s.cfg.MaxPayloadBytes))
}

// encodeRequest is the body of POST /api/v1/encode.
type encodeRequest struct {
	payload.VectorJSON
	FixedPoint bool   `json:"fixed_point,omitempty"`
	Decimals   *uint8 `json:"decimals,omitempty"`
}

// encodeResponse carries the envelope and its content digest.
type encodeResponse struct {
	Data   payload.Envelope `json:"data"`
	Digest string           `json:"digest"`
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	v, err := req.ToVector()
	if err != nil {
		s.writeError(w, statusForCodecError(err), err)
		return
	}

	mode := vector.Native
	if req.FixedPoint {
		decimals := s.cfg.DefaultDecimals
		if req.Decimals != nil {
			decimals = *req.Decimals
		}
		mode = vector.FixedPoint(decimals)
	}

	envelope, err := vector.Encode(v, mode)
	if err != nil {
		s.writeError(w, statusForCodecError(err), err)
		return
	}

	s.log.Debug("encoded vector",
		zap.String("dtype", v.DType.String()),
		zap.Int64("elements", v.ElemCount()),
		zap.Bool("fixed_point", mode.FixedPoint))
	s.writeJSON(w, http.StatusOK, encodeResponse{
		Data:   envelope,
		Digest: vector.EnvelopeDigest(envelope),
	})
}

// decodeRequest is the body of POST /api/v1/decode.
type decodeRequest struct {
	Data            payload.Envelope `json:"data"`
	GenericIntWidth int              `json:"generic_int_width,omitempty"`
}

// decodeResponse is the decoded vector plus its arithmetic mode.
type decodeResponse struct {
	payload.VectorJSON
	FixedPoint bool  `json:"fixed_point"`
	Decimals   uint8 `json:"decimals,omitempty"`
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req decodeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	v, mode, err := vector.DecodeWithOptions(req.Data, vector.DecodeOptions{
		GenericIntWidth: req.GenericIntWidth,
	})
	if err != nil {
		s.writeError(w, statusForCodecError(err), err)
		return
	}

	s.writeJSON(w, http.StatusOK, decodeResponse{
		VectorJSON: *payload.FromVector(v),
		FixedPoint: mode.FixedPoint,
		Decimals:   mode.Decimals,
	})
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, errors.New("result store not configured"))
		return
	}

	var req payload.JobRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	id := req.ID
	if id == uuid.Nil {
		id = uuid.Must(uuid.NewV7())
	}

	rec, err := store.NewRecord(id.String(), req.Output)
	if err != nil {
		s.writeError(w, statusForCodecError(err), err)
		return
	}
	if err := s.store.WriteResult(r.Context(), rec); err != nil {
		s.log.Error("write result", zap.String("job_id", id.String()), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, errors.New("failed to persist result"))
		return
	}

	s.log.Info("job settled",
		zap.String("job_id", id.String()),
		zap.String("digest", rec.Digest),
		zap.String("dtype", rec.DType))
	s.writeJSON(w, http.StatusCreated, payload.JobResult{
		ID:     id,
		Status: payload.JobStatusSuccess,
		Output: rec.Envelope,
		Digest: rec.Digest,
	})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, errors.New("result store not configured"))
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid job id: %w", err))
		return
	}

	rec, err := s.store.GetResult(r.Context(), id.String())
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("job %s not found", id))
		return
	}
	if err != nil {
		s.log.Error("read result", zap.String("job_id", id.String()), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, errors.New("failed to read result"))
		return
	}

	s.writeJSON(w, http.StatusOK, payload.JobResult{
		ID:     id,
		Status: payload.JobStatusSuccess,
		Output: rec.Envelope,
		Digest: rec.Digest,
	})
}

// errorResponse is the JSON error body. Code is the codec error code when
// the failure came from the codec, or "BAD_REQUEST"/"INTERNAL" otherwise.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	code := string(vector.CodeOf(err))
	if code == "" {
		if status >= 500 {
			code = "INTERNAL"
		} else {
			code = "BAD_REQUEST"
		}
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("write response", zap.Error(err))
	}
}

// decodeJSON parses a request body with UseNumber so integer elements keep
// full precision.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// statusForCodecError maps codec error codes onto HTTP statuses. Malformed
// inputs are the caller's fault; everything the codec reports is one.
func statusForCodecError(err error) int {
	switch vector.CodeOf(err) {
	case vector.ErrCodeShapeMismatch,
		vector.ErrCodeMalformedShape,
		vector.ErrCodeTruncatedPayload,
		vector.ErrCodeMalformedScalar,
		vector.ErrCodeUnknownArithmeticMode,
		vector.ErrCodeValueKindMismatch:
		return http.StatusBadRequest
	case vector.ErrCodeUnsupportedDataType,
		vector.ErrCodeUnknownDataType:
		return http.StatusUnprocessableEntity
	case vector.ErrCodeArithmeticOverflow:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
