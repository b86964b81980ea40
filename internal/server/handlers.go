package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/lmoreno/resume-wizard/internal/db"
	"github.com/lmoreno/resume-wizard/internal/extraction"
	"github.com/lmoreno/resume-wizard/internal/layout"
	"github.com/lmoreno/resume-wizard/internal/schemas"
	"github.com/lmoreno/resume-wizard/internal/segment"
	"github.com/lmoreno/resume-wizard/internal/titles"
	"github.com/lmoreno/resume-wizard/internal/types"
)

// maxRequestBody bounds request payloads; photos arrive base64-encoded inline.
const maxRequestBody = 10 << 20

// LayoutRequest is the payload for POST /layout and POST /layout/pdf.
type LayoutRequest struct {
	ResumeText string        `json:"resume_text" validate:"required"`
	Language   string        `json:"language" validate:"omitempty,oneof=en es"`
	Photo      *PhotoPayload `json:"photo,omitempty"`
}

// PhotoPayload carries an inline base64-encoded photo.
type PhotoPayload struct {
	MIMEType string `json:"mime_type" validate:"required,oneof=image/png image/jpeg"`
	Bytes    string `json:"bytes" validate:"required,base64"`
}

// AnalysisRequest is the payload for POST /analyses.
type AnalysisRequest struct {
	JobText    string `json:"job_text" validate:"required_without=JobURL"`
	JobURL     string `json:"job_url" validate:"omitempty,url"`
	ResumeText string `json:"resume_text" validate:"required"`
	Language   string `json:"language" validate:"omitempty,oneof=en es"`
	Rewrite    bool   `json:"rewrite"`
}

// decodeLayoutRequest reads, schema-validates, and decodes a layout request.
func (s *Server) decodeLayoutRequest(w http.ResponseWriter, r *http.Request) (*LayoutRequest, *types.Photo, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return nil, nil, false
	}

	if s.config.SchemaPath != "" {
		if err := schemas.ValidateBytes(s.config.SchemaPath, body); err != nil {
			var ve *schemas.ValidationError
			if errors.As(err, &ve) {
				s.errorResponse(w, http.StatusBadRequest, ve.Error())
				return nil, nil, false
			}
			log.Printf("Schema validation unavailable: %v", err)
		}
	}

	var req LayoutRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return nil, nil, false
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return nil, nil, false
	}

	var photo *types.Photo
	if req.Photo != nil {
		raw, err := base64.StdEncoding.DecodeString(req.Photo.Bytes)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "photo bytes are not valid base64")
			return nil, nil, false
		}
		photo = &types.Photo{MIMEType: req.Photo.MIMEType, Bytes: raw}
	}

	return &req, photo, true
}

// computeLayout segments the resume text and runs the layout engine.
func computeLayout(req *LayoutRequest, photo *types.Photo) *types.PageDescription {
	dict := titles.ForLanguage(types.Language(req.Language))
	doc := segment.Document(req.ResumeText, dict)
	engine := layout.NewEngine(layout.DefaultGeometry())
	return engine.Layout(doc, photo, dict)
}

// handleLayout computes a page description for resume text.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, photo, ok := s.decodeLayoutRequest(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, computeLayout(req, photo))
}

// handleLayoutPDF computes a layout and renders it to PDF.
func (s *Server) handleLayoutPDF(w http.ResponseWriter, r *http.Request) {
	req, photo, ok := s.decodeLayoutRequest(w, r)
	if !ok {
		return
	}

	pdf, err := s.renderer.RenderPDF(r.Context(), computeLayout(req, photo))
	if err != nil {
		log.Printf("PDF rendering failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "PDF rendering failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// handleCreateAnalysis scores a resume against a job posting and, when
// persistence is configured, stores the result.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.llm == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "analysis backend not configured")
		return
	}

	var req AnalysisRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	jobText := req.JobText
	if jobText == "" {
		extracted, err := extraction.FromURL(r.Context(), req.JobURL, nil)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "failed to fetch job posting: "+err.Error())
			return
		}
		jobText = extracted
	}

	lang := types.Language(req.Language)
	if !lang.Valid() {
		lang = types.LanguageEnglish
	}

	report, err := s.llm.ScoreCompatibility(r.Context(), jobText, req.ResumeText, lang)
	if err != nil {
		log.Printf("Compatibility scoring failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "compatibility scoring failed")
		return
	}

	rec := &types.AnalysisRecord{
		JobText:     jobText,
		ResumeText:  req.ResumeText,
		Language:    lang,
		Score:       report.Score,
		Explanation: report.Explanation,
	}

	if req.Rewrite {
		rewritten, err := s.llm.RewriteResume(r.Context(), jobText, req.ResumeText, lang)
		if err != nil {
			log.Printf("Resume rewrite failed: %v", err)
			s.errorResponse(w, http.StatusBadGateway, "resume rewrite failed")
			return
		}
		rec.RewrittenText = rewritten
	}

	if s.db != nil {
		if err := s.db.SaveAnalysis(r.Context(), rec); err != nil {
			log.Printf("Failed to persist analysis: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to persist analysis")
			return
		}
	}

	s.jsonResponse(w, http.StatusCreated, rec)
}

// handleListAnalyses returns stored analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence not configured")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := s.db.ListAnalyses(r.Context(), limit)
	if err != nil {
		log.Printf("Failed to list analyses: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	s.jsonResponse(w, http.StatusOK, records)
}

// handleGetAnalysis returns a single stored analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	rec, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "analysis not found")
			return
		}
		log.Printf("Failed to load analysis: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load analysis")
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}
