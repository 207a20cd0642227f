package http

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "importcli/internal/errors"
	"importcli/internal/services"
	"importcli/pkg/contracts/domain"
)

// ImportHandler handles import-related HTTP requests
type ImportHandler struct {
	service *services.ImportService
	logger  *slog.Logger
	maxBody int64
}

// NewImportHandler creates a new import handler
func NewImportHandler(service *services.ImportService, logger *slog.Logger, maxBody int64) *ImportHandler {
	return &ImportHandler{
		service: service,
		logger:  logger.With(slog.String("component", "import_handler")),
		maxBody: maxBody,
	}
}

// Routes returns the import routes with proper Chi patterns
func (h *ImportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/import", h.Import)
	r.Post("/detect", h.Detect)
	r.Get("/formats", h.GetFormats)

	return r
}

// ImportResponse is the success envelope for POST /import
type ImportResponse struct {
	Success bool                     `json:"success"`
	Results []*services.ImportResult `json:"results"`
}

// DetectResponse is the success envelope for POST /detect
type DetectResponse struct {
	Success bool                `json:"success"`
	Format  domain.SourceFormat `json:"format"`
}

// FormatsResponse is the success envelope for GET /formats
type FormatsResponse struct {
	Success bool                  `json:"success"`
	Formats []domain.SourceFormat `json:"formats"`
}

// Import handles POST /api/import: one or more uploaded files, each parsed
// into normalized trades. Optional form fields "format" and "locale" apply
// to every file in the request.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	files, _, ok := h.readUploads(w, r)
	if !ok {
		return
	}

	results, err := h.service.ImportAll(r.Context(), files)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, ImportResponse{Success: true, Results: results})
}

// Detect handles POST /api/detect: returns the detected source format for
// an uploaded file without parsing it.
func (h *ImportHandler) Detect(w http.ResponseWriter, r *http.Request) {
	files, _, ok := h.readUploads(w, r)
	if !ok {
		return
	}
	if len(files) != 1 {
		h.renderError(w, r, apierrors.ErrValidation("file", "exactly one file is required"))
		return
	}

	format, err := h.service.Detect(r.Context(), files[0].Filename, files[0].Data)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, DetectResponse{Success: true, Format: format})
}

// GetFormats handles GET /api/formats
func (h *ImportHandler) GetFormats(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, FormatsResponse{Success: true, Formats: h.service.Formats()})
}

// readUploads parses the multipart body into import files. Renders the
// error itself and returns ok=false when the request is malformed.
func (h *ImportHandler) readUploads(w http.ResponseWriter, r *http.Request) ([]services.ImportFile, services.ImportOptions, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := r.ParseMultipartForm(h.maxBody); err != nil {
		h.renderError(w, r, apierrors.InvalidRequestWithError(err))
		return nil, services.ImportOptions{}, false
	}

	opts := services.ImportOptions{
		Format: domain.SourceFormat(r.FormValue("format")),
		Locale: r.FormValue("locale"),
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		headers = r.MultipartForm.File["file"]
	}
	if len(headers) == 0 {
		h.renderError(w, r, apierrors.ErrValidation("files", "at least one file is required"))
		return nil, services.ImportOptions{}, false
	}

	files := make([]services.ImportFile, 0, len(headers))
	for _, fh := range headers {
		data, err := readUpload(fh)
		if err != nil {
			h.renderError(w, r, apierrors.InvalidRequestWithError(err))
			return nil, services.ImportOptions{}, false
		}
		files = append(files, services.ImportFile{
			Filename: fh.Filename,
			Data:     data,
			Options:  opts,
		})
	}
	return files, opts, true
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// renderError writes the structured error envelope, mapping unexpected
// errors onto a generic 500.
func (h *ImportHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		h.logger.ErrorContext(r.Context(), "unexpected handler error",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
		)
		apiErr = apierrors.ErrInternalServer
	}
	render.Render(w, r, apierrors.NewErrorResponse(apiErr))
}
