package http

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/usecase"
	"github.com/swiss-game/swiss/pkg/utils/safe"
)

func (s *Server) exportRound(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	round, err := s.uc.Export.Export(r.Context(), roundIDParam(r), &buf)
	if err != nil {
		handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": usecase.ExportFileName(round.Name),
	}))
	w.WriteHeader(http.StatusOK)
	safe.Write(r.Context(), w, buf.Bytes())
}

// importRound accepts the CSV either as the raw body or as the "file" field
// of a multipart form
func (s *Server) importRound(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxImportSize)

	var body io.Reader = r.Body
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		file, _, err := r.FormFile("file")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(w, r, goerr.Wrap(err, "import file too large", goerr.V("limit", s.maxImportSize)))
			return
		}
		if err != nil {
			handleError(w, r, goerr.Wrap(errBadRequest, "file field is required", goerr.V("error", err.Error())))
			return
		}
		defer safe.Close(r.Context(), file)
		body = file
	}

	report, err := s.uc.Import.Import(r.Context(), roundIDParam(r), body)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, report)
}
