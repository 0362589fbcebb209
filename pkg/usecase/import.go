package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/swiss-game/swiss/pkg/domain/interfaces"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/swiss-game/swiss/pkg/utils/logging"
)

// ResultPatch sets the result of one action
type ResultPatch struct {
	Line   int
	Key    model.ActionKey
	Result string
}

// ParsedImport is the content of an import file
type ParsedImport struct {
	Patches []ResultPatch
	// Skipped holds line numbers of rows without an action id
	Skipped []int
}

// ParseImport reads an edited export. The first record is the header and
// must name the id and result columns; other columns are ignored. A UTF-8
// BOM, blank lines and either ';' or ',' as separator are accepted.
func ParseImport(r io.Reader) (*ParsedImport, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read import")
	}
	raw = bytes.TrimPrefix(raw, []byte(utf8BOM))

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = detectDelimiter(raw)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, goerr.Wrap(ErrInvalidImport, "import file is empty")
	}
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidImport, "failed to read header", goerr.V("error", err.Error()))
	}

	idCol, resultCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case ColumnActionID:
			if idCol < 0 {
				idCol = i
			}
		case ColumnResult:
			if resultCol < 0 {
				resultCol = i
			}
		}
	}
	if idCol < 0 {
		return nil, goerr.Wrap(ErrInvalidImport, "missing column", goerr.V(ColumnKey, ColumnActionID))
	}
	if resultCol < 0 {
		return nil, goerr.Wrap(ErrInvalidImport, "missing column", goerr.V(ColumnKey, ColumnResult))
	}

	parsed := &ParsedImport{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(ErrInvalidImport, "failed to read record", goerr.V("error", err.Error()))
		}
		line, _ := cr.FieldPos(0)

		if isBlankRecord(record) {
			continue
		}

		id := strings.TrimSpace(field(record, idCol))
		if id == "" {
			parsed.Skipped = append(parsed.Skipped, line)
			continue
		}

		parsed.Patches = append(parsed.Patches, ResultPatch{
			Line:   line,
			Key:    model.ActionKeyFromExternal(id),
			Result: field(record, resultCol),
		})
	}

	return parsed, nil
}

// detectDelimiter picks ';' when the header line has more of them than ','
func detectDelimiter(raw []byte) rune {
	for _, line := range bytes.Split(raw, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
			return ';'
		}
		return ','
	}
	return ','
}

// isBlankRecord reports rows spreadsheet tools emit as only separators
func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

// ImportFailure is a row whose write failed
type ImportFailure struct {
	Line  int    `json:"line"`
	ID    string `json:"id"`
	Error string `json:"error"`
}

// ImportReport is the outcome of applying an import to a round
type ImportReport struct {
	// Updated holds ids whose result was written
	Updated []string `json:"updated"`
	// Unchanged holds ids whose result already matched and was not written
	Unchanged []string `json:"unchanged"`
	// Missing holds ids without an action in the round. Nothing is created for them.
	Missing []string `json:"missing"`
	// Skipped holds line numbers of rows without an id
	Skipped []int           `json:"skipped"`
	Failed  []ImportFailure `json:"failed"`
}

type ImportUseCase struct {
	repo interfaces.Repository
}

func NewImportUseCase(repo interfaces.Repository) *ImportUseCase {
	return &ImportUseCase{
		repo: repo,
	}
}

// Import applies the results of an edited export to the round's actions.
// Rows are written independently: a failed row is reported and does not
// stop the others, and nothing is rolled back.
func (uc *ImportUseCase) Import(ctx context.Context, roundID model.RoundID, r io.Reader) (*ImportReport, error) {
	if _, err := uc.repo.Round().Get(ctx, roundID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, goerr.Wrap(ErrRoundNotFound, "round not found", goerr.V(RoundIDKey, roundID))
		}
		return nil, goerr.Wrap(err, "failed to get round", goerr.V(RoundIDKey, roundID))
	}

	parsed, err := ParseImport(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse import", goerr.V(RoundIDKey, roundID))
	}

	return uc.Apply(ctx, roundID, parsed), nil
}

// Apply writes parsed patches to the round
func (uc *ImportUseCase) Apply(ctx context.Context, roundID model.RoundID, parsed *ParsedImport) *ImportReport {
	logger := logging.From(ctx)
	report := &ImportReport{
		Updated:   []string{},
		Unchanged: []string{},
		Missing:   []string{},
		Skipped:   append([]int{}, parsed.Skipped...),
		Failed:    []ImportFailure{},
	}

	for _, patch := range parsed.Patches {
		id := patch.Key.External()
		unchanged, err := uc.applyPatch(ctx, roundID, patch)
		switch {
		case err == nil && unchanged:
			report.Unchanged = append(report.Unchanged, id)
		case err == nil:
			report.Updated = append(report.Updated, id)
		case errors.Is(err, model.ErrNotFound):
			report.Missing = append(report.Missing, id)
		default:
			logger.Warn("failed to import action result",
				"round_id", roundID,
				"action_key", patch.Key,
				"line", patch.Line,
				"error", err,
			)
			report.Failed = append(report.Failed, ImportFailure{
				Line:  patch.Line,
				ID:    id,
				Error: err.Error(),
			})
		}
	}

	logger.Info("import applied",
		"round_id", roundID,
		"updated", len(report.Updated),
		"unchanged", len(report.Unchanged),
		"missing", len(report.Missing),
		"skipped", len(report.Skipped),
		"failed", len(report.Failed),
	)
	return report
}

// applyPatch writes the patch unless the stored result already equals it.
// CSV readers turn CRLF inside quoted fields into LF, so line endings are
// ignored in the comparison and a stored CRLF survives a re-import.
func (uc *ImportUseCase) applyPatch(ctx context.Context, roundID model.RoundID, patch ResultPatch) (bool, error) {
	current, err := uc.repo.Action().Get(ctx, roundID, patch.Key)
	if err != nil {
		return false, err
	}
	if normalizeLineEndings(current.Result) == normalizeLineEndings(patch.Result) {
		return true, nil
	}

	if err := uc.repo.Action().UpdateResult(ctx, roundID, patch.Key, patch.Result); err != nil {
		return false, err
	}
	return false, nil
}

func normalizeLineEndings(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
