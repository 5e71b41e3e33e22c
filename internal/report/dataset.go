package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	childes "github.com/jamesainslie/go-childes"
)

// DatasetHeader is the header row of a dataset CSV.
var DatasetHeader = []string{"filename", "utterances", "timestamps"}

// DatasetPath returns the file a variant is written to. The original
// utterances go to base itself, the others get a _wrong or _correct suffix
// before the extension.
func DatasetPath(base string, v childes.Variant) string {
	if v == childes.Original {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_" + v.String() + ext
}

// WriteDatasets writes the original, wrong and correct datasets of res next
// to each other, see DatasetPath.
func WriteDatasets(base string, res *childes.Result) ([]string, error) {
	var written []string
	for _, v := range []childes.Variant{childes.Original, childes.Wrong, childes.Correct} {
		path := DatasetPath(base, v)
		if err := WriteDataset(path, res.Dataset(v)); err != nil {
			return written, fmt.Errorf("write %s dataset: %w", v, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// WriteDataset writes rows as CSV to path.
func WriteDataset(path string, rows []childes.DatasetRow) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodeDataset(w, rows)
	})
}

// EncodeDataset writes one CSV record per file. The utterance and timestamp
// lists are JSON arrays, an unaligned utterance has a null timestamp.
func EncodeDataset(w io.Writer, rows []childes.DatasetRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(DatasetHeader); err != nil {
		return err
	}
	for _, r := range rows {
		utts, err := marshalList(r.Utterances)
		if err != nil {
			return fmt.Errorf("encode utterances of %s: %w", r.Filename, err)
		}
		stamps, err := marshalList(r.Timestamps)
		if err != nil {
			return fmt.Errorf("encode timestamps of %s: %w", r.Filename, err)
		}
		if err := cw.Write([]string{r.Filename, utts, stamps}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// marshalList encodes v as compact JSON without HTML escaping, so & < > stay
// readable in the cell.
func marshalList(v any) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
