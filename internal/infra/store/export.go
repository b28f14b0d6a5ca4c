package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"wlanprofiles/internal/domain"
)

const exportFileMode = 0o644

// FileName returns the export file name for format.
func FileName(format domain.ExportFormat) string {
	return domain.ExportFileBase + "." + string(format)
}

// Export writes the store to dir in the given format and returns the path of
// the written file. Existing files are overwritten in a single write.
func (s *ProfileStore) Export(format domain.ExportFormat, dir string) (string, error) {
	const op = "store.Export"

	var (
		payload []byte
		err     error
	)
	switch format {
	case domain.ExportJSON:
		payload, err = s.encodeJSON()
	case domain.ExportTXT:
		payload = s.encodeTXT()
	default:
		return "", domain.E(domain.CodeInvalidArgument, op, "unsupported export format "+string(format), domain.ErrUnsupportedFormat)
	}
	if err != nil {
		return "", domain.E(domain.CodeInternal, op, "operation error", err)
	}

	if dir == "" {
		dir = domain.DefaultOutputDir
	}
	path := filepath.Join(dir, FileName(format))
	if err := os.WriteFile(path, payload, exportFileMode); err != nil {
		return "", domain.E(domain.CodeInternal, op, "operation error", err)
	}
	return path, nil
}

func (s *ProfileStore) encodeJSON() ([]byte, error) {
	return json.Marshal(s.entries)
}

// Each record is terminated by a newline.
func (s *ProfileStore) encodeTXT() []byte {
	var buf bytes.Buffer
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		buf.WriteString(pair.Key)
		buf.WriteByte('\t')
		buf.WriteString(pair.Value)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
