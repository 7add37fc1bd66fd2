package adapter

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	m "snapr.dev/pkg/snapr/internal/model"
)

const headerDelim = "---\n"

// encodeSnapshotFile renders "---\n<yaml header>---\n<contents>\n".
func encodeSnapshotFile(header any, contents m.Contents) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(headerDelim)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(header); err != nil {
		return nil, fmt.Errorf("encode snapshot header: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode snapshot header: %w", err)
	}

	buf.WriteString(headerDelim)
	buf.WriteString(string(contents))
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

// decodeSnapshotFile splits data into its header, decoded into header, and
// its contents. Files without a header are read as bare contents.
func decodeSnapshotFile(data []byte, header any) (m.Contents, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(data, []byte(headerDelim)) {
		return m.Contents(bytes.TrimSuffix(data, []byte("\n"))), nil
	}

	rest := data[len(headerDelim):]

	var raw, body []byte

	switch {
	case bytes.HasPrefix(rest, []byte(headerDelim)):
		body = rest[len(headerDelim):]
	default:
		idx := bytes.Index(rest, []byte("\n"+headerDelim))
		if idx < 0 {
			return "", fmt.Errorf("unterminated snapshot header")
		}

		raw = rest[:idx+1]
		body = rest[idx+1+len(headerDelim):]
	}

	if len(bytes.TrimSpace(raw)) > 0 {
		if err := yaml.Unmarshal(raw, header); err != nil {
			return "", fmt.Errorf("decode snapshot header: %w", err)
		}
	}

	return m.Contents(bytes.TrimSuffix(body, []byte("\n"))), nil
}
