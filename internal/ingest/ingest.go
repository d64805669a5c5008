// Package ingest folds a finished product record into the master case file
// the board reads from.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// MasterFields are the product keys copied into the master file, in the
// order they are written.
var MasterFields = []string{
	"id",
	"client_name",
	"main_summary",
	"key_findings",
	"hipaa_necessity",
	"medical_history_summary",
	"political_reading",
	"litigation_phase",
	"status",
	"venue",
	"relevant_cases",
	"federal_cases",
	"notes",
	"checklist",
}

const (
	lockTimeout   = 3 * time.Second
	lockRetry     = 100 * time.Millisecond
	filePerm      = 0o644
	emptyFieldVal = `""`
)

// ErrLocked is returned when another process holds the master file lock.
var ErrLocked = errors.New("master file is locked by another process")

// Merge appends the master fields of the product record to the master
// array and returns the id the entry was written with. A master file that is
// missing or holds valid JSON that is not an array starts a new array;
// malformed JSON fails without touching the file.
func Merge(productPath, masterPath string) (string, error) {
	product, err := readProduct(productPath)
	if err != nil {
		return "", err
	}

	id, entry, err := buildEntry(product)
	if err != nil {
		return "", err
	}

	lock := flock.New(masterPath + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return "", fmt.Errorf("acquiring master lock: %w", err)
	}
	if !locked {
		return "", ErrLocked
	}
	defer func() { _ = lock.Unlock() }()

	master, err := readMaster(masterPath)
	if err != nil {
		return "", err
	}
	master = append(master, entry)

	if err := writeMaster(masterPath, master); err != nil {
		return "", err
	}
	return id, nil
}

// ResetProduct replaces the product file with a copy of the template.
func ResetProduct(productPath, templatePath string) error {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}
	if err := os.Remove(productPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing product: %w", err)
	}
	if err := os.WriteFile(productPath, data, filePerm); err != nil {
		return fmt.Errorf("writing product: %w", err)
	}
	return nil
}

func readProduct(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading product: %w", err)
	}
	var product map[string]json.RawMessage
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("parsing product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("parsing product: not a JSON object")
	}
	return product, nil
}

// buildEntry encodes the master fields as one object in MasterFields order.
// Fields the product lacks are written as empty strings.
func buildEntry(product map[string]json.RawMessage) (string, json.RawMessage, error) {
	id, err := entryID(product["id"])
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range MasterFields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(field)
		buf.Write(key)
		buf.WriteByte(':')

		switch raw, ok := product[field]; {
		case field == "id":
			buf.Write(id.raw)
		case ok:
			buf.Write(raw)
		default:
			buf.WriteString(emptyFieldVal)
		}
	}
	buf.WriteByte('}')
	return id.text, buf.Bytes(), nil
}

type entryIDValue struct {
	text string
	raw  json.RawMessage
}

// entryID keeps a product's string or numeric id and assigns a uuid when
// the id is absent, null or blank.
func entryID(raw json.RawMessage) (entryIDValue, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			if strings.TrimSpace(s) != "" {
				return entryIDValue{text: s, raw: trimmed}, nil
			}
		} else {
			var n json.Number
			if err := json.Unmarshal(trimmed, &n); err != nil {
				return entryIDValue{}, fmt.Errorf("product id must be a string or number: %s", trimmed)
			}
			return entryIDValue{text: n.String(), raw: trimmed}, nil
		}
	}

	id := uuid.NewString()
	encoded, _ := json.Marshal(id)
	return entryIDValue{text: id, raw: encoded}, nil
}

func readMaster(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading master: %w", err)
	}

	// Valid JSON that is not an array starts a fresh master. Malformed JSON
	// is an error and the file is left alone.
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing master: %w", err)
	}
	if _, ok := doc.([]any); !ok {
		return nil, nil
	}

	var master []json.RawMessage
	if err := json.Unmarshal(data, &master); err != nil {
		return nil, fmt.Errorf("parsing master: %w", err)
	}
	return master, nil
}

// writeMaster replaces the master file through a temp file so readers never
// see a partial array.
func writeMaster(path string, master []json.RawMessage) error {
	data, err := json.MarshalIndent(master, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding master: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp master: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp master: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp master: %w", err)
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("setting master permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing master: %w", err)
	}
	return nil
}
