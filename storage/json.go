package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mbolis/form-builder/model"
)

// JSONStore keeps forms and responses in two flat JSON documents
// under a data directory, read and rewritten wholesale on every
// operation. A mutex serializes access; past that, durability is
// whatever the filesystem gives us.
type JSONStore struct {
	mu            sync.Mutex
	formsPath     string
	responsesPath string
}

func NewJSONStore(dir string) (*JSONStore, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("storage: create data dir: %w", err)
	}
	return &JSONStore{
		formsPath:     filepath.Join(dir, "forms.json"),
		responsesPath: filepath.Join(dir, "responses.json"),
	}, nil
}

func (s *JSONStore) LoadForms(ctx context.Context) ([]model.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var forms []model.Form
	err := readDocument(s.formsPath, &forms)
	if err != nil {
		return nil, err
	}
	if forms == nil {
		forms = []model.Form{}
	}
	return forms, nil
}

func (s *JSONStore) LoadForm(ctx context.Context, id string) (*model.Form, error) {
	forms, err := s.LoadForms(ctx)
	if err != nil {
		return nil, err
	}
	for i := range forms {
		if forms[i].ID == id {
			return &forms[i], nil
		}
	}
	return nil, nil
}

func (s *JSONStore) SaveForm(ctx context.Context, form model.Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var forms []model.Form
	err := readDocument(s.formsPath, &forms)
	if err != nil {
		return err
	}

	replaced := false
	for i := range forms {
		if forms[i].ID == form.ID {
			forms[i] = form
			replaced = true
			break
		}
	}
	if !replaced {
		forms = append(forms, form)
	}

	return writeDocument(s.formsPath, forms)
}

func (s *JSONStore) DeleteForm(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var forms []model.Form
	err := readDocument(s.formsPath, &forms)
	if err != nil {
		return err
	}
	kept := make([]model.Form, 0, len(forms))
	for _, f := range forms {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	err = writeDocument(s.formsPath, kept)
	if err != nil {
		return err
	}

	// cascade to the form's responses
	var responses []model.FormResponse
	err = readDocument(s.responsesPath, &responses)
	if err != nil {
		return err
	}
	keptResponses := make([]model.FormResponse, 0, len(responses))
	for _, r := range responses {
		if r.FormID != id {
			keptResponses = append(keptResponses, r)
		}
	}
	return writeDocument(s.responsesPath, keptResponses)
}

func (s *JSONStore) LoadResponses(ctx context.Context, formID string) ([]model.FormResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var responses []model.FormResponse
	err := readDocument(s.responsesPath, &responses)
	if err != nil {
		return nil, err
	}

	filtered := []model.FormResponse{}
	for _, r := range responses {
		if formID == "" || r.FormID == formID {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *JSONStore) SaveResponse(ctx context.Context, response model.FormResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var responses []model.FormResponse
	err := readDocument(s.responsesPath, &responses)
	if err != nil {
		return err
	}
	responses = append(responses, response)
	return writeDocument(s.responsesPath, responses)
}

func (s *JSONStore) Close() error {
	return nil
}

func readDocument(path string, out any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storage: read %s: %w", filepath.Base(path), err)
	}
	err = json.Unmarshal(data, out)
	if err != nil {
		return fmt.Errorf("storage: parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeDocument(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", filepath.Base(path), err)
	}
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("storage: write %s: %w", filepath.Base(path), err)
	}
	return nil
}
