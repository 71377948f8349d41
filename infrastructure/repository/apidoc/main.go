package apidoc

import (
	"encoding/json"
	"os"
	"path/filepath"

	modelApidoc "github.com/t-aoki/kumitate/domain/model/apidoc"
	"github.com/t-aoki/kumitate/domain/repository/apidoc"
)

type repositoryImpl struct{}

func NewRepository() apidoc.Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Read(path string) ([]modelApidoc.ClassDoc, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var docs []modelApidoc.ClassDoc
	err = json.Unmarshal(content, &docs)
	if err != nil {
		return nil, err
	}

	return docs, nil
}

func (r *repositoryImpl) Write(path string, docs []modelApidoc.ClassDoc) error {
	content, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, content, 0644)
}
