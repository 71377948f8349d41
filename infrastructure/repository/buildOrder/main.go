package buildOrder

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/t-aoki/kumitate/domain/repository/buildOrder"
)

type repositoryImpl struct{}

func NewRepository() buildOrder.Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Read(path string) (*buildOrder.BuildOrder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var order buildOrder.BuildOrder
	err = json.Unmarshal(content, &order)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *repositoryImpl) Write(path string, order *buildOrder.BuildOrder) error {
	content, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, content, 0644)
}
