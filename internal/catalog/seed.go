package catalog

import (
	_ "embed"
	"fmt"

	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type Dataset struct {
	Products   []model.Product      `yaml:"products"`
	Categories []model.CategoryInfo `yaml:"categories"`
}

func LoadSeed() (Dataset, error) {
	return ParseDataset(seedYAML)
}

func ParseDataset(raw []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, fmt.Errorf("catalog: parse dataset: %w", err)
	}
	return ds, nil
}
