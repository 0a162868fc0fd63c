// Package seed populates a fresh store with an initial catalog, either
// from a YAML file or from the built-in demo fixture. The YAML is a
// startup convenience, not an interchange format; nothing is ever written
// back.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kopbox/kopbox-pos/internal/catalog"
	catalogdto "github.com/kopbox/kopbox-pos/internal/catalog/dto"
	"github.com/kopbox/kopbox-pos/internal/category"
	categorydto "github.com/kopbox/kopbox-pos/internal/category/dto"
)

type Catalog struct {
	Categories []Category `yaml:"categories"`
}

type Category struct {
	Name   string `yaml:"name"`
	Prefix string `yaml:"prefix"`
	Items  []Item `yaml:"items"`
}

type Item struct {
	Name  string `yaml:"name"`
	Stock int    `yaml:"stock"`
	Price int64  `yaml:"price"`
}

func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &c, nil
}

// Sample is the demo catalog used when no seed file is configured.
func Sample() *Catalog {
	return &Catalog{
		Categories: []Category{
			{
				Name:   "Makanan",
				Prefix: "MA",
				Items: []Item{
					{Name: "Nasi Goreng", Stock: 20, Price: 20000},
					{Name: "Mie Goreng", Stock: 100, Price: 20000},
					{Name: "Soto", Stock: 100, Price: 13112},
				},
			},
			{
				Name:   "Minuman",
				Prefix: "MI",
				Items: []Item{
					{Name: "Es Teh", Stock: 50, Price: 5000},
				},
			},
			{
				Name:   "Snack",
				Prefix: "SN",
				Items: []Item{
					{Name: "Cici", Stock: 100, Price: 10000},
				},
			},
		},
	}
}

// Apply creates the catalog through the regular usecases so every invariant
// (prefix uniqueness, code derivation) holds for seeded data too.
func Apply(ctx context.Context, c *Catalog, catUC category.UseCase, itemUC catalog.UseCase) error {
	for _, sc := range c.Categories {
		cat, err := catUC.CreateCategory(ctx, &categorydto.CreateCategoryInput{
			Name:       sc.Name,
			CodePrefix: sc.Prefix,
		})
		if err != nil {
			return fmt.Errorf("seed category %q: %w", sc.Name, err)
		}
		for _, si := range sc.Items {
			if _, err := itemUC.AddItem(ctx, &catalogdto.AddItemInput{
				CategoryID: cat.ID,
				Name:       si.Name,
				Stock:      si.Stock,
				UnitPrice:  si.Price,
			}); err != nil {
				return fmt.Errorf("seed item %q: %w", si.Name, err)
			}
		}
	}
	return nil
}
