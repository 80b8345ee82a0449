package seeder

import (
	"fmt"

	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/types"
)

type DependencyGraph struct {
	tables map[string]types.SchemaTable
	names  []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		tables: make(map[string]types.SchemaTable),
	}
}

func (g *DependencyGraph) AddTable(table types.SchemaTable) {
	if _, exists := g.tables[table.Name]; !exists {
		g.names = append(g.names, table.Name)
	}
	g.tables[table.Name] = table
}

// BuildInsertionOrder returns the tables so that every table follows the
// tables it references. Ties keep the order tables were added in.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		table, exists := g.tables[tableName]
		if !exists {
			return fmt.Errorf("table %s is referenced but not defined", tableName)
		}

		temp[tableName] = true
		for _, dep := range table.Dependencies() {
			if err := visit(dep); err != nil {
				return err
			}
		}
		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	for _, tableName := range g.names {
		if err := visit(tableName); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// InsertionOrder resolves the load order of a variant's tables.
func InsertionOrder(variant model.Variant) ([]string, error) {
	graph := NewDependencyGraph()
	for _, table := range variant.Tables {
		graph.AddTable(table)
	}
	return graph.BuildInsertionOrder()
}

// TruncationOrder is the insertion order reversed, children first.
func TruncationOrder(variant model.Variant) ([]string, error) {
	order, err := InsertionOrder(variant)
	if err != nil {
		return nil, err
	}
	reversed := make([]string, len(order))
	for i, name := range order {
		reversed[len(order)-1-i] = name
	}
	return reversed, nil
}
