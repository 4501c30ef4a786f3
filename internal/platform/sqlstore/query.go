package sqlstore

import (
	"fmt"
	"slices"
	"strings"
)

// queries holds the statements of a Repository, built once from its Table.
type queries struct {
	findAll  string
	findByID string
	deleteBy string
	upsert   string
}

func buildQueries(name, idColumn string, columns, immutable []string, orderBy string, d Dialect) queries {
	all := append([]string{idColumn}, columns...)
	selectList := strings.Join(all, ", ")

	placeholders := make([]string, len(all))
	for i := range all {
		placeholders[i] = d.Placeholder(i + 1)
	}

	var assignments []string
	for _, col := range columns {
		if slices.Contains(immutable, col) {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = excluded.%s", col, col))
	}

	if orderBy == "" {
		orderBy = idColumn
	}

	return queries{
		findAll: fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", selectList, name, orderBy),
		findByID: fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s",
			selectList, name, idColumn, d.Placeholder(1)),
		deleteBy: fmt.Sprintf("DELETE FROM %s WHERE %s = %s", name, idColumn, d.Placeholder(1)),
		upsert: fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s RETURNING %s",
			name,
			selectList,
			strings.Join(placeholders, ", "),
			idColumn,
			strings.Join(assignments, ", "),
			selectList,
		),
	}
}
