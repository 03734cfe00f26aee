package repository

import "shoopaholic/entities"

// Repository is the append-only customer question log. There is no update or
// delete: every chat turn adds exactly one record.
type Repository interface {
	Record(text string) (*entities.QueryRecord, error)
	// Recent returns up to n query texts, most recent first.
	Recent(n int) ([]string, error)
	Total() (int64, error)
}
