package usecase_test

import "github.com/jhoicas/erp-catalog-api/internal/domain/repository"

func defaultOpts() repository.ListOptions {
	return repository.ListOptions{Limit: 50, SortBy: "createdAt", SortDesc: true}
}
