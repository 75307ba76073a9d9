package repository

import (
	"context"

	"github.com/c2ccombos/internal/domain"
)

// CatalogRepository - доступ к listing-ресурсам удалённого каталога.
// Реализация обязана быть безопасной для конкурентных вызовов: независимые
// поиски не разделяют изменяемое состояние.
type CatalogRepository interface {
	// List - одна страница документов ресурса (routes, waypoints)
	List(ctx context.Context, resource string, params map[string]string) (*domain.Page, error)
}
