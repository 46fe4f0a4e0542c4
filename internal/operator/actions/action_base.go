package actions

import (
	"context"

	"github.com/udyog-books/ledger-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
