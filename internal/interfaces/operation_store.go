package interfaces

import (
	"context"

	"github.com/saad-anwar/custodial-vault-service/internal/models"
)

type OperationStore interface {
	SaveOperation(ctx context.Context, op models.Operation) error
	GetOperationsByAccount(account string) ([]models.Operation, error)
	GetOperations() ([]models.Operation, error)
}
