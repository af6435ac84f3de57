package abstraction

import (
	"context"

	"fotkaj/internal/domain/dto"
)

type Processor interface {
	Process(ctx context.Context, phoneNumberID string, msg dto.Message)
}
