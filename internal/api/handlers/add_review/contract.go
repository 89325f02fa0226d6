package add_review

import (
	"context"

	addReview "github.com/m04kA/SMC-MarketplaceService/internal/usecase/add_review"
)

type AddReviewUseCase interface {
	Execute(ctx context.Context, req *addReview.Request) (*addReview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
