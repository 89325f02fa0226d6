package add_review

import (
	"time"

	addReview "github.com/m04kA/SMC-MarketplaceService/internal/usecase/add_review"
)

// AddReviewRequest HTTP request model
type AddReviewRequest struct {
	Rating  int64  `json:"rating"`  // оценка 1-5
	Comment string `json:"comment"` // текст отзыва
}

// ReviewResponse отзыв в составе ответа
type ReviewResponse struct {
	ClientID  string `json:"clientId"`
	Rating    int64  `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"createdAt"`
}

// ProviderResponse HTTP response model с обновлённым поставщиком
type ProviderResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	ServiceType   string           `json:"serviceType"`
	ContactInfo   string           `json:"contactInfo"`
	AverageRating int64            `json:"averageRating"`
	Reviews       []ReviewResponse `json:"reviews"`
	Availability  []int64          `json:"availability"`
	CreatedAt     string           `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddReviewRequest) ToUseCaseRequest(bookingID string) *addReview.Request {
	return &addReview.Request{
		BookingID: bookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addReview.Response) *ProviderResponse {
	reviews := make([]ReviewResponse, 0, len(resp.Reviews))
	for _, review := range resp.Reviews {
		reviews = append(reviews, ReviewResponse{
			ClientID:  review.ClientID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}

	return &ProviderResponse{
		ID:            resp.ID,
		Name:          resp.Name,
		ServiceType:   resp.ServiceType,
		ContactInfo:   resp.ContactInfo,
		AverageRating: resp.AverageRating,
		Reviews:       reviews,
		Availability:  resp.Availability,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
