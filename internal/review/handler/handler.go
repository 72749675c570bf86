package handler

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/drinkshop/backend/internal/catalog"
	cataloghandler "github.com/drinkshop/backend/internal/catalog/handler"
	"github.com/drinkshop/backend/internal/repositories/docstore"
	"github.com/drinkshop/backend/internal/review"
	"github.com/drinkshop/backend/pkg/api"
	"github.com/rs/zerolog/log"
)

// ReviewsCollection is the document store collection holding review records
const ReviewsCollection = "reviews"

type SubmitRequest struct {
	ProductID string  `json:"productId"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	UserUID   string  `json:"-"`
	UserName  string  `json:"-"`
}

type Review struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	UserUID   string  `json:"userUid"`
	UserName  string  `json:"userName"`
	CreatedAt string  `json:"createdAt"`
}

type Reviewer interface {
	SubmitReview(ctx context.Context, request *SubmitRequest) (*Review, catalog.Product, error)
	GetReviewsByProduct(ctx context.Context, productID string) ([]Review, error)
}

var (
	reviewer Reviewer
	once     sync.Once
)

type ReviewHandler struct {
	store   docstore.Store
	catalog cataloghandler.Catalog
}

// Init initializes the review handler with the given document store
func Init(store docstore.Store) Reviewer {
	once.Do(func() {
		reviewer = NewReviewHandler(store, cataloghandler.Instance())
	})
	return reviewer
}

// Instance returns the initialized review handler
func Instance() Reviewer {
	if reviewer == nil {
		log.Fatal().Msg("Review handler not initialized")
	}
	return reviewer
}

func NewReviewHandler(store docstore.Store, catalogHandler cataloghandler.Catalog) *ReviewHandler {
	return &ReviewHandler{
		store:   store,
		catalog: catalogHandler,
	}
}

// SubmitReview records a review and folds its rating into the product's
// running average. Validation happens before anything is stored, so a bad
// request leaves both collections untouched.
func (h *ReviewHandler) SubmitReview(ctx context.Context, request *SubmitRequest) (*Review, catalog.Product, error) {
	if request.Rating < 1 || request.Rating > 5 || request.Rating != math.Trunc(request.Rating) {
		return nil, catalog.Product{}, api.NewBadRequestError("rating must be a whole number between 1 and 5")
	}
	product, err := h.catalog.GetProductByID(ctx, request.ProductID)
	if err != nil {
		return nil, catalog.Product{}, err
	}

	record := Review{
		ProductID: request.ProductID,
		Rating:    request.Rating,
		Comment:   request.Comment,
		UserUID:   request.UserUID,
		UserName:  request.UserName,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	id, err := h.store.Insert(ctx, ReviewsCollection, map[string]interface{}{
		"productId": record.ProductID,
		"rating":    record.Rating,
		"comment":   record.Comment,
		"userUid":   record.UserUID,
		"userName":  record.UserName,
		"createdAt": record.CreatedAt,
	})
	if err != nil {
		return nil, catalog.Product{}, err
	}
	record.ID = id

	rating, count := review.ApplyNewReview(product.Rating, product.ReviewCount, request.Rating)
	err = h.catalog.UpdateProduct(ctx, product.ID, map[string]interface{}{
		"rating":  rating,
		"reviews": count,
	})
	if err != nil {
		log.Error().Err(err).Str("productId", product.ID).Msg("Review stored but product aggregate update failed")
		return nil, catalog.Product{}, err
	}
	product.Rating = rating
	product.ReviewCount = count

	log.Info().Str("productId", product.ID).Float64("rating", rating).Int64("reviews", count).Msg("Review submitted")
	return &record, product, nil
}

// GetReviewsByProduct returns a product's reviews, newest first
func (h *ReviewHandler) GetReviewsByProduct(ctx context.Context, productID string) ([]Review, error) {
	docs, err := h.store.Query(ctx, ReviewsCollection, "productId", productID, docstore.QueryOptions{
		OrderByCreatedDesc: true,
	})
	if err != nil {
		return nil, err
	}
	reviews := make([]Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, decodeReview(doc))
	}
	return reviews, nil
}

func decodeReview(doc docstore.Document) Review {
	data := doc.Data
	r := Review{ID: doc.ID}
	if v, ok := data["productId"].(string); ok {
		r.ProductID = v
	}
	if v, ok := data["rating"].(float64); ok {
		r.Rating = v
	}
	if v, ok := data["comment"].(string); ok {
		r.Comment = v
	}
	if v, ok := data["userUid"].(string); ok {
		r.UserUID = v
	}
	if v, ok := data["userName"].(string); ok {
		r.UserName = v
	}
	if v, ok := data["createdAt"].(string); ok {
		r.CreatedAt = v
	}
	return r
}
