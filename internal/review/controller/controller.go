package controller

import (
	"net/http"
	"sync"

	authcontroller "github.com/drinkshop/backend/internal/auth/controller"
	"github.com/drinkshop/backend/internal/review/handler"
	"github.com/drinkshop/backend/pkg/api"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Review interface {
	SubmitReview(ctx *gin.Context)
	GetProductReviews(ctx *gin.Context)
}

var (
	reviewController Review
	once             sync.Once
)

type ReviewController struct {
	Handler handler.Reviewer
}

func NewController() Review {
	if reviewController == nil {
		once.Do(func() {
			reviewController = &ReviewController{
				Handler: handler.Instance(),
			}
		})
	}
	return reviewController
}

func (r *ReviewController) SubmitReview(ctx *gin.Context) {
	identity, err := authcontroller.ParseIdentity(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	var request handler.SubmitRequest
	if err := ctx.BindJSON(&request); err != nil {
		log.Error().Err(err).Msg("Error in binding request body")
		_ = ctx.Error(api.NewBadRequestError(err.Error()))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	request.ProductID = ctx.Param("id")
	request.UserUID = identity.UID
	request.UserName = identity.DisplayName

	record, product, err := r.Handler.SubmitReview(ctx, &request)
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"review":  record,
		"rating":  product.Rating,
		"reviews": product.ReviewCount,
	})
}

func (r *ReviewController) GetProductReviews(ctx *gin.Context) {
	reviews, err := r.Handler.GetReviewsByProduct(ctx, ctx.Param("id"))
	if err != nil {
		ctx.Error(err)
		ctx.JSON(api.StatusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}
