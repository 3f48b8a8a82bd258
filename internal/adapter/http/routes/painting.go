package routes

import (
	"pintura_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathEstimates = "/estimates"
	PathDrafts    = "/drafts"
	PathDeposits  = "/deposits"
)

func addPaintingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, draftHandler *handlers.DraftHandler, depositHandler *handlers.DepositHandler) {
	quotes := rg.Group(PathQuotes)
	{
		// Compute-only pricing; nothing is persisted here.
		quotes.POST("/interior", estimateHandler.QuoteInterior)
		quotes.POST("/exterior", estimateHandler.QuoteExterior)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.PATCH("/accept", estimateHandler.AcceptEstimate)
		estimates.PATCH("/reject", estimateHandler.RejectEstimate)
		estimates.PATCH("/cancel", estimateHandler.CancelEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimateByID)
		estimates.PUT("/:id/reprice", estimateHandler.RepriceEstimate)
	}

	drafts := rg.Group(PathDrafts)
	{
		drafts.PUT("/:key", draftHandler.SaveDraft)
		drafts.GET("/:key", draftHandler.GetDraft)
		drafts.DELETE("/:key", draftHandler.DeleteDraft)
	}

	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("/:estimate_id", depositHandler.CreateDepositByEstimateID)
		deposits.GET("/:estimate_id", depositHandler.GetDepositByEstimateID)
	}
}
