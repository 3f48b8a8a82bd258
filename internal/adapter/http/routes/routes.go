package routes

import (
	"log"
	"os"
	"strconv"

	_ "pintura_xpto/docs" // This will be auto-generated
	"pintura_xpto/internal/adapter/http/handlers"
	repository2 "pintura_xpto/internal/adapter/persistence/repository"
	"pintura_xpto/internal/infrastructure/database"
	"pintura_xpto/internal/infrastructure/payments"
	"pintura_xpto/internal/usecase"
	"pintura_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	draftRepo := repository2.NewDraftDynamoRepository(ddb)
	depositRepo := repository2.NewDepositDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo)
	draftUseCase := usecase.NewDraftUseCase(draftRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	depositUseCase := usecase.NewDepositUseCase(depositRepo, estimateRepo, paymentGateway)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	draftHandler := handlers.NewDraftHandler(draftUseCase)
	depositHandler := handlers.NewDepositHandler(depositUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaintingRoutes(v1, estimateHandler, draftHandler, depositHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
