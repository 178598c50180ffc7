package cmd

import (
	"context"
	"time"

	"sentinela/infra"
	_midlleware "sentinela/infra/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "sentinela/docs"
)

func StartAPI(ctx context.Context, container *infra.ContainerDI) {
	e := echo.New()

	go func() {
		for {
			select {
			case <-ctx.Done():
				if err := e.Shutdown(ctx); err != nil {
					panic(err)
				}
				return
			default:
				time.Sleep(1 * time.Second)
			}
		}
	}()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/api/sessao", container.SessionHandler.Login)

	e.GET("/api/consulta_placa/:placa", container.HandlerVehicle.ConsultaPlacaHandler, _midlleware.CheckAuthorization)
	e.GET("/api/consulta_cpf/:cpf", container.HandlerPerson.ConsultaCpfHandler, _midlleware.CheckAuthorization)
	e.GET("/api/municipios", container.HandlerMunicipality.ListMunicipiosHandler, _midlleware.CheckAuthorization)
	e.GET("/api/tipos_apreensao", container.HandlerOccurrence.ListTiposApreensaoHandler, _midlleware.CheckAuthorization)

	e.POST("/api/ocorrencia", container.HandlerOccurrence.CreateOcorrenciaHandler, _midlleware.CheckAuthorization)
	e.PUT("/api/ocorrencia/:id", container.HandlerOccurrence.UpdateOcorrenciaHandler, _midlleware.CheckAuthorization)
	e.DELETE("/api/ocorrencia/:id", container.HandlerOccurrence.DeleteOcorrenciaHandler, _midlleware.CheckAuthorization)
	e.POST("/api/local_entrega", container.HandlerOccurrence.CreateLocalEntregaHandler, _midlleware.CheckAuthorization)
	e.GET("/api/local_entrega", container.HandlerOccurrence.ListLocaisEntregaHandler, _midlleware.CheckAuthorization)

	e.POST("/api/ocorrencia/:id/anexos", container.HandlerAttachment.CreateAnexoHandler, _midlleware.CheckAuthorization)
	e.GET("/api/ocorrencia/:id/anexos", container.HandlerAttachment.GetAnexosHandler, _midlleware.CheckAuthorization)
	e.DELETE("/api/anexo/:id", container.HandlerAttachment.DeleteAnexoHandler, _midlleware.CheckAuthorization)

	e.PUT("/api/pessoa/:id", container.HandlerPerson.UpdatePessoaHandler, _midlleware.CheckAuthorization)
	e.DELETE("/api/pessoa/:id", container.HandlerPerson.DeletePessoaHandler, _midlleware.CheckAuthorization)

	e.PUT("/api/passagem/:id", container.HandlerPassage.UpdatePassagemHandler, _midlleware.CheckAuthorization)
	e.GET("/api/passagem/:id/status", container.HandlerPassage.GetStatusHandler, _midlleware.CheckAuthorization)
	e.POST("/api/passagem/status/batch", container.HandlerPassage.GetStatusBatchHandler, _midlleware.CheckAuthorization)

	rateLimiter := middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20))
	e.GET("/api/analise", container.HandlerAnalysis.AnaliseHandler, _midlleware.CheckAuthorization, rateLimiter)
	e.GET("/api/analise/filtros", container.HandlerAnalysis.FiltrosHandler, _midlleware.CheckAuthorization, rateLimiter)
	e.POST("/api/analise_relato", container.HandlerSemantic.AnaliseRelatoHandler, _midlleware.CheckAuthorization, rateLimiter)
	e.POST("/api/analise_relato/lote", container.HandlerSemantic.AnaliseLoteHandler, _midlleware.CheckAuthorization, rateLimiter)
	e.GET("/api/analise_placa/:placa", container.HandlerSemantic.AnalisePlacaHandler, _midlleware.CheckAuthorization, rateLimiter)

	e.POST("/api/feedback/salvar", container.HandlerFeedback.SalvarFeedbackHandler, _midlleware.CheckAuthorization)
	e.GET("/api/feedback/stats", container.HandlerFeedback.StatsHandler, _midlleware.CheckAuthorization)
	e.GET("/api/feedback/listar", container.HandlerFeedback.ListarFeedbackHandler, _midlleware.CheckAuthorization)

	e.POST("/api/operador", container.SessionHandler.CriarOperador, _midlleware.CheckAuthorization)

	e.GET("/api/v2/", container.HandlerAgents.InfoHandler)
	e.GET("/api/v2/health", container.HandlerAgents.HealthHandler)
	e.GET("/api/v2/stats", container.HandlerAgents.StatsHandler, _midlleware.CheckAuthorization)
	e.POST("/api/v2/analyze/batch", container.HandlerAgents.AnaliseBatchHandler, _midlleware.CheckAuthorization)
	e.GET("/api/v2/analyze/:placa", container.HandlerAgents.AnaliseCompletaHandler, _midlleware.CheckAuthorization)
	e.GET("/api/v2/analyze/:placa/fast", container.HandlerAgents.AnaliseRapidaHandler, _midlleware.CheckAuthorization)

	e.GET("/ws/monitor", container.WsHandler.HandleWs, _midlleware.CheckAuthorization)

	e.Logger.Fatal(e.Start(container.Config.ServerPort))
}
