package infra

import (
	"database/sql"

	"sentinela/infra/database"
	"sentinela/infra/database/db_postgresql"
	"sentinela/infra/token"
	"sentinela/internal/agents"
	"sentinela/internal/analysis"
	"sentinela/internal/attachment"
	"sentinela/internal/feedback"
	"sentinela/internal/municipality"
	"sentinela/internal/occurrence"
	"sentinela/internal/passage"
	"sentinela/internal/person"
	"sentinela/internal/semantic"
	"sentinela/internal/session"
	"sentinela/internal/vehicle"
	"sentinela/internal/ws"
	"sentinela/pkg/plate"
	"sentinela/pkg/sso"
)

type ContainerDI struct {
	Config                 Config
	ConnDB                 *sql.DB
	HandlerVehicle         *vehicle.Handler
	ServiceVehicle         *vehicle.Service
	RepositoryVehicle      *vehicle.Repository
	HandlerPerson          *person.Handler
	ServicePerson          *person.Service
	RepositoryPerson       *person.Repository
	HandlerPassage         *passage.Handler
	ServicePassage         *passage.Service
	RepositoryPassage      *passage.Repository
	HandlerOccurrence      *occurrence.Handler
	ServiceOccurrence      *occurrence.Service
	RepositoryOccurrence   *occurrence.Repository
	HandlerMunicipality    *municipality.Handler
	ServiceMunicipality    *municipality.Service
	RepositoryMunicipality *municipality.Repository
	HandlerSemantic        *semantic.Handler
	ServiceSemantic        *semantic.Service
	RepositorySemantic     *semantic.Repository
	HandlerAnalysis        *analysis.Handler
	ServiceAnalysis        *analysis.Service
	RepositoryAnalysis     *analysis.Repository
	HandlerFeedback        *feedback.Handler
	ServiceFeedback        *feedback.Service
	RepositoryFeedback     *feedback.Repository
	HandlerAgents          *agents.Handler
	ServiceAgents          *agents.Service
	RepositoryAgents       *agents.Repository
	HandlerAttachment      *attachment.Handler
	ServiceAttachment      *attachment.Service
	RepositoryAttachment   *attachment.Repository
	SessionHandler         *session.Handler
	SessionService         *session.Service
	SessionRepository      *session.Repository
	WsHandler              *ws.Handler
	Hub                    *ws.Hub
	PairingTracker         *passage.PairingTracker
	PlacaProvider          *plate.Client
	GoogleToken            *sso.GoogleToken
	PasetoMaker            *token.Maker
}

func NewContainerDI(config Config) *ContainerDI {
	container := &ContainerDI{Config: config}
	container.db()
	container.buildPkg()
	container.buildRepository()
	container.buildService()
	container.buildHandler()
	return container
}

func (c *ContainerDI) db() {
	dbConfig := database.Config{
		Host:        c.Config.DBHost,
		Port:        c.Config.DBPort,
		User:        c.Config.DBUser,
		Password:    c.Config.DBPassword,
		Database:    c.Config.DBDatabase,
		SSLMode:     c.Config.DBSSLMode,
		Driver:      c.Config.DBDriver,
		Environment: c.Config.Environment,
	}
	c.ConnDB = db_postgresql.NewConnection(&dbConfig)
}

func (c *ContainerDI) buildPkg() {
	c.GoogleToken = sso.NewGoogleToken(c.Config.GoogleClientId)
	maker, _ := token.NewPasetoMaker(c.Config.SignatureToken)
	c.PasetoMaker = &maker
	c.PlacaProvider = plate.NewClient(c.Config.PlacaProviderUrl, c.Config.PlacaProviderToken)
	c.Hub = ws.NewHub()
	c.PairingTracker = passage.NewPairingTracker()
}

func (c *ContainerDI) buildRepository() {
	c.RepositoryVehicle = vehicle.NewVehicleRepository(c.ConnDB)
	c.RepositoryPerson = person.NewPersonRepository(c.ConnDB)
	c.RepositoryPassage = passage.NewPassageRepository(c.ConnDB)
	c.RepositoryOccurrence = occurrence.NewOccurrenceRepository(c.ConnDB)
	c.RepositoryMunicipality = municipality.NewMunicipalityRepository(c.ConnDB)
	c.RepositorySemantic = semantic.NewSemanticRepository(c.ConnDB)
	c.RepositoryAnalysis = analysis.NewAnalysisRepository(c.ConnDB)
	c.RepositoryFeedback = feedback.NewFeedbackRepository(c.ConnDB)
	c.RepositoryAgents = agents.NewAgentsRepository(c.ConnDB)
	c.RepositoryAttachment = attachment.NewAttachmentRepository(c.ConnDB)
	c.SessionRepository = session.NewRepository(c.ConnDB)
}

func (c *ContainerDI) buildService() {
	c.ServiceVehicle = vehicle.NewVehicleService(c.RepositoryVehicle, c.PlacaProvider)
	c.ServicePerson = person.NewPersonService(c.RepositoryPerson)
	c.ServicePassage = passage.NewPassageService(c.RepositoryPassage, c.PairingTracker, c.Hub)
	c.ServiceOccurrence = occurrence.NewOccurrenceService(c.RepositoryOccurrence, c.Hub)
	c.ServiceMunicipality = municipality.NewMunicipalityService(c.RepositoryMunicipality)
	c.ServiceSemantic = semantic.NewSemanticService(c.RepositorySemantic)
	c.ServiceAnalysis = analysis.NewAnalysisService(c.RepositoryAnalysis)
	c.ServiceFeedback = feedback.NewFeedbackService(c.RepositoryFeedback)
	c.ServiceAgents = agents.NewAgentsService(c.RepositoryAgents)
	c.ServiceAttachment = attachment.NewAttachmentService(c.RepositoryAttachment, c.Config.AwsBucketName)
	c.SessionService = session.NewService(c.GoogleToken, c.SessionRepository, *c.PasetoMaker)
}

func (c *ContainerDI) buildHandler() {
	c.HandlerVehicle = vehicle.NewVehicleHandler(c.ServiceVehicle)
	c.HandlerPerson = person.NewPersonHandler(c.ServicePerson)
	c.HandlerPassage = passage.NewPassageHandler(c.ServicePassage)
	c.HandlerOccurrence = occurrence.NewOccurrenceHandler(c.ServiceOccurrence)
	c.HandlerMunicipality = municipality.NewMunicipalityHandler(c.ServiceMunicipality)
	c.HandlerSemantic = semantic.NewSemanticHandler(c.ServiceSemantic)
	c.HandlerAnalysis = analysis.NewAnalysisHandler(c.ServiceAnalysis)
	c.HandlerFeedback = feedback.NewFeedbackHandler(c.ServiceFeedback)
	c.HandlerAgents = agents.NewAgentsHandler(c.ServiceAgents)
	c.HandlerAttachment = attachment.NewAttachmentHandler(c.ServiceAttachment)
	c.SessionHandler = session.NewHandler(c.SessionService)
	c.WsHandler = ws.NewWsHandler(c.Hub)
	go c.Hub.Run()
}
