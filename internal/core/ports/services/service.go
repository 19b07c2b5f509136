package services

// ServiceContainer holds instances of all application services. Handlers
// receive this container and pull the facades they need.
type ServiceContainer struct {
	User   UserSvcFacade
	Token  TokenSvcFacade
	Rate   RateSvcFacade
	Ledger LedgerSvcFacade
	Travel TravelSvcFacade
}
